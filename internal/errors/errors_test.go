package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  Input("prompt is required"),
			want: "[INPUT_ERROR] prompt is required",
		},
		{
			name: "with cause",
			err:  Parsing("invalid catalog", fmt.Errorf("unexpected token")),
			want: "[PARSING_ERROR] invalid catalog: unexpected token",
		},
		{
			name: "not found",
			err:  NotFound("category", "fonts"),
			want: "[NOT_FOUND] category not found: fonts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypeOfWrapped(t *testing.T) {
	base := Config("generation_min exceeds generation_max")
	wrapped := fmt.Errorf("loading config: %w", base)

	if got := TypeOf(wrapped); got != TypeConfig {
		t.Errorf("TypeOf() = %s, want %s", got, TypeConfig)
	}
	if !IsType(wrapped, TypeConfig) {
		t.Error("IsType() should see through fmt.Errorf wrapping")
	}
	if got := TypeOf(stderrors.New("plain")); got != TypeInternal {
		t.Errorf("TypeOf(plain) = %s, want %s", got, TypeInternal)
	}
}

func TestUnwrapReachesCause(t *testing.T) {
	sentinel := stderrors.New("sentinel")
	err := Wrap(TypeInput, "balance too low", sentinel).WithContext("deficit", 15)

	if !stderrors.Is(err, sentinel) {
		t.Error("errors.Is should reach the wrapped cause")
	}
	if err.Context["deficit"] != 15 {
		t.Errorf("context deficit = %v, want 15", err.Context["deficit"])
	}
}
