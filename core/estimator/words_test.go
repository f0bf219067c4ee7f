package estimator

import (
	"testing"
	"time"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   int
	}{
		{name: "empty", prompt: "", want: 0},
		{name: "only whitespace", prompt: " \t\n ", want: 0},
		{name: "single word", prompt: "portfolio", want: 1},
		{name: "collapses runs of whitespace", prompt: "  a bakery\tsite \n with   menus ", want: 5},
		{name: "punctuation stays attached", prompt: "Hello, world!", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountWords(tt.prompt); got != tt.want {
				t.Errorf("CountWords(%q) = %d, want %d", tt.prompt, got, tt.want)
			}
		})
	}
}

func TestPromptText(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{name: "nil", in: nil, want: ""},
		{name: "string", in: "a site", want: "a site"},
		{name: "json number", in: float64(42), want: "42"},
		{name: "json fraction", in: 1.5, want: "1.5"},
		{name: "bool", in: true, want: "true"},
		{name: "bytes", in: []byte("raw"), want: "raw"},
		{name: "stringer", in: time.Duration(0), want: "0s"},
		{name: "int", in: 7, want: "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PromptText(tt.in); got != tt.want {
				t.Errorf("PromptText(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
