package determinism

import (
	"reflect"
	"testing"
)

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"sections": 1, "base": 5, "darkMode": 2}
	want := []string{"base", "darkMode", "sections"}
	for i := 0; i < 10; i++ {
		if got := SortedKeys(m); !reflect.DeepEqual(got, want) {
			t.Fatalf("SortedKeys() = %v, want %v", got, want)
		}
	}
	if got := SortedKeys(map[string]int{}); len(got) != 0 {
		t.Errorf("SortedKeys(empty) = %v", got)
	}
}

func TestHashJSONIgnoresMapOrder(t *testing.T) {
	a := map[string]interface{}{"prompt": "bakery site", "refinement": false, "selections": map[string]string{"mode": "Dark", "style": "Modern"}}
	b := map[string]interface{}{"selections": map[string]string{"style": "Modern", "mode": "Dark"}, "refinement": false, "prompt": "bakery site"}

	ha, err := HashJSON(a)
	if err != nil {
		t.Fatal(err)
	}
	hb, err := HashJSON(b)
	if err != nil {
		t.Fatal(err)
	}
	if ha != hb {
		t.Errorf("hashes differ: %s vs %s", ha, hb)
	}

	b["refinement"] = true
	hc, _ := HashJSON(b)
	if hc == ha {
		t.Error("different content should hash differently")
	}
}

func TestHashJSONUnsupported(t *testing.T) {
	if _, err := HashJSON(make(chan int)); err == nil {
		t.Error("expected error for unencodable value")
	}
}

func TestContentHashFormatting(t *testing.T) {
	h := ComputeHash([]byte("sitecost"))
	if len(h.Hex()) != 64 {
		t.Errorf("Hex() length = %d, want 64", len(h.Hex()))
	}
	if h.String() != h.Hex() {
		t.Error("String() should equal Hex()")
	}
}
