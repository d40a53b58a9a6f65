package icons

import (
	"sort"
	"testing"
)

func TestValid(t *testing.T) {
	if !Valid("users") {
		t.Fatalf("users must be valid")
	}
	if !Valid("  Target ") {
		t.Fatalf("names are trimmed and lowercased")
	}
	if Valid("sparkles") {
		t.Fatalf("unknown name accepted")
	}
}

func TestNormalize(t *testing.T) {
	got, ok := Normalize(" Globe ")
	if !ok || got != "globe" {
		t.Fatalf("Normalize = %q, %v", got, ok)
	}
	if _, ok := Normalize("not-an-icon"); ok {
		t.Fatalf("unknown name accepted")
	}
	got, ok = Normalize("")
	if !ok || got != "" {
		t.Fatalf("empty icon must be allowed, got %q, %v", got, ok)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != len(known) {
		t.Fatalf("got %d names, want %d", len(names), len(known))
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
}
