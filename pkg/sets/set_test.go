package sets

import "testing"

func TestOf(t *testing.T) {
	s := Of[int64](-100, 42, 42)
	if s.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", s.Len())
	}
	if !s.Contains(-100) || !s.Contains(42) {
		t.Fatal("expected both ids to be present")
	}
	if s.Contains(7) {
		t.Fatal("unexpected id 7")
	}
}

func TestAdd(t *testing.T) {
	s := Of[string]()
	if s.Len() != 0 || s.Contains("a") {
		t.Fatal("expected an empty set")
	}
	s.Add("a")
	s.Add("a")
	if s.Len() != 1 || !s.Contains("a") {
		t.Fatalf("expected only a, got %d items", s.Len())
	}
}
