package heredity

import (
	"testing"
)

func TestSubsetMembership(t *testing.T) {
	var s Subset
	s = s.With(0).With(3)

	for i, want := range []bool{true, false, false, true, false} {
		if got := s.Has(i); got != want {
			t.Errorf("Has(%d): got %v, expected %v", i, got, want)
		}
	}

	if s.Count() != 2 {
		t.Errorf("Got %d members, expected %d", s.Count(), 2)
	}
}

func TestFull(t *testing.T) {
	if Full(0) != 0 {
		t.Errorf("Got %b, expected empty", Full(0))
	}
	if Full(3) != 0b111 {
		t.Errorf("Got %b, expected %b", Full(3), 0b111)
	}
	if Full(MaxPedigreeSize).Count() != MaxPedigreeSize {
		t.Errorf("Got %d members, expected %d", Full(MaxPedigreeSize).Count(), MaxPedigreeSize)
	}
}

func TestSubmasks(t *testing.T) {
	var mask Subset = 0b10110

	seen := make(map[Subset]bool)
	m := newSubmasks(mask)
	for {
		if m.current&^mask != 0 {
			t.Fatalf("%b is not a subset of %b", m.current, mask)
		}
		if seen[m.current] {
			t.Fatalf("%b visited twice", m.current)
		}
		seen[m.current] = true
		if !m.Next() {
			break
		}
	}

	if len(seen) != 1<<uint(mask.Count()) {
		t.Errorf("Got %d subsets, expected %d", len(seen), 1<<uint(mask.Count()))
	}
	if !seen[0] || !seen[mask] {
		t.Errorf("Expected both the empty set and the full mask to be visited")
	}
}

func TestSubmasksOfEmpty(t *testing.T) {
	m := newSubmasks(0)
	if m.current != 0 {
		t.Fatalf("Got %b, expected empty", m.current)
	}
	if m.Next() {
		t.Errorf("Expected the empty mask to have exactly one subset")
	}
}
