package classes

import "testing"

func TestSet(t *testing.T) {
	var s Set
	s = s.Add(Target)
	s = s.Add(TargetHighlight)
	s = s.Add(Target)

	if len(s) != 2 {
		t.Fatalf("len = %d, want 2: %v", len(s), s)
	}
	if !s.Has(TargetHighlight) {
		t.Error("Has(TargetHighlight) = false")
	}

	s = s.Remove(TargetHighlight)
	if s.Has(TargetHighlight) {
		t.Error("TargetHighlight still present after Remove")
	}
	if !s.Has(Target) {
		t.Error("Remove dropped an unrelated class")
	}
	s = s.Remove("missing")
	if len(s) != 1 {
		t.Errorf("Remove of a missing class changed the set: %v", s)
	}
}
