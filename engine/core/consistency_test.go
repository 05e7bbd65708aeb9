package core

import "testing"

func TestConsistencyStatus(t *testing.T) {
	var s ConsistencyStatus
	if !s.IsConsistent() {
		t.Fatal("zero status should be consistent")
	}
	if s.String() != "consistent" {
		t.Errorf("String() = %q", s.String())
	}

	s.Increment(EdgesWithoutFaces)
	s.Increment(EdgesWithoutFaces)
	s.Increment(NaNVertices)
	if s.IsConsistent() {
		t.Fatal("status with counts should be inconsistent")
	}
	if s.Count(EdgesWithoutFaces) != 2 {
		t.Errorf("count = %d, want 2", s.Count(EdgesWithoutFaces))
	}
	if s.Count(DuplicateFaces) != 0 {
		t.Errorf("unrelated count = %d", s.Count(DuplicateFaces))
	}
	kinds := s.Kinds()
	if len(kinds) != 2 || kinds[0] != NaNVertices || kinds[1] != EdgesWithoutFaces {
		t.Errorf("kinds = %v", kinds)
	}
	if want := "NaN vertices: 1, edges without faces: 2"; s.String() != want {
		t.Errorf("String() = %q, want %q", s.String(), want)
	}
}
