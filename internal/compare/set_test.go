package compare

import (
	"reflect"
	"testing"
)

func TestSet_InsertionOrder(t *testing.T) {
	s := NewSet()
	for _, id := range []string{"p3", "p1", "p2"} {
		if !s.Add(id) {
			t.Fatalf("Add(%q) = false on first insert", id)
		}
	}

	if got := s.Members(); !reflect.DeepEqual(got, []string{"p3", "p1", "p2"}) {
		t.Errorf("Members() = %v, want insertion order preserved", got)
	}
}

func TestSet_DuplicateAdd(t *testing.T) {
	s := NewSet()
	s.Add("p1")
	s.Add("p2")

	if s.Add("p1") {
		t.Error("Add() = true for an existing id")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d after duplicate add, want 2", s.Len())
	}
	// The duplicate keeps its original position.
	if got := s.Members(); !reflect.DeepEqual(got, []string{"p1", "p2"}) {
		t.Errorf("Members() = %v, want [p1 p2]", got)
	}
}

func TestSet_Remove(t *testing.T) {
	s := NewSet()
	for _, id := range []string{"p1", "p2", "p3"} {
		s.Add(id)
	}

	if !s.Remove("p2") {
		t.Fatal("Remove() = false for a present id")
	}
	if s.Remove("p2") {
		t.Error("Remove() = true for an absent id")
	}
	if got := s.Members(); !reflect.DeepEqual(got, []string{"p1", "p3"}) {
		t.Errorf("Members() = %v, want [p1 p3]", got)
	}

	// Membership stays consistent after the reindex.
	if s.Contains("p2") {
		t.Error("Contains(p2) = true after removal")
	}
	if !s.Contains("p3") {
		t.Error("Contains(p3) = false for a remaining member")
	}

	// Re-adding a removed id appends at the end.
	s.Add("p2")
	if got := s.Members(); !reflect.DeepEqual(got, []string{"p1", "p3", "p2"}) {
		t.Errorf("Members() = %v, want [p1 p3 p2]", got)
	}
}

func TestSet_Clear(t *testing.T) {
	s := NewSet()
	s.Add("p1")
	s.Add("p2")

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", s.Len())
	}
	if s.Contains("p1") {
		t.Error("Contains(p1) = true after Clear")
	}
	if !s.Add("p1") {
		t.Error("Add() = false after Clear")
	}
}

func TestSet_MembersIsACopy(t *testing.T) {
	s := NewSet()
	s.Add("p1")
	s.Add("p2")

	got := s.Members()
	got[0] = "mutated"

	if want := s.Members(); want[0] != "p1" {
		t.Errorf("internal order mutated through Members(): %v", want)
	}
}
