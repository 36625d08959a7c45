// Package compare maintains the user's comparison selection: an ordered set
// of property ids. The set is client-local session state and is never
// persisted.
package compare

// Set preserves insertion order, rejects duplicates, and answers membership
// in O(1). Not safe for concurrent use; each owning context gets its own
// Set.
type Set struct {
	order []string
	index map[string]int
}

// NewSet creates an empty comparison set.
func NewSet() *Set {
	return &Set{index: make(map[string]int)}
}

// Add inserts id at the end. Adding an existing id is a no-op that keeps the
// original insertion position; it returns false in that case.
func (s *Set) Add(id string) bool {
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = len(s.order)
	s.order = append(s.order, id)
	return true
}

// Remove deletes id, returning false when it was not present.
func (s *Set) Remove(id string) bool {
	pos, ok := s.index[id]
	if !ok {
		return false
	}
	s.order = append(s.order[:pos], s.order[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.order); i++ {
		s.index[s.order[i]] = i
	}
	return true
}

// Clear empties the set.
func (s *Set) Clear() {
	s.order = s.order[:0]
	s.index = make(map[string]int)
}

// Contains reports membership.
func (s *Set) Contains(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.order)
}

// Members returns the ids in insertion order.
func (s *Set) Members() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
