// Package selection tracks which artworks the user has checked.
// Membership is keyed by artwork identifier only, so it outlives the
// page of rows that was loaded when an id was selected.
package selection

import "sort"

// Set is a set of selected artwork identifiers.
// The zero value is not usable; call NewSet.
type Set struct {
	ids map[int]struct{}
}

// NewSet creates an empty selection
func NewSet() *Set {
	return &Set{ids: make(map[int]struct{})}
}

// Add makes id a member. Returns true if it was not already selected.
func (s *Set) Add(id int) bool {
	if _, ok := s.ids[id]; ok {
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// Remove drops id from the set. Returns true if it was selected.
func (s *Set) Remove(id int) bool {
	if _, ok := s.ids[id]; !ok {
		return false
	}
	delete(s.ids, id)
	return true
}

// IsSelected reports whether id is a member
func (s *Set) IsSelected(id int) bool {
	_, ok := s.ids[id]
	return ok
}

// Selected returns a snapshot of the member ids.
// Later changes to the set do not affect the returned map.
func (s *Set) Selected() map[int]struct{} {
	out := make(map[int]struct{}, len(s.ids))
	for id := range s.ids {
		out[id] = struct{}{}
	}
	return out
}

// IDs returns the member ids in ascending order
func (s *Set) IDs() []int {
	ids := make([]int, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Len returns the number of selected ids
func (s *Set) Len() int {
	return len(s.ids)
}

// CountOf returns how many of ids are selected
func (s *Set) CountOf(ids []int) int {
	n := 0
	for _, id := range ids {
		if s.IsSelected(id) {
			n++
		}
	}
	return n
}

// Clear empties the selection
func (s *Set) Clear() {
	s.ids = make(map[int]struct{})
}
