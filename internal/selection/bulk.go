package selection

import "github.com/mmcdole/artgrid/internal/domain"

// SelectFirstN adds the ids of the first n loaded items, in order, to s.
// n is clamped to [0, len(items)]. Existing members are never removed.
// Only the loaded items are reachable; rows on pages that have not been
// fetched cannot be selected this way.
// Returns how many ids were newly added.
func SelectFirstN(s *Set, n int, items []domain.Artwork) int {
	n = ClampCount(n, len(items))
	added := 0
	for _, a := range items[:n] {
		if s.Add(a.ID) {
			added++
		}
	}
	return added
}

// ClampCount bounds n to [0, limit]
func ClampCount(n, limit int) int {
	if n < 0 {
		return 0
	}
	if n > limit {
		return limit
	}
	return n
}
