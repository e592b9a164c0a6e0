// Package search filters the loaded page of artworks by a typed query.
package search

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	sfuzzy "github.com/sahilm/fuzzy"

	"github.com/mmcdole/artgrid/internal/domain"
)

// Match is one row that satisfied the query
type Match struct {
	Index          int   // Index into the filtered items
	Score          int   // Higher is better
	MatchedIndexes []int // Rune positions in the searchable text, for highlighting
}

// RowIndex implements sahilm/fuzzy.Source over the searchable text of each row
type RowIndex struct {
	text []string // Pre-computed lowercase "title artist origin"
}

// NewRowIndex builds the searchable text for items
func NewRowIndex(items []domain.Artwork) *RowIndex {
	text := make([]string, len(items))
	for i, a := range items {
		text[i] = SearchText(a)
	}
	return &RowIndex{text: text}
}

// String returns the searchable text at index i (implements fuzzy.Source)
func (idx *RowIndex) String(i int) string { return idx.text[i] }

// Len returns the number of rows (implements fuzzy.Source)
func (idx *RowIndex) Len() int { return len(idx.text) }

// SearchText returns the lowercase text a row is matched against
func SearchText(a domain.Artwork) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{a.Title, a.ArtistDisplay, a.PlaceOfOrigin} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// Filter returns the rows matching query, best first.
// Ranking comes from sahilm/fuzzy; rows it misses only because of accents
// ("chateau" against "Château") are appended after the ranked rows.
// An empty query returns nil.
func Filter(query string, items []domain.Artwork) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || len(items) == 0 {
		return nil
	}

	idx := NewRowIndex(items)
	ranked := sfuzzy.FindFrom(query, idx)

	results := make([]Match, 0, len(ranked))
	seen := make(map[int]bool, len(ranked))
	for _, m := range ranked {
		results = append(results, Match{
			Index:          m.Index,
			Score:          m.Score,
			MatchedIndexes: m.MatchedIndexes,
		})
		seen[m.Index] = true
	}

	for i := 0; i < idx.Len(); i++ {
		if seen[i] {
			continue
		}
		if fuzzy.MatchNormalizedFold(query, idx.String(i)) {
			results = append(results, Match{Index: i})
		}
	}

	return results
}

// Apply returns the matching items in ranked order, or items unchanged for an empty query
func Apply(query string, items []domain.Artwork) []domain.Artwork {
	if strings.TrimSpace(query) == "" {
		return items
	}
	matches := Filter(query, items)
	out := make([]domain.Artwork, len(matches))
	for i, m := range matches {
		out[i] = items[m.Index]
	}
	return out
}
