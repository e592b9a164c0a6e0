package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmcdole/artgrid/internal/domain"
)

var rows = []domain.Artwork{
	{ID: 1, Title: "Water Lilies", ArtistDisplay: "Claude Monet", PlaceOfOrigin: "France"},
	{ID: 2, Title: "The Bedroom", ArtistDisplay: "Vincent van Gogh", PlaceOfOrigin: "France"},
	{ID: 3, Title: "Nighthawks", ArtistDisplay: "Edward Hopper", PlaceOfOrigin: "United States"},
	{ID: 4, Title: "Château de Médan", ArtistDisplay: "Paul Cézanne", PlaceOfOrigin: "France"},
}

func ids(items []domain.Artwork) []int {
	out := make([]int, len(items))
	for i, a := range items {
		out[i] = a.ID
	}
	return out
}

func TestFilterByTitle(t *testing.T) {
	got := Apply("nighthawks", rows)
	assert.Equal(t, []int{3}, ids(got))
}

func TestFilterByArtistCaseInsensitive(t *testing.T) {
	got := Apply("MONET", rows)
	assert.Equal(t, []int{1}, ids(got))
}

func TestFilterAccentInsensitive(t *testing.T) {
	got := Apply("chateau", rows)
	assert.Equal(t, []int{4}, ids(got))

	got = Apply("cezanne", rows)
	assert.Equal(t, []int{4}, ids(got))
}

func TestFilterEmptyQueryKeepsRows(t *testing.T) {
	assert.Equal(t, rows, Apply("  ", rows))
	assert.Nil(t, Filter("", rows))
}

func TestFilterNoMatch(t *testing.T) {
	assert.Empty(t, Apply("zzzzqqq", rows))
}

func TestSearchTextSkipsEmptyFields(t *testing.T) {
	assert.Equal(t, "untitled", SearchText(domain.Artwork{Title: "Untitled"}))
	assert.Equal(t, "water lilies claude monet france", SearchText(rows[0]))
}

func TestRowIndexIsFuzzySource(t *testing.T) {
	idx := NewRowIndex(rows)
	assert.Equal(t, 4, idx.Len())
	assert.Equal(t, "nighthawks edward hopper united states", idx.String(2))
}
