package domain

import "context"

// ArtworkSource returns one page of artworks at a time.
// A page beyond the end of the collection yields an empty Page, not an error.
type ArtworkSource interface {
	// FetchPage retrieves the 1-based page of the given size
	FetchPage(ctx context.Context, page, limit int) (Page, error)
}

// SelectionReader answers membership queries against the selected identifiers
type SelectionReader interface {
	IsSelected(id int) bool
}
