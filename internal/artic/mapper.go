package artic

import (
	"strings"

	"github.com/mmcdole/artgrid/internal/domain"
)

// MapArtworks converts API artworks to domain artworks, preserving order
func MapArtworks(dtos []ArtworkDTO) []domain.Artwork {
	items := make([]domain.Artwork, 0, len(dtos))
	for _, d := range dtos {
		items = append(items, mapArtwork(d))
	}
	return items
}

func mapArtwork(d ArtworkDTO) domain.Artwork {
	return domain.Artwork{
		ID:            d.ID,
		Title:         strings.TrimSpace(d.Title),
		PlaceOfOrigin: strings.TrimSpace(d.PlaceOfOrigin),
		ArtistDisplay: cleanMultiline(d.ArtistDisplay),
		Inscriptions:  cleanMultiline(d.Inscriptions),
		DateStart:     d.DateStart,
		DateEnd:       d.DateEnd,
	}
}

// MapPage builds a domain page from a listing response.
// The requested page and limit are recorded rather than the echoed values,
// so an out-of-range request still reports the page the caller asked for.
func MapPage(resp *ListResponse, page, limit int) domain.Page {
	return domain.Page{
		Items:  MapArtworks(resp.Data),
		Total:  resp.Pagination.Total,
		Number: page,
		Size:   limit,
	}
}

// cleanMultiline folds the newline-separated API text onto one line
func cleanMultiline(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	parts := lines[:0]
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, ", ")
}
