package components

import (
	"sort"
	"strings"

	"github.com/mmcdole/artgrid/internal/domain"
)

// SortArtworks returns a sorted copy of items. SortDefault keeps source order.
// Rows missing the sort value always go last.
func SortArtworks(items []domain.Artwork, field SortField, dir SortDirection) []domain.Artwork {
	out := make([]domain.Artwork, len(items))
	copy(out, items)
	if field == SortDefault {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch field {
		case SortDateStart, SortDateEnd:
			av, bv := dateValue(a, field), dateValue(b, field)
			if av == 0 || bv == 0 {
				return av != 0 && bv == 0
			}
			if dir == SortDesc {
				return av > bv
			}
			return av < bv
		default:
			av, bv := textValue(a, field), textValue(b, field)
			if av == "" || bv == "" {
				return av != "" && bv == ""
			}
			if dir == SortDesc {
				return av > bv
			}
			return av < bv
		}
	})
	return out
}

func textValue(a domain.Artwork, field SortField) string {
	switch field {
	case SortTitle:
		return strings.ToLower(a.Title)
	case SortArtist:
		return strings.ToLower(a.ArtistDisplay)
	case SortOrigin:
		return strings.ToLower(a.PlaceOfOrigin)
	default:
		return ""
	}
}

func dateValue(a domain.Artwork, field SortField) int {
	if field == SortDateEnd {
		return a.DateEnd
	}
	return a.DateStart
}
