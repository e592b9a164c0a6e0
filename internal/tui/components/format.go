package components

import (
	"strconv"
	"strings"

	"github.com/mmcdole/artgrid/internal/domain"
	"github.com/mmcdole/artgrid/internal/tui/styles"
)

// Column headers in display order, after the check column
var ColumnTitles = []string{
	"Title",
	"Place of Origin",
	"Artist",
	"Inscriptions",
	"Date Start",
	"Date End",
}

// FormatRow returns the display text of each data column for a.
// Missing values render as the em dash placeholder.
func FormatRow(a domain.Artwork) []string {
	return []string{
		textOrEmpty(a.Title),
		textOrEmpty(a.PlaceOfOrigin),
		textOrEmpty(a.ArtistDisplay),
		textOrEmpty(a.Inscriptions),
		yearOrEmpty(a.DateStart),
		yearOrEmpty(a.DateEnd),
	}
}

// CheckCell returns the check column glyph
func CheckCell(checked bool) string {
	if checked {
		return styles.CheckedChar
	}
	return styles.UncheckedChar
}

func textOrEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return styles.EmptyCell
	}
	return s
}

func yearOrEmpty(y int) string {
	if y == 0 {
		return styles.EmptyCell
	}
	return strconv.Itoa(y)
}
