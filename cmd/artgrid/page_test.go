package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/artgrid/internal/domain"
)

func dumpPage() domain.Page {
	return domain.Page{
		Number: 10,
		Size:   10,
		Total:  95,
		Items: []domain.Artwork{
			{ID: 91, Title: "A Sunday on La Grande Jatte", ArtistDisplay: "Georges Seurat", PlaceOfOrigin: "France", DateStart: 1884, DateEnd: 1886},
			{ID: 92, Title: "Untitled"},
		},
	}
}

func TestWritePageTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writePageTable(&buf, dumpPage(), 120))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 4)

	assert.Contains(t, lines[0], "Title")
	assert.Contains(t, lines[0], "Date End")
	assert.True(t, strings.HasPrefix(lines[1], "□"))
	assert.Contains(t, lines[1], "Georges Seurat")
	assert.Contains(t, lines[1], "1886")
	assert.Contains(t, lines[2], "—", "missing values use the placeholder")
	assert.Equal(t, "page 10 of 10, rows 91-92 of 95", lines[len(lines)-1])
}

func TestWritePageTableTruncatesToWidth(t *testing.T) {
	page := dumpPage()
	page.Items[0].Title = strings.Repeat("long title ", 20)

	var buf bytes.Buffer
	require.NoError(t, writePageTable(&buf, page, 100))

	lines := strings.Split(buf.String(), "\n")
	assert.LessOrEqual(t, len([]rune(lines[1])), 100)
	assert.Contains(t, lines[1], "…")
}

func TestWritePageTableEmptyPage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writePageTable(&buf, domain.Page{Number: 20, Size: 10, Total: 95}, 120))

	assert.Contains(t, buf.String(), "page 20: no rows (total 95)")
}

func TestWritePageJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writePageJSON(&buf, dumpPage()))

	var got pageJSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, 10, got.Page)
	assert.Equal(t, 10, got.TotalPages)
	assert.Equal(t, 95, got.Total)
	require.Len(t, got.Items, 2)
	require.NotNil(t, got.Items[0].DateStart)
	assert.Equal(t, 1884, *got.Items[0].DateStart)
	assert.Nil(t, got.Items[1].DateEnd)
	assert.NotContains(t, buf.String(), `"date_start": null`)
}
