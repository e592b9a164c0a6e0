package service

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/artgrid/internal/domain"
)

// complete performs req against src and returns its result
func complete(t *testing.T, src domain.ArtworkSource, req PageRequest) PageResult {
	t.Helper()
	svc := NewCatalogService(src, nil)
	page, err := svc.FetchPage(context.Background(), req.Cursor)
	return PageResult{Token: req.Token, Cursor: req.Cursor, Page: page, Err: err}
}

func TestBrowseSetPageIssuesOneRequest(t *testing.T) {
	b := NewBrowseSession(10, nil)

	first := b.SetPage(1, 10)
	second := b.SetPage(2, 10)

	assert.NotEqual(t, first.Token, second.Token)
	assert.Equal(t, 2, second.Cursor.Page)
	assert.Equal(t, 10, second.Cursor.Offset())
	assert.True(t, b.Loading())
}

func TestBrowseSetPageRaisesToOne(t *testing.T) {
	b := NewBrowseSession(10, nil)

	req := b.SetPage(0, 0)

	assert.Equal(t, 1, req.Cursor.Page)
	assert.Equal(t, 1, req.Cursor.Size)
}

func TestBrowseSelectionSurvivesNavigation(t *testing.T) {
	src := newFakeSource(95)
	b := NewBrowseSession(10, nil)

	require.NoError(t, b.Apply(complete(t, src, b.SetPage(1, 10))))
	b.Check(5)

	req, ok := b.NextPage()
	require.True(t, ok)
	require.NoError(t, b.Apply(complete(t, src, req)))
	assert.Equal(t, 11, b.Items()[0].ID)
	assert.True(t, b.IsSelected(5), "id 5 is not on page 2 but stays selected")
	assert.Equal(t, 0, b.SelectedOnPage())

	req, ok = b.PrevPage()
	require.True(t, ok)
	require.NoError(t, b.Apply(complete(t, src, req)))
	assert.True(t, b.IsSelected(5))
	assert.Equal(t, 1, b.SelectedOnPage())
}

func TestBrowseLateOlderResponseIsDiscarded(t *testing.T) {
	src := newFakeSource(95)
	b := NewBrowseSession(10, nil)

	page1 := b.SetPage(1, 10)
	page2 := b.SetPage(2, 10)

	res1 := complete(t, src, page1)
	res2 := complete(t, src, page2)

	before := testutil.ToFloat64(StaleResponses)

	// page 2 answers first, page 1 arrives late
	require.NoError(t, b.Apply(res2))
	assert.ErrorIs(t, b.Apply(res1), domain.ErrStaleResponse)

	assert.Equal(t, 2, b.Page().Number)
	assert.Equal(t, 11, b.Items()[0].ID)
	assert.Equal(t, 95, b.Total())
	assert.False(t, b.Loading())
	assert.Equal(t, before+1, testutil.ToFloat64(StaleResponses))
}

func TestBrowseStaleResponseDoesNotClearLoading(t *testing.T) {
	src := newFakeSource(95)
	b := NewBrowseSession(10, nil)

	page1 := b.SetPage(1, 10)
	b.SetPage(2, 10)

	assert.ErrorIs(t, b.Apply(complete(t, src, page1)), domain.ErrStaleResponse)
	assert.True(t, b.Loading(), "still waiting for page 2")
	assert.False(t, b.Loaded())
}

func TestBrowseStaleFailureIsIgnored(t *testing.T) {
	src := newFakeSource(95)
	src.failing[1] = errOffline
	b := NewBrowseSession(10, nil)

	page1 := b.SetPage(1, 10)
	page2 := b.SetPage(2, 10)

	require.NoError(t, b.Apply(complete(t, src, page2)))
	assert.ErrorIs(t, b.Apply(complete(t, src, page1)), domain.ErrStaleResponse)
	assert.NoError(t, b.Err())
}

func TestBrowseNetworkErrorKeepsPreviousRows(t *testing.T) {
	src := newFakeSource(95)
	src.failing[2] = errOffline
	b := NewBrowseSession(10, nil)

	require.NoError(t, b.Apply(complete(t, src, b.SetPage(1, 10))))

	req, ok := b.NextPage()
	require.True(t, ok)
	assert.NotPanics(t, func() {
		require.NoError(t, b.Apply(complete(t, src, req)))
	})

	assert.ErrorIs(t, b.Err(), errOffline)
	assert.False(t, b.Loading())
	assert.Equal(t, 1, b.Page().Number, "page 1 rows remain on screen")
	assert.Len(t, b.Items(), 10)
	assert.Equal(t, 2, b.Cursor().Page, "cursor stays on the page that failed")

	// retry clears the error and re-requests the same page
	delete(src.failing, 2)
	retry := b.Retry()
	assert.Equal(t, 2, retry.Cursor.Page)
	assert.NoError(t, b.Err())
	require.NoError(t, b.Apply(complete(t, src, retry)))
	assert.Equal(t, 11, b.Items()[0].ID)
}

func TestBrowseNinetyFiveRowsInTens(t *testing.T) {
	src := newFakeSource(95)
	b := NewBrowseSession(10, nil)

	require.NoError(t, b.Apply(complete(t, src, b.SetPage(1, 10))))
	assert.Equal(t, 10, b.TotalPages())

	req, ok := b.LastPage()
	require.True(t, ok)
	assert.Equal(t, 10, req.Cursor.Page)
	require.NoError(t, b.Apply(complete(t, src, req)))
	assert.Len(t, b.Items(), 5)

	_, ok = b.NextPage()
	assert.False(t, ok, "no page after the last")
	_, ok = b.LastPage()
	assert.False(t, ok)
}

func TestBrowseJumpToClamps(t *testing.T) {
	src := newFakeSource(95)
	b := NewBrowseSession(10, nil)

	// no total known yet: the request goes out unclamped
	assert.Equal(t, 40, b.JumpTo(40).Cursor.Page)

	require.NoError(t, b.Apply(complete(t, src, b.SetPage(1, 10))))
	assert.Equal(t, 10, b.JumpTo(40).Cursor.Page)
	assert.Equal(t, 1, b.JumpTo(-2).Cursor.Page)
}

func TestBrowseResultWindowCapsPaging(t *testing.T) {
	src := newFakeSource(120000)
	b := NewBrowseSession(100, nil)
	b.SetResultWindow(10000)
	require.NoError(t, b.Apply(complete(t, src, b.SetPage(1, 100))))

	assert.Equal(t, 100, b.TotalPages())
	assert.Equal(t, 120000, b.Total(), "the reported total is kept")

	req, ok := b.LastPage()
	require.True(t, ok)
	assert.Equal(t, 100, req.Cursor.Page)
	require.NoError(t, b.Apply(complete(t, src, req)))

	_, ok = b.NextPage()
	assert.False(t, ok, "no page past the window")
	assert.Equal(t, 100, b.JumpTo(600).Cursor.Page)
}

func TestBrowseChangePageSizeKeepsFirstRow(t *testing.T) {
	src := newFakeSource(95)
	b := NewBrowseSession(10, nil)
	require.NoError(t, b.Apply(complete(t, src, b.SetPage(5, 10))))

	req := b.ChangePageSize(25)

	assert.Equal(t, 2, req.Cursor.Page)
	assert.Equal(t, 25, req.Cursor.Size)
	require.NoError(t, b.Apply(complete(t, src, req)))
	assert.Equal(t, 26, b.Items()[0].ID)
	assert.Equal(t, 4, b.TotalPages())
}

func TestBrowseFirstAndPrevOnFirstPage(t *testing.T) {
	b := NewBrowseSession(10, nil)
	b.SetPage(1, 10)

	_, ok := b.PrevPage()
	assert.False(t, ok)
	_, ok = b.FirstPage()
	assert.False(t, ok)
}

func TestBrowseBulkSelect(t *testing.T) {
	src := newFakeSource(95)
	b := NewBrowseSession(10, nil)
	require.NoError(t, b.Apply(complete(t, src, b.SetPage(1, 10))))
	b.Check(50)

	added := b.SelectFirstN(3, b.Items())
	assert.Equal(t, 3, added)
	assert.Equal(t, []int{1, 2, 3, 50}, b.Selection().IDs())

	assert.Equal(t, 0, b.SelectFirstN(0, b.Items()))
	assert.Equal(t, 4, b.Selection().Len())

	b.SelectFirstN(1000, b.Items())
	assert.Equal(t, 11, b.Selection().Len())
	assert.Equal(t, 10, b.SelectedOnPage())
}

func TestBrowseCheckUncheckAndClear(t *testing.T) {
	b := NewBrowseSession(10, nil)

	assert.True(t, b.Check(7))
	assert.False(t, b.Check(7))
	assert.Equal(t, float64(1), testutil.ToFloat64(SelectedArtworks))

	assert.True(t, b.Uncheck(7))
	assert.False(t, b.Uncheck(7))

	b.Check(1)
	b.Check(2)
	b.ClearSelection()
	assert.Equal(t, 0, b.Selection().Len())
	assert.Equal(t, float64(0), testutil.ToFloat64(SelectedArtworks))
}
