package service

import (
	"log/slog"

	"github.com/mmcdole/artgrid/internal/domain"
	"github.com/mmcdole/artgrid/internal/paging"
	"github.com/mmcdole/artgrid/internal/selection"
)

// PageRequest is a fetch the caller must perform for the session
type PageRequest struct {
	Token  paging.Token
	Cursor paging.Cursor
}

// PageResult is the completion of a PageRequest
type PageResult struct {
	Token  paging.Token
	Cursor paging.Cursor
	Page   domain.Page
	Err    error
}

// BrowseSession holds the paging and selection state of one grid.
// Every cursor change issues exactly one PageRequest; completions are fed
// back through Apply, which drops any result that is not for the latest
// request. The selection is keyed by id and is never cleared by paging.
//
// BrowseSession is not safe for concurrent use. It is owned by the UI loop.
type BrowseSession struct {
	cursor    paging.Cursor
	tracker   paging.Tracker
	selection *selection.Set
	logger    *slog.Logger
	window    int // rows reachable by paging, 0 for no limit

	page    domain.Page // last successfully applied page
	loaded  bool
	loading bool
	err     error
}

// NewBrowseSession creates a session positioned before page 1
func NewBrowseSession(pageSize int, logger *slog.Logger) *BrowseSession {
	if logger == nil {
		logger = slog.Default()
	}
	return &BrowseSession{
		cursor:    paging.NewCursor(1, pageSize),
		selection: selection.NewSet(),
		logger:    logger,
	}
}

// SetResultWindow limits paging to the first rows of the collection.
// Zero removes the limit.
func (b *BrowseSession) SetResultWindow(rows int) {
	b.window = max(rows, 0)
}

// SetPage moves the cursor and returns the single fetch it requires.
// Values below 1 are raised to 1.
func (b *BrowseSession) SetPage(page, size int) PageRequest {
	b.cursor = paging.NewCursor(page, size)
	b.loading = true
	b.err = nil

	req := PageRequest{Token: b.tracker.Issue(), Cursor: b.cursor}
	b.logger.Debug("page requested", "page", req.Cursor.Page, "size", req.Cursor.Size, "token", req.Token)
	return req
}

// Retry re-requests the page under the cursor
func (b *BrowseSession) Retry() PageRequest {
	return b.SetPage(b.cursor.Page, b.cursor.Size)
}

// NextPage requests the following page.
// Returns false without issuing a request when the cursor is on the last known page.
func (b *BrowseSession) NextPage() (PageRequest, bool) {
	if b.loaded && b.cursor.Page >= b.TotalPages() {
		return PageRequest{}, false
	}
	next := b.cursor.Next()
	return b.SetPage(next.Page, next.Size), true
}

// PrevPage requests the preceding page. Returns false on page 1.
func (b *BrowseSession) PrevPage() (PageRequest, bool) {
	if b.cursor.Page <= 1 {
		return PageRequest{}, false
	}
	prev := b.cursor.Prev()
	return b.SetPage(prev.Page, prev.Size), true
}

// FirstPage requests page 1. Returns false when already there.
func (b *BrowseSession) FirstPage() (PageRequest, bool) {
	if b.cursor.Page == 1 {
		return PageRequest{}, false
	}
	return b.SetPage(1, b.cursor.Size), true
}

// LastPage requests the last known page. Returns false when no total is
// known yet or the cursor is already there.
func (b *BrowseSession) LastPage() (PageRequest, bool) {
	last := b.TotalPages()
	if last < 1 || b.cursor.Page == last {
		return PageRequest{}, false
	}
	return b.SetPage(last, b.cursor.Size), true
}

// JumpTo requests the given page, clamped to the known page count
func (b *BrowseSession) JumpTo(page int) PageRequest {
	target := paging.NewCursor(page, b.cursor.Size)
	if b.loaded {
		target = target.Clamp(b.page.Total, b.window)
	}
	return b.SetPage(target.Page, target.Size)
}

// ChangePageSize switches the rows per page, keeping the first visible row on screen
func (b *BrowseSession) ChangePageSize(size int) PageRequest {
	next := b.cursor.WithSize(size)
	if b.loaded {
		next = next.Clamp(b.page.Total, b.window)
	}
	return b.SetPage(next.Page, next.Size)
}

// Apply records the completion of a request.
// A result whose token is not the latest is discarded and
// domain.ErrStaleResponse is returned; the session is left untouched.
// A failed fetch keeps the previously loaded rows and records the error.
func (b *BrowseSession) Apply(res PageResult) error {
	if !b.tracker.IsCurrent(res.Token) {
		StaleResponses.Inc()
		b.logger.Debug("stale page response discarded",
			"page", res.Cursor.Page,
			"token", res.Token,
			"latest", b.tracker.Latest())
		return domain.ErrStaleResponse
	}

	b.loading = false

	if res.Err != nil {
		PageFetches.WithLabelValues("error").Inc()
		b.err = res.Err
		return nil
	}

	PageFetches.WithLabelValues("ok").Inc()
	b.page = res.Page
	b.loaded = true
	b.err = nil
	return nil
}

// Cursor returns the requested page position
func (b *BrowseSession) Cursor() paging.Cursor {
	return b.cursor
}

// Page returns the last successfully loaded page
func (b *BrowseSession) Page() domain.Page {
	return b.page
}

// Items returns the rows of the last successfully loaded page
func (b *BrowseSession) Items() []domain.Artwork {
	return b.page.Items
}

// Total returns the record count reported with the last loaded page
func (b *BrowseSession) Total() int {
	return b.page.Total
}

// TotalPages returns the reachable page count for the current page size
func (b *BrowseSession) TotalPages() int {
	return b.cursor.ReachablePages(b.page.Total, b.window)
}

// Loaded reports whether any page has been applied
func (b *BrowseSession) Loaded() bool {
	return b.loaded
}

// Loading reports whether the latest request is still outstanding
func (b *BrowseSession) Loading() bool {
	return b.loading
}

// Err returns the failure of the latest request, if any
func (b *BrowseSession) Err() error {
	return b.err
}

// Selection returns the durable selection set
func (b *BrowseSession) Selection() *selection.Set {
	return b.selection
}

// IsSelected reports whether id is selected
func (b *BrowseSession) IsSelected(id int) bool {
	return b.selection.IsSelected(id)
}

// Check selects id in response to a user toggle
func (b *BrowseSession) Check(id int) bool {
	changed := b.selection.Add(id)
	SelectedArtworks.Set(float64(b.selection.Len()))
	return changed
}

// Uncheck deselects id in response to a user toggle
func (b *BrowseSession) Uncheck(id int) bool {
	changed := b.selection.Remove(id)
	SelectedArtworks.Set(float64(b.selection.Len()))
	return changed
}

// SelectFirstN selects the first n of the given rows, clamped to their count.
// Returns how many ids were newly selected.
func (b *BrowseSession) SelectFirstN(n int, rows []domain.Artwork) int {
	added := selection.SelectFirstN(b.selection, n, rows)
	SelectedArtworks.Set(float64(b.selection.Len()))
	b.logger.Debug("bulk select", "requested", n, "added", added, "selected", b.selection.Len())
	return added
}

// ClearSelection empties the selection
func (b *BrowseSession) ClearSelection() {
	b.selection.Clear()
	SelectedArtworks.Set(0)
}

// SelectedOnPage returns how many of the loaded rows are selected
func (b *BrowseSession) SelectedOnPage() int {
	return b.selection.CountOf(b.page.IDs())
}
