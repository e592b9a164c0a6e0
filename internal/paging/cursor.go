package paging

// Cursor identifies one page of a lazily fetched collection.
// The row offset is always derived from Page and Size.
type Cursor struct {
	Page int // 1-based
	Size int // rows per page
}

// NewCursor returns a cursor with both values raised to at least 1
func NewCursor(page, size int) Cursor {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	}
	return Cursor{Page: page, Size: size}
}

// Offset returns the index of the first row on this page
func (c Cursor) Offset() int {
	return (c.Page - 1) * c.Size
}

// TotalPages returns how many pages are needed for total rows
func (c Cursor) TotalPages(total int) int {
	if total <= 0 || c.Size <= 0 {
		return 0
	}
	return (total + c.Size - 1) / c.Size
}

// ReachablePages is TotalPages limited to the pages whose last row falls
// within the first window rows. A window of zero means no limit.
func (c Cursor) ReachablePages(total, window int) int {
	pages := c.TotalPages(total)
	if window > 0 && c.Size > 0 {
		pages = min(pages, max(window/c.Size, 1))
	}
	return pages
}

// ItemsOnPage returns how many rows this page holds out of total
func (c Cursor) ItemsOnPage(total int) int {
	remaining := total - c.Offset()
	switch {
	case remaining <= 0:
		return 0
	case remaining < c.Size:
		return remaining
	default:
		return c.Size
	}
}

// RowRange returns the 1-based first and last row numbers shown for total rows.
// Both are zero when the page is empty.
func (c Cursor) RowRange(total int) (first, last int) {
	n := c.ItemsOnPage(total)
	if n == 0 {
		return 0, 0
	}
	return c.Offset() + 1, c.Offset() + n
}

// Next returns the following page
func (c Cursor) Next() Cursor {
	return Cursor{Page: c.Page + 1, Size: c.Size}
}

// Prev returns the preceding page, stopping at the first
func (c Cursor) Prev() Cursor {
	return NewCursor(c.Page-1, c.Size)
}

// WithSize returns a cursor of the new size whose page still contains
// the first row of the current page
func (c Cursor) WithSize(size int) Cursor {
	if size < 1 {
		size = 1
	}
	return Cursor{Page: c.Offset()/size + 1, Size: size}
}

// Clamp keeps the page within [1, ReachablePages(total, window)].
// An empty collection clamps to page 1.
func (c Cursor) Clamp(total, window int) Cursor {
	last := c.ReachablePages(total, window)
	if last < 1 {
		last = 1
	}
	page := c.Page
	if page > last {
		page = last
	}
	return NewCursor(page, c.Size)
}
