package tui

import "github.com/mmcdole/artgrid/internal/service"

// Message types for the TUI

// PageLoadedMsg carries the completion of a page request, successful or not.
// The token inside decides whether it is still wanted.
type PageLoadedMsg struct {
	Result service.PageResult
}

// ClearStatusMsg clears the status bar if no newer status replaced it
type ClearStatusMsg struct {
	Seq int
}
