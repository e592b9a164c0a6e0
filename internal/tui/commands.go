package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/artgrid/internal/service"
)

// Command factories for async operations

// FetchPageCmd performs req and reports back with its token
func FetchPageCmd(svc *service.CatalogService, req service.PageRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), svc.Timeout())
		defer cancel()

		page, err := svc.FetchPage(ctx, req.Cursor)
		return PageLoadedMsg{Result: service.PageResult{
			Token:  req.Token,
			Cursor: req.Cursor,
			Page:   page,
			Err:    err,
		}}
	}
}

// ClearStatusCmd clears status seq after a delay
func ClearStatusCmd(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
