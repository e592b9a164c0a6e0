package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/artgrid/internal/paging"
	"github.com/mmcdole/artgrid/internal/service"
	"github.com/mmcdole/artgrid/internal/tui/components"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.State == StateHelp {
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.State = StateBrowsing
		}
		return m, nil
	}

	// Route to active modal if any
	if handled, newModel, cmd := m.routeToModal(msg); handled {
		return newModel, cmd
	}

	// Filter input owns the keyboard while typing
	if m.Table.IsTypingFilter() {
		var cmd tea.Cmd
		m.Table, cmd = m.Table.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Escape):
		if m.Table.IsFiltering() {
			m.Table.ClearFilter()
		}
		return m, nil

	// Paging
	case key.Matches(msg, Keys.NextPage):
		return m.page(m.Browse.NextPage())

	case key.Matches(msg, Keys.PrevPage):
		return m.page(m.Browse.PrevPage())

	case key.Matches(msg, Keys.FirstPage):
		return m.page(m.Browse.FirstPage())

	case key.Matches(msg, Keys.LastPage):
		return m.page(m.Browse.LastPage())

	case key.Matches(msg, Keys.PageSizeUp):
		return m.resizePage(+1)

	case key.Matches(msg, Keys.PageSizeDown):
		return m.resizePage(-1)

	case key.Matches(msg, Keys.Retry):
		return m, m.fetch(m.Browse.Retry())

	case key.Matches(msg, Keys.JumpToPage):
		m.inputFor = inputJumpToPage
		hint := "enter a page number"
		if total := m.Browse.TotalPages(); total > 0 {
			hint = fmt.Sprintf("1 to %d", total)
		}
		return m, m.InputModal.Show("Go to page", hint, "page", validatePage)

	// Selection
	case key.Matches(msg, Keys.Toggle):
		m.Table.ToggleCursor()
		return m, nil

	case key.Matches(msg, Keys.ToggleAll):
		m.Table.ToggleAll()
		return m, nil

	case key.Matches(msg, Keys.BulkSelect):
		visible := len(m.Table.Visible())
		if visible == 0 {
			return m, m.setStatus("No rows loaded to select", false)
		}
		m.inputFor = inputBulkSelect
		hint := fmt.Sprintf("first N of the %d rows shown", visible)
		return m, m.InputModal.Show("Select rows", hint, fmt.Sprintf("0-%d", visible), validateCount)

	case key.Matches(msg, Keys.ClearSelection):
		n := m.Browse.Selection().Len()
		m.Browse.ClearSelection()
		m.Table.Refresh()
		return m, m.setStatus(fmt.Sprintf("Cleared %d selected", n), false)

	// View
	case key.Matches(msg, Keys.Sort):
		m.SortModal.Show(components.ArtworkSortOptions(), m.Table.Sort())
		return m, nil

	case key.Matches(msg, Keys.Filter):
		return m, m.Table.StartFilter()
	}

	// Everything else is row navigation
	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

// routeToModal gives the key to an open modal. handled is false when none is open.
func (m Model) routeToModal(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	if m.SortModal.IsVisible() {
		if _, selection := m.SortModal.HandleKey(msg.String()); selection != nil {
			m.Table.ApplySort(*selection)
		}
		return true, m, nil
	}

	if m.InputModal.IsVisible() {
		var cmd tea.Cmd
		var submitted bool
		m.InputModal, cmd, submitted = m.InputModal.Update(msg)
		if !submitted {
			return true, m, cmd
		}

		value, _ := strconv.Atoi(strings.TrimSpace(m.InputModal.Value()))
		purpose := m.inputFor
		m.InputModal.Hide()
		m.inputFor = inputNone

		switch purpose {
		case inputBulkSelect:
			return true, m, m.bulkSelect(value)
		case inputJumpToPage:
			return true, m, m.fetch(m.Browse.JumpTo(value))
		}
		return true, m, nil
	}

	return false, m, nil
}

// page issues req when the session produced one
func (m Model) page(req service.PageRequest, ok bool) (tea.Model, tea.Cmd) {
	if !ok {
		return m, nil
	}
	return m, m.fetch(req)
}

// resizePage steps the rows-per-page option
func (m Model) resizePage(delta int) (tea.Model, tea.Cmd) {
	cur := m.Browse.Cursor()
	size := paging.StepSize(cur.Size, delta)
	if size == cur.Size {
		return m, nil
	}
	return m, m.fetch(m.Browse.ChangePageSize(size))
}

// bulkSelect selects the first n visible rows without emitting row events
func (m *Model) bulkSelect(n int) tea.Cmd {
	added := m.Browse.SelectFirstN(n, m.Table.Visible())
	m.Table.Refresh()
	return m.setStatus(fmt.Sprintf("Selected %d new rows", added), false)
}

func validateCount(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return errors.New("enter a whole number of rows")
	}
	return nil
}

func validatePage(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return errors.New("enter a page number of 1 or more")
	}
	return nil
}
