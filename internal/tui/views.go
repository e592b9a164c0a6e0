package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/artgrid/internal/paging"
	"github.com/mmcdole/artgrid/internal/tui/components"
	"github.com/mmcdole/artgrid/internal/tui/styles"
)

const fetchFailedText = "Failed to fetch artworks"

// View renders the entire UI
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderBody(),
		m.renderFooter(),
	)

	// Overlay sort modal if visible
	if m.SortModal.IsVisible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.SortModal.View())
	}

	// Overlay input modal if visible
	if m.InputModal.IsVisible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.InputModal.View())
	}

	return view
}

// renderHeader renders the title, selection summary and page indicator
func (m Model) renderHeader() string {
	left := styles.TitleStyle.Render("Artworks") + "  " + styles.DimStyle.Render(m.selectedSummary())

	var parts []string
	if q := m.Table.FilterQuery(); q != "" && !m.Table.IsTypingFilter() {
		parts = append(parts, styles.FilterStyle.Render("/"+q))
	}
	if sel := m.Table.Sort(); sel.Field != components.SortDefault {
		parts = append(parts, styles.DimBadgeStyle.Render(sel.Field.String()+" "+sel.Direction.Arrow()))
	}
	parts = append(parts, styles.BadgeStyle.Render(m.Paginator.View()))
	right := strings.Join(parts, " ")

	return spread(left, right, m.Width)
}

// renderBody renders the table, or a banner until the first page arrives
func (m Model) renderBody() string {
	height := max(m.Height-ChromeHeight, 1)
	if m.Browse.Loaded() {
		return m.Table.View()
	}

	var banner string
	if err := m.Browse.Err(); err != nil && !m.Browse.Loading() {
		banner = styles.ErrorStyle.Render(errorText(err)) + "\n\n" +
			styles.DimStyle.Render("press r to retry")
	} else {
		banner = m.Spinner.View() + " " + styles.DimStyle.Render("Loading artworks...")
	}

	return lipgloss.Place(m.Width, height, lipgloss.Center, lipgloss.Center, banner)
}

// renderFooter renders a single-line footer
func (m Model) renderFooter() string {
	cur := m.Browse.Cursor()

	// Left side: spinner while loading, then error, then status message
	var left string
	switch {
	case m.Browse.Loading():
		left = m.Spinner.View() + " " + styles.DimStyle.Render(fmt.Sprintf("Loading page %d...", cur.Page))
	case m.Browse.Err() != nil:
		left = styles.ErrorStyle.Render(errorText(m.Browse.Err()))
	case m.StatusMsg != "":
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.SuccessStyle.Render(m.StatusMsg)
		}
	}

	right := styles.DimStyle.Render(m.rowsSummary()) + "  " +
		styles.DimStyle.Render(fmt.Sprintf("%d per page", cur.Size)) + "  " +
		styles.AccentStyle.Render("?") + styles.DimStyle.Render(" help")

	return spread(left, right, m.Width)
}

// rowsSummary describes the rows of the page on screen
func (m Model) rowsSummary() string {
	page := m.Browse.Page()
	if !m.Browse.Loaded() {
		return "rows -"
	}
	first, last := paging.NewCursor(page.Number, page.Size).RowRange(page.Total)
	if first == 0 {
		return fmt.Sprintf("no rows of %d", page.Total)
	}
	return fmt.Sprintf("rows %d-%d of %d", first, last, page.Total)
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	h := m.Help
	h.ShowAll = true
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle
	h.Styles.FullSeparator = styles.HelpDescStyle

	body := styles.ModalTitleStyle.Render("Keys") + "\n" +
		h.View(Keys) + "\n\n" +
		styles.DimStyle.Render("esc to return")

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(body))
}

// errorText returns the message shown for a failed fetch
func errorText(err error) string {
	if err == nil || strings.TrimSpace(err.Error()) == "" {
		return fetchFailedText
	}
	return err.Error()
}

// spread lays out left and right on one line of width, truncating left first
func spread(left, right string, width int) string {
	rightWidth := lipgloss.Width(right)
	if width <= 0 {
		return left + " " + right
	}
	if rightWidth >= width {
		return lipgloss.NewStyle().MaxWidth(width).Render(right)
	}

	left = lipgloss.NewStyle().MaxWidth(width - rightWidth - 1).Render(left)
	gap := max(width-lipgloss.Width(left)-rightWidth, 1)
	return left + strings.Repeat(" ", gap) + right
}
