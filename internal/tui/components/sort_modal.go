package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/artgrid/internal/tui/styles"
)

// SortField is a column the loaded page can be ordered by
type SortField int

const (
	SortDefault SortField = iota // order returned by the API
	SortTitle
	SortArtist
	SortOrigin
	SortDateStart
	SortDateEnd
)

// String returns the display name for the sort field
func (f SortField) String() string {
	switch f {
	case SortDefault:
		return "Default"
	case SortTitle:
		return "Title"
	case SortArtist:
		return "Artist"
	case SortOrigin:
		return "Place of Origin"
	case SortDateStart:
		return "Date Start"
	case SortDateEnd:
		return "Date End"
	default:
		return "Unknown"
	}
}

// SortDirection represents sort direction
type SortDirection int

const (
	SortAsc SortDirection = iota
	SortDesc
)

// Flip returns the opposite direction
func (d SortDirection) Flip() SortDirection {
	if d == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// Arrow returns the indicator shown next to an active sort
func (d SortDirection) Arrow() string {
	if d == SortAsc {
		return "↑"
	}
	return "↓"
}

// ArtworkSortOptions returns the sortable artwork columns
func ArtworkSortOptions() []SortField {
	return []SortField{SortDefault, SortTitle, SortArtist, SortOrigin, SortDateStart, SortDateEnd}
}

// SortSelection represents the user's sort choice
type SortSelection struct {
	Field     SortField
	Direction SortDirection
}

const sortModalWidth = 22

// SortModal is a small popup for choosing the order of the loaded page
type SortModal struct {
	visible bool
	options []SortField
	cursor  int
	active  SortSelection
}

// NewSortModal creates a new sort modal
func NewSortModal() SortModal {
	return SortModal{}
}

// Show opens the modal with the cursor on the active field
func (m *SortModal) Show(options []SortField, active SortSelection) {
	m.visible = true
	m.options = options
	m.active = active
	m.cursor = 0
	for i, opt := range options {
		if opt == active.Field {
			m.cursor = i
			break
		}
	}
}

// Hide dismisses the modal
func (m *SortModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m SortModal) IsVisible() bool {
	return m.visible
}

// HandleKey processes a key press while the modal is open.
// Choosing the active field again reverses its direction; any other field
// starts ascending. A non-nil selection means the user confirmed.
func (m *SortModal) HandleKey(key string) (handled bool, selection *SortSelection) {
	if !m.visible {
		return false, nil
	}

	switch key {
	case "j", "down":
		m.cursor = min(m.cursor+1, len(m.options)-1)
	case "k", "up":
		m.cursor = max(m.cursor-1, 0)
	case "enter":
		chosen := SortSelection{Field: m.options[m.cursor], Direction: SortAsc}
		if chosen.Field == m.active.Field {
			chosen.Direction = m.active.Direction.Flip()
		}
		m.visible = false
		return true, &chosen
	case "esc", "s", "q":
		m.visible = false
	}

	// swallow everything else while open
	return true, nil
}

// View renders the sort modal
func (m SortModal) View() string {
	if !m.visible || len(m.options) == 0 {
		return ""
	}

	lines := make([]string, 0, len(m.options))
	for i, opt := range m.options {
		lines = append(lines, m.renderOption(opt, i == m.cursor))
	}

	body := styles.ModalTitleStyle.Render("Sort page by") + "\n" + strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Gold).
		Background(styles.SlateDark).
		Padding(0, 1).
		Render(body)
}

func (m SortModal) renderOption(opt SortField, underCursor bool) string {
	isActive := opt == m.active.Field

	text := "  " + opt.String()
	if isActive {
		text = "✓ " + opt.String() + " " + m.active.Direction.Arrow()
	}
	text = styles.Pad(text, sortModalWidth)

	style := lipgloss.NewStyle().Foreground(styles.LightGray)
	switch {
	case underCursor:
		style = lipgloss.NewStyle().Foreground(styles.White).Background(styles.SlateLight)
	case isActive:
		style = lipgloss.NewStyle().Foreground(styles.Gold)
	}
	return style.Render(text)
}
