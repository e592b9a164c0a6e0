package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/artgrid/internal/tui/styles"
)

const inputModalWidth = 36

// InputModal is a single-line prompt shown over the grid
type InputModal struct {
	visible  bool
	title    string
	hint     string
	input    textinput.Model
	validate func(string) error
	err      error
}

// NewInputModal creates a new input modal
func NewInputModal() InputModal {
	ti := textinput.New()
	ti.CharLimit = 6
	ti.Width = 12
	ti.Prompt = "› "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return InputModal{
		input: ti,
	}
}

// Show opens the modal. validate runs on enter; a non-nil error keeps the
// modal open and is shown under the input.
func (m *InputModal) Show(title, hint, placeholder string, validate func(string) error) tea.Cmd {
	m.visible = true
	m.title = title
	m.hint = hint
	m.validate = validate
	m.err = nil
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	return m.input.Focus()
}

// Hide dismisses the modal
func (m *InputModal) Hide() {
	m.visible = false
	m.err = nil
	m.input.Blur()
}

// IsVisible returns whether the modal is shown
func (m InputModal) IsVisible() bool {
	return m.visible
}

// Value returns the current input value
func (m InputModal) Value() string {
	return m.input.Value()
}

// Err returns the last validation failure
func (m InputModal) Err() error {
	return m.err
}

// Update handles input events, returns (modal, cmd, submitted).
// submitted is only true for a value that passed validation.
func (m InputModal) Update(msg tea.Msg) (InputModal, tea.Cmd, bool) {
	if !m.visible {
		return m, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			if m.validate != nil {
				if err := m.validate(m.input.Value()); err != nil {
					m.err = err
					return m, nil, false
				}
			}
			return m, nil, true
		case "esc":
			m.Hide()
			return m, nil, false
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.err = nil
	return m, cmd, false
}

// View renders the input modal
func (m InputModal) View() string {
	if !m.visible {
		return ""
	}

	line := lipgloss.NewStyle().
		Width(inputModalWidth).
		Background(styles.SlateDark)

	rows := []string{
		line.Foreground(styles.White).Bold(true).Render(m.title),
		line.Render(""),
		line.Render(m.input.View()),
	}
	if m.err != nil {
		rows = append(rows, line.Foreground(styles.Red).Render(m.err.Error()))
	} else if m.hint != "" {
		rows = append(rows, line.Foreground(styles.DimGray).Render(m.hint))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Gold).
		Background(styles.SlateDark).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
