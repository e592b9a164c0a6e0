package components

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/artgrid/internal/domain"
	"github.com/mmcdole/artgrid/internal/search"
	"github.com/mmcdole/artgrid/internal/tui/styles"
)

// Layout constants for the artwork table
const (
	checkColumnWidth = 1
	dateColumnWidth  = 10
	cellPadding      = 2 // TableCellStyle pads one space each side
	filterLineHeight = 1
	minFlexWidth     = 8
)

// flexible column shares, in percent of the width left after fixed columns
var flexShares = []int{30, 15, 30, 25} // title, origin, artist, inscriptions

// ArtworkTable renders the loaded page and reports user toggles through
// the onCheck / onUncheck callbacks given to Bind, once per changed row and
// before the toggle returns. Selection state is only read, through the
// bound SelectionReader; programmatic selection changes are picked up with
// Refresh and never reach the callbacks.
type ArtworkTable struct {
	table table.Model

	loaded    []domain.Artwork // page as received
	visible   []domain.Artwork // loaded after sort and filter
	selection domain.SelectionReader
	onCheck   func(id int)
	onUncheck func(id int)

	sort SortSelection

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filterQuery  string

	width  int
	height int
}

// NewArtworkTable creates an empty table
func NewArtworkTable() ArtworkTable {
	s := table.DefaultStyles()
	s.Header = styles.TableHeaderStyle
	s.Cell = styles.TableCellStyle
	s.Selected = styles.TableCursorStyle

	t := table.New(
		table.WithColumns(columnsFor(0)),
		table.WithFocused(true),
		table.WithStyles(s),
		table.WithKeyMap(TableKeyMap()),
	)

	ti := textinput.New()
	ti.Placeholder = "type to filter this page..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return ArtworkTable{
		table:       t,
		filterInput: ti,
		selection:   noSelection{},
		onCheck:     func(int) {},
		onUncheck:   func(int) {},
	}
}

type noSelection struct{}

func (noSelection) IsSelected(int) bool { return false }

// Bind sets where checked state is read from and who is told about toggles
func (t *ArtworkTable) Bind(sel domain.SelectionReader, onCheck, onUncheck func(id int)) {
	if sel != nil {
		t.selection = sel
	}
	if onCheck != nil {
		t.onCheck = onCheck
	}
	if onUncheck != nil {
		t.onUncheck = onUncheck
	}
	t.Refresh()
}

// SetItems replaces the rows with a newly loaded page and moves the cursor to the top
func (t *ArtworkTable) SetItems(items []domain.Artwork) {
	t.loaded = items
	t.rebuild()
	t.table.SetCursor(0)
}

// Refresh re-reads selection state without moving the cursor
func (t *ArtworkTable) Refresh() {
	t.table.SetRows(t.rows())
}

// Visible returns the rows as displayed, after sort and filter
func (t ArtworkTable) Visible() []domain.Artwork {
	return t.visible
}

// Loaded returns the page exactly as received
func (t ArtworkTable) Loaded() []domain.Artwork {
	return t.loaded
}

// CursorItem returns the artwork under the cursor
func (t ArtworkTable) CursorItem() (domain.Artwork, bool) {
	i := t.table.Cursor()
	if i < 0 || i >= len(t.visible) {
		return domain.Artwork{}, false
	}
	return t.visible[i], true
}

// Cursor returns the cursor row index within the visible rows
func (t ArtworkTable) Cursor() int {
	return t.table.Cursor()
}

// ToggleCursor flips the row under the cursor. It reports false when
// there is no row.
func (t *ArtworkTable) ToggleCursor() bool {
	a, ok := t.CursorItem()
	if !ok {
		return false
	}
	t.toggle(a.ID, !t.selection.IsSelected(a.ID))
	t.Refresh()
	return true
}

// ToggleAll checks every visible row, or unchecks them all when every one
// is already checked. Returns how many rows changed.
func (t *ArtworkTable) ToggleAll() int {
	allChecked := len(t.visible) > 0
	for _, a := range t.visible {
		if !t.selection.IsSelected(a.ID) {
			allChecked = false
			break
		}
	}

	changed := 0
	for _, a := range t.visible {
		if t.selection.IsSelected(a.ID) == allChecked {
			t.toggle(a.ID, !allChecked)
			changed++
		}
	}
	if changed > 0 {
		t.Refresh()
	}
	return changed
}

func (t *ArtworkTable) toggle(id int, check bool) {
	if check {
		t.onCheck(id)
	} else {
		t.onUncheck(id)
	}
}

// ApplySort orders the visible rows; the order is kept for later pages
func (t *ArtworkTable) ApplySort(sel SortSelection) {
	t.sort = sel
	t.rebuild()
}

// Sort returns the active sort
func (t ArtworkTable) Sort() SortSelection {
	return t.sort
}

// StartFilter opens the filter input
func (t *ArtworkTable) StartFilter() tea.Cmd {
	t.filterActive = true
	t.resize()
	return t.filterInput.Focus()
}

// ClearFilter closes the filter and shows every loaded row
func (t *ArtworkTable) ClearFilter() {
	t.filterActive = false
	t.filterQuery = ""
	t.filterInput.SetValue("")
	t.filterInput.Blur()
	t.resize()
	t.rebuild()
}

// IsFiltering reports whether a filter is open or applied
func (t ArtworkTable) IsFiltering() bool {
	return t.filterActive
}

// IsTypingFilter reports whether keystrokes go to the filter input
func (t ArtworkTable) IsTypingFilter() bool {
	return t.filterActive && t.filterInput.Focused()
}

// FilterQuery returns the applied filter text
func (t ArtworkTable) FilterQuery() string {
	return t.filterQuery
}

// Update handles navigation keys and filter typing
func (t ArtworkTable) Update(msg tea.Msg) (ArtworkTable, tea.Cmd) {
	if t.IsTypingFilter() {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc":
				t.ClearFilter()
				return t, nil
			case "enter":
				// keep the filter, hand keys back to the table
				t.filterInput.Blur()
				if t.filterQuery == "" {
					t.ClearFilter()
				}
				return t, nil
			}
		}

		var cmd tea.Cmd
		t.filterInput, cmd = t.filterInput.Update(msg)
		if q := t.filterInput.Value(); q != t.filterQuery {
			t.filterQuery = q
			t.rebuild()
			t.table.SetCursor(0)
		}
		return t, cmd
	}

	var cmd tea.Cmd
	t.table, cmd = t.table.Update(msg)
	return t, cmd
}

// SetSize sets the outer width and height available to the table
func (t *ArtworkTable) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.resize()
}

func (t *ArtworkTable) resize() {
	h := t.height
	if t.filterActive {
		h -= filterLineHeight
	}
	t.table.SetColumns(columnsFor(t.width))
	t.table.SetWidth(t.width)
	t.table.SetHeight(max(h, 2))
	t.filterInput.Width = max(t.width-4, 10)
}

// rebuild recomputes the visible rows from loaded, sort and filter
func (t *ArtworkTable) rebuild() {
	rows := SortArtworks(t.loaded, t.sort.Field, t.sort.Direction)
	if t.filterQuery != "" {
		matched := search.Apply(t.filterQuery, rows)
		if t.sort.Field != SortDefault {
			matched = keepOrder(rows, matched)
		}
		rows = matched
	}
	t.visible = rows
	t.table.SetRows(t.rows())
}

// keepOrder returns the members of subset in the order they have in ordered
func keepOrder(ordered, subset []domain.Artwork) []domain.Artwork {
	in := make(map[int]bool, len(subset))
	for _, a := range subset {
		in[a.ID] = true
	}
	out := make([]domain.Artwork, 0, len(subset))
	for _, a := range ordered {
		if in[a.ID] {
			out = append(out, a)
		}
	}
	return out
}

func (t ArtworkTable) rows() []table.Row {
	out := make([]table.Row, len(t.visible))
	for i, a := range t.visible {
		row := make(table.Row, 0, len(ColumnTitles)+1)
		row = append(row, CheckCell(t.selection.IsSelected(a.ID)))
		row = append(row, FormatRow(a)...)
		out[i] = row
	}
	return out
}

// columnsFor lays out the columns for a total width
func columnsFor(width int) []table.Column {
	fixed := checkColumnWidth + 2*dateColumnWidth
	padding := cellPadding * (len(ColumnTitles) + 1)
	flex := width - fixed - padding
	if flex < minFlexWidth*len(flexShares) {
		flex = minFlexWidth * len(flexShares)
	}

	widths := make([]int, len(flexShares))
	used := 0
	for i, share := range flexShares {
		widths[i] = flex * share / 100
		used += widths[i]
	}
	widths[0] += flex - used // rounding slack goes to the title

	return []table.Column{
		{Title: "", Width: checkColumnWidth},
		{Title: ColumnTitles[0], Width: widths[0]},
		{Title: ColumnTitles[1], Width: widths[1]},
		{Title: ColumnTitles[2], Width: widths[2]},
		{Title: ColumnTitles[3], Width: widths[3]},
		{Title: ColumnTitles[4], Width: dateColumnWidth},
		{Title: ColumnTitles[5], Width: dateColumnWidth},
	}
}

// View renders the filter line (when open) and the table
func (t ArtworkTable) View() string {
	if !t.filterActive {
		return t.table.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, t.filterInput.View(), t.table.View())
}
