package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/artgrid/internal/domain"
	"github.com/mmcdole/artgrid/internal/service"
	"github.com/mmcdole/artgrid/internal/tui/components"
	"github.com/mmcdole/artgrid/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
)

// inputPurpose records what the shared input modal was opened for
type inputPurpose int

const (
	inputNone inputPurpose = iota
	inputBulkSelect
	inputJumpToPage
)

// Vertical chrome: header line and footer line
const ChromeHeight = 2

const statusTimeout = 3 * time.Second

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Services
	Catalog *service.CatalogService
	Browse  *service.BrowseSession

	// UI Components
	Table      components.ArtworkTable
	SortModal  components.SortModal
	InputModal components.InputModal
	Paginator  paginator.Model
	Spinner    spinner.Model
	Help       help.Model

	inputFor inputPurpose
	initial  service.PageRequest

	// Dimensions
	Width  int
	Height int

	// Status
	StatusMsg   string
	StatusIsErr bool
	statusSeq   int

	logger *slog.Logger
}

// NewModel creates the grid model and issues the request for page 1
func NewModel(catalog *service.CatalogService, browse *service.BrowseSession, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	p := paginator.New()
	p.Type = paginator.Arabic
	p.ArabicFormat = "page %d of %d"

	m := Model{
		State:      StateBrowsing,
		Catalog:    catalog,
		Browse:     browse,
		Table:      components.NewArtworkTable(),
		SortModal:  components.NewSortModal(),
		InputModal: components.NewInputModal(),
		Paginator:  p,
		Spinner:    spinner.New(spinner.WithSpinner(styles.Spinner), spinner.WithStyle(styles.SpinnerStyle)),
		Help:       help.New(),
		logger:     logger,
	}

	m.Table.Bind(browse, func(id int) { browse.Check(id) }, func(id int) { browse.Uncheck(id) })

	cur := browse.Cursor()
	m.initial = browse.SetPage(cur.Page, cur.Size)
	m.syncPaginator()
	return m
}

// Init starts the first fetch and the spinner
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		FetchPageCmd(m.Catalog, m.initial),
		m.Spinner.Tick,
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case PageLoadedMsg:
		return m.handlePageLoaded(msg)

	case ClearStatusMsg:
		// a newer status restarted the timer
		if msg.Seq != m.statusSeq {
			return m, nil
		}
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	return m, nil
}

func (m Model) handlePageLoaded(msg PageLoadedMsg) (tea.Model, tea.Cmd) {
	if err := m.Browse.Apply(msg.Result); errors.Is(err, domain.ErrStaleResponse) {
		return m, nil
	}

	if err := m.Browse.Err(); err != nil {
		m.logger.Error("page load failed", "page", msg.Result.Cursor.Page, "error", err)
		m.syncPaginator()
		return m, nil
	}

	m.Table.SetItems(m.Browse.Items())
	m.syncPaginator()
	return m, nil
}

// fetch sends req to the catalog and refreshes paging chrome
func (m *Model) fetch(req service.PageRequest) tea.Cmd {
	m.syncPaginator()
	return FetchPageCmd(m.Catalog, req)
}

// syncPaginator mirrors the session cursor into the paginator widget
func (m *Model) syncPaginator() {
	cur := m.Browse.Cursor()
	m.Paginator.PerPage = cur.Size
	m.Paginator.TotalPages = max(m.Browse.TotalPages(), 1)
	m.Paginator.Page = cur.Page - 1
}

// updateLayout sizes components to the window
func (m *Model) updateLayout() {
	m.Table.SetSize(m.Width, max(m.Height-ChromeHeight, 3))
	m.Help.Width = m.Width
}

// setStatus shows a transient status message
func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.StatusMsg = text
	m.StatusIsErr = isErr
	return ClearStatusCmd(statusTimeout, m.statusSeq)
}

// selectedSummary describes the selection for the header
func (m Model) selectedSummary() string {
	total := m.Browse.Selection().Len()
	if total == 0 {
		return "none selected"
	}
	return fmt.Sprintf("%d selected · %d on this page", total, m.Browse.SelectedOnPage())
}
