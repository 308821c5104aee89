package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/gallery/internal/domain"
	"github.com/mmcdole/gallery/internal/pager"
	"github.com/mmcdole/gallery/internal/tui/components"
	"github.com/mmcdole/gallery/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateSelectCount
	StateHelp
)

// Options configure the TUI session
type Options struct {
	Timeout     time.Duration // Per-fetch timeout (0 = none)
	AutoAdvance bool          // Keep fetching while a selection count is pending
	Logger      *slog.Logger
}

// Vertical chrome: header, pager line, status line, help line
const ChromeHeight = 5

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Services
	Coord  *pager.Coordinator
	opts   Options
	logger *slog.Logger

	// UI Components
	Table      components.RecordTable
	CountModal components.CountModal
	Paginator  paginator.Model
	Spinner    spinner.Model
	Help       help.Model

	// Dimensions
	Width  int
	Height int

	// UI state
	Loading     bool
	Err         error // Last fetch failure; cleared by a successful fetch
	StatusMsg   string
	StatusIsErr bool
}

// NewModel creates a new application model
func NewModel(coord *pager.Coordinator, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	p := paginator.New()
	p.Type = paginator.Arabic
	p.ArabicFormat = "Page %d of %d"
	p.TotalPages = 1

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle

	return Model{
		State:      StateBrowsing,
		Coord:      coord,
		opts:       opts,
		logger:     logger,
		Table:      components.NewRecordTable(),
		CountModal: components.NewCountModal(),
		Paginator:  p,
		Spinner:    s,
		Help:       h,
		Loading:    true,
	}
}

// Init loads the first page
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadPageCmd(m.Coord, NavGoto, 1, m.opts.Timeout),
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

	case ErrMsg:
		// The fetch that won the race is still running
		if errors.Is(msg.Err, domain.ErrFetchInFlight) {
			return m, nil
		}
		m.Loading = false
		m.Err = msg
		m.logger.Error("page load failed", "error", msg.Err)
		return m, nil

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	return m, nil
}

// handlePageLoaded syncs the view with the coordinator after an arrival
func (m Model) handlePageLoaded(msg PageLoadedMsg) (tea.Model, tea.Cmd) {
	m.Loading = false
	m.Err = nil
	m.syncFromCoordinator()

	view := m.Coord.View()
	if view.Selection.HasPending && m.opts.AutoAdvance && view.Page.HasNext() {
		m.Loading = true
		return m, LoadPageCmd(m.Coord, NavNext, 0, m.opts.Timeout)
	}
	return m, nil
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.State {
	case StateHelp:
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.State = StateBrowsing
			m.Help.ShowAll = false
		}
		return m, nil

	case StateSelectCount:
		var cmd tea.Cmd
		var submitted bool
		m.CountModal, cmd, submitted = m.CountModal.Update(msg)
		if submitted {
			return m.submitCount(m.CountModal.Value())
		}
		if !m.CountModal.IsVisible() {
			m.State = StateBrowsing
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		m.Help.ShowAll = true
		return m, nil

	case key.Matches(msg, Keys.Up, Keys.Down):
		var cmd tea.Cmd
		m.Table, cmd = m.Table.Update(msg)
		return m, cmd

	case key.Matches(msg, Keys.Toggle):
		r, ok := m.Table.CursorRecord()
		if !ok {
			return m, nil
		}
		m.Coord.ToggleRecord(r.ID)
		m.refreshSelection()
		verb := "Deselected"
		if m.Coord.Selection().IsSelected(r.ID) {
			verb = "Selected"
		}
		return m, m.setStatus(verb+" "+components.RowLabel(r), false)

	case key.Matches(msg, Keys.ToggleAll):
		m.Coord.ToggleAllVisible()
		m.refreshSelection()
		return m, nil

	case key.Matches(msg, Keys.ClearSelection):
		m.Coord.ClearSelection()
		m.refreshSelection()
		return m, m.setStatus("Selection cleared", false)

	case key.Matches(msg, Keys.SelectCount):
		m.State = StateSelectCount
		m.CountModal.Show()
		return m, nil
	}

	// Navigation is disabled while a page is loading
	if m.Loading {
		return m, nil
	}

	switch {
	case key.Matches(msg, Keys.NextPage):
		return m.navigate(NavNext, 0)
	case key.Matches(msg, Keys.PrevPage):
		return m.navigate(NavPrev, 0)
	case key.Matches(msg, Keys.FirstPage):
		return m.navigate(NavGoto, 1)
	case key.Matches(msg, Keys.LastPage):
		return m.navigate(NavLast, 0)
	case key.Matches(msg, Keys.Reload):
		return m.navigate(NavReload, 0)
	case key.Matches(msg, Keys.FetchPending):
		if _, ok := m.Coord.Selection().Pending(); ok {
			return m.navigate(NavNext, 0)
		}
		return m, m.setStatus("Nothing pending", false)
	}

	return m, nil
}

// navigate starts a page load
func (m Model) navigate(kind NavKind, page int) (tea.Model, tea.Cmd) {
	m.Loading = true
	return m, tea.Batch(LoadPageCmd(m.Coord, kind, page, m.opts.Timeout), m.Spinner.Tick)
}

// submitCount applies the popover value as a select-count request
func (m Model) submitCount(raw string) (tea.Model, tea.Cmd) {
	m.State = StateBrowsing
	n := m.Coord.RequestSelectCountRaw(raw)
	m.refreshSelection()

	view := m.Coord.View()
	status := fmt.Sprintf("Selected %d", len(view.Selection.Records))
	if view.Selection.HasPending {
		status = fmt.Sprintf("Selected %d of %d, %d pending on later pages",
			len(view.Selection.Records), n, view.Selection.Pending)
		if m.opts.AutoAdvance && !m.Loading && view.Page.HasNext() {
			m.Loading = true
			return m, tea.Batch(
				m.setStatus(status, false),
				LoadPageCmd(m.Coord, NavNext, 0, m.opts.Timeout),
				m.Spinner.Tick,
			)
		}
	}
	return m, m.setStatus(status, false)
}

// syncFromCoordinator copies page, pager and selection state into components
func (m *Model) syncFromCoordinator() {
	view := m.Coord.View()
	m.Paginator.TotalPages = max(view.TotalPages, 1)
	m.Paginator.Page = max(view.State.PageNumber-1, 0)
	m.Table.SetRecords(view.Page.Records, m.Coord.Selection().IsSelected)
}

// refreshSelection re-renders checkboxes after a selection change
func (m *Model) refreshSelection() {
	m.Table.Refresh(m.Coord.Selection().IsSelected)
}

// setStatus shows a transient status message
func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.StatusMsg = msg
	m.StatusIsErr = isErr
	return ClearStatusCmd(3 * time.Second)
}

// updateLayout sizes components to the terminal
func (m *Model) updateLayout() {
	m.Help.Width = m.Width
	m.Table.SetSize(m.Width, m.Height-ChromeHeight)
}
