package ui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/barohub/barohub/internal/catalog"
	"github.com/barohub/barohub/internal/config"
	"github.com/barohub/barohub/internal/payment"
	"github.com/barohub/barohub/internal/prefs"
)

// Tab is the active top-level view.
type Tab int

const (
	TabHome Tab = iota
	TabExplore
	TabLearn
	TabProfile
)

// String returns the tab label shown in the header.
func (t Tab) String() string {
	switch t {
	case TabHome:
		return "Home"
	case TabExplore:
		return "Explore"
	case TabLearn:
		return "Learn"
	case TabProfile:
		return "Profile"
	default:
		return "Home"
	}
}

// Overlay is the topmost sheet above the base tab. At most one overlay is
// interactive at a time; the detail selection survives underneath a payment
// sheet launched from it.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayDetail
	OverlayForm
	OverlayPayment
	OverlayConfirmDelete
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *catalog.Store
	Config    *config.Config
	Logger    *slog.Logger
	ThemeName string
	StartTab  string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	store     *catalog.Store
	config    *config.Config
	logger    *slog.Logger
	keys      keyMap
	prefsPath string

	theme  Theme
	width  int
	height int
	ready  bool

	tab      Tab
	overlay  Overlay
	showHelp bool

	// Browsing state shared by Home and Explore
	courses     []catalog.Course
	searchInput textinput.Model
	searching   bool
	categoryIdx int // 0 = all, else Categories[categoryIdx-1]
	selectedRow int

	// Detail overlay
	detailID       string
	detailViewport viewport.Model

	// Admin form overlay
	form formState

	// Delete confirmation overlay
	deleteID string

	// Payment overlay
	session    *payment.Session
	sessionGen int
	gatewayRow int

	// Transient status line
	notice   string
	noticeAt time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	search := textinput.New()
	search.Placeholder = "Raadi koorsadaada..."
	search.Prompt = "/ "
	search.CharLimit = 64

	m := Model{
		store:       opts.Store,
		config:      opts.Config,
		logger:      logger,
		keys:        defaultKeyMap(),
		prefsPath:   opts.PrefsPath,
		theme:       GetTheme(opts.ThemeName),
		tab:         parseStartTab(opts.StartTab),
		searchInput: search,
	}
	if opts.PrefsPath == "" {
		m.prefsPath = prefs.DefaultPath()
	}
	m.refreshCourses()
	return m
}

func parseStartTab(name string) Tab {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "explore":
		return TabExplore
	case "learn":
		return TabLearn
	case "profile":
		return TabProfile
	default:
		return TabHome
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Messages

// paymentProcessedMsg fires when the processing delay elapses. It carries
// the session generation so a tick for a dead session is dropped.
type paymentProcessedMsg struct{ gen int }

// paymentDoneMsg fires when the success hold elapses.
type paymentDoneMsg struct{ gen int }

// noticeExpiredMsg clears the transient status line.
type noticeExpiredMsg struct{ at time.Time }

const noticeHold = 3 * time.Second

func paymentProcessedCmd(gen int) tea.Cmd {
	return tea.Tick(payment.ProcessingDelay, func(time.Time) tea.Msg {
		return paymentProcessedMsg{gen: gen}
	})
}

func paymentDoneCmd(gen int) tea.Cmd {
	return tea.Tick(payment.SuccessHold, func(time.Time) tea.Msg {
		return paymentDoneMsg{gen: gen}
	})
}

func noticeExpireCmd(at time.Time) tea.Cmd {
	return tea.Tick(noticeHold, func(time.Time) tea.Msg {
		return noticeExpiredMsg{at: at}
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(msg.Width, max(msg.Height-6, 3))
		} else {
			m.detailViewport.Width = msg.Width
			m.detailViewport.Height = max(msg.Height-6, 3)
		}
		m.ready = true
		if m.overlay == OverlayDetail || m.overlay == OverlayPayment {
			m.syncDetailViewport()
		}
		return m, nil

	case paymentProcessedMsg:
		return m.handlePaymentProcessed(msg)

	case paymentDoneMsg:
		return m.handlePaymentDone(msg)

	case noticeExpiredMsg:
		if msg.at.Equal(m.noticeAt) {
			m.notice = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey routes keyboard input by overlay, then by base tab.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits; other keys are contextual.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch m.overlay {
	case OverlayForm:
		return m.handleFormKey(msg)
	case OverlayConfirmDelete:
		return m.handleConfirmKey(msg)
	case OverlayPayment:
		return m.handlePaymentKey(msg)
	case OverlayDetail:
		return m.handleDetailKey(msg)
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, StartTab: strings.ToLower(m.tab.String())})
		return m, nil

	case key.Matches(msg, m.keys.TabHome):
		m.tab = TabHome
		return m, nil
	case key.Matches(msg, m.keys.TabExplore):
		m.tab = TabExplore
		return m, nil
	case key.Matches(msg, m.keys.TabLearn):
		m.tab = TabLearn
		return m, nil
	case key.Matches(msg, m.keys.TabProfile):
		m.tab = TabProfile
		return m, nil
	}

	switch m.tab {
	case TabHome, TabExplore:
		return m.handleBrowseKey(msg)
	case TabProfile:
		return m.handleProfileKey(msg)
	case TabLearn:
		// Enter jumps to Explore, matching the empty-state call to action.
		if key.Matches(msg, m.keys.Open) {
			m.tab = TabExplore
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	switch m.overlay {
	case OverlayDetail:
		return m.renderDetail()
	case OverlayForm:
		return m.renderForm()
	case OverlayPayment:
		return m.renderPayment()
	case OverlayConfirmDelete:
		return m.renderConfirmDelete()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	switch m.tab {
	case TabHome:
		b.WriteString(m.renderHome())
	case TabExplore:
		b.WriteString(m.renderExplore())
	case TabLearn:
		b.WriteString(m.renderLearn())
	case TabProfile:
		b.WriteString(m.renderProfile())
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// refreshCourses re-reads the catalog and clamps the selection.
func (m *Model) refreshCourses() {
	m.courses = m.store.List()
	visible := m.visibleCourses()
	if m.selectedRow >= len(visible) {
		m.selectedRow = max(len(visible)-1, 0)
	}
}

// visibleCourses derives the filtered list for the active browse view.
func (m Model) visibleCourses() []catalog.Course {
	return catalog.Filter(m.courses, m.searchInput.Value(), m.categoryID())
}

func (m Model) categoryID() string {
	if m.categoryIdx == 0 {
		return ""
	}
	return catalog.Categories[m.categoryIdx-1].ID
}

func (m *Model) setNotice(text string) tea.Cmd {
	m.notice = text
	m.noticeAt = time.Now()
	return noticeExpireCmd(m.noticeAt)
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	var progOpts []tea.ProgramOption
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(New(opts), progOpts...)
	_, err := p.Run()
	return err
}
