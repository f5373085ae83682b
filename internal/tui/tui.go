// Package tui is the full-screen terminal UI. The root Model is the
// single state cell: every user intent and async result flows through
// Update, which returns the next model. View legality is enforced here;
// child models only render and edit their own widgets.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sixex/sixex/internal/api"
	"github.com/sixex/sixex/internal/catalog"
	"github.com/sixex/sixex/internal/config"
	"github.com/sixex/sixex/internal/session"
)

// View represents the current active view in the TUI.
type View int

const (
	ViewLanding View = iota
	ViewCatalog
	ViewDetail
	ViewPortfolio
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	view   View
	width  int
	height int
	ready  bool

	cfg     *config.Config
	session *session.Session
	catalog *catalog.Catalog

	// Child view models
	landing     *LandingModel
	catalogView *CatalogModel
	detail      *DetailModel
	portfolio   *PortfolioModel

	// At most one submission of each action type in flight.
	authInFlight bool
	buyInFlight  bool

	status          string
	refreshInterval time.Duration
}

// New creates the TUI model. The session may already be authenticated
// when the host restored a persisted credential on startup.
func New(cfg *config.Config, sess *session.Session, cat *catalog.Catalog) Model {
	view := ViewLanding
	if sess.IsAuthenticated() {
		view = ViewCatalog
	}

	interval := time.Duration(cfg.RefreshIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = 30 * time.Second
	}

	m := Model{
		view:            view,
		cfg:             cfg,
		session:         sess,
		catalog:         cat,
		landing:         NewLandingModel(),
		catalogView:     NewCatalogModel(cat),
		detail:          NewDetailModel(),
		portfolio:       NewPortfolioModel(),
		refreshInterval: interval,
	}
	m.portfolio.Refresh(sess.Ledger().Valuate(cat))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		FetchStocks(m.cfg, m.catalog),
		m.tickCmd(),
	)
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		headerHeight := 1
		footerHeight := 1
		tableHeight := m.height - headerHeight - footerHeight - 8
		if tableHeight < 3 {
			tableHeight = 3
		}
		m.catalogView.SetHeight(tableHeight)
		m.portfolio.SetHeight(tableHeight)

	case AuthSuccessMsg:
		m.authInFlight = false
		m.landing.Submitting = false
		resp := msg.Resp
		m.session.Authenticate(
			session.Identity{ID: resp.User.ID, Email: resp.User.Email},
			resp.AccessToken,
			api.Holdings(resp.User.Portfolio),
		)
		m.landing.Reset()
		m.portfolio.Refresh(m.session.Ledger().Valuate(m.catalog))
		m.view = ViewCatalog

	case AuthErrorMsg:
		m.authInFlight = false
		m.landing.Submitting = false
		m.landing.Err = msg.Err

	case StocksLoadedMsg:
		m.catalog.Replace(msg.Instruments)
		m.catalogView.Err = nil
		m.catalogView.LastUpdated = time.Now()
		m.catalogView.Refresh(m.catalog)
		m.portfolio.Refresh(m.session.Ledger().Valuate(m.catalog))
		if inst, ok := m.catalog.Get(m.detail.Instrument.Symbol); ok {
			m.detail.Instrument = inst
		}

	case StocksErrorMsg:
		// Keep the last snapshot; prices are just stale.
		m.catalogView.Err = msg.Err

	case BuyPlacedMsg:
		if msg.Epoch != m.session.Epoch() {
			// The session this buy belonged to is gone; its guards were
			// released on logout.
			return m, nil
		}
		m.buyInFlight = false
		m.detail.Submitting = false
		m.session.ReplaceLedger(api.Holdings(msg.Resp.Portfolio))
		m.portfolio.Refresh(m.session.Ledger().Valuate(m.catalog))
		m.status = msg.Resp.Message
		m.view = ViewPortfolio

	case BuyErrorMsg:
		if msg.Epoch != m.session.Epoch() {
			return m, nil
		}
		m.buyInFlight = false
		m.detail.Submitting = false
		if api.IsAuthError(msg.Err) {
			m.forceLogout("Session expired. Sign in again.")
			return m, nil
		}
		// State stays exactly as before the attempt.
		m.detail.Err = msg.Err

	case TickMsg:
		cmds = append(cmds, FetchStocks(m.cfg, m.catalog))
		cmds = append(cmds, m.tickCmd())
	}

	// Table navigation for whichever table view is active.
	switch m.view {
	case ViewCatalog:
		m.catalogView, cmd = m.catalogView.Update(msg)
		cmds = append(cmds, cmd)
	case ViewPortfolio:
		m.portfolio, cmd = m.portfolio.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKey routes key input by active view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.view {
	case ViewLanding:
		return m.handleLandingKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

// handleLandingKey drives the auth form. Keys edit the form; enter
// submits, and a second enter while one attempt is pending is ignored.
func (m Model) handleLandingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.authInFlight {
			return m, nil
		}
		email, password := m.landing.Values()
		if email == "" || password == "" {
			m.landing.Err = errors.New("email and password are required")
			return m, nil
		}
		m.authInFlight = true
		m.landing.Submitting = true
		m.landing.Err = nil
		return m, Authenticate(m.cfg, m.landing.Mode, email, password)
	case "ctrl+r":
		m.landing.ToggleMode()
		return m, nil
	}

	var cmd tea.Cmd
	m.landing, cmd = m.landing.Update(msg)
	return m, cmd
}

// handleDetailKey drives the invest form.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Fixed parent: detail always returns to the catalog.
		m.view = ViewCatalog
		return m, nil
	case "enter":
		return m.submitBuy()
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// handleBrowseKey covers the catalog and portfolio views.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "1":
		m.view = ViewCatalog
	case "2":
		m.portfolio.Refresh(m.session.Ledger().Valuate(m.catalog))
		m.view = ViewPortfolio
	case "r":
		return m, FetchStocks(m.cfg, m.catalog)
	case "l":
		m.forceLogout("")
	case "enter":
		if m.view == ViewCatalog {
			if err := m.selectInstrument(m.catalogView.SelectedSymbol()); err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.status = ""
			m.view = ViewDetail
		}
	default:
		// Navigation keys go to the active table.
		var cmd tea.Cmd
		if m.view == ViewCatalog {
			m.catalogView, cmd = m.catalogView.Update(msg)
		} else {
			m.portfolio, cmd = m.portfolio.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

// selectInstrument resolves a symbol against the catalog and points the
// detail view at it. An unresolved symbol is a validation error and no
// transition happens.
func (m *Model) selectInstrument(symbol string) error {
	if symbol == "" {
		return ErrNoInstrument
	}
	inst, ok := m.catalog.Get(symbol)
	if !ok {
		return fmt.Errorf("unknown symbol %q", symbol)
	}
	m.detail.SetInstrument(inst)
	return nil
}

// submitBuy validates the invest form locally and, only if valid,
// submits to the execution service. Validation failures never reach the
// wire and leave the ledger untouched.
func (m Model) submitBuy() (tea.Model, tea.Cmd) {
	if m.buyInFlight {
		return m, nil
	}

	amount, err := m.detail.ParseAmount()
	if err != nil {
		m.detail.Err = err
		return m, nil
	}

	m.buyInFlight = true
	m.detail.Submitting = true
	m.detail.Err = nil
	return m, PlaceBuy(m.cfg, m.session.Credential(), m.session.Epoch(), m.detail.Instrument.Symbol, amount)
}

// forceLogout returns to the landing view from anywhere and clears the
// session. Any in-flight buy result will arrive under a stale epoch and
// be dropped, so the in-flight guards reset immediately rather than
// blocking the next session's first buy.
func (m *Model) forceLogout(notice string) {
	m.session.Logout()
	m.buyInFlight = false
	m.detail.Submitting = false
	m.landing.Reset()
	if notice != "" {
		m.landing.Err = errors.New(notice)
	}
	m.portfolio.Refresh(m.session.Ledger().Valuate(m.catalog))
	m.status = ""
	m.view = ViewLanding
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.renderHeader()
	footer := m.renderFooter()
	content := m.renderContent()

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight

	contentLines := strings.Split(content, "\n")
	for len(contentLines) < contentHeight {
		contentLines = append(contentLines, "")
	}
	if len(contentLines) > contentHeight {
		contentLines = contentLines[:contentHeight]
	}
	content = strings.Join(contentLines, "\n")

	return header + "\n" + content + "\n" + footer
}

func (m Model) renderHeader() string {
	title := HeaderStyle.Render("6ex")

	if !m.session.IsAuthenticated() {
		return lipgloss.NewStyle().
			Background(ColorBackground).
			Width(m.width).
			Render(title)
	}

	tabs := []struct {
		name   string
		key    string
		active bool
	}{
		{"Markets", "1", m.view == ViewCatalog || m.view == ViewDetail},
		{"Portfolio", "2", m.view == ViewPortfolio},
	}

	var tabStrs []string
	for _, tab := range tabs {
		style := lipgloss.NewStyle().Padding(0, 1)
		if tab.active {
			style = style.Bold(true).Foreground(ColorPrimary)
		} else {
			style = style.Foreground(ColorMuted)
		}
		tabStrs = append(tabStrs, style.Render(fmt.Sprintf("[%s] %s", tab.key, tab.name)))
	}

	account := DescStyle.Render(m.session.Identity().Email)
	headerContent := title + "  " + strings.Join(tabStrs, " ") + "  " + account

	padding := m.width - lipgloss.Width(headerContent)
	if padding > 0 {
		headerContent += strings.Repeat(" ", padding)
	}

	return lipgloss.NewStyle().
		Background(ColorBackground).
		Width(m.width).
		Render(headerContent)
}

func (m Model) renderContent() string {
	var content string
	switch m.view {
	case ViewLanding:
		content = m.landing.View()
	case ViewCatalog:
		content = m.catalogView.View()
	case ViewDetail:
		content = m.detail.View()
	case ViewPortfolio:
		content = m.portfolio.View()
	}
	if m.status != "" {
		content += "\n" + DescStyle.Render(m.status)
	}
	return ContentStyle.Render(content)
}

func (m Model) renderFooter() string {
	var keys []struct{ key, desc string }

	switch m.view {
	case ViewLanding:
		keys = []struct{ key, desc string }{
			{"tab", "next field"},
			{"enter", "submit"},
			{"ctrl+r", "login/register"},
			{"ctrl+c", "quit"},
		}
	case ViewDetail:
		keys = []struct{ key, desc string }{
			{"enter", "invest"},
			{"esc", "back"},
			{"ctrl+c", "quit"},
		}
	default:
		keys = []struct{ key, desc string }{
			{"1/2", "switch view"},
			{"↑/↓", "navigate"},
		}
		if m.view == ViewCatalog {
			keys = append(keys, struct{ key, desc string }{"enter", "open"})
		}
		keys = append(keys,
			struct{ key, desc string }{"r", "refresh"},
			struct{ key, desc string }{"l", "logout"},
			struct{ key, desc string }{"q", "quit"},
		)
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, KeyStyle.Render(k.key)+" "+DescStyle.Render(k.desc))
	}

	footerContent := strings.Join(parts, "  •  ")
	padding := m.width - lipgloss.Width(footerContent)
	if padding > 0 {
		footerContent += strings.Repeat(" ", padding)
	}

	return lipgloss.NewStyle().
		Background(ColorBackground).
		Width(m.width).
		Render(footerContent)
}
