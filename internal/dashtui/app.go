// Package dashtui renders the chat-history dashboard in the terminal:
// a contact list, per-contact conversation threads, and a searchable
// all-messages feed over one shared snapshot of the record source.
package dashtui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/entremotivator/linkup/internal/chat"
	"github.com/entremotivator/linkup/internal/data"
)

const defaultRefreshInterval = 15 * time.Second

type ViewID string

const (
	ViewContacts ViewID = "contacts"
	ViewThread   ViewID = "thread"
	ViewFeed     ViewID = "feed"
)

var viewSwitchKeys = map[string]ViewID{
	"c": ViewContacts,
	"f": ViewFeed,
}

// Config configures the dashboard.
type Config struct {
	Provider data.RecordProvider
	Resolver *chat.Resolver
	// OwnerName is shown in the header and on owner-authored messages.
	OwnerName string
	// RefreshInterval is the render-side poll cadence. The provider's
	// snapshot cache bounds actual remote calls.
	RefreshInterval time.Duration
}

type viewModel interface {
	Update(msg tea.Msg) tea.Cmd
	View(width, height int, styles Styles) string
	setSnapshot(snapshot *data.Snapshot)
}

type snapshotMsg struct {
	snapshot *data.Snapshot
	err      error
}

type tickMsg struct{}

type openThreadMsg struct {
	key string
}

type popViewMsg struct{}

func openThreadCmd(key string) tea.Cmd {
	return func() tea.Msg {
		return openThreadMsg{key: key}
	}
}

func popViewCmd() tea.Cmd {
	return func() tea.Msg {
		return popViewMsg{}
	}
}

// Model is the root bubbletea model.
type Model struct {
	provider        data.RecordProvider
	resolver        *chat.Resolver
	ownerName       string
	refreshInterval time.Duration
	styles          Styles

	width    int
	height   int
	showHelp bool

	snapshot *data.Snapshot
	fetchErr error
	fetching bool

	viewStack []ViewID
	views     map[ViewID]viewModel
}

// NewModel builds the dashboard model.
func NewModel(cfg Config) (*Model, error) {
	if cfg.Provider == nil {
		return nil, fmt.Errorf("record provider required")
	}
	if cfg.Resolver == nil {
		return nil, fmt.Errorf("owner resolver required")
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = defaultRefreshInterval
	}

	m := &Model{
		provider:        cfg.Provider,
		resolver:        cfg.Resolver,
		ownerName:       strings.TrimSpace(cfg.OwnerName),
		refreshInterval: cfg.RefreshInterval,
		styles:          NewStyles(),
		viewStack:       []ViewID{ViewContacts},
		views:           make(map[ViewID]viewModel),
	}
	m.views[ViewContacts] = newContactsView()
	m.views[ViewThread] = newThreadView(cfg.Resolver)
	m.views[ViewFeed] = newFeedView(cfg.Resolver)
	return m, nil
}

// Run starts the dashboard program and blocks until it exits.
func Run(cfg Config) error {
	model, err := NewModel(cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetchCmd(false), m.tickCmd())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		return m, nil
	case tickMsg:
		return m, tea.Batch(m.fetchCmd(false), m.tickCmd())
	case snapshotMsg:
		m.fetching = false
		if typed.err != nil {
			// Degrade: keep the previous snapshot, show the error. A
			// model that never saw a snapshot falls back to the
			// provider's last-known-good one.
			m.fetchErr = typed.err
			if m.snapshot == nil {
				if stale := m.provider.Cached(); stale != nil {
					m.snapshot = stale
					for _, view := range m.views {
						view.setSnapshot(stale)
					}
				}
			}
			return m, nil
		}
		m.fetchErr = nil
		m.snapshot = typed.snapshot
		for _, view := range m.views {
			view.setSnapshot(typed.snapshot)
		}
		return m, nil
	case openThreadMsg:
		if view, ok := m.views[ViewThread].(*threadView); ok {
			view.setContact(typed.key)
			m.pushView(ViewThread)
		}
		return m, nil
	case popViewMsg:
		m.popView()
		return m, nil
	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKey(typed); handled {
			return m, cmd
		}
	}

	if active := m.activeView(); active != nil {
		return m, active.Update(msg)
	}
	return m, nil
}

func (m *Model) View() string {
	header := m.renderHeader()
	footer := m.renderFooter()

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	var body string
	switch {
	case m.showHelp:
		body = m.renderHelp()
	case m.activeView() != nil:
		body = m.activeView().View(m.width, contentHeight, m.styles)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	// Let the feed capture plain keys while its search input is open.
	if feed, ok := m.views[ViewFeed].(*feedView); ok && m.activeViewID() == ViewFeed && feed.searching {
		return nil, false
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit, true
	case "?":
		m.showHelp = !m.showHelp
		return nil, true
	case "r":
		m.fetching = true
		return m.fetchCmd(true), true
	}

	if next, ok := viewSwitchKeys[msg.String()]; ok {
		m.pushView(next)
		return nil, true
	}
	return nil, false
}

func (m *Model) fetchCmd(force bool) tea.Cmd {
	provider := m.provider
	return func() tea.Msg {
		ctx := context.Background()
		var (
			snapshot *data.Snapshot
			err      error
		)
		if force {
			snapshot, err = provider.Refresh(ctx)
		} else {
			snapshot, err = provider.Snapshot(ctx)
		}
		return snapshotMsg{snapshot: snapshot, err: err}
	}
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m *Model) activeView() viewModel {
	return m.views[m.activeViewID()]
}

func (m *Model) activeViewID() ViewID {
	if len(m.viewStack) == 0 {
		return ViewContacts
	}
	return m.viewStack[len(m.viewStack)-1]
}

func (m *Model) pushView(id ViewID) {
	if _, ok := m.views[id]; !ok {
		return
	}
	if m.activeViewID() == id {
		return
	}
	m.viewStack = append(m.viewStack, id)
}

func (m *Model) popView() {
	if len(m.viewStack) <= 1 {
		return
	}
	m.viewStack = m.viewStack[:len(m.viewStack)-1]
}

func (m *Model) renderHeader() string {
	title := "linkup"
	if m.ownerName != "" {
		title = fmt.Sprintf("linkup · %s", m.ownerName)
	}

	parts := []string{m.styles.Title.Render(title)}
	if m.snapshot != nil {
		totals := m.snapshot.Totals
		parts = append(parts, m.styles.Stat.Render(fmt.Sprintf(
			"%d messages · %d contacts · %d senders · %d sessions",
			totals.Messages, totals.Contacts, totals.Senders, totals.Sessions,
		)))
	}
	if m.fetching {
		parts = append(parts, m.styles.Muted.Render("refreshing…"))
	}
	if m.fetchErr != nil {
		parts = append(parts, m.styles.Error.Render("source unavailable: "+m.fetchErr.Error()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) renderFooter() string {
	hints := "c contacts · f feed · enter open · esc back · / search · r refresh · ? help · q quit"
	return m.styles.Footer.Render(hints)
}

func (m *Model) renderHelp() string {
	lines := []string{
		"Views",
		"  c       contact list",
		"  f       all-messages feed",
		"  enter   open selected contact's thread",
		"  esc     back",
		"",
		"Contacts",
		"  s       cycle sort (name / count / recent)",
		"",
		"Feed",
		"  /       search messages and senders",
		"  d       cycle direction (all / sent / received)",
		"  a       toggle shared-content only",
		"  o       toggle sort order",
		"",
		"Global",
		"  r       force refresh from the source",
		"  q       quit",
	}
	return m.styles.Muted.Render(strings.Join(lines, "\n"))
}
