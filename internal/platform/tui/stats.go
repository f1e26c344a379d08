package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/storage"
)

// Stats screen layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the summary sidebar
	sidebarWidth       = 24  // Width of the summary sidebar
	maxRows            = 100 // Max rounds to load
)

// statsView selects which table the stats screen shows.
type statsView int

const (
	viewHistory statsView = iota
	viewWords
)

var statsViewTitles = [...]string{"Recent Rounds", "Words"}

// StatsKeyMap defines the key bindings for the stats screen.
type StatsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	PrevView key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextView, k.PrevView, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "switch view"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel is the Bubble Tea model for the statistics screen.
type StatsModel struct {
	db          *storage.Store
	view        statsView
	rounds      []storage.RoundEntry
	words       []storage.WordStat
	summary     *storage.RoundStats
	table       table.Model
	help        help.Model
	keys        StatsKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewStatsModel creates a new stats model and loads its data.
func NewStatsModel(db *storage.Store, width, height int) StatsModel {
	h := help.New()
	h.ShowAll = false

	m := StatsModel{
		db:          db,
		keys:        DefaultStatsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.loadData()
	m.table = m.createTable()
	m.updateTableRows()

	return m
}

// loadData pulls everything the screen shows in one go. The database is
// not watched; reopen the screen for fresh numbers.
func (m *StatsModel) loadData() {
	if m.db == nil {
		return
	}
	if rounds, err := m.db.RecentRounds(maxRows); err == nil {
		m.rounds = rounds
	}
	if words, err := m.db.WordStats(maxRows); err == nil {
		m.words = words
	}
	if summary, err := m.db.GetStats(); err == nil {
		m.summary = summary
	}
}

// createTable creates a table with the current view's columns.
func (m *StatsModel) createTable() table.Model {
	var columns []table.Column
	switch m.view {
	case viewWords:
		columns = []table.Column{
			{Title: "Word", Width: 14},
			{Title: "Played", Width: 7},
			{Title: "Won", Width: 5},
			{Title: "Win %", Width: 6},
		}
	default:
		columns = []table.Column{
			{Title: "#", Width: 4},
			{Title: "Word", Width: 14},
			{Title: "Result", Width: 7},
			{Title: "Guesses", Width: 8},
			{Title: "Wrong", Width: 6},
			{Title: "Date", Width: 13},
		}
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table for the current view.
func (m *StatsModel) updateTableRows() {
	var rows []table.Row

	switch m.view {
	case viewWords:
		rows = make([]table.Row, len(m.words))
		for i, w := range m.words {
			rows[i] = table.Row{
				w.Word,
				fmt.Sprintf("%d", w.Played),
				fmt.Sprintf("%d", w.Won),
				fmt.Sprintf("%d%%", 100*w.Won/w.Played),
			}
		}
	default:
		rows = make([]table.Row, len(m.rounds))
		for i, r := range m.rounds {
			result := "lost"
			if r.Won {
				result = "won"
			}
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				r.Word,
				result,
				fmt.Sprintf("%d", r.Guesses),
				fmt.Sprintf("%d", r.Wrong),
				r.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	}

	m.table.SetRows(rows)
	m.table.GotoTop()
}

// switchView moves to the next or previous table.
func (m *StatsModel) switchView(delta int) {
	n := statsView(len(statsViewTitles))
	m.view = (m.view + statsView(delta) + n) % n
	m.table = m.createTable()
	m.updateTableRows()
}

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView):
			m.switchView(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevView):
			m.switchView(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats screen.
func (m StatsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("STATISTICS - %s", statsViewTitles[m.view])
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout shows the summary sidebar next to the table.
func (m StatsModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		sidebarStyle.Render(m.renderSummary()),
		"  ",
		tableStyle.Render(m.renderTableContent()),
	)
}

// renderNarrowLayout shows the view tabs above the table.
func (m StatsModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(statsViewTitles))
	for i, title := range statsViewTitles {
		if statsView(i) == m.view {
			tabs[i] = activeTabStyle.Render(title)
		} else {
			tabs[i] = tabStyle.Render(" " + title + " ")
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderSummary renders the aggregate numbers for the sidebar.
func (m StatsModel) renderSummary() string {
	var b strings.Builder
	b.WriteString("Overview\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	b.WriteString("\n")

	if m.summary == nil || m.summary.RoundsPlayed == 0 {
		b.WriteString("No rounds yet")
		return b.String()
	}

	winRate := 100 * m.summary.RoundsWon / m.summary.RoundsPlayed
	fmt.Fprintf(&b, "%-12s%6d\n", "Rounds", m.summary.RoundsPlayed)
	fmt.Fprintf(&b, "%-12s%6d\n", "Won", m.summary.RoundsWon)
	fmt.Fprintf(&b, "%-12s%5d%%\n", "Win rate", winRate)
	fmt.Fprintf(&b, "%-12s%6d\n", "Best streak", m.summary.BestStreak)
	fmt.Fprintf(&b, "%-12s%6d", "Streak", m.summary.CurrentStreak)

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m StatsModel) renderTableContent() string {
	empty := len(m.rounds) == 0
	if m.view == viewWords {
		empty = len(m.words) == 0
	}
	if empty {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No rounds recorded yet.\nPlay a few and come back!")
	}

	return m.table.View()
}

// IsQuitting returns true if the user closed the screen.
func (m StatsModel) IsQuitting() bool {
	return m.quitting
}

// RunStats runs the statistics screen.
func RunStats(db *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewStatsModel(db, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
