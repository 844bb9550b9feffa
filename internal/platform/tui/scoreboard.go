package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/toppa/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForStats = 80  // Minimum width to show the stats panel
	statsWidth       = 22  // Width of the stats panel
	maxResults       = 100 // Max results to load
)

// scoreboardView selects which ordering the table shows.
type scoreboardView int

const (
	viewTop scoreboardView = iota
	viewRecent
)

func (v scoreboardView) String() string {
	if v == viewRecent {
		return "RECENT MATCHES"
	}
	return "HIGH SCORES"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "top/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists logged results of one game.
type ScoreboardModel struct {
	gameID    string
	title     string
	store     *storage.Store
	results   []storage.Result
	stats     storage.Stats
	view      scoreboardView
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	embedded  bool // Back returns to the caller instead of quitting
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard for gameID.
func NewScoreboardModel(store *storage.Store, gameID, title string, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		gameID: gameID,
		title:  title,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *ScoreboardModel) showStats() bool {
	return m.width >= minWidthForStats
}

// createTable creates a new table sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 9},
		{Title: "Merges", Width: 7},
		{Title: "Tile", Width: 5},
		{Title: "When", Width: 14},
	}

	tableWidth := m.width - 4 // Margins
	if m.showStats() {
		tableWidth -= statsWidth + 3
	}
	if fixed := 5 + 9 + 7 + 5 + 10; tableWidth > fixed {
		columns[4].Width = min(tableWidth-fixed, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

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

// load refreshes results and stats from the store.
func (m *ScoreboardModel) load() {
	m.results = nil
	m.stats = storage.Stats{}

	if m.store != nil {
		var err error
		if m.view == viewRecent {
			m.results, err = m.store.RecentResults(m.gameID, maxResults)
		} else {
			m.results, err = m.store.TopResults(m.gameID, maxResults)
		}
		if err != nil {
			m.results = nil
		}
		if st, err := m.store.Stats(m.gameID); err == nil {
			m.stats = st
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current results.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		rank := fmt.Sprintf("#%d", i+1)
		if m.view == viewRecent {
			rank = "-"
		}
		rows[i] = table.Row{
			rank,
			humanize.Comma(int64(r.Score)),
			strconv.Itoa(r.Merges),
			tierLabel(r.HighestTile),
			whenLabel(r),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func tierLabel(tier int) string {
	if tier <= 0 {
		return "-"
	}
	return strconv.Itoa(tier)
}

func whenLabel(r storage.Result) string {
	if r.CreatedAt.IsZero() {
		return ""
	}
	return humanize.Time(r.CreatedAt)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			if m.view == viewTop {
				m.view = viewRecent
			} else {
				m.view = viewTop
			}
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || (m.goingBack && !m.embedded) {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("%s - %s", m.view, m.title)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableRendered := panel.Render(m.renderTableContent())
	if m.showStats() {
		statsRendered := panel.Width(statsWidth).Render(m.renderStats())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, statsRendered, "  ", tableRendered))
	} else {
		b.WriteString(centerText(tableRendered, m.width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderStats renders lifetime totals.
func (m ScoreboardModel) renderStats() string {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	value := lipgloss.NewStyle().Bold(true)

	line := func(name, v string) string {
		return label.Render(name) + "\n" + value.Render(v) + "\n"
	}

	var sb strings.Builder
	sb.WriteString(line("Matches", humanize.Comma(int64(m.stats.Games))))
	sb.WriteString(line("Best score", humanize.Comma(int64(m.stats.BestScore))))
	sb.WriteString(line("Total merges", humanize.Comma(int64(m.stats.TotalMerges))))
	sb.WriteString(line("Best tile", tierLabel(m.stats.BestTile)))
	return strings.TrimSuffix(sb.String(), "\n")
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.results) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No matches recorded yet.\nFinish a match to set a score!")
	}

	return m.table.View()
}

// IsGoingBack returns true if the player wants to leave the scoreboard.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the player wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// centerText pads each line of text to center it within width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if pad := (width - lipgloss.Width(line)) / 2; pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}

// RunScoreboard runs the scoreboard as a standalone program.
func RunScoreboard(store *storage.Store, gameID, title string, width, height int) error {
	model := NewScoreboardModel(store, gameID, title, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
