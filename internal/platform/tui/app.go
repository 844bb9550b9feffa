package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/toppa/internal/core"
	"github.com/vovakirdan/toppa/internal/registry"
	"github.com/vovakirdan/toppa/internal/storage"
)

// AppModel is the top-level model for a player: the game, plus the
// scoreboard reachable from the title and result screens.
// Local play and every SSH session run one AppModel each.
type AppModel struct {
	play     Model
	board    ScoreboardModel
	store    *storage.Store
	inBoard  bool
	quitting bool
}

// NewAppModel wraps a play model.
func NewAppModel(play Model, store *storage.Store) AppModel {
	return AppModel{play: play, store: store}
}

// Init starts the game's tick loop.
func (m AppModel) Init() tea.Cmd {
	return m.play.Init()
}

// Update routes messages to the visible screen. Ticks always reach the game
// so its loop keeps running while the scoreboard is open.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m.updatePlay(msg)
	case tea.WindowSizeMsg:
		next, _ := m.board.Update(msg)
		if b, ok := next.(ScoreboardModel); ok {
			m.board = b
		}
		return m.updatePlay(msg)
	}

	if m.inBoard {
		return m.updateBoard(msg)
	}
	return m.updatePlay(msg)
}

func (m AppModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.play.Update(msg)
	if p, ok := next.(Model); ok {
		m.play = p
	}

	if m.play.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.play.WantsScores() {
		m.play = m.play.Resume()
		m.board = NewScoreboardModel(m.store, m.play.game.ID(), m.play.game.Title(),
			m.play.config.ScreenW, m.play.config.ScreenH)
		m.board.embedded = true
		m.inBoard = true
	}
	return m, cmd
}

func (m AppModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	if b, ok := next.(ScoreboardModel); ok {
		m.board = b
	}

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.board.IsGoingBack() {
		m.inBoard = false
	}
	return m, cmd
}

// View renders the visible screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inBoard {
		return m.board.View()
	}
	return m.play.View()
}

// Run plays game in the local terminal until the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewAppModel(NewModel(game, store, cfg, logger), store)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
