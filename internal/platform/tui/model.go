package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/toppa/internal/core"
	"github.com/vovakirdan/toppa/internal/registry"
	"github.com/vovakirdan/toppa/internal/storage"
)

// Resizer is implemented by games that can follow a terminal resize
// without restarting.
type Resizer interface {
	Resize(w, h int)
}

// Clocked is implemented by games whose timers follow the wall clock.
// now is the time elapsed since the model's first tick.
type Clocked interface {
	StepAt(in core.InputFrame, now time.Duration) core.StepResult
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	renderer   *ScreenRenderer
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	inputFrame core.InputFrame
	gameState  core.GameState
	highScore  int
	quitting   bool
	back       bool
	saved      bool // Result of the current match is in the log
	epoch      time.Time
	ticking    bool // epoch is set
}

// NewModel creates a play model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:   NewScreenRenderer(nil),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		inputFrame: core.NewInputFrame(),
	}
	if store != nil {
		if high, err := store.HighScore(game.ID()); err == nil {
			m.highScore = high
		}
	}
	// Reset here rather than in Init: Init has a value receiver.
	game.Reset(cfg)
	m.gameState = game.State()
	return m
}

// WithRenderer returns a copy that styles output with r.
func (m Model) WithRenderer(r *ScreenRenderer) Model {
	m.renderer = r
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		// Leaving mid-match would abandon it.
		if !m.gameState.InMatch {
			m.back = true
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize follows the terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.ticking = false
	}
	m.gameState = m.game.State()

	return m, nil
}

// handleTick advances the game to the tick's timestamp and logs a finished
// match once. The first tick fixes the epoch.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	if !m.ticking {
		m.epoch = at
		m.ticking = true
	}

	var result core.StepResult
	if c, ok := m.game.(Clocked); ok {
		result = c.StepAt(m.inputFrame, at.Sub(m.epoch))
	} else {
		result = m.game.Step(m.inputFrame)
	}
	m.gameState = result.State
	m.inputFrame.Clear()

	switch {
	case m.gameState.GameOver && !m.saved:
		m.recordResult()
		m.saved = true
	case !m.gameState.GameOver:
		m.saved = false
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) recordResult() {
	st := m.gameState
	m.highScore = max(m.highScore, st.Score)

	if m.logger != nil {
		m.logger.Info("match finished",
			"game", m.game.ID(),
			"score", st.Score,
			"merges", st.Merges,
			"tile", st.HighestTile,
		)
	}
	if m.store == nil {
		return
	}
	_, err := m.store.SaveResult(storage.Result{
		GameID:      m.game.ID(),
		Score:       st.Score,
		Merges:      st.Merges,
		HighestTile: st.HighestTile,
	})
	if err != nil && m.logger != nil {
		m.logger.Warn("could not save result", "error", err)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".toppa", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil && m.logger != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.highScore > 0 && !m.gameState.Paused {
		best := "Best " + humanize.Comma(int64(m.highScore))
		m.screen.DrawTextColor(0, m.screen.Height()-1, best, core.ColorGray)
	}
	return m.renderer.Render(m.screen)
}

// State returns the last reported game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting reports whether the player asked to exit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// WantsScores reports whether the player asked for the scoreboard.
func (m Model) WantsScores() bool {
	return m.back
}

// Resume clears a scoreboard request after returning to the game.
func (m Model) Resume() Model {
	m.back = false
	return m
}
