package toppa

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/toppa/internal/core"
	"github.com/vovakirdan/toppa/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "toppa"

// Game adapts a Session to the platform's game loop.
// Step advances time by exactly one tick interval, so a seeded run driven by
// Step alone is fully reproducible. StepAt follows an external clock instead.
type Game struct {
	cfg     Config
	session *Session
	rng     *rand.Rand
	tick    uint64
	now     time.Duration
	step    time.Duration

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a Toppa game with the default rules.
func New() *Game {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a Toppa game with explicit rules.
func NewWithConfig(cfg Config) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Toppa"
}

// Reset builds a fresh session in the Initial state.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.session = NewSession(g.cfg, g.rng)
	g.tick = 0
	g.now = 0

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.step = time.Second / time.Duration(tickRate)

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Board (4*cellWidth+1 wide, 4*cellHeight+1 tall) plus HUD and footer
	minW := BoardSize*cellWidth + 1
	minH := BoardSize*cellHeight + 1 + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize adapts to a new screen size without touching the match.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Session exposes the underlying session for rendering collaborators.
func (g *Game) Session() *Session {
	return g.session
}

// Now returns the game's current time.
func (g *Game) Now() time.Duration {
	return g.now
}

// Step advances the game by one tick interval.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.StepAt(in, g.now+g.step)
}

// StepAt advances the game to now, measured from Reset. Timers follow now
// rather than the tick count, so slow frames do not stretch the match.
// A now earlier than the current time is treated as no elapsed time.
func (g *Game) StepAt(in core.InputFrame, now time.Duration) core.StepResult {
	g.tick++
	g.now = max(g.now, now)

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionConfirm):
		g.session.Start(g.now)
	case in.Has(core.ActionRestart):
		g.session.Retry(g.now)
	}

	// One move per tick
	switch {
	case in.Has(core.ActionUp):
		g.session.MoveUp(g.now)
	case in.Has(core.ActionDown):
		g.session.MoveDown(g.now)
	case in.Has(core.ActionLeft):
		g.session.MoveLeft(g.now)
	case in.Has(core.ActionRight):
		g.session.MoveRight(g.now)
	}

	g.session.Tick(g.now)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:       g.session.engine.Score,
		Merges:      g.session.engine.MergeCount,
		HighestTile: MaxLight(g.session.engine.Board).Tier(),
		InMatch:     g.session.Status().CapturesArrows(),
		GameOver:    g.session.Status() == StatusResult,
		Paused:      g.tooSmall,
	}
}
