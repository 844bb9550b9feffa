package toppa

import (
	"time"

	"github.com/vovakirdan/toppa/internal/core"
)

// Default animation timings.
const (
	DefaultMoveDuration   = 100 * time.Millisecond
	DefaultChangeDuration = 200 * time.Millisecond
)

// AnimPhase represents the current phase of animation.
type AnimPhase int

const (
	PhaseNone AnimPhase = iota
	PhaseInitial
	PhaseMove
	PhaseChange
)

// String returns the phase name.
func (p AnimPhase) String() string {
	switch p {
	case PhaseNone:
		return "none"
	case PhaseInitial:
		return "initial"
	case PhaseMove:
		return "move"
	case PhaseChange:
		return "change"
	default:
		return "unknown"
	}
}

// Animator derives the animation phase purely from the time elapsed since
// the last Start. It never touches the board; Hints reads the grids the
// engine left behind.
type Animator struct {
	MoveDuration   time.Duration
	ChangeDuration time.Duration

	phase AnimPhase
	start time.Duration
	ratio float64
}

// Start (re)starts the animation at now. With skipMove the Move phase is
// treated as already elapsed, which is how freshly spawned boards pop in.
// Returns true when no animation was in flight, meaning the caller must
// schedule a new frame loop; otherwise the running loop picks up the reset.
func (a *Animator) Start(now time.Duration, skipMove bool) bool {
	prev := a.phase
	a.phase = PhaseInitial
	a.start = now
	if skipMove {
		a.start -= a.MoveDuration
	}
	a.ratio = 0
	return prev == PhaseNone
}

// Tick reassigns the phase for now and reports whether animation continues.
func (a *Animator) Tick(now time.Duration) bool {
	if a.phase == PhaseNone {
		return false
	}
	elapsed := now - a.start
	switch {
	case elapsed < a.MoveDuration:
		a.phase = PhaseMove
		a.ratio = fraction(elapsed, a.MoveDuration)
	case elapsed < a.MoveDuration+a.ChangeDuration:
		a.phase = PhaseChange
		a.ratio = fraction(elapsed-a.MoveDuration, a.ChangeDuration)
	default:
		a.phase = PhaseNone
		a.ratio = 0
	}
	return a.phase != PhaseNone
}

// Phase returns the current phase.
func (a *Animator) Phase() AnimPhase {
	return a.phase
}

// Ratio returns progress through the current phase in [0, 1).
func (a *Animator) Ratio() float64 {
	return a.ratio
}

// Stop drops any in-flight animation.
func (a *Animator) Stop() {
	a.phase = PhaseNone
	a.ratio = 0
}

func fraction(part, whole time.Duration) float64 {
	if whole <= 0 {
		return 1
	}
	return core.ClampF(float64(part)/float64(whole), 0, 1)
}

// CellHint tells a renderer what to draw in one cell for the current frame.
type CellHint struct {
	Tile    Tile    // Tile drawn on top
	Under   Tile    // Tile drawn beneath, visible while Tile is scaled down
	OffsetY float64 // Translation in cells
	OffsetX float64
	Scale   float64 // 1 is full size
}

// Hints computes per-cell drawing instructions for the current phase.
func (a *Animator) Hints(g *Grids) [BoardSize][BoardSize]CellHint {
	var hints [BoardSize][BoardSize]CellHint

	for y := range BoardSize {
		for x := range BoardSize {
			h := CellHint{Tile: g.Board[y][x], Scale: 1}

			switch a.phase {
			case PhaseMove:
				h.Tile = g.Prev[y][x]
				if d := g.MoveDelta[y][x]; d.Set {
					h.OffsetY = float64(d.DY) * a.ratio
					h.OffsetX = float64(d.DX) * a.ratio
				}

			case PhaseChange:
				c := g.ChangeFrom[y][x]
				if !c.Set {
					break
				}
				if g.Board[y][x] == TileEmpty {
					// Annihilated pair shrinks away.
					h.Tile = c.From
					h.Scale = 1 - a.ratio
				} else {
					h.Under = c.From
					h.Scale = a.ratio
				}
			}

			hints[y][x] = h
		}
	}

	return hints
}
