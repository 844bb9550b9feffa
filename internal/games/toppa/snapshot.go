package toppa

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Status    string
	Score     int
	Merges    int
	TimeLeft  int
	TimeLimit int // Current budget in whole seconds, including bonuses
	Board     Board
	MaxTile   Tile // Highest light tile on board
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	v := g.session.View(g.now)
	return Snapshot{
		Tick:      g.tick,
		Status:    v.Status.String(),
		Score:     v.Score,
		Merges:    v.Merges,
		TimeLeft:  v.TimeLeft,
		TimeLimit: int(g.session.engine.TimeLimit.Seconds()),
		Board:     v.Grids.Board,
		MaxTile:   MaxLight(v.Grids.Board),
	}
}
