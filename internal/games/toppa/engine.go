package toppa

import "time"

// Engine owns the authoritative board and the counters merges feed.
// It resolves moves but does not decide whether a move is allowed; the
// Session gates it on status and remaining time.
type Engine struct {
	Grids
	Score      int
	MergeCount int
	TimeLimit  time.Duration
}

// Reset clears the board and counters and sets the time budget.
func (e *Engine) Reset(limit time.Duration) {
	e.Grids.Clear()
	e.Score = 0
	e.MergeCount = 0
	e.TimeLimit = limit
}

// CanMove reports whether any move could still change the board.
func (e *Engine) CanMove() bool {
	return CanMove(e.Board)
}

// Slide resolves a move in the given direction and reports whether any tile
// moved or merged. Prev, ChangeFrom and MoveDelta are rewritten on every
// call, even when nothing moves.
func (e *Engine) Slide(dir Direction) bool {
	rot := canonical[dir]

	e.beginMove()
	e.rotate(rot.to)
	moved := false
	for y := range BoardSize {
		if e.slideRow(y) {
			moved = true
		}
	}
	e.rotate(rot.from)

	return moved
}

// slideRow moves every tile of row y toward column 0.
// Cells at or left of fixed are locked for this move: either they already
// received a merge or they are blocked by a placed tile.
func (e *Engine) slideRow(y int) bool {
	row := &e.Board[y]
	moved := false
	fixed := -1

	for j := range BoardSize {
		tile := row[j]
		if tile == TileEmpty {
			continue
		}
		row[j] = TileEmpty

		k := j
		for k-1 > fixed {
			if next := row[k-1]; next != TileEmpty && next != tile {
				break
			}
			k--
		}

		if row[k] == tile {
			e.merge(y, k, tile)
			fixed = k
		} else {
			row[k] = tile
			fixed = k - 1
		}

		d := Delta{DX: k - j, Set: true}
		e.MoveDelta[y][j] = d
		if !d.IsZero() {
			moved = true
		}
	}

	return moved
}

// merge promotes the resident tile at (y, x) and books the reward.
func (e *Engine) merge(y, x int, tile Tile) {
	reward := RewardFor(tile)
	e.Score += reward.Score
	e.TimeLimit += reward.Time
	e.MergeCount++

	e.Board[y][x] = tile.Promote()
	e.ChangeFrom[y][x] = Change{From: tile, Set: true}
}
