package toppa

// BoardSize is the board dimension.
const BoardSize = 4

// Board holds tile identities, row-major, row 0 at the top.
type Board [BoardSize][BoardSize]Tile

// Change records which identity occupied a cell before this move's merge.
// A spawned tile is recorded as a change from TileEmpty so it can grow in.
type Change struct {
	From Tile
	Set  bool
}

// ChangeGrid holds a Change per cell.
type ChangeGrid [BoardSize][BoardSize]Change

// Delta is the displacement a tile travelled this move, stored at the cell
// the tile started from.
type Delta struct {
	DY, DX int
	Set    bool
}

// IsZero reports whether the tile did not travel.
func (d Delta) IsZero() bool {
	return d.DY == 0 && d.DX == 0
}

// DeltaGrid holds a Delta per cell.
type DeltaGrid [BoardSize][BoardSize]Delta

// Position addresses a cell.
type Position struct {
	Row, Col int
}

// Grids is the full board state a renderer needs: the current board, the
// board before the last move, and the per-cell merge and movement records.
// The four grids are always transformed together.
type Grids struct {
	Board      Board
	Prev       Board
	ChangeFrom ChangeGrid
	MoveDelta  DeltaGrid
}

// Clear empties every grid.
func (g *Grids) Clear() {
	*g = Grids{}
}

// beginMove snapshots the board and forgets the previous move's records.
func (g *Grids) beginMove() {
	g.Prev = g.Board
	g.ChangeFrom = ChangeGrid{}
	g.MoveDelta = DeltaGrid{}
}

// CanMove reports whether some non-empty cell has an empty or equal
// 4-neighbour.
func CanMove(board Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			tile := board[y][x]
			if tile == TileEmpty {
				continue
			}
			open := func(other Tile) bool {
				return other == TileEmpty || other == tile
			}
			if y > 0 && open(board[y-1][x]) {
				return true
			}
			if y < BoardSize-1 && open(board[y+1][x]) {
				return true
			}
			if x > 0 && open(board[y][x-1]) {
				return true
			}
			if x < BoardSize-1 && open(board[y][x+1]) {
				return true
			}
		}
	}
	return false
}

// MaxLight returns the highest light tile on the board, or TileEmpty.
func MaxLight(board Board) Tile {
	best := TileEmpty
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] > best {
				best = board[y][x]
			}
		}
	}
	return best
}
