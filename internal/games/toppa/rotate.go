package toppa

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// turn is a quarter-turn rotation of the whole grid set.
type turn int

const (
	turnNone turn = iota
	turnLeft
	turnRight
	turnHalf
)

// canonical maps each direction to the rotations taking it to and from a
// move toward column 0.
var canonical = map[Direction]struct{ to, from turn }{
	DirLeft:  {turnNone, turnNone},
	DirRight: {turnHalf, turnHalf},
	DirUp:    {turnLeft, turnRight},
	DirDown:  {turnRight, turnLeft},
}

// position returns where cell (y, x) lands after the turn.
func (t turn) position(y, x int) (int, int) {
	last := BoardSize - 1
	switch t {
	case turnLeft:
		return last - x, y
	case turnRight:
		return x, last - y
	case turnHalf:
		return last - y, last - x
	default:
		return y, x
	}
}

// delta rotates a displacement vector the same way the grid turned.
func (t turn) delta(d Delta) Delta {
	switch t {
	case turnLeft:
		d.DY, d.DX = -d.DX, d.DY
	case turnRight:
		d.DY, d.DX = d.DX, -d.DY
	case turnHalf:
		d.DY, d.DX = -d.DY, -d.DX
	}
	return d
}

// transformGrid moves every cell of grid to its rotated position.
func transformGrid[T any](grid *[BoardSize][BoardSize]T, t turn) {
	var out [BoardSize][BoardSize]T
	for y := range BoardSize {
		for x := range BoardSize {
			ny, nx := t.position(y, x)
			out[ny][nx] = grid[y][x]
		}
	}
	*grid = out
}

// rotate applies t to all four grids and re-expresses move deltas in the
// rotated frame.
func (g *Grids) rotate(t turn) {
	if t == turnNone {
		return
	}
	transformGrid((*[BoardSize][BoardSize]Tile)(&g.Board), t)
	transformGrid((*[BoardSize][BoardSize]Tile)(&g.Prev), t)
	transformGrid((*[BoardSize][BoardSize]Change)(&g.ChangeFrom), t)
	transformGrid((*[BoardSize][BoardSize]Delta)(&g.MoveDelta), t)
	for y := range BoardSize {
		for x := range BoardSize {
			if g.MoveDelta[y][x].Set {
				g.MoveDelta[y][x] = t.delta(g.MoveDelta[y][x])
			}
		}
	}
}
