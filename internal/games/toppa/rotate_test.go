package toppa

import "testing"

func numberedGrids() Grids {
	var g Grids
	for y := range BoardSize {
		for x := range BoardSize {
			g.Board[y][x] = Tile((y*BoardSize+x)%6 + 1)
			g.Prev[y][x] = Tile(-(y+x)%2 - 1)
			g.ChangeFrom[y][x] = Change{From: Tile(x), Set: y%2 == 0}
			g.MoveDelta[y][x] = Delta{DY: y - 1, DX: x - 2, Set: true}
		}
	}
	return g
}

func TestRotateRoundTrip(t *testing.T) {
	inverse := map[turn]turn{
		turnNone:  turnNone,
		turnLeft:  turnRight,
		turnRight: turnLeft,
		turnHalf:  turnHalf,
	}

	for tr, inv := range inverse {
		orig := numberedGrids()
		g := orig
		g.rotate(tr)
		g.rotate(inv)
		if g != orig {
			t.Errorf("turn %d followed by %d did not restore grids", tr, inv)
		}
	}
}

func TestCanonicalRotationsInvert(t *testing.T) {
	for dir, rot := range canonical {
		orig := numberedGrids()
		g := orig
		g.rotate(rot.to)
		g.rotate(rot.from)
		if g != orig {
			t.Errorf("%s: to/from rotations are not inverse", dir)
		}
	}
}

func TestTurnLeftPosition(t *testing.T) {
	var g Grids
	g.Board[0][3] = TileFive // top-right
	g.rotate(turnLeft)
	if g.Board[0][0] != TileFive {
		t.Errorf("turnLeft should carry top-right to top-left:\n%v", g.Board)
	}
}

func TestTurnDeltaFollowsCell(t *testing.T) {
	// A delta must keep pointing from its cell to the same destination
	// cell after the grid turns.
	for _, tr := range []turn{turnLeft, turnRight, turnHalf} {
		for y := range BoardSize {
			for x := range BoardSize {
				d := Delta{DY: 0, DX: -x, Set: true}
				ty, tx := y+d.DY, x+d.DX

				ny, nx := tr.position(y, x)
				nty, ntx := tr.position(ty, tx)
				nd := tr.delta(d)

				if ny+nd.DY != nty || nx+nd.DX != ntx {
					t.Errorf("turn %d: delta %+v at (%d,%d) rotated to %+v, misses (%d,%d)",
						tr, d, y, x, nd, nty, ntx)
				}
			}
		}
	}
}
