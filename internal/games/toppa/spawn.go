package toppa

import "math/rand"

// SpawnWeights are the relative odds of each spawned identity.
type SpawnWeights struct {
	One  float64
	Two  float64
	Dark float64
}

// DefaultSpawnWeights spawns 85% ones, 10% twos and 5% first-tier dark tiles.
var DefaultSpawnWeights = SpawnWeights{One: 0.85, Two: 0.10, Dark: 0.05}

// SpawnPolicy places new tiles after successful moves.
type SpawnPolicy struct {
	Weights SpawnWeights
}

// pick maps a uniform roll in [0, 1) to a tile identity.
func (p SpawnPolicy) pick(roll float64) Tile {
	w := p.Weights
	total := w.One + w.Two + w.Dark
	if total <= 0 {
		return TileOne
	}
	roll *= total
	switch {
	case roll < w.One:
		return TileOne
	case roll < w.One+w.Two:
		return TileTwo
	default:
		return TileDark1
	}
}

// candidates returns empty cells that are not mid-annihilation. A cell that
// just lost its tile to a top-tier merge stays empty until the next move.
func candidates(g *Grids) []Position {
	var cells []Position
	for y := range BoardSize {
		for x := range BoardSize {
			if g.Board[y][x] != TileEmpty {
				continue
			}
			if c := g.ChangeFrom[y][x]; c.Set && c.From != TileEmpty {
				continue
			}
			cells = append(cells, Position{Row: y, Col: x})
		}
	}
	return cells
}

// Spawn places one new tile on a uniformly chosen candidate cell.
// Returns ok=false without touching the grids when no cell qualifies.
func (p SpawnPolicy) Spawn(g *Grids, rng *rand.Rand) (Position, Tile, bool) {
	cells := candidates(g)
	if len(cells) == 0 {
		return Position{}, TileEmpty, false
	}

	pos := cells[rng.Intn(len(cells))]
	tile := p.pick(rng.Float64())

	g.Board[pos.Row][pos.Col] = tile
	g.ChangeFrom[pos.Row][pos.Col] = Change{From: TileEmpty, Set: true}
	return pos, tile, true
}
