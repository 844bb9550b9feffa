package toppa

import (
	"math/rand"
	"testing"
)

func TestSpawnPick(t *testing.T) {
	p := SpawnPolicy{Weights: DefaultSpawnWeights}

	tests := []struct {
		roll float64
		want Tile
	}{
		{0, TileOne},
		{0.84, TileOne},
		{0.86, TileTwo},
		{0.94, TileTwo},
		{0.96, TileDark1},
		{0.999, TileDark1},
	}

	for _, tt := range tests {
		if got := p.pick(tt.roll); got != tt.want {
			t.Errorf("pick(%v) = %v, want %v", tt.roll, got, tt.want)
		}
	}
}

func TestSpawnPickScalesWeights(t *testing.T) {
	p := SpawnPolicy{Weights: SpawnWeights{One: 1, Two: 1}}
	if got := p.pick(0.4); got != TileOne {
		t.Errorf("pick(0.4) = %v, want 1", got)
	}
	if got := p.pick(0.6); got != TileTwo {
		t.Errorf("pick(0.6) = %v, want 2", got)
	}
}

func TestSpawnPlacesOnCandidate(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := SpawnPolicy{Weights: DefaultSpawnWeights}

	var g Grids
	for y := range BoardSize {
		for x := range BoardSize {
			g.Board[y][x] = TileThree
		}
	}
	g.Board[2][1] = TileEmpty

	pos, tile, ok := p.Spawn(&g, rng)
	if !ok {
		t.Fatal("expected a spawn")
	}
	if pos != (Position{Row: 2, Col: 1}) {
		t.Errorf("spawned at %v, want the only empty cell", pos)
	}
	if g.Board[2][1] != tile {
		t.Errorf("board holds %v, want %v", g.Board[2][1], tile)
	}
	if c := g.ChangeFrom[2][1]; !c.Set || c.From != TileEmpty {
		t.Errorf("ChangeFrom = %+v, want change from empty", c)
	}
}

func TestSpawnSkipsAnnihilatedCells(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := SpawnPolicy{Weights: DefaultSpawnWeights}

	var g Grids
	for y := range BoardSize {
		for x := range BoardSize {
			g.Board[y][x] = TileTwo
		}
	}
	// Two cells freshly emptied by a top-tier merge.
	g.Board[0][0] = TileEmpty
	g.ChangeFrom[0][0] = Change{From: TileSix, Set: true}
	g.Board[3][3] = TileEmpty
	g.ChangeFrom[3][3] = Change{From: TileDark2, Set: true}

	before := g
	if _, _, ok := p.Spawn(&g, rng); ok {
		t.Fatal("annihilated cells must not receive a spawn")
	}
	if g != before {
		t.Error("grids changed without a spawn")
	}
}

func TestSpawnFullBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := SpawnPolicy{Weights: DefaultSpawnWeights}

	var g Grids
	for y := range BoardSize {
		for x := range BoardSize {
			g.Board[y][x] = TileOne
		}
	}
	if _, _, ok := p.Spawn(&g, rng); ok {
		t.Error("full board should not spawn")
	}
}

func TestSpawnDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	p := SpawnPolicy{Weights: DefaultSpawnWeights}

	counts := map[Tile]int{}
	const n = 20000
	for range n {
		var g Grids
		_, tile, _ := p.Spawn(&g, rng)
		counts[tile]++
	}

	check := func(tile Tile, want float64) {
		got := float64(counts[tile]) / n
		if got < want-0.02 || got > want+0.02 {
			t.Errorf("tile %v frequency = %.3f, want about %.2f", tile, got, want)
		}
	}
	check(TileOne, 0.85)
	check(TileTwo, 0.10)
	check(TileDark1, 0.05)
}
