// Package toppa implements the rules of Toppa, a timed 4x4 tile-merging
// puzzle with two independent tile lineages.
//
// The package is pure game logic. Time is always passed in by the caller as a
// duration since an arbitrary epoch, so the same code runs under the terminal
// frame loop and under tests that drive synthetic time.
package toppa

import "strconv"

// Tile is the identity of a board cell.
// Positive values are the light lineage, negative values the dark lineage,
// zero is an empty cell.
type Tile int8

const (
	TileDark2 Tile = -2
	TileDark1 Tile = -1
	TileEmpty Tile = 0
	TileOne   Tile = 1
	TileTwo   Tile = 2
	TileThree Tile = 3
	TileFour  Tile = 4
	TileFive  Tile = 5
	TileSix   Tile = 6
)

// Highest tier of each lineage. Merging two top-tier tiles annihilates them.
const (
	MaxLightTier = 6
	MaxDarkTier  = 2
)

// Lineage groups tiles that may merge into each other.
type Lineage int

const (
	LineageNone Lineage = iota
	LineageLight
	LineageDark
)

// Lineage returns the lineage the tile belongs to.
func (t Tile) Lineage() Lineage {
	switch {
	case t > 0:
		return LineageLight
	case t < 0:
		return LineageDark
	default:
		return LineageNone
	}
}

// Tier returns the 1-based tier within the tile's lineage, 0 for empty.
func (t Tile) Tier() int {
	if t < 0 {
		return int(-t)
	}
	return int(t)
}

// Valid reports whether t is inside the tile domain.
func (t Tile) Valid() bool {
	return t >= -MaxDarkTier && t <= MaxLightTier
}

// Promote returns the tile produced when two tiles of identity t merge.
// Promoting past the top tier of a lineage yields an empty cell.
func (t Tile) Promote() Tile {
	switch t.Lineage() {
	case LineageLight:
		if t+1 > MaxLightTier {
			return TileEmpty
		}
		return t + 1
	case LineageDark:
		if t-1 < -MaxDarkTier {
			return TileEmpty
		}
		return t - 1
	default:
		return TileEmpty
	}
}

// String returns the short label drawn inside a cell.
func (t Tile) String() string {
	if !t.Valid() {
		return "?"
	}
	switch t.Lineage() {
	case LineageDark:
		return string(rune('A' + t.Tier() - 1))
	case LineageLight:
		return strconv.Itoa(t.Tier())
	default:
		return "."
	}
}
