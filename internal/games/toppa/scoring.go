package toppa

import "time"

// Reward is what a single merge of two tiles earns.
type Reward struct {
	Score int
	Time  time.Duration
}

// rewards doubles by tier within each lineage. Only the top light tier
// extends the match clock.
var rewards = map[Tile]Reward{
	TileDark2: {Score: 768},
	TileDark1: {Score: 384},
	TileEmpty: {},
	TileOne:   {Score: 6},
	TileTwo:   {Score: 12},
	TileThree: {Score: 24},
	TileFour:  {Score: 48},
	TileFive:  {Score: 96},
	TileSix:   {Score: 192, Time: 30 * time.Second},
}

// RewardFor returns the score and time bonus for merging two tiles of
// identity t. Unknown identities earn nothing.
func RewardFor(t Tile) Reward {
	return rewards[t]
}
