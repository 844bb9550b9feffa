// Package config provides YAML-based rules configuration for Toppa.
package config

import "time"

// ToppaConfig contains all tunable rule timings and spawn odds.
type ToppaConfig struct {
	Timing TimingConfig `yaml:"timing"`
	Spawn  SpawnConfig  `yaml:"spawn"`
}

// TimingConfig defines the match clock and animation intervals.
// Durations are written as Go duration strings ("90s", "100ms").
type TimingConfig struct {
	TimeLimit       time.Duration `yaml:"time_limit"`
	CountdownBeat   time.Duration `yaml:"countdown_beat"`
	CountdownBeats  int           `yaml:"countdown_beats"`
	FinishDelay     time.Duration `yaml:"finish_delay"`
	MoveAnimation   time.Duration `yaml:"move_animation"`
	ChangeAnimation time.Duration `yaml:"change_animation"`
}

// SpawnConfig defines the relative odds of each spawned tile.
type SpawnConfig struct {
	One  float64 `yaml:"one"`
	Two  float64 `yaml:"two"`
	Dark float64 `yaml:"dark"`
}
