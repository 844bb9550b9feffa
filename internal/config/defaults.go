package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/toppa.yaml
var defaultToppaYAML []byte

//go:embed defaults/toppa.schema.json
var toppaSchemaJSON string

// DefaultToppaConfig returns the default Toppa configuration.
func DefaultToppaConfig() ToppaConfig {
	return ToppaConfig{
		Timing: TimingConfig{
			TimeLimit:       90 * time.Second,
			CountdownBeat:   time.Second,
			CountdownBeats:  3,
			FinishDelay:     3 * time.Second,
			MoveAnimation:   100 * time.Millisecond,
			ChangeAnimation: 200 * time.Millisecond,
		},
		Spawn: SpawnConfig{
			One:  0.85,
			Two:  0.10,
			Dark: 0.05,
		},
	}
}
