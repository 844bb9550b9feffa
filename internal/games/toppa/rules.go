package toppa

import "github.com/vovakirdan/toppa/internal/config"

// LoadConfig reads rules through the config search path and converts them
// to session settings.
func LoadConfig(path string) (Config, error) {
	rc, err := config.LoadToppa(path)
	if err != nil {
		return Config{}, err
	}
	return FromRules(rc), nil
}

// FromRules converts file-level rules to session settings.
func FromRules(rc config.ToppaConfig) Config {
	return Config{
		TimeLimit:      rc.Timing.TimeLimit,
		CountdownBeat:  rc.Timing.CountdownBeat,
		CountdownBeats: rc.Timing.CountdownBeats,
		FinishDelay:    rc.Timing.FinishDelay,
		MoveDuration:   rc.Timing.MoveAnimation,
		ChangeDuration: rc.Timing.ChangeAnimation,
		Spawn: SpawnWeights{
			One:  rc.Spawn.One,
			Two:  rc.Spawn.Two,
			Dark: rc.Spawn.Dark,
		},
	}
}
