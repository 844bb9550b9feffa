package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const toppaFile = "toppa.yaml"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// LoadToppa loads Toppa configuration.
// Search order: customPath -> ~/.toppa/configs/toppa.yaml -> ./configs/toppa.yaml -> embedded default
//
// Files may be partial; missing keys keep their default values.
func LoadToppa(customPath string) (ToppaConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ToppaConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseToppa(data)
		if err != nil {
			return ToppaConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(toppaFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseToppa(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", toppaFile)); err == nil {
		if cfg, err := ParseToppa(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseToppa(defaultToppaYAML)
	if err != nil {
		return DefaultToppaConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseToppa validates a YAML document against the rules schema and
// decodes it over the defaults.
func ParseToppa(data []byte) (ToppaConfig, error) {
	if err := validateSchema(data); err != nil {
		return ToppaConfig{}, err
	}

	cfg := DefaultToppaConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ToppaConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ToppaConfig{}, err
	}
	return cfg, nil
}

// Validate checks constraints the schema cannot express.
func (c ToppaConfig) Validate() error {
	if c.Timing.TimeLimit <= 0 {
		return errors.New("timing.time_limit must be positive")
	}
	if c.Timing.CountdownBeat <= 0 {
		return errors.New("timing.countdown_beat must be positive")
	}
	if c.Spawn.One+c.Spawn.Two+c.Spawn.Dark <= 0 {
		return errors.New("spawn weights must not all be zero")
	}
	return nil
}

func validateSchema(data []byte) error {
	s, err := rulesSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc == nil {
		// Empty document: everything defaults.
		return nil
	}

	// The validator wants JSON-shaped values, so round-trip through JSON.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config is not representable as JSON: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}

	if err := s.Validate(v); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func rulesSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("toppa.schema.json", toppaSchemaJSON)
	})
	return schema, schemaErr
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".toppa", "configs", filename)
}
