// Package config loads analyzer settings from a JSON file and the environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/lpernett/godotenv"

	"github.com/kuandriy/indostem/internal/persist"
)

// Config matches the JSON config file structure.
type Config struct {
	Derivational    bool `json:"derivational"`
	RemoveStopWords bool `json:"removeStopWords"`
	MinLength       int  `json:"minLength"`
	Debug           bool `json:"debug"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Derivational: true,
	}
}

// Load reads the config file at path and applies environment overrides.
//
// Only keys present in the file override defaults, so a file that sets
// "derivational": false is honoured while a file that omits it keeps the
// default of true. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	raw := make(map[string]json.RawMessage)
	if err := persist.Load(path, &raw); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	if len(raw) > 0 {
		var userCfg Config
		if err := persist.Load(path, &userCfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
		if _, ok := raw["derivational"]; ok {
			cfg.Derivational = userCfg.Derivational
		}
		if _, ok := raw["removeStopWords"]; ok {
			cfg.RemoveStopWords = userCfg.RemoveStopWords
		}
		if _, ok := raw["minLength"]; ok {
			cfg.MinLength = userCfg.MinLength
		}
		if _, ok := raw["debug"]; ok {
			cfg.Debug = userCfg.Debug
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if cfg.MinLength < 0 {
		return cfg, fmt.Errorf("invalid minLength %d", cfg.MinLength)
	}
	return cfg, nil
}

// LoadDotEnv loads variables from a .env file if one exists. Variables that
// are already set in the environment win.
func LoadDotEnv(path string) error {
	if !persist.Exists(path) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	for _, b := range []struct {
		key string
		dst *bool
	}{
		{"INDOSTEM_DERIVATIONAL", &cfg.Derivational},
		{"INDOSTEM_REMOVE_STOPWORDS", &cfg.RemoveStopWords},
		{"INDOSTEM_DEBUG", &cfg.Debug},
	} {
		v := os.Getenv(b.key)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", b.key, err)
		}
		*b.dst = parsed
	}

	if v := os.Getenv("INDOSTEM_MIN_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid INDOSTEM_MIN_LENGTH: %w", err)
		}
		cfg.MinLength = n
	}
	return nil
}
