package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

var ErrInvalidConfig = errors.New("config: invalid")

// Config holds runtime settings that are not part of the prefab data.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	// PrefabDir overrides the embedded prefabs. Empty uses ./prefabs when it
	// exists.
	PrefabDir string `env:"DENSETSU_PREFAB_DIR"`
	Watch     bool   `env:"DENSETSU_WATCH" envDefault:"true"`
	TPS       int    `env:"DENSETSU_TPS" envDefault:"60"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.TPS <= 0 {
		return Config{}, fmt.Errorf("%w: DENSETSU_TPS must be positive, got %d", ErrInvalidConfig, cfg.TPS)
	}
	return cfg, nil
}
