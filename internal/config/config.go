package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/mines"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "MINES_"

type LogConfig struct {
	Level      string `json:"level" yaml:"level" env:"LEVEL"`
	File       string `json:"file" yaml:"file" env:"FILE"`
	MaxSizeMB  int    `json:"max_size_mb" yaml:"max_size_mb" env:"MAX_SIZE_MB"`
	MaxBackups int    `json:"max_backups" yaml:"max_backups" env:"MAX_BACKUPS"`
	MaxAgeDays int    `json:"max_age_days" yaml:"max_age_days" env:"MAX_AGE_DAYS"`
}

type Config struct {
	Mode         string    `json:"mode" yaml:"mode" env:"MODE"`
	Difficulty   string    `json:"difficulty" yaml:"difficulty" env:"DIFFICULTY"`
	Seed         uint64    `json:"seed" yaml:"seed" env:"SEED"` /* 0 picks a time-based seed */
	TickInterval Duration  `json:"tick_interval" yaml:"tick_interval" env:"TICK"`
	Log          LogConfig `json:"log" yaml:"log" envPrefix:"LOG_"`
}

func Default() Config {
	return Config{
		Mode:       "production",
		Difficulty: "easy",
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads the config file at path, if any, on top of [Default] and then
// applies MINES_* environment overrides. Files ending in .yaml or .yml are
// parsed as YAML, anything else as JSON.
func Load(path string) (*Config, error) {
	config := Default()
	if path != "" {
		if err := ReadConfig(path, &config); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(&config, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("unable to parse environment: %w", err)
	}
	if _, err := config.Params(); err != nil {
		return nil, err
	}
	return &config, nil
}

func ReadConfig(path string, config *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(b, config)
	default:
		return json.Unmarshal(b, config)
	}
}

func (c Config) Params() (mines.GameParams, error) {
	return mines.ParseGameParams(c.Difficulty)
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":           c.Mode,
		"difficulty":     c.Difficulty,
		"seed":           c.Seed,
		"tick_interval":  c.TickInterval.Duration.String(),
		"log_level":      c.Log.Level,
		"log_file":       c.Log.File,
		"log_max_size":   c.Log.MaxSizeMB,
		"log_max_backup": c.Log.MaxBackups,
		"log_max_age":    c.Log.MaxAgeDays,
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}
