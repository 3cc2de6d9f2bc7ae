// Package config loads match configuration from yaml.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nandastone/AncientBeast/internal/model"
)

// Match holds all configuration for one battle server instance.
type Match struct {
	LogLevel string `yaml:"log_level"`

	// HTTP operational surface (health, metrics, state).
	HTTPAddr string `yaml:"http_addr"`

	// Clocks, in seconds. 0 disables the clock.
	TurnTime  int `yaml:"turn_time"`
	MatchTime int `yaml:"match_time"`

	Score ScorePoints `yaml:"score"`

	// Database for the replay action log. Leave DBName empty to run with
	// the in-memory no-op sink.
	Database DatabaseConfig `yaml:"database"`
}

// ScorePoints maps scoring event kinds to point values.
type ScorePoints struct {
	FirstKill    int `yaml:"first_kill"`
	Kill         int `yaml:"kill"`
	Deny         int `yaml:"deny"`
	Humiliation  int `yaml:"humiliation"`
	Annihilation int `yaml:"annihilation"`
	PickupDrop   int `yaml:"pickup_drop"`
}

// Value returns the point value for a score kind.
func (s ScorePoints) Value(k model.ScoreKind) int {
	switch k {
	case model.ScoreFirstKill:
		return s.FirstKill
	case model.ScoreKill:
		return s.Kill
	case model.ScoreDeny:
		return s.Deny
	case model.ScoreHumiliation:
		return s.Humiliation
	case model.ScoreAnnihilation:
		return s.Annihilation
	case model.ScorePickupDrop:
		return s.PickupDrop
	}
	return 0
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultMatch returns a Match config with sensible defaults.
func DefaultMatch() Match {
	return Match{
		LogLevel:  "info",
		HTTPAddr:  ":8080",
		TurnTime:  60,
		MatchTime: 0,
		Score: ScorePoints{
			FirstKill:    1,
			Kill:         3,
			Deny:         1,
			Humiliation:  5,
			Annihilation: 10,
			PickupDrop:   2,
		},
		Database: DatabaseConfig{
			Host:    "127.0.0.1",
			Port:    5432,
			User:    "beast",
			SSLMode: "disable",
		},
	}
}

// LoadMatch reads a Match config from a yaml file, starting from defaults.
func LoadMatch(path string) (Match, error) {
	cfg := DefaultMatch()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
