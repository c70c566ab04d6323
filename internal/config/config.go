package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvPath overrides the config file path of the simulator.
const EnvPath = "TUXBATTLE_CONFIG"

// DefaultPath is used when EnvPath is unset.
const DefaultPath = "config/battlesim.yaml"

// Battlesim holds all configuration for the battle simulator.
type Battlesim struct {
	LogLevel string `yaml:"log_level"`

	Combat     Combat     `yaml:"combat"`
	Simulation Simulation `yaml:"simulation"`
	Catalog    Catalog    `yaml:"catalog"`
	Database   Database   `yaml:"database"`
	Telemetry  Telemetry  `yaml:"telemetry"`
}

// Combat tunes the turn resolution.
type Combat struct {
	// Seed of the battle RNG; 0 picks a random seed per battle.
	Seed            uint64  `yaml:"seed"`
	MultiplierSpeed float64 `yaml:"multiplier_speed"`
	SpeedOffset     float64 `yaml:"speed_offset"`
	InPlayPerSide   int     `yaml:"in_play_per_side"`
	// MaxTurns stops a battle that does not finish; 0 means no limit.
	MaxTurns int `yaml:"max_turns"`
}

// Simulation describes the batch of battles run by cmd/battlesim.
type Simulation struct {
	Battles     int `yaml:"battles"`
	Parallelism int `yaml:"parallelism"`
	Level       int `yaml:"level"`
	PartySize   int `yaml:"party_size"`
}

// Catalog points at an optional YAML content pack overlaid on the built-in data.
type Catalog struct {
	Path string `yaml:"path"`
}

// Database holds PostgreSQL connection parameters.
type Database struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
	MaxConns int32  `yaml:"max_conns"`
}

// DSN returns the PostgreSQL connection string.
func (d Database) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Telemetry configures OpenTelemetry tracing.
type Telemetry struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
	// Endpoint overrides OTEL_EXPORTER_OTLP_ENDPOINT when set.
	Endpoint string `yaml:"endpoint"`
}

// DefaultBattlesim returns Battlesim config with sensible defaults.
func DefaultBattlesim() Battlesim {
	return Battlesim{
		LogLevel: "info",
		Combat: Combat{
			MultiplierSpeed: 1.5,
			SpeedOffset:     3,
			InPlayPerSide:   1,
			MaxTurns:        200,
		},
		Simulation: Simulation{
			Battles:     10,
			Parallelism: 4,
			Level:       10,
			PartySize:   3,
		},
		Database: Database{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "tuxbattle",
			Password: "tuxbattle",
			DBName:   "tuxbattle",
			SSLMode:  "disable",
			MaxConns: 10,
		},
		Telemetry: Telemetry{
			ServiceName: "tuxbattle",
		},
	}
}

// LoadBattlesim loads simulator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadBattlesim(path string) (Battlesim, error) {
	cfg := DefaultBattlesim()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// Path returns the config path from EnvPath, or DefaultPath.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

func (c Battlesim) validate() error {
	switch {
	case c.Combat.InPlayPerSide < 1:
		return fmt.Errorf("combat.in_play_per_side must be >= 1, got %d", c.Combat.InPlayPerSide)
	case c.Combat.MultiplierSpeed <= 0:
		return fmt.Errorf("combat.multiplier_speed must be > 0, got %v", c.Combat.MultiplierSpeed)
	case c.Combat.SpeedOffset < 0:
		return fmt.Errorf("combat.speed_offset must be >= 0, got %v", c.Combat.SpeedOffset)
	case c.Simulation.Parallelism < 1:
		return fmt.Errorf("simulation.parallelism must be >= 1, got %d", c.Simulation.Parallelism)
	case c.Simulation.PartySize < 1:
		return fmt.Errorf("simulation.party_size must be >= 1, got %d", c.Simulation.PartySize)
	}
	return nil
}
