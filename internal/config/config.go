package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvPath overrides the default config location.
const EnvPath = "QUESTGEN_CONFIG"

// DefaultPath is used when neither -config nor EnvPath is set.
const DefaultPath = "config/questgen.yaml"

// Database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Generator holds all configuration for the quest profile generator.
type Generator struct {
	LogLevel string `yaml:"log_level"`

	// Planning
	Faction            string  `yaml:"faction"`
	Workers            int     `yaml:"workers"`
	Output             string  `yaml:"output"`
	MaxStarterDistance float64 `yaml:"max_starter_distance"`

	Database DatabaseConfig `yaml:"database"`
	Questie  QuestieConfig  `yaml:"questie"`
	Services ServicesConfig `yaml:"services"`
}

// DatabaseConfig holds world database connection parameters.
// Driver "postgres" uses Host..SSLMode, driver "sqlite" uses Path.
type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
	Path     string `yaml:"path"`
	Migrate  bool   `yaml:"migrate"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// QuestieConfig points at the spawn table documents.
type QuestieConfig struct {
	Dir        string `yaml:"dir"`
	NpcFile    string `yaml:"npc_file"`
	ObjectFile string `yaml:"object_file"`
}

// ServicesConfig selects the zone service NPCs added to each plan.
type ServicesConfig struct {
	Vendors       bool `yaml:"vendors"`
	FlightMasters bool `yaml:"flight_masters"`
	Trainers      bool `yaml:"trainers"`
}

// DefaultGenerator returns Generator config with sensible defaults.
func DefaultGenerator() Generator {
	return Generator{
		LogLevel:           "info",
		Faction:            "Alliance",
		Workers:            4,
		Output:             "",
		MaxStarterDistance: 3000,
		Database: DatabaseConfig{
			Driver:   DriverPostgres,
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "mangos",
			Password: "mangos",
			DBName:   "tbcmangos",
			SSLMode:  "disable",
			Path:     "data/world.db",
		},
		Questie: QuestieConfig{
			Dir:        "data/questie",
			NpcFile:    "tbcNpcDB.lua",
			ObjectFile: "tbcObjectDB.lua",
		},
		Services: ServicesConfig{
			Vendors:       true,
			FlightMasters: true,
			Trainers:      true,
		},
	}
}

// Validate checks values that cannot be defaulted silently.
func (g Generator) Validate() error {
	switch g.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unknown database driver %q", g.Database.Driver)
	}
	if g.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", g.Workers)
	}
	if g.MaxStarterDistance < 0 {
		return fmt.Errorf("max_starter_distance must not be negative, got %v", g.MaxStarterDistance)
	}
	return nil
}

// ResolvePath picks the config path: explicit flag, then EnvPath, then DefaultPath.
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// LoadGenerator loads generator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadGenerator(path string) (Generator, error) {
	cfg := DefaultGenerator()

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
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}
