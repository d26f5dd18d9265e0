package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGenerator_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadGenerator(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultGenerator(), cfg)
}

func TestLoadGenerator_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questgen.yaml")
	data := `
log_level: debug
faction: Horde
workers: 8
max_starter_distance: 1500
database:
  driver: sqlite
  path: /tmp/world.db
  migrate: true
questie:
  dir: /opt/questie
services:
  trainers: false
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadGenerator(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "Horde", cfg.Faction)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 1500.0, cfg.MaxStarterDistance)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/world.db", cfg.Database.Path)
	assert.True(t, cfg.Database.Migrate)
	assert.Equal(t, "/opt/questie", cfg.Questie.Dir)
	// не заданные ключи остаются дефолтными
	assert.Equal(t, "tbcNpcDB.lua", cfg.Questie.NpcFile)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.False(t, cfg.Services.Trainers)
	assert.True(t, cfg.Services.Vendors)
}

func TestLoadGenerator_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"broken yaml", "workers: [1,"},
		{"unknown driver", "database:\n  driver: mysql\n"},
		{"zero workers", "workers: 0\n"},
		{"negative distance", "max_starter_distance: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "questgen.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o644))

			_, err := LoadGenerator(path)
			assert.Error(t, err)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{User: "u", Password: "p", Host: "db", Port: 5433, DBName: "world", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5433/world?sslmode=disable", d.DSN())
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvPath, "")
	assert.Equal(t, DefaultPath, ResolvePath(""))
	assert.Equal(t, "x.yaml", ResolvePath("x.yaml"))

	t.Setenv(EnvPath, "/etc/questgen.yaml")
	assert.Equal(t, "/etc/questgen.yaml", ResolvePath(""))
	assert.Equal(t, "x.yaml", ResolvePath("x.yaml"))
}
