package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/questgen/internal/db/sqlitestore"
	"github.com/udisondev/questgen/internal/model"
	"github.com/udisondev/questgen/internal/planner"
	"github.com/udisondev/questgen/internal/testutil"
)

func TestParseZoneIDs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []int32
		wantErr bool
	}{
		{"single", []string{"12"}, []int32{12}, false},
		{"several", []string{"12", "40", "3524"}, []int32{12, 40, 3524}, false},
		{"empty", nil, []int32{}, false},
		{"not a number", []string{"elwynn"}, nil, true},
		{"zero", []string{"0"}, nil, true},
		{"negative", []string{"-5"}, nil, true},
		{"overflow", []string{"99999999999"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseZoneIDs(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArgs(t *testing.T) {
	o, err := parseArgs([]string{"-faction", "Horde", "-workers", "2", "12", "40"})
	require.NoError(t, err)
	assert.Equal(t, "Horde", o.faction)
	assert.Equal(t, 2, o.workers)
	assert.Equal(t, []int32{12, 40}, o.zones)

	o, err = parseArgs([]string{"-search", "forest"})
	require.NoError(t, err)
	assert.Equal(t, "forest", o.search)

	_, err = parseArgs(nil)
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("verbose"))
}

func TestRun_Search(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-search", "ELWYNN"}, &out))
	assert.Equal(t, "12\tElwynn Forest\n", out.String())

	out.Reset()
	require.NoError(t, run(context.Background(), []string{"-list"}, &out))
	assert.Contains(t, out.String(), "12\tElwynn Forest\n")
	assert.Contains(t, out.String(), "40\tWestfall\n")

	out.Reset()
	require.NoError(t, run(context.Background(), []string{"-search", "no such zone"}, &out))
	assert.Contains(t, out.String(), "no zones match")
}

func TestRun_SQLite(t *testing.T) {
	ctx := testutil.ContextWithTimeout(t, 30*time.Second)
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "world.db")

	s, err := sqlitestore.Open(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Migrate(ctx))
	_, err = s.DB().ExecContext(ctx, testutil.WorldFixtureSQL)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	cfgPath := filepath.Join(dir, "questgen.yaml")
	cfg := "log_level: error\n" +
		"database:\n  driver: sqlite\n  path: " + dbPath + "\n" +
		"questie:\n  dir: " + filepath.Join(dir, "questie") + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	outPath := filepath.Join(dir, "plans.json")
	require.NoError(t, run(ctx, []string{"-config", cfgPath, "-out", outPath, "12", "40"}, &bytes.Buffer{}))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var plans []planner.ZonePlan
	require.NoError(t, json.Unmarshal(data, &plans))
	require.Len(t, plans, 2)

	elwynn := plans[0]
	assert.Equal(t, int32(12), elwynn.ZoneID)
	// 102 только для Орды
	require.Len(t, elwynn.Quests, 2)
	assert.Equal(t, int32(100), elwynn.Quests[0].Quest.ID)
	assert.Equal(t, int32(101), elwynn.Quests[1].Quest.ID)
	assert.Equal(t, [][]int32{{100, 101}}, elwynn.Chains)
	assert.Equal(t, []model.Item{{ID: 9000, Name: "Wolf Pelt"}}, elwynn.Quests[1].LootItems)

	// заглушка около (0,0) отброшена, остаётся одна точка волка
	require.Len(t, elwynn.Quests[0].Targets, 1)
	assert.Equal(t, 1, elwynn.Quests[0].Targets[0].Spawns)

	westfall := plans[1]
	assert.Equal(t, int32(40), westfall.ZoneID)
	require.Len(t, westfall.Quests, 1)
	require.NotNil(t, westfall.Quests[0].StartItem)
	assert.Equal(t, "Torn Letter", westfall.Quests[0].StartItem.Name)
}

func TestRun_UnknownDriver(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "questgen.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("database:\n  driver: oracle\n"), 0o644))

	err := run(context.Background(), []string{"-config", cfgPath, "12"}, &bytes.Buffer{})
	assert.Error(t, err)
}
