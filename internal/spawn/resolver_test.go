package spawn

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/questgen/internal/geo"
	"github.com/udisondev/questgen/internal/model"
)

// mockTables для тестов
type mockTables map[model.EntityKind]map[int32][]model.SpawnRecord

func (m mockTables) Spawns(kind model.EntityKind, id int32) []model.SpawnRecord {
	return m[kind][id]
}

// mockRowStore для тестов
type mockRowStore struct {
	rows  map[int32][]model.WorldPoint
	err   error
	calls int
}

func (s *mockRowStore) SpawnRows(_ context.Context, id int32, _ model.EntityKind) ([]model.WorldPoint, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.rows[id], nil
}

func TestResolveSpawns_TableWins(t *testing.T) {
	tables := mockTables{model.KindCreature: {
		100: {
			{EntityID: 100, ZoneID: 12, LocalX: 50, LocalY: 50},
			{EntityID: 100, ZoneID: 999999, LocalX: 10, LocalY: 10}, // unknown zone, skipped
		},
	}}
	store := &mockRowStore{rows: map[int32][]model.WorldPoint{100: {{X: 1, Y: 1}}}}
	r := NewResolver(tables, geo.Default(), store)

	points, src, err := r.Resolve(context.Background(), 100, model.KindCreature)
	require.NoError(t, err)
	assert.Equal(t, SourceTable, src)
	require.Len(t, points, 1)

	want, _ := geo.PercentToWorld(12, 50, 50)
	assert.Equal(t, want, points[0])
	assert.Zero(t, store.calls, "relational store must not be consulted")
}

func TestResolveSpawns_TableRecordsAllUnconvertible(t *testing.T) {
	tables := mockTables{model.KindObject: {
		7: {{EntityID: 7, ZoneID: 999999, LocalX: 10, LocalY: 10}},
	}}
	store := &mockRowStore{rows: map[int32][]model.WorldPoint{7: {{X: 500, Y: 500}}}}
	r := NewResolver(tables, geo.Default(), store)

	points, src, err := r.Resolve(context.Background(), 7, model.KindObject)
	require.NoError(t, err)
	assert.Equal(t, SourceTable, src)
	assert.Empty(t, points)
	assert.Zero(t, store.calls)
}

func TestResolveSpawns_FallbackFiltersPlaceholders(t *testing.T) {
	store := &mockRowStore{rows: map[int32][]model.WorldPoint{
		55: {
			{X: 0, Y: 0, Z: 10, ContinentID: 1},
			{X: 0.05, Y: -0.09, ContinentID: 1},
			{X: 0.05, Y: 250, ContinentID: 1}, // only x is near zero: kept
			{X: -1200.5, Y: 300.25, Z: 12, ContinentID: 1},
		},
	}}
	r := NewResolver(mockTables{}, geo.Default(), store)

	points, err := r.ResolveSpawns(context.Background(), 55, model.KindCreature)
	require.NoError(t, err)
	assert.Equal(t, []model.WorldPoint{
		{X: 0.05, Y: 250, ContinentID: 1},
		{X: -1200.5, Y: 300.25, Z: 12, ContinentID: 1},
	}, points)
	assert.Equal(t, 1, store.calls)
}

func TestResolveSpawns_StoreError(t *testing.T) {
	boom := errors.New("connection reset")
	r := NewResolver(mockTables{}, geo.Default(), &mockRowStore{err: boom})

	_, err := r.ResolveSpawns(context.Background(), 1, model.KindObject)
	assert.ErrorIs(t, err, boom)
}

func TestResolveSpawns_NoStore(t *testing.T) {
	r := NewResolver(mockTables{}, geo.Default(), nil)

	points, src, err := r.Resolve(context.Background(), 1, model.KindCreature)
	require.NoError(t, err)
	assert.Empty(t, points)
	assert.Equal(t, SourceNone, src)
}

func TestIsValidSpawn(t *testing.T) {
	assert.False(t, IsValidSpawn(model.WorldPoint{}))
	assert.False(t, IsValidSpawn(model.WorldPoint{X: -0.099, Y: 0.099}))
	assert.True(t, IsValidSpawn(model.WorldPoint{X: 0.1, Y: 0}))
	assert.True(t, IsValidSpawn(model.WorldPoint{X: 0, Y: -0.1}))
}
