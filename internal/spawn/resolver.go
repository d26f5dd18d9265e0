package spawn

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/udisondev/questgen/internal/model"
)

// UnsetEpsilon — relational rows with |x| and |y| both below it are placeholder
// coordinates and are dropped.
const UnsetEpsilon = 0.1

// TableSource yields structured-table spawn records (questie.Cache).
type TableSource interface {
	Spawns(kind model.EntityKind, entityID int32) []model.SpawnRecord
}

// Converter maps zone percent coordinates to world coordinates (geo.Table).
type Converter interface {
	PercentToWorld(zoneID int32, percentX, percentY float64) (model.WorldPoint, bool)
}

// RowStore loads raw spawn positions of an entity from the relational store.
type RowStore interface {
	SpawnRows(ctx context.Context, entityID int32, kind model.EntityKind) ([]model.WorldPoint, error)
}

// Source tells which backend produced a resolution.
type Source uint8

const (
	SourceNone Source = iota
	SourceTable
	SourceStore
)

func (s Source) String() string {
	switch s {
	case SourceTable:
		return "questie"
	case SourceStore:
		return "db"
	default:
		return "none"
	}
}

// Resolver turns entity ids into world-coordinate spawn points.
// Structured-table data is authoritative: when it has any record for an
// entity, relational rows are never consulted for that entity.
type Resolver struct {
	tables TableSource
	conv   Converter
	store  RowStore
}

// NewResolver creates a Resolver. store may be nil, which disables the fallback.
func NewResolver(tables TableSource, conv Converter, store RowStore) *Resolver {
	return &Resolver{tables: tables, conv: conv, store: store}
}

// ResolveSpawns returns the world positions of entityID.
func (r *Resolver) ResolveSpawns(ctx context.Context, entityID int32, kind model.EntityKind) ([]model.WorldPoint, error) {
	points, _, err := r.Resolve(ctx, entityID, kind)
	return points, err
}

// Resolve is ResolveSpawns that also reports which source answered.
func (r *Resolver) Resolve(ctx context.Context, entityID int32, kind model.EntityKind) ([]model.WorldPoint, Source, error) {
	if records := r.tables.Spawns(kind, entityID); len(records) > 0 {
		points := make([]model.WorldPoint, 0, len(records))
		for _, rec := range records {
			p, ok := r.conv.PercentToWorld(rec.ZoneID, rec.LocalX, rec.LocalY)
			if !ok {
				continue
			}
			points = append(points, p)
		}
		slog.Debug("spawns from questie", "kind", kind, "entity", entityID, "records", len(records), "points", len(points))
		return points, SourceTable, nil
	}

	if r.store == nil {
		return nil, SourceNone, nil
	}

	rows, err := r.store.SpawnRows(ctx, entityID, kind)
	if err != nil {
		return nil, SourceNone, fmt.Errorf("loading %s %d spawn rows: %w", kind, entityID, err)
	}

	points := make([]model.WorldPoint, 0, len(rows))
	for _, p := range rows {
		if IsValidSpawn(p) {
			points = append(points, p)
		}
	}
	slog.Debug("spawns from db", "kind", kind, "entity", entityID, "rows", len(rows), "points", len(points))
	return points, SourceStore, nil
}

// IsValidSpawn rejects placeholder positions near the map origin.
func IsValidSpawn(p model.WorldPoint) bool {
	return !(math.Abs(p.X) < UnsetEpsilon && math.Abs(p.Y) < UnsetEpsilon)
}
