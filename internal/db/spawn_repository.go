package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/udisondev/questgen/internal/model"
)

// SpawnRepository reads the creature and gameobject spawn tables.
type SpawnRepository struct {
	pool *pgxpool.Pool
}

// NewSpawnRepository creates a new spawn repository
func NewSpawnRepository(pool *pgxpool.Pool) *SpawnRepository {
	return &SpawnRepository{pool: pool}
}

// SpawnRows returns every raw spawn position of an entity, ordered by guid.
// Placeholder rows are returned as stored; filtering is the resolver's job.
func (r *SpawnRepository) SpawnRows(ctx context.Context, entityID int32, kind model.EntityKind) ([]model.WorldPoint, error) {
	t, err := TablesFor(kind)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT position_x, position_y, position_z, map
		FROM ` + t.Spawn + `
		WHERE id = $1
		ORDER BY guid
	`

	rows, err := r.pool.Query(ctx, query, entityID)
	if err != nil {
		return nil, fmt.Errorf("loading %s spawns of %d: %w", kind, entityID, err)
	}
	defer rows.Close()

	points := make([]model.WorldPoint, 0, 16)
	for rows.Next() {
		var p model.WorldPoint
		if err := rows.Scan(&p.X, &p.Y, &p.Z, &p.ContinentID); err != nil {
			return nil, fmt.Errorf("scanning spawn row: %w", err)
		}
		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating spawn rows: %w", err)
	}

	return points, nil
}
