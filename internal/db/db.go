package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a pgx connection pool for the world database.
type DB struct {
	pool *pgxpool.Pool
}

// New connects to PostgreSQL and returns a DB handle.
func New(ctx context.Context, dsn string) (*DB, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &DB{pool: pool}, nil
}

// Close closes the database connection pool.
func (d *DB) Close() {
	d.pool.Close()
}

// World returns the full set of world repositories over this pool.
func (d *DB) World() *World {
	return NewWorld(d.pool)
}

// World bundles the read-only world repositories consumed by the planner.
type World struct {
	*QuestRepository
	*SpawnRepository
	*NpcRepository
	*LootRepository
}

// NewWorld creates all world repositories over one pool.
func NewWorld(pool *pgxpool.Pool) *World {
	return &World{
		QuestRepository: NewQuestRepository(pool),
		SpawnRepository: NewSpawnRepository(pool),
		NpcRepository:   NewNpcRepository(pool),
		LootRepository:  NewLootRepository(pool),
	}
}
