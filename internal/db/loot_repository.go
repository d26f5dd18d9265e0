package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/udisondev/questgen/internal/model"
)

// LootRepository reads loot tables and item names.
type LootRepository struct {
	pool *pgxpool.Pool
}

// NewLootRepository creates a new LootRepository.
func NewLootRepository(pool *pgxpool.Pool) *LootRepository {
	return &LootRepository{pool: pool}
}

// LootSources returns the ids of every entity of kind that drops itemID, ascending.
func (r *LootRepository) LootSources(ctx context.Context, itemID int32, kind model.EntityKind) ([]int32, error) {
	t, err := TablesFor(kind)
	if err != nil {
		return nil, err
	}

	query := `SELECT DISTINCT entry FROM ` + t.Loot + ` WHERE item = $1 ORDER BY entry`

	rows, err := r.pool.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("querying %s loot sources of item %d: %w", kind, itemID, err)
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning loot row: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating loot rows: %w", err)
	}

	return ids, nil
}

// ItemName returns the item name, or "" when the item is unknown.
func (r *LootRepository) ItemName(ctx context.Context, itemID int32) (string, error) {
	var name string
	err := r.pool.QueryRow(ctx, `SELECT name FROM item_template WHERE entry = $1`, itemID).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("loading item %d: %w", itemID, err)
	}
	return name, nil
}
