// Package sqlitestore serves the world repositories from a local SQLite dump.
// Queries and schema match the PostgreSQL repositories in package db.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/udisondev/questgen/internal/db"
	"github.com/udisondev/questgen/internal/model"
)

// Store serves world queries from one SQLite file. Open creates the parent
// directory and Migrate writes the schema; every query method only reads.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if missing) the SQLite database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty sqlite path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating sqlite dir: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %s: %w", path, err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging sqlite %s: %w", path, err)
	}
	return &Store{db: sqlDB}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying handle.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Migrate applies the shared world schema.
func (s *Store) Migrate(ctx context.Context) error {
	return db.Migrate(ctx, s.db, db.DialectSQLite)
}

// QuestsByZone returns the solo, non-special quests of a zone ordered by min level, then id.
func (s *Store) QuestsByZone(ctx context.Context, zoneID int32) ([]model.Quest, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+db.QuestColumns+`
		FROM quest_template
		WHERE zone_or_sort = ? AND special_flags = 0 AND suggested_players = 0
		ORDER BY min_level, entry`, zoneID)
	if err != nil {
		return nil, fmt.Errorf("querying quests for zone %d: %w", zoneID, err)
	}
	defer rows.Close()

	var quests []model.Quest
	for rows.Next() {
		q, err := db.ScanQuest(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning quest row: %w", err)
		}
		quests = append(quests, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quest rows: %w", err)
	}
	return quests, nil
}

// ObjectiveSlots returns the four objective slots of a quest, nil when it does not exist.
func (s *Store) ObjectiveSlots(ctx context.Context, questID int32) ([]model.ObjectiveSlot, error) {
	slots, err := db.ScanObjectiveSlots(s.db.QueryRowContext(ctx,
		`SELECT `+db.ObjectiveColumns+` FROM quest_template WHERE entry = ?`, questID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading objectives of quest %d: %w", questID, err)
	}
	return slots, nil
}

// QuestText returns the details and objectives text of a quest.
func (s *Store) QuestText(ctx context.Context, questID int32) (details, objectives string, err error) {
	err = s.db.QueryRowContext(ctx,
		`SELECT details, objectives FROM quest_template WHERE entry = ?`, questID,
	).Scan(&details, &objectives)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", nil
		}
		return "", "", fmt.Errorf("loading text of quest %d: %w", questID, err)
	}
	return details, objectives, nil
}

// QuestStartItem returns the item that starts a quest, nil when none does.
func (s *Store) QuestStartItem(ctx context.Context, questID int32) (*model.Item, error) {
	var it model.Item
	err := s.db.QueryRowContext(ctx,
		`SELECT entry, name FROM item_template WHERE start_quest = ? ORDER BY entry LIMIT 1`, questID,
	).Scan(&it.ID, &it.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading start item of quest %d: %w", questID, err)
	}
	return &it, nil
}

// SpawnRows returns every raw spawn position of an entity, ordered by guid.
func (s *Store) SpawnRows(ctx context.Context, entityID int32, kind model.EntityKind) ([]model.WorldPoint, error) {
	t, err := db.TablesFor(kind)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT position_x, position_y, position_z, map
		FROM `+t.Spawn+`
		WHERE id = ?
		ORDER BY guid`, entityID)
	if err != nil {
		return nil, fmt.Errorf("loading %s spawns of %d: %w", kind, entityID, err)
	}
	defer rows.Close()

	var points []model.WorldPoint
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

// LootSources returns the ids of every entity of kind that drops itemID, ascending.
func (s *Store) LootSources(ctx context.Context, itemID int32, kind model.EntityKind) ([]int32, error) {
	t, err := db.TablesFor(kind)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT entry FROM `+t.Loot+` WHERE item = ? ORDER BY entry`, itemID)
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
func (s *Store) ItemName(ctx context.Context, itemID int32) (string, error) {
	var name string
	err := s.db.QueryRowContext(ctx, `SELECT name FROM item_template WHERE entry = ?`, itemID).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("loading item %d: %w", itemID, err)
	}
	return name, nil
}

// QuestStarter returns the entity that gives questID, NPCs first.
func (s *Store) QuestStarter(ctx context.Context, questID int32) (*model.QuestNpc, error) {
	return s.questRelation(ctx, questID, func(t db.KindTables) string { return t.Starter })
}

// QuestEnder returns the entity that takes questID back, NPCs first.
func (s *Store) QuestEnder(ctx context.Context, questID int32) (*model.QuestNpc, error) {
	return s.questRelation(ctx, questID, func(t db.KindTables) string { return t.Ender })
}

func (s *Store) questRelation(ctx context.Context, questID int32, relation func(db.KindTables) string) (*model.QuestNpc, error) {
	for _, kind := range db.QuestKinds {
		t, err := db.TablesFor(kind)
		if err != nil {
			return nil, err
		}

		npc := model.QuestNpc{Kind: kind}
		p := &npc.Position
		err = s.db.QueryRowContext(ctx, db.QuestRelationQuery(t, relation(t), "?"), questID).
			Scan(&npc.EntityID, &npc.Name, &p.X, &p.Y, &p.Z, &p.ContinentID)
		if err == nil {
			return &npc, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("querying %s for quest %d: %w", relation(t), questID, err)
		}
	}
	return nil, nil
}

// IsGameObject reports whether entry names a game object template.
func (s *Store) IsGameObject(ctx context.Context, entry int32) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM gameobject_template WHERE entry = ?)`, entry,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking gameobject %d: %w", entry, err)
	}
	return exists, nil
}

// EntityName returns the template name, or "" when the template is unknown.
func (s *Store) EntityName(ctx context.Context, entry int32, kind model.EntityKind) (string, error) {
	t, err := db.TablesFor(kind)
	if err != nil {
		return "", err
	}

	var name string
	err = s.db.QueryRowContext(ctx, `SELECT name FROM `+t.Template+` WHERE entry = ?`, entry).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("loading %s template %d: %w", kind, entry, err)
	}
	return name, nil
}

// ServiceNpcs returns spawned NPCs on mapID whose flags intersect flagMask, one entry per spawn.
func (s *Store) ServiceNpcs(ctx context.Context, mapID, flagMask int32) ([]model.ServiceNpc, error) {
	rows, err := s.db.QueryContext(ctx, db.ServiceNpcQuery("?", "?"), mapID, flagMask)
	if err != nil {
		return nil, fmt.Errorf("querying service npcs on map %d: %w", mapID, err)
	}
	defer rows.Close()

	var npcs []model.ServiceNpc
	for rows.Next() {
		n, err := db.ScanServiceNpc(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning service npc row: %w", err)
		}
		npcs = append(npcs, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating service npc rows: %w", err)
	}
	return npcs, nil
}
