package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/udisondev/questgen/internal/model"
)

// NpcRepository reads creature/gameobject templates and quest relations.
type NpcRepository struct {
	pool *pgxpool.Pool
}

// NewNpcRepository creates a new NPC repository
func NewNpcRepository(pool *pgxpool.Pool) *NpcRepository {
	return &NpcRepository{pool: pool}
}

// QuestRelationQuery selects the first spawned entity of relation for a quest.
// placeholder is "$1" for pgx and "?" for SQLite.
func QuestRelationQuery(t KindTables, relation, placeholder string) string {
	return `
		SELECT tpl.entry, tpl.name, s.position_x, s.position_y, s.position_z, s.map
		FROM ` + relation + ` rel
		JOIN ` + t.Template + ` tpl ON tpl.entry = rel.id
		JOIN ` + t.Spawn + ` s ON s.id = tpl.entry
		WHERE rel.quest = ` + placeholder + `
		ORDER BY tpl.entry, s.guid
		LIMIT 1
	`
}

// QuestStarter returns the entity that gives questID: an NPC if any, otherwise a game object.
// Returns nil, nil if nothing spawned starts the quest.
func (r *NpcRepository) QuestStarter(ctx context.Context, questID int32) (*model.QuestNpc, error) {
	return r.questRelation(ctx, questID, func(t KindTables) string { return t.Starter })
}

// QuestEnder returns the entity that takes questID back, NPCs first.
// Returns nil, nil if nothing spawned ends the quest.
func (r *NpcRepository) QuestEnder(ctx context.Context, questID int32) (*model.QuestNpc, error) {
	return r.questRelation(ctx, questID, func(t KindTables) string { return t.Ender })
}

func (r *NpcRepository) questRelation(ctx context.Context, questID int32, relation func(KindTables) string) (*model.QuestNpc, error) {
	for _, kind := range QuestKinds {
		t, err := TablesFor(kind)
		if err != nil {
			return nil, err
		}

		npc := model.QuestNpc{Kind: kind}
		p := &npc.Position
		err = r.pool.QueryRow(ctx, QuestRelationQuery(t, relation(t), "$1"), questID).
			Scan(&npc.EntityID, &npc.Name, &p.X, &p.Y, &p.Z, &p.ContinentID)
		if err == nil {
			return &npc, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("querying %s for quest %d: %w", relation(t), questID, err)
		}
	}
	return nil, nil
}

// IsGameObject reports whether entry names a game object template.
func (r *NpcRepository) IsGameObject(ctx context.Context, entry int32) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM gameobject_template WHERE entry = $1)`, entry,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking gameobject %d: %w", entry, err)
	}
	return exists, nil
}

// EntityName returns the template name, or "" when the template is unknown.
func (r *NpcRepository) EntityName(ctx context.Context, entry int32, kind model.EntityKind) (string, error) {
	t, err := TablesFor(kind)
	if err != nil {
		return "", err
	}

	var name string
	err = r.pool.QueryRow(ctx, `SELECT name FROM `+t.Template+` WHERE entry = $1`, entry).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("loading %s template %d: %w", kind, entry, err)
	}
	return name, nil
}

// ServiceNpcQuery selects every spawn of a creature whose npc_flags intersect a mask on one map.
// Templates whose name starts with "[" ("[PH] Vendor", "[UNUSED] Vendor") are placeholders and skipped.
func ServiceNpcQuery(mapArg, maskArg string) string {
	return `
		SELECT tpl.entry, tpl.name, tpl.subname, tpl.npc_flags,
		       c.position_x, c.position_y, c.position_z, c.map
		FROM creature c
		JOIN creature_template tpl ON tpl.entry = c.id
		WHERE c.map = ` + mapArg + ` AND (tpl.npc_flags & ` + maskArg + `) <> 0
		  AND tpl.name NOT LIKE '[%'
		ORDER BY tpl.entry, c.guid
	`
}

// ServiceNpcs returns spawned NPCs on mapID whose flags intersect flagMask, one entry per spawn.
func (r *NpcRepository) ServiceNpcs(ctx context.Context, mapID, flagMask int32) ([]model.ServiceNpc, error) {
	rows, err := r.pool.Query(ctx, ServiceNpcQuery("$1", "$2"), mapID, flagMask)
	if err != nil {
		return nil, fmt.Errorf("querying service npcs on map %d: %w", mapID, err)
	}
	defer rows.Close()

	var npcs []model.ServiceNpc
	for rows.Next() {
		n, err := ScanServiceNpc(rows)
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

// ScanServiceNpc reads one row selected with ServiceNpcQuery.
func ScanServiceNpc(row Scanner) (model.ServiceNpc, error) {
	var n model.ServiceNpc
	p := &n.Position
	err := row.Scan(&n.EntityID, &n.Name, &n.SubName, &n.Flags, &p.X, &p.Y, &p.Z, &p.ContinentID)
	return n, err
}
