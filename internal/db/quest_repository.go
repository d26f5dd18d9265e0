package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/udisondev/questgen/internal/model"
)

// QuestColumns — колонки quest_template в порядке ScanQuest.
const QuestColumns = `entry, title, min_level, quest_level, zone_or_sort, required_races,
		       prev_quest_id, next_quest_id, next_quest_in_chain, special_flags`

// ObjectiveColumns — четыре слота целей в порядке ScanObjectiveSlots.
const ObjectiveColumns = `req_creature_or_go_id1, req_creature_or_go_count1, req_item_id1, req_item_count1,
		       req_creature_or_go_id2, req_creature_or_go_count2, req_item_id2, req_item_count2,
		       req_creature_or_go_id3, req_creature_or_go_count3, req_item_id3, req_item_count3,
		       req_creature_or_go_id4, req_creature_or_go_count4, req_item_id4, req_item_count4`

// Scanner is satisfied by pgx.Row, pgx.Rows and *sql.Row/*sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// ScanQuest reads one row selected with QuestColumns.
func ScanQuest(row Scanner) (model.Quest, error) {
	var q model.Quest
	err := row.Scan(&q.ID, &q.Title, &q.MinLevel, &q.QuestLevel, &q.ZoneOrSort, &q.RequiredRaceMask,
		&q.PrevQuestID, &q.NextQuestID, &q.NextQuestInChainID, &q.SpecialFlags)
	return q, err
}

// ScanObjectiveSlots reads one row selected with ObjectiveColumns.
func ScanObjectiveSlots(row Scanner) ([]model.ObjectiveSlot, error) {
	slots := make([]model.ObjectiveSlot, 4)
	dest := make([]any, 0, 16)
	for i := range slots {
		s := &slots[i]
		dest = append(dest, &s.CreatureOrGOID, &s.CreatureOrGOCount, &s.ItemID, &s.ItemCount)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return slots, nil
}

// QuestRepository reads quest_template.
type QuestRepository struct {
	pool *pgxpool.Pool
}

// NewQuestRepository creates a new QuestRepository.
func NewQuestRepository(pool *pgxpool.Pool) *QuestRepository {
	return &QuestRepository{pool: pool}
}

// QuestsByZone returns the solo, non-special quests of a zone ordered by min level, then id.
func (r *QuestRepository) QuestsByZone(ctx context.Context, zoneID int32) ([]model.Quest, error) {
	query := `
		SELECT ` + QuestColumns + `
		FROM quest_template
		WHERE zone_or_sort = $1 AND special_flags = 0 AND suggested_players = 0
		ORDER BY min_level, entry
	`

	rows, err := r.pool.Query(ctx, query, zoneID)
	if err != nil {
		return nil, fmt.Errorf("querying quests for zone %d: %w", zoneID, err)
	}
	defer rows.Close()

	quests := make([]model.Quest, 0, 64)
	for rows.Next() {
		q, err := ScanQuest(rows)
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

// ObjectiveSlots returns the four objective slots of a quest.
// Returns nil, nil if the quest does not exist.
func (r *QuestRepository) ObjectiveSlots(ctx context.Context, questID int32) ([]model.ObjectiveSlot, error) {
	query := `SELECT ` + ObjectiveColumns + ` FROM quest_template WHERE entry = $1`

	slots, err := ScanObjectiveSlots(r.pool.QueryRow(ctx, query, questID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading objectives of quest %d: %w", questID, err)
	}
	return slots, nil
}

// QuestText returns the details and objectives text of a quest.
func (r *QuestRepository) QuestText(ctx context.Context, questID int32) (details, objectives string, err error) {
	err = r.pool.QueryRow(ctx,
		`SELECT details, objectives FROM quest_template WHERE entry = $1`, questID,
	).Scan(&details, &objectives)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", nil
		}
		return "", "", fmt.Errorf("loading text of quest %d: %w", questID, err)
	}
	return details, objectives, nil
}

// QuestStartItem returns the item that starts a quest.
// Returns nil, nil if the quest is not item-started.
func (r *QuestRepository) QuestStartItem(ctx context.Context, questID int32) (*model.Item, error) {
	var it model.Item
	err := r.pool.QueryRow(ctx,
		`SELECT entry, name FROM item_template WHERE start_quest = $1 ORDER BY entry LIMIT 1`, questID,
	).Scan(&it.ID, &it.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading start item of quest %d: %w", questID, err)
	}
	return &it, nil
}
