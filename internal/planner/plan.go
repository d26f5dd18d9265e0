package planner

import (
	"slices"

	"github.com/google/uuid"

	"github.com/udisondev/questgen/internal/model"
)

// ZonePlan — всё, что нужно экспортёру профиля для одной зоны и фракции.
type ZonePlan struct {
	RunID       uuid.UUID          `json:"run_id"`
	ZoneID      int32              `json:"zone_id"`
	ZoneName    string             `json:"zone_name"`
	ContinentID int32              `json:"continent_id"`
	HasBounds   bool               `json:"has_bounds"`
	Faction     string             `json:"faction"`
	Cyclic      bool               `json:"cyclic,omitempty"`
	Unresolved  int                `json:"unresolved,omitempty"`
	Quests      []QuestPlan        `json:"quests"`
	Chains      [][]int32          `json:"chains"`
	QuestNpcs   []NpcQuests        `json:"quest_npcs"`
	Services    []model.ServiceNpc `json:"services"`
}

// QuestPlan — один квест в порядке выполнения.
type QuestPlan struct {
	Quest          model.Quest       `json:"quest"`
	Type           string            `json:"type"`
	Details        string            `json:"details,omitempty"`
	ObjectivesText string            `json:"objectives_text,omitempty"`
	Objectives     []model.Objective `json:"objectives"`
	LootItems      []model.Item      `json:"loot_items,omitempty"`
	Targets        []Target          `json:"targets"`
	Hotspots       []model.FarmZone  `json:"hotspots"`
	Starter        *model.QuestNpc   `json:"starter,omitempty"`
	Ender          *model.QuestNpc   `json:"ender,omitempty"`
	StartItem      *model.Item       `json:"start_item,omitempty"`
}

// Target — сущность, которую нужно убить, облутать или использовать.
type Target struct {
	EntityID int32            `json:"entity_id"`
	Kind     model.EntityKind `json:"kind"`
	Name     string           `json:"name"`
	Spawns   int              `json:"spawns"`
}

// NpcQuests — NPC или game object с квестами, которые он выдаёт и принимает.
type NpcQuests struct {
	model.QuestNpc
	PickUp []int32 `json:"pick_up"`
	TurnIn []int32 `json:"turn_in"`
}

type npcKey struct {
	id   int32
	kind model.EntityKind
}

// registry дедуплицирует quest NPC по (id, kind), сохраняя порядок первого появления.
type registry struct {
	index map[npcKey]int
	list  []NpcQuests
}

func newRegistry() *registry {
	return &registry{index: make(map[npcKey]int)}
}

func (r *registry) add(npc *model.QuestNpc, questID int32, turnIn bool) {
	if npc == nil {
		return
	}
	key := npcKey{id: npc.EntityID, kind: npc.Kind}
	i, ok := r.index[key]
	if !ok {
		i = len(r.list)
		r.index[key] = i
		r.list = append(r.list, NpcQuests{QuestNpc: *npc})
	}

	e := &r.list[i]
	if turnIn {
		e.TurnIn = appendUnique(e.TurnIn, questID)
	} else {
		e.PickUp = appendUnique(e.PickUp, questID)
	}
}

func (r *registry) npcs() []NpcQuests {
	return r.list
}

func appendUnique(ids []int32, id int32) []int32 {
	if slices.Contains(ids, id) {
		return ids
	}
	return append(ids, id)
}
