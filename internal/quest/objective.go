package quest

import "github.com/udisondev/questgen/internal/model"

// MaxObjectives — число слотов ReqCreatureOrGO/ReqItem в quest_template.
const MaxObjectives = 4

// SpecialFlagExploration marks exploration quests in SpecialFlags.
const SpecialFlagExploration int32 = 2

// Quest types understood by the profile exporter.
const (
	TypeNone        = "None"
	TypeExploration = "Exploration"
	TypeKillAndLoot = "KillAndLoot"
	TypeGatherer    = "Gatherer"
)

// ClassifyObjectives turns the raw objective slots of a quest into objectives.
// Slot numbers are 1-based. An item requirement makes the slot a loot
// objective; otherwise a positive id is a creature to kill and a negative id
// a game object to use.
func ClassifyObjectives(questID int32, slots []model.ObjectiveSlot) []model.Objective {
	var out []model.Objective
	for i, s := range slots {
		if i >= MaxObjectives {
			break
		}
		slot := i + 1

		switch {
		case s.ItemID > 0:
			out = append(out, model.Objective{
				QuestID:  questID,
				Slot:     slot,
				Type:     model.ObjectiveLoot,
				TargetID: abs32(s.CreatureOrGOID),
				ItemID:   s.ItemID,
				Count:    s.ItemCount,
			})
		case s.CreatureOrGOID > 0:
			out = append(out, model.Objective{
				QuestID:  questID,
				Slot:     slot,
				Type:     model.ObjectiveKill,
				TargetID: s.CreatureOrGOID,
				Count:    s.CreatureOrGOCount,
			})
		case s.CreatureOrGOID < 0:
			out = append(out, model.Objective{
				QuestID:  questID,
				Slot:     slot,
				Type:     model.ObjectiveGather,
				TargetID: -s.CreatureOrGOID,
				Count:    s.CreatureOrGOCount,
			})
		}
	}
	return out
}

// TypeOf derives the exporter quest type from flags and objectives.
func TypeOf(q model.Quest, objectives []model.Objective) string {
	if q.SpecialFlags&SpecialFlagExploration != 0 {
		return TypeExploration
	}
	if len(objectives) == 0 {
		return TypeNone
	}

	var gather bool
	for _, o := range objectives {
		switch o.Type {
		case model.ObjectiveKill, model.ObjectiveLoot:
			return TypeKillAndLoot
		case model.ObjectiveGather:
			gather = true
		}
	}
	if gather {
		return TypeGatherer
	}
	return TypeNone
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
