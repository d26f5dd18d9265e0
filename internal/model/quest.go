package model

// NoQuest — sentinel для полей-ссылок цепочки квестов (PrevQuestID, NextQuestID,
// NextQuestInChainID): 0 означает «ссылки нет».
const NoQuest int32 = 0

// Quest — запись квеста из реляционного хранилища.
// Immutable на время одного прохода резолвинга.
type Quest struct {
	ID                 int32  `json:"id"`
	Title              string `json:"title"`
	MinLevel           int32  `json:"min_level"`
	QuestLevel         int32  `json:"quest_level"`
	ZoneOrSort         int32  `json:"zone_or_sort"`
	RequiredRaceMask   int32  `json:"required_race_mask"`
	PrevQuestID        int32  `json:"prev_quest_id"`
	NextQuestID        int32  `json:"next_quest_id"`
	NextQuestInChainID int32  `json:"next_quest_in_chain_id"`
	SpecialFlags       int32  `json:"special_flags"`
}

// HasPrev reports whether the quest names a prerequisite.
func (q Quest) HasPrev() bool { return q.PrevQuestID != NoQuest }

// ObjectiveType — тип цели квеста.
type ObjectiveType string

const (
	ObjectiveKill    ObjectiveType = "kill"
	ObjectiveGather  ObjectiveType = "gather"
	ObjectiveLoot    ObjectiveType = "loot"
	ObjectiveUnknown ObjectiveType = "unknown"
)

// ObjectiveSlot — одна из четырёх колонок ReqCreatureOrGO/ReqItem в quest_template.
// Отрицательный CreatureOrGOID указывает на game object.
type ObjectiveSlot struct {
	CreatureOrGOID    int32
	CreatureOrGOCount int32
	ItemID            int32
	ItemCount         int32
}

// Objective — классифицированная цель квеста.
// TargetID и ItemID равны 0, если значения нет.
type Objective struct {
	QuestID  int32         `json:"quest_id"`
	Slot     int           `json:"slot"`
	Type     ObjectiveType `json:"type"`
	TargetID int32         `json:"target_id,omitempty"`
	ItemID   int32         `json:"item_id,omitempty"`
	Count    int32         `json:"count"`
}

// Item — предмет из item_template (например, предмет, начинающий квест).
type Item struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}
