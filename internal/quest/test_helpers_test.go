package quest

import "github.com/udisondev/questgen/internal/model"

// q — короткий конструктор квеста для тестов.
func q(id, minLevel, questLevel, prev int32) model.Quest {
	return model.Quest{ID: id, Title: "Quest", MinLevel: minLevel, QuestLevel: questLevel, PrevQuestID: prev}
}

func ids(quests []model.Quest) []int32 {
	out := make([]int32, len(quests))
	for i, qq := range quests {
		out[i] = qq.ID
	}
	return out
}

func position(quests []model.Quest) map[int32]int {
	pos := make(map[int32]int, len(quests))
	for i, qq := range quests {
		pos[qq.ID] = i
	}
	return pos
}
