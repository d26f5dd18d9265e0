package quest

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/questgen/internal/model"
)

func TestSortEmpty(t *testing.T) {
	res := Sort(nil)
	assert.Empty(t, res.Quests)
	assert.False(t, res.Cyclic)
}

func TestSortTieBreak(t *testing.T) {
	res := Sort([]model.Quest{
		q(30, 5, 7, 0),
		q(20, 5, 6, 0),
		q(10, 5, 7, 0),
		q(40, 1, 9, 0),
	})

	assert.False(t, res.Cyclic)
	assert.Equal(t, []int32{40, 20, 10, 30}, ids(res.Quests))
}

func TestSortPrerequisiteFirst(t *testing.T) {
	// 2 требует 1, хотя у 2 уровень ниже.
	res := Sort([]model.Quest{
		q(2, 1, 1, 1),
		q(1, 10, 10, 0),
		q(3, 5, 5, 0),
	})

	assert.Equal(t, []int32{3, 1, 2}, ids(res.Quests))
}

func TestSortIgnoresPrevOutsideSet(t *testing.T) {
	res := Sort([]model.Quest{q(5, 3, 3, 999), q(6, 1, 1, 0)})

	assert.False(t, res.Cyclic)
	assert.Equal(t, []int32{6, 5}, ids(res.Quests))
}

func TestSortDuplicateIDs(t *testing.T) {
	res := Sort([]model.Quest{q(1, 1, 1, 0), q(1, 1, 1, 0), q(2, 2, 2, 1)})

	assert.False(t, res.Cyclic)
	assert.Equal(t, []int32{1, 2}, ids(res.Quests))
}

func TestSortCycleFallback(t *testing.T) {
	input := []model.Quest{
		q(1, 1, 1, 0),
		q(2, 8, 8, 3), // 2 ↔ 3 цикл
		q(3, 4, 4, 2),
		q(4, 6, 6, 3), // зависит от цикла
	}

	res := Sort(input)

	require.True(t, res.Cyclic)
	assert.Equal(t, 3, res.Unresolved)
	assert.Equal(t, []int32{1, 3, 4, 2}, ids(res.Quests))

	again := Sort(input)
	assert.Equal(t, res, again)
}

func TestSortSelfLoopIsCycle(t *testing.T) {
	res := Sort([]model.Quest{q(7, 1, 1, 7)})

	assert.True(t, res.Cyclic)
	assert.Equal(t, []int32{7}, ids(res.Quests))
}

func TestSortRespectsEdgesRandomDAG(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))

	for round := range 50 {
		n := 5 + rng.IntN(40)
		quests := make([]model.Quest, n)
		for i := range n {
			id := int32(i + 1)
			var prev int32
			// prev всегда меньше id — граф ацикличен.
			if i > 0 && rng.IntN(3) > 0 {
				prev = int32(1 + rng.IntN(i))
			}
			quests[i] = q(id, int32(rng.IntN(10)), int32(rng.IntN(10)), prev)
		}
		rng.Shuffle(len(quests), func(i, j int) { quests[i], quests[j] = quests[j], quests[i] })

		res := Sort(quests)
		require.False(t, res.Cyclic, "round %d", round)
		require.Len(t, res.Quests, n)

		pos := position(res.Quests)
		for _, qq := range quests {
			if qq.PrevQuestID == 0 {
				continue
			}
			assert.Less(t, pos[qq.PrevQuestID], pos[qq.ID], "round %d: %d must precede %d", round, qq.PrevQuestID, qq.ID)
		}
	}
}
