// Package quest orders quests by their prerequisite links and groups them into chains.
package quest

import (
	"container/heap"
	"log/slog"
	"sort"

	"github.com/udisondev/questgen/internal/model"
)

// Ordering is the result of Sort.
type Ordering struct {
	Quests []model.Quest
	// Cyclic is set when prerequisite links form a cycle. The quests caught
	// in it (Unresolved of them) are appended after the sorted prefix,
	// ordered by (MinLevel, QuestLevel).
	Cyclic     bool
	Unresolved int
}

// levelKey is the tie-break tuple of the priority queue.
type levelKey struct {
	minLevel   int32
	questLevel int32
	id         int32
}

func keyOf(q model.Quest) levelKey {
	return levelKey{minLevel: q.MinLevel, questLevel: q.QuestLevel, id: q.ID}
}

func (a levelKey) less(b levelKey) bool {
	if a.minLevel != b.minLevel {
		return a.minLevel < b.minLevel
	}
	if a.questLevel != b.questLevel {
		return a.questLevel < b.questLevel
	}
	return a.id < b.id
}

type levelHeap []levelKey

func (h levelHeap) Len() int           { return len(h) }
func (h levelHeap) Less(i, j int) bool { return h[i].less(h[j]) }
func (h levelHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *levelHeap) Push(x any)        { *h = append(*h, x.(levelKey)) }
func (h *levelHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// dedupe keeps the first occurrence of every quest id, preserving order.
func dedupe(quests []model.Quest) ([]model.Quest, map[int32]model.Quest) {
	byID := make(map[int32]model.Quest, len(quests))
	out := make([]model.Quest, 0, len(quests))
	for _, q := range quests {
		if _, ok := byID[q.ID]; ok {
			continue
		}
		byID[q.ID] = q
		out = append(out, q)
	}
	return out, byID
}

// Sort orders quests so that every quest comes after its PrevQuestID
// prerequisite when both are in the set. Among available quests the lowest
// (MinLevel, QuestLevel, ID) goes first.
func Sort(quests []model.Quest) Ordering {
	if len(quests) == 0 {
		return Ordering{}
	}

	quests, byID := dedupe(quests)

	// Граф: prev → [дети], только по квестам из набора.
	children := make(map[int32][]int32, len(quests))
	inDegree := make(map[int32]int, len(quests))
	for _, q := range quests {
		inDegree[q.ID] += 0
		if q.PrevQuestID <= 0 {
			continue
		}
		if _, ok := byID[q.PrevQuestID]; !ok {
			continue
		}
		children[q.PrevQuestID] = append(children[q.PrevQuestID], q.ID)
		inDegree[q.ID]++
	}

	pq := make(levelHeap, 0, len(quests))
	for _, q := range quests {
		if inDegree[q.ID] == 0 {
			pq = append(pq, keyOf(q))
		}
	}
	heap.Init(&pq)

	sorted := make([]model.Quest, 0, len(quests))
	emitted := make(map[int32]struct{}, len(quests))
	for pq.Len() > 0 {
		k := heap.Pop(&pq).(levelKey)
		sorted = append(sorted, byID[k.id])
		emitted[k.id] = struct{}{}

		for _, child := range children[k.id] {
			inDegree[child]--
			if inDegree[child] == 0 {
				heap.Push(&pq, keyOf(byID[child]))
			}
		}
	}

	res := Ordering{Quests: sorted}
	if len(sorted) == len(quests) {
		return res
	}

	leftovers := make([]model.Quest, 0, len(quests)-len(sorted))
	for _, q := range quests {
		if _, ok := emitted[q.ID]; !ok {
			leftovers = append(leftovers, q)
		}
	}
	sort.SliceStable(leftovers, func(i, j int) bool {
		if leftovers[i].MinLevel != leftovers[j].MinLevel {
			return leftovers[i].MinLevel < leftovers[j].MinLevel
		}
		return leftovers[i].QuestLevel < leftovers[j].QuestLevel
	})

	slog.Warn("quest prerequisite cycle detected, appending leftovers by level",
		"quests", len(quests), "unresolved", len(leftovers))

	res.Quests = append(res.Quests, leftovers...)
	res.Cyclic = true
	res.Unresolved = len(leftovers)
	return res
}
