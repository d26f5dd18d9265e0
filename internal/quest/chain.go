package quest

import (
	"slices"
	"sort"

	"github.com/udisondev/questgen/internal/model"
)

// Chain is a linearised run of linked quests in traversal order.
// A chain of one quest is a standalone quest.
type Chain []model.Quest

// IDs returns the quest ids of the chain in order.
func (c Chain) IDs() []int32 {
	ids := make([]int32, len(c))
	for i, q := range c {
		ids[i] = q.ID
	}
	return ids
}

// Chains groups quests connected by NextQuestID, NextQuestInChainID and
// PrevQuestID links. Edges point parent → child; links to quests outside the
// set are ignored and duplicate edges are harmless.
//
// Each chain is the depth-first walk from a quest nobody links to, visiting
// children in ascending id order. Quests reachable only through cycles are
// walked afterwards in input order. Chains are sorted by the MinLevel and ID
// of their first quest.
func Chains(quests []model.Quest) []Chain {
	if len(quests) == 0 {
		return nil
	}

	quests, byID := dedupe(quests)

	children := make(map[int32][]int32, len(quests))
	inDegree := make(map[int32]int, len(quests))
	link := func(parent, child int32) {
		children[parent] = append(children[parent], child)
		inDegree[child]++
	}

	for _, q := range quests {
		if _, ok := byID[q.NextQuestID]; ok && q.NextQuestID != model.NoQuest {
			link(q.ID, q.NextQuestID)
		}
		if _, ok := byID[q.NextQuestInChainID]; ok && q.NextQuestInChainID != model.NoQuest {
			link(q.ID, q.NextQuestInChainID)
		}
		if _, ok := byID[q.PrevQuestID]; ok && q.PrevQuestID != model.NoQuest {
			link(q.PrevQuestID, q.ID)
		}
	}
	for id := range children {
		slices.Sort(children[id])
	}

	visited := make(map[int32]bool, len(quests))
	var walk func(id int32, chain Chain) Chain
	walk = func(id int32, chain Chain) Chain {
		visited[id] = true
		chain = append(chain, byID[id])
		for _, child := range children[id] {
			if !visited[child] {
				chain = walk(child, chain)
			}
		}
		return chain
	}

	var chains []Chain
	for _, q := range quests {
		if inDegree[q.ID] == 0 && !visited[q.ID] {
			chains = append(chains, walk(q.ID, nil))
		}
	}
	for _, q := range quests {
		if !visited[q.ID] {
			chains = append(chains, walk(q.ID, nil))
		}
	}

	sort.SliceStable(chains, func(i, j int) bool {
		a, b := chains[i][0], chains[j][0]
		if a.MinLevel != b.MinLevel {
			return a.MinLevel < b.MinLevel
		}
		return a.ID < b.ID
	})
	return chains
}
