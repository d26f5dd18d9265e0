package planner

import (
	"context"
	"log/slog"
	"slices"

	"github.com/udisondev/questgen/internal/cluster"
	"github.com/udisondev/questgen/internal/model"
)

type targetRef struct {
	id   int32
	kind model.EntityKind
}

// targetRefs lists the entities behind objectives, deduplicated, in objective order.
// Loot objectives without a direct target expand to every creature, then every
// object, that drops the item.
func (p *Planner) targetRefs(ctx context.Context, objectives []model.Objective) ([]targetRef, error) {
	var refs []targetRef
	seen := make(map[targetRef]struct{})
	add := func(r targetRef) {
		if _, ok := seen[r]; ok {
			return
		}
		seen[r] = struct{}{}
		refs = append(refs, r)
	}

	for _, o := range objectives {
		switch o.Type {
		case model.ObjectiveKill:
			add(targetRef{id: o.TargetID, kind: model.KindCreature})
		case model.ObjectiveGather:
			add(targetRef{id: o.TargetID, kind: model.KindObject})
		case model.ObjectiveLoot:
			if o.TargetID > 0 {
				isGO, err := p.store.IsGameObject(ctx, o.TargetID)
				if err != nil {
					return nil, err
				}
				kind := model.KindCreature
				if isGO {
					kind = model.KindObject
				}
				add(targetRef{id: o.TargetID, kind: kind})
				continue
			}

			found := 0
			for _, kind := range []model.EntityKind{model.KindCreature, model.KindObject} {
				ids, err := p.store.LootSources(ctx, o.ItemID, kind)
				if err != nil {
					return nil, err
				}
				for _, id := range ids {
					add(targetRef{id: id, kind: kind})
				}
				found += len(ids)
			}
			if found == 0 {
				slog.Debug("no loot sources for item", "quest", o.QuestID, "item", o.ItemID)
			}
		}
	}
	return refs, nil
}

// targets resolves objective entities and returns them with all their spawn points.
func (p *Planner) targets(ctx context.Context, objectives []model.Objective) ([]Target, []model.WorldPoint, error) {
	refs, err := p.targetRefs(ctx, objectives)
	if err != nil {
		return nil, nil, err
	}

	targets := make([]Target, 0, len(refs))
	var points []model.WorldPoint
	for _, r := range refs {
		name, err := p.store.EntityName(ctx, r.id, r.kind)
		if err != nil {
			return nil, nil, err
		}
		spawns, err := p.spawns.ResolveSpawns(ctx, r.id, r.kind)
		if err != nil {
			return nil, nil, err
		}
		targets = append(targets, Target{EntityID: r.id, Kind: r.kind, Name: name, Spawns: len(spawns)})
		points = append(points, spawns...)
	}
	return targets, points, nil
}

// hotspots clusters spawn points into farm zones, one clustering per continent.
func (p *Planner) hotspots(points []model.WorldPoint, starter *model.QuestNpc) []model.FarmZone {
	points = p.nearStarter(points, starter)

	var zones []model.FarmZone
	for _, part := range byContinent(points) {
		zones = append(zones, cluster.ClusterWith(part, p.opts.Cluster)...)
	}
	return zones
}

// nearStarter keeps points on the starter's continent within MaxStarterDistance.
// When nothing survives the unfiltered points are returned.
func (p *Planner) nearStarter(points []model.WorldPoint, starter *model.QuestNpc) []model.WorldPoint {
	if starter == nil || p.opts.MaxStarterDistance <= 0 || len(points) == 0 {
		return points
	}

	maxSq := p.opts.MaxStarterDistance * p.opts.MaxStarterDistance
	near := make([]model.WorldPoint, 0, len(points))
	for _, pt := range points {
		if pt.SameContinent(starter.Position) && pt.DistanceSquared2D(starter.Position) <= maxSq {
			near = append(near, pt)
		}
	}
	if len(near) == 0 {
		slog.Debug("no spawns near quest starter, keeping all",
			"starter", starter.EntityID, "points", len(points))
		return points
	}
	return near
}

// byContinent splits points by continent, continents in order of first appearance.
func byContinent(points []model.WorldPoint) [][]model.WorldPoint {
	index := make(map[int32]int)
	var parts [][]model.WorldPoint
	for _, pt := range points {
		i, ok := index[pt.ContinentID]
		if !ok {
			i = len(parts)
			index[pt.ContinentID] = i
			parts = append(parts, nil)
		}
		parts[i] = append(parts[i], pt)
	}
	return parts
}

// lootItems names the distinct items required by loot objectives, in slot order.
func (p *Planner) lootItems(ctx context.Context, objectives []model.Objective) ([]model.Item, error) {
	var items []model.Item
	for _, o := range objectives {
		if o.Type != model.ObjectiveLoot || o.ItemID <= 0 {
			continue
		}
		if slices.ContainsFunc(items, func(it model.Item) bool { return it.ID == o.ItemID }) {
			continue
		}
		name, err := p.store.ItemName(ctx, o.ItemID)
		if err != nil {
			return nil, err
		}
		items = append(items, model.Item{ID: o.ItemID, Name: name})
	}
	return items, nil
}
