package planner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/udisondev/questgen/internal/model"
)

type serviceCategory struct {
	name    string
	mask    int32
	typeOf  func(model.ServiceNpc) string
	enabled bool
}

func (p *Planner) categories() []serviceCategory {
	return []serviceCategory{
		{
			name:    "trainers",
			mask:    model.NpcFlagTrainer,
			typeOf:  func(n model.ServiceNpc) string { return model.TrainerType(n.SubName) },
			enabled: p.opts.Services.Trainers,
		},
		{
			name:    "flight masters",
			mask:    model.NpcFlagFlightMaster,
			typeOf:  func(model.ServiceNpc) string { return model.ServiceFlightMaster },
			enabled: p.opts.Services.FlightMasters,
		},
		{
			name:    "vendors",
			mask:    model.NpcFlagVendor | model.NpcFlagRepair,
			typeOf:  func(n model.ServiceNpc) string { return model.VendorType(n.Flags) },
			enabled: p.opts.Services.Vendors,
		},
	}
}

// serviceMap picks the map searched for service NPCs: the continent of the
// first quest giver, otherwise the zone's continent.
func serviceMap(plan *ZonePlan) int32 {
	if len(plan.Quests) > 0 {
		if s := plan.Quests[0].Starter; s != nil {
			return s.Position.ContinentID
		}
	}
	return plan.ContinentID
}

// services collects trainers, flight masters and vendors spawned inside the
// zone bounds. Unknown-geometry zones get none: without bounds every NPC of
// the map would pass.
func (p *Planner) services(ctx context.Context, plan *ZonePlan) ([]model.ServiceNpc, error) {
	if !plan.HasBounds {
		slog.Debug("zone has no geometry, skipping service npcs", "zone", plan.ZoneID)
		return nil, nil
	}
	mapID := serviceMap(plan)

	type key struct {
		id  int32
		typ string
	}
	seen := make(map[key]struct{})
	var out []model.ServiceNpc

	for _, c := range p.categories() {
		if !c.enabled {
			continue
		}
		npcs, err := p.store.ServiceNpcs(ctx, mapID, c.mask)
		if err != nil {
			return nil, fmt.Errorf("loading %s of zone %d: %w", c.name, plan.ZoneID, err)
		}
		for _, n := range npcs {
			if !p.zones.IsInBounds(plan.ZoneID, n.Position.X, n.Position.Y) {
				continue
			}
			n.Type = c.typeOf(n)
			if n.Type == model.ServiceNone {
				continue
			}
			k := key{id: n.EntityID, typ: n.Type}
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, n)
		}
	}
	return out, nil
}
