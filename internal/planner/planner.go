// Package planner assembles a per-zone quest plan: ordered quests, their
// targets and farm hotspots, quest givers and zone service NPCs.
package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/udisondev/questgen/internal/cluster"
	"github.com/udisondev/questgen/internal/geo"
	"github.com/udisondev/questgen/internal/model"
	"github.com/udisondev/questgen/internal/quest"
)

// Store is the relational world data used for planning.
// Implemented by db.World (PostgreSQL) and sqlitestore.Store.
type Store interface {
	QuestsByZone(ctx context.Context, zoneID int32) ([]model.Quest, error)
	ObjectiveSlots(ctx context.Context, questID int32) ([]model.ObjectiveSlot, error)
	QuestText(ctx context.Context, questID int32) (details, objectives string, err error)
	QuestStartItem(ctx context.Context, questID int32) (*model.Item, error)
	QuestStarter(ctx context.Context, questID int32) (*model.QuestNpc, error)
	QuestEnder(ctx context.Context, questID int32) (*model.QuestNpc, error)
	IsGameObject(ctx context.Context, entry int32) (bool, error)
	EntityName(ctx context.Context, entry int32, kind model.EntityKind) (string, error)
	LootSources(ctx context.Context, itemID int32, kind model.EntityKind) ([]int32, error)
	ItemName(ctx context.Context, itemID int32) (string, error)
	ServiceNpcs(ctx context.Context, mapID, flagMask int32) ([]model.ServiceNpc, error)
}

// SpawnResolver yields world spawn points of an entity (spawn.Resolver).
type SpawnResolver interface {
	ResolveSpawns(ctx context.Context, entityID int32, kind model.EntityKind) ([]model.WorldPoint, error)
}

// Services selects which zone service NPC categories are collected.
type Services struct {
	Vendors       bool
	FlightMasters bool
	Trainers      bool
}

// Options tunes planning.
type Options struct {
	// MaxStarterDistance drops spawn points farther than this from the quest
	// giver before clustering. Zero disables the filter.
	MaxStarterDistance float64
	Cluster            cluster.Params
	Services           Services
}

// DefaultOptions returns the options used by the CLI when nothing is configured.
func DefaultOptions() Options {
	return Options{
		MaxStarterDistance: 3000,
		Cluster:            cluster.DefaultParams,
		Services:           Services{Vendors: true, FlightMasters: true, Trainers: true},
	}
}

// Planner builds zone plans. Safe for concurrent use when its store and
// resolver are.
type Planner struct {
	store  Store
	spawns SpawnResolver
	zones  *geo.Table
	opts   Options
}

// New creates a Planner. zones may be nil to use the compiled-in table.
func New(store Store, spawns SpawnResolver, zones *geo.Table, opts Options) *Planner {
	if zones == nil {
		zones = geo.Default()
	}
	return &Planner{store: store, spawns: spawns, zones: zones, opts: opts}
}

// Plan builds the plan of zoneID for faction.
func (p *Planner) Plan(ctx context.Context, zoneID int32, faction string) (*ZonePlan, error) {
	start := time.Now()
	runID := uuid.New()
	log := slog.With("run", runID.String(), "zone", zoneID)

	plan := &ZonePlan{
		RunID:    runID,
		ZoneID:   zoneID,
		ZoneName: geo.ZoneName(zoneID),
		Faction:  faction,
	}
	if g, ok := p.zones.ZoneBounds(zoneID); ok {
		plan.ContinentID = g.ContinentID
		plan.HasBounds = true
	}

	all, err := p.store.QuestsByZone(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("loading quests of zone %d: %w", zoneID, err)
	}
	quests := quest.FilterByFaction(all, quest.FactionMask(faction))
	log.Debug("zone quests loaded", "total", len(all), "faction", faction, "kept", len(quests))

	ordering := quest.Sort(quests)
	plan.Cyclic = ordering.Cyclic
	plan.Unresolved = ordering.Unresolved
	for _, c := range quest.Chains(quests) {
		plan.Chains = append(plan.Chains, c.IDs())
	}

	reg := newRegistry()
	plan.Quests = make([]QuestPlan, 0, len(ordering.Quests))
	for _, q := range ordering.Quests {
		qp, err := p.planQuest(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("planning quest %d: %w", q.ID, err)
		}
		reg.add(qp.Starter, q.ID, false)
		reg.add(qp.Ender, q.ID, true)
		plan.Quests = append(plan.Quests, qp)
	}
	plan.QuestNpcs = reg.npcs()

	services, err := p.services(ctx, plan)
	if err != nil {
		return nil, err
	}
	plan.Services = services

	hotspots := 0
	for _, qp := range plan.Quests {
		hotspots += len(qp.Hotspots)
	}
	log.Info("zone planned",
		"name", plan.ZoneName,
		"quests", len(plan.Quests),
		"chains", len(plan.Chains),
		"hotspots", hotspots,
		"services", len(plan.Services),
		"elapsed", time.Since(start))

	return plan, nil
}

func (p *Planner) planQuest(ctx context.Context, q model.Quest) (QuestPlan, error) {
	qp := QuestPlan{Quest: q}

	slots, err := p.store.ObjectiveSlots(ctx, q.ID)
	if err != nil {
		return qp, err
	}
	qp.Objectives = quest.ClassifyObjectives(q.ID, slots)
	qp.Type = quest.TypeOf(q, qp.Objectives)

	if qp.Details, qp.ObjectivesText, err = p.store.QuestText(ctx, q.ID); err != nil {
		return qp, err
	}
	if qp.Starter, err = p.store.QuestStarter(ctx, q.ID); err != nil {
		return qp, err
	}
	if qp.Starter == nil {
		if qp.StartItem, err = p.store.QuestStartItem(ctx, q.ID); err != nil {
			return qp, err
		}
	}
	if qp.Ender, err = p.store.QuestEnder(ctx, q.ID); err != nil {
		return qp, err
	}

	if qp.LootItems, err = p.lootItems(ctx, qp.Objectives); err != nil {
		return qp, err
	}

	targets, points, err := p.targets(ctx, qp.Objectives)
	if err != nil {
		return qp, err
	}
	qp.Targets = targets
	qp.Hotspots = p.hotspots(points, qp.Starter)

	return qp, nil
}
