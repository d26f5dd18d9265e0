package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/udisondev/questgen/internal/db"
	"github.com/udisondev/questgen/internal/model"
	"github.com/udisondev/questgen/internal/testutil"
)

// WorldSuite — репозитории поверх PostgreSQL с тестовым миром из testutil.
type WorldSuite struct {
	suite.Suite
	pool  *pgxpool.Pool
	world *db.World
	ctx   context.Context
}

func (s *WorldSuite) SetupSuite() {
	s.pool = testutil.SetupTestDB(s.T())
	s.world = db.NewWorld(s.pool)
}

func (s *WorldSuite) SetupTest() {
	s.ctx = testutil.ContextWithTimeout(s.T(), 10*time.Second)

	for _, table := range testutil.WorldTables {
		_, err := s.pool.Exec(s.ctx, "TRUNCATE "+table)
		s.Require().NoError(err)
	}
	_, err := s.pool.Exec(s.ctx, testutil.WorldFixtureSQL)
	s.Require().NoError(err)
}

func TestWorldSuite(t *testing.T) {
	suite.Run(t, new(WorldSuite))
}

func (s *WorldSuite) TestQuestsByZone() {
	quests, err := s.world.QuestsByZone(s.ctx, 12)
	s.Require().NoError(err)

	ids := make([]int32, 0, len(quests))
	for _, q := range quests {
		ids = append(ids, q.ID)
	}
	// 103 групповой, 105 со special flags
	s.Equal([]int32{100, 101, 102}, ids)

	s.Equal("Wolf Pelts", quests[1].Title)
	s.Equal(int32(100), quests[1].PrevQuestID)
	s.Equal(int32(1101), quests[1].RequiredRaceMask)
	s.Equal(int32(101), quests[0].NextQuestInChainID)

	empty, err := s.world.QuestsByZone(s.ctx, 9999)
	s.Require().NoError(err)
	s.Empty(empty)
}

func (s *WorldSuite) TestQuest() {
	q, err := s.world.Quest(s.ctx, 104)
	s.Require().NoError(err)
	s.Require().NotNil(q)
	s.Equal(int32(40), q.ZoneOrSort)

	missing, err := s.world.Quest(s.ctx, 777)
	s.Require().NoError(err)
	s.Nil(missing)
}

func (s *WorldSuite) TestObjectiveSlots() {
	slots, err := s.world.ObjectiveSlots(s.ctx, 100)
	s.Require().NoError(err)
	s.Require().Len(slots, 4)
	s.Equal(model.ObjectiveSlot{CreatureOrGOID: 500, CreatureOrGOCount: 8}, slots[0])
	s.Equal(model.ObjectiveSlot{}, slots[3])

	slots, err = s.world.ObjectiveSlots(s.ctx, 102)
	s.Require().NoError(err)
	s.Equal(int32(-600), slots[0].CreatureOrGOID)

	slots, err = s.world.ObjectiveSlots(s.ctx, 777)
	s.Require().NoError(err)
	s.Nil(slots)
}

func (s *WorldSuite) TestQuestTextAndStartItem() {
	details, objectives, err := s.world.QuestText(s.ctx, 100)
	s.Require().NoError(err)
	s.Equal("Kill wolves.", details)
	s.Equal("Kill 8 Wolves.", objectives)

	item, err := s.world.QuestStartItem(s.ctx, 104)
	s.Require().NoError(err)
	s.Require().NotNil(item)
	s.Equal(model.Item{ID: 9001, Name: "Torn Letter"}, *item)

	item, err = s.world.QuestStartItem(s.ctx, 100)
	s.Require().NoError(err)
	s.Nil(item)
}

func (s *WorldSuite) TestSpawnRows() {
	points, err := s.world.SpawnRows(s.ctx, 500, model.KindCreature)
	s.Require().NoError(err)
	s.Require().Len(points, 2)
	s.Equal(model.NewWorldPoint(-9000, -100, 80, 0), points[0])
	s.InDelta(0.05, points[1].X, 1e-9)

	points, err = s.world.SpawnRows(s.ctx, 600, model.KindObject)
	s.Require().NoError(err)
	s.Len(points, 1)

	_, err = s.world.SpawnRows(s.ctx, 500, model.EntityKind(9))
	s.Error(err)
}

func (s *WorldSuite) TestLootSources() {
	ids, err := s.world.LootSources(s.ctx, 9000, model.KindCreature)
	s.Require().NoError(err)
	s.Equal([]int32{500, 505}, ids)

	ids, err = s.world.LootSources(s.ctx, 9000, model.KindObject)
	s.Require().NoError(err)
	s.Empty(ids)

	name, err := s.world.ItemName(s.ctx, 9000)
	s.Require().NoError(err)
	s.Equal("Wolf Pelt", name)
}

func (s *WorldSuite) TestQuestStarterAndEnder() {
	starter, err := s.world.QuestStarter(s.ctx, 100)
	s.Require().NoError(err)
	s.Require().NotNil(starter)
	s.Equal(int32(501), starter.EntityID)
	s.Equal(model.KindCreature, starter.Kind)
	s.Equal("Marshal McBride", starter.Name)
	s.Equal(model.NewWorldPoint(-8900, -150, 82, 0), starter.Position)

	// нет NPC — берём game object
	starter, err = s.world.QuestStarter(s.ctx, 102)
	s.Require().NoError(err)
	s.Require().NotNil(starter)
	s.Equal(model.KindObject, starter.Kind)
	s.Equal(int32(601), starter.EntityID)

	ender, err := s.world.QuestEnder(s.ctx, 102)
	s.Require().NoError(err)
	s.Require().NotNil(ender)
	s.Equal("Wanted Poster", ender.Name)

	none, err := s.world.QuestStarter(s.ctx, 104)
	s.Require().NoError(err)
	s.Nil(none)
}

func (s *WorldSuite) TestTemplates() {
	isGO, err := s.world.IsGameObject(s.ctx, 600)
	s.Require().NoError(err)
	s.True(isGO)

	isGO, err = s.world.IsGameObject(s.ctx, 500)
	s.Require().NoError(err)
	s.False(isGO)

	name, err := s.world.EntityName(s.ctx, 500, model.KindCreature)
	s.Require().NoError(err)
	s.Equal("Timber Wolf", name)

	name, err = s.world.EntityName(s.ctx, 12345, model.KindObject)
	s.Require().NoError(err)
	s.Empty(name)
}

func (s *WorldSuite) TestServiceNpcs() {
	vendors, err := s.world.ServiceNpcs(s.ctx, 0, model.NpcFlagVendor|model.NpcFlagRepair)
	s.Require().NoError(err)
	s.Require().Len(vendors, 1)
	for _, v := range vendors {
		s.NotEqual(int32(504), v.EntityID, "placeholder template %q", v.Name)
	}
	s.Equal("Smith Argus", vendors[0].Name)
	s.Equal("Blacksmith", vendors[0].SubName)
	s.Equal(model.ServiceRepair, model.VendorType(vendors[0].Flags))

	flight, err := s.world.ServiceNpcs(s.ctx, 1, model.NpcFlagFlightMaster)
	s.Require().NoError(err)
	s.Require().Len(flight, 1)
	s.Equal(int32(1), flight[0].Position.ContinentID)

	flight, err = s.world.ServiceNpcs(s.ctx, 0, model.NpcFlagFlightMaster)
	s.Require().NoError(err)
	s.Empty(flight)
}
