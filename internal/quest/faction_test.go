package quest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/questgen/internal/model"
)

func TestFactionMask(t *testing.T) {
	tests := []struct {
		faction string
		want    int32
	}{
		{"alliance", 1101},
		{" Horde ", 690},
		{"ALLIANCE", 1101},
		{"scourge", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.faction, func(t *testing.T) {
			assert.Equal(t, tt.want, FactionMask(tt.faction))
		})
	}
}

func TestFilterByFaction(t *testing.T) {
	quests := []model.Quest{
		{ID: 1, RequiredRaceMask: 0},
		{ID: 2, RequiredRaceMask: RaceOrc},
		{ID: 3, RequiredRaceMask: RaceHuman | RaceGnome},
		{ID: 4, RequiredRaceMask: RaceBloodElf | RaceDraenei},
	}

	assert.Equal(t, []int32{1, 2, 4}, ids(FilterByFaction(quests, HordeRaceMask)))
	assert.Equal(t, []int32{1, 3, 4}, ids(FilterByFaction(quests, AllianceRaceMask)))

	all := FilterByFaction(quests, 0)
	assert.Equal(t, []int32{1, 2, 3, 4}, ids(all))
	all[0].ID = 100
	assert.Equal(t, int32(1), quests[0].ID, "zero mask must return a copy")
}
