package quest

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/udisondev/questgen/internal/model"
)

// Race bits of quest_template.RequiredRaces (TBC).
const (
	RaceHuman    int32 = 1
	RaceOrc      int32 = 2
	RaceDwarf    int32 = 4
	RaceNightElf int32 = 8
	RaceUndead   int32 = 16
	RaceTauren   int32 = 32
	RaceGnome    int32 = 64
	RaceTroll    int32 = 128
	RaceBloodElf int32 = 512
	RaceDraenei  int32 = 1024
)

// Faction race masks.
const (
	AllianceRaceMask = RaceHuman | RaceDwarf | RaceNightElf | RaceGnome | RaceDraenei // 1101
	HordeRaceMask    = RaceOrc | RaceUndead | RaceTauren | RaceTroll | RaceBloodElf  // 690
)

// FactionMask returns the race mask of a faction name. Unknown names return
// 0, which disables filtering.
func FactionMask(faction string) int32 {
	switch strings.ToLower(strings.TrimSpace(faction)) {
	case "alliance":
		return AllianceRaceMask
	case "horde":
		return HordeRaceMask
	default:
		slog.Warn("unknown faction, race filter disabled", "faction", faction)
		return 0
	}
}

// FilterByFaction keeps quests available to the mask: RequiredRaceMask 0
// means any race. A zero mask keeps everything.
func FilterByFaction(quests []model.Quest, mask int32) []model.Quest {
	if mask == 0 {
		return slices.Clone(quests)
	}

	out := make([]model.Quest, 0, len(quests))
	for _, q := range quests {
		if q.RequiredRaceMask == 0 || q.RequiredRaceMask&mask != 0 {
			out = append(out, q)
		}
	}
	slog.Debug("faction filter applied", "mask", mask, "before", len(quests), "after", len(out))
	return out
}
