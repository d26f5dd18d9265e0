package model

import "fmt"

// EntityKind — категория спавнящейся сущности.
type EntityKind uint8

const (
	// KindCreature — NPC и мобы.
	KindCreature EntityKind = iota
	// KindObject — game objects (сундуки, руда, травы).
	KindObject
)

// String returns the short name used in logs and cache keys.
func (k EntityKind) String() string {
	switch k {
	case KindCreature:
		return "npc"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// MarshalText encodes the kind by name in JSON output.
func (k EntityKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind written by MarshalText.
func (k *EntityKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "npc":
		*k = KindCreature
	case "object":
		*k = KindObject
	default:
		return fmt.Errorf("unknown entity kind %q", text)
	}
	return nil
}

// SpawnRecord — сырая точка спавна в процентных координатах зоны (0..100).
// Живёт только между парсером и Spawn Resolver, не сохраняется.
type SpawnRecord struct {
	EntityID int32
	ZoneID   int32
	LocalX   float64
	LocalY   float64
}

// FarmZone — круговая область фарма, полученная кластеризацией точек спавна.
// Создаётся только кластеризатором и больше не изменяется.
type FarmZone struct {
	ContinentID int32   `json:"continent_id"`
	CenterX     float64 `json:"center_x"`
	CenterY     float64 `json:"center_y"`
	CenterZ     float64 `json:"center_z"`
	Radius      float64 `json:"radius"`
}

// Center returns the zone centroid as a point.
func (f FarmZone) Center() WorldPoint {
	return WorldPoint{X: f.CenterX, Y: f.CenterY, Z: f.CenterZ, ContinentID: f.ContinentID}
}

// Contains reports whether p lies inside the zone circle (XY plane).
func (f FarmZone) Contains(p WorldPoint) bool {
	return f.Center().Distance2D(p) <= f.Radius
}
