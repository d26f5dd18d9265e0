package model

import "math"

// WorldPoint — абсолютная позиция внутри континента.
// Value type, передаётся по значению (immutable).
// Z часто неизвестен (0), если точка пришла из процентных координат.
type WorldPoint struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Z           float64 `json:"z"`
	ContinentID int32   `json:"continent_id"`
}

// NewWorldPoint создаёт WorldPoint с указанными координатами.
func NewWorldPoint(x, y, z float64, continentID int32) WorldPoint {
	return WorldPoint{X: x, Y: y, Z: z, ContinentID: continentID}
}

// DistanceSquared2D возвращает квадрат расстояния по плоскости XY (без sqrt для производительности).
func (p WorldPoint) DistanceSquared2D(other WorldPoint) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// Distance2D возвращает расстояние по плоскости XY.
func (p WorldPoint) Distance2D(other WorldPoint) float64 {
	return math.Sqrt(p.DistanceSquared2D(other))
}

// SameContinent reports whether both points live in one map space.
func (p WorldPoint) SameContinent(other WorldPoint) bool {
	return p.ContinentID == other.ContinentID
}
