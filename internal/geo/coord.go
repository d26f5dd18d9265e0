package geo

import "github.com/udisondev/questgen/internal/model"

// BoundsBuffer expands a zone box on every side before containment tests.
// Keeps boundary-adjacent spawns while still rejecting neighbouring zones.
const BoundsBuffer = 100.0

// IsInBounds reports whether world (x, y) falls inside zoneID's box plus BoundsBuffer.
// Unknown zones cannot be disproved and are treated as in bounds.
func (t *Table) IsInBounds(zoneID int32, x, y float64) bool {
	g, ok := t.byID[zoneID]
	if !ok {
		return true
	}

	minX := min(g.BottomX, g.TopX) - BoundsBuffer
	maxX := max(g.BottomX, g.TopX) + BoundsBuffer
	minY := min(g.RightY, g.LeftY) - BoundsBuffer
	maxY := max(g.RightY, g.LeftY) + BoundsBuffer

	return x >= minX && x <= maxX && y >= minY && y <= maxY
}

// PercentToWorld converts zone percent coordinates (0..100) into world coordinates.
// Percent X runs along world Y (left → right), percent Y along world X (top → bottom).
// Inputs outside 0..100 extrapolate linearly. Z is unknown and set to 0.
func (t *Table) PercentToWorld(zoneID int32, percentX, percentY float64) (model.WorldPoint, bool) {
	g, ok := t.byID[zoneID]
	if !ok {
		return model.WorldPoint{}, false
	}

	worldY := g.LeftY - g.Width()*percentX/100.0
	worldX := g.TopX - g.Height()*percentY/100.0

	return model.NewWorldPoint(worldX, worldY, 0, g.ContinentID), true
}

// WorldToPercent is the inverse of PercentToWorld.
// Degenerate zones (zero width or height) cannot be inverted.
func (t *Table) WorldToPercent(zoneID int32, worldX, worldY float64) (percentX, percentY float64, ok bool) {
	g, found := t.byID[zoneID]
	if !found || g.Width() == 0 || g.Height() == 0 {
		return 0, 0, false
	}

	percentX = (g.LeftY - worldY) * 100.0 / g.Width()
	percentY = (g.TopX - worldX) * 100.0 / g.Height()
	return percentX, percentY, true
}

// IsInBounds checks against the compiled-in table.
func IsInBounds(zoneID int32, x, y float64) bool {
	return defaultTable.IsInBounds(zoneID, x, y)
}

// PercentToWorld converts using the compiled-in table.
func PercentToWorld(zoneID int32, percentX, percentY float64) (model.WorldPoint, bool) {
	return defaultTable.PercentToWorld(zoneID, percentX, percentY)
}

// WorldToPercent inverts using the compiled-in table.
func WorldToPercent(zoneID int32, worldX, worldY float64) (float64, float64, bool) {
	return defaultTable.WorldToPercent(zoneID, worldX, worldY)
}
