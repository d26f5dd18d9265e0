package geo

import (
	"fmt"
	"sort"
	"strings"
)

// ZoneGeometry is the bounding box of one zone on its continent.
// By convention LeftY > RightY and TopX > BottomX; source data is not validated.
type ZoneGeometry struct {
	ZoneID      int32
	ContinentID int32
	LeftY       float64
	RightY      float64
	TopX        float64
	BottomX     float64
}

// Width returns the Y extent (left - right).
func (g ZoneGeometry) Width() float64 { return g.LeftY - g.RightY }

// Height returns the X extent (top - bottom).
func (g ZoneGeometry) Height() float64 { return g.TopX - g.BottomX }

// Table is an immutable zone id → geometry registry.
type Table struct {
	byID map[int32]ZoneGeometry
}

// NewTable builds a registry from zone definitions. Later duplicates win.
func NewTable(defs []ZoneGeometry) *Table {
	t := &Table{byID: make(map[int32]ZoneGeometry, len(defs))}
	for _, d := range defs {
		t.byID[d.ZoneID] = d
	}
	return t
}

// defaultTable is built once at process start from the compiled-in WorldMapArea data.
var defaultTable = NewTable(zoneDefs)

// Default returns the compiled-in zone table.
func Default() *Table { return defaultTable }

// ZoneBounds returns the geometry of zoneID.
func (t *Table) ZoneBounds(zoneID int32) (ZoneGeometry, bool) {
	g, ok := t.byID[zoneID]
	return g, ok
}

// Len returns the number of zones with known geometry.
func (t *Table) Len() int { return len(t.byID) }

// ZoneIDs returns all zone ids with geometry, ascending.
func (t *Table) ZoneIDs() []int32 {
	ids := make([]int32, 0, len(t.byID))
	for id := range t.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ZoneBounds looks zoneID up in the compiled-in table.
func ZoneBounds(zoneID int32) (ZoneGeometry, bool) {
	return defaultTable.ZoneBounds(zoneID)
}

// Zone — id + имя для поиска.
type Zone struct {
	ID   int32
	Name string
}

// ZoneName returns the display name of a zone, or "Unknown Zone N".
func ZoneName(zoneID int32) string {
	if name, ok := zoneNames[zoneID]; ok {
		return name
	}
	return fmt.Sprintf("Unknown Zone %d", zoneID)
}

// HasName reports whether zoneID is a named quest zone.
func HasName(zoneID int32) bool {
	_, ok := zoneNames[zoneID]
	return ok
}

// SearchZones returns named zones whose name contains partial (case-insensitive), ordered by id.
func SearchZones(partial string) []Zone {
	needle := strings.ToLower(strings.TrimSpace(partial))
	var out []Zone
	for id, name := range zoneNames {
		if strings.Contains(strings.ToLower(name), needle) {
			out = append(out, Zone{ID: id, Name: name})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
