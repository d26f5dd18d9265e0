package questie

import (
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/udisondev/questgen/internal/model"
)

// Positional field holding the spawn table, zero based.
const (
	NpcSpawnsField    = 6
	ObjectSpawnsField = 3
)

// FieldIndex returns the spawn field index for an entity kind.
func FieldIndex(kind model.EntityKind) int {
	if kind == model.KindObject {
		return ObjectSpawnsField
	}
	return NpcSpawnsField
}

// entryHeader matches "[<int>] = {" with the brace consumed.
var entryHeader = regexp.MustCompile(`\[(\d+)\]\s*=\s*\{`)

// coordPair matches one flat "{x,y}" leaf; numbers are validated separately.
var coordPair = regexp.MustCompile(`\{([^{},]*),([^{},]*)\}`)

// decimalNumber accepts plain decimal literals only: no hex, inf or nan.
var decimalNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Stats counts what a document parse did. Malformed entries and zones are
// skipped, never fatal.
type Stats struct {
	Entries        int // entry headers visited
	WithSpawns     int // entries that produced at least one record
	MalformedEntry int // unterminated body or bad id
	MalformedZone  int // unterminated zone block, bad zone id or bad number
	ShortEntries   int // fewer fields than the spawn field index
}

// Spawn — одна точка из таблицы спавнов: зона и процентные координаты.
type Spawn struct {
	ZoneID int32
	X, Y   float64
}

// ParseSpawnTable decodes "{[zoneId]={{x,y},{x,y}},...}" into spawn points.
// A zone block with a malformed id, an unparsable number or no closing brace
// contributes nothing; other blocks are still decoded. "nil" and empty input
// yield no points.
func ParseSpawnTable(field string) (spawns []Spawn, malformed int) {
	field = strings.TrimSpace(field)
	if field == "" || field == "nil" {
		return nil, 0
	}

	pos := 0
	for pos < len(field) {
		loc := entryHeader.FindStringSubmatchIndex(field[pos:])
		if loc == nil {
			break
		}
		idText := field[pos+loc[2] : pos+loc[3]]
		bodyStart := pos + loc[1]

		body, end, ok := ExtractBody(field, bodyStart)
		if !ok {
			malformed++
			pos = bodyStart
			continue
		}
		pos = end

		zoneID, err := strconv.ParseInt(idText, 10, 32)
		if err != nil {
			malformed++
			continue
		}

		points, ok := parseZoneBlock(int32(zoneID), body)
		if !ok {
			malformed++
			continue
		}
		spawns = append(spawns, points...)
	}

	return spawns, malformed
}

// parseZoneBlock extracts every {x,y} pair of one zone. Any bad number
// rejects the whole block.
func parseZoneBlock(zoneID int32, body string) ([]Spawn, bool) {
	matches := coordPair.FindAllStringSubmatch(body, -1)
	points := make([]Spawn, 0, len(matches))

	for _, m := range matches {
		x, ok := parseCoord(m[1])
		if !ok {
			return nil, false
		}
		y, ok := parseCoord(m[2])
		if !ok {
			return nil, false
		}
		// {-1,-1} marks a spawn inside an instance with no map position.
		if x == -1 && y == -1 {
			continue
		}
		points = append(points, Spawn{ZoneID: zoneID, X: x, Y: y})
	}

	return points, true
}

// parseCoord parses one finite decimal coordinate.
func parseCoord(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !decimalNumber.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseDocument scans a whole Questie table document and returns, per entity
// id, the spawn records found in the field at fieldIndex. Entries without
// spawns are omitted. A later duplicate id replaces an earlier one.
//
// After a well-formed entry the scan resumes past its closing brace, so
// nested "[id]={" blocks are never mistaken for entries. After an
// unterminated entry it resumes right after that entry's header.
func ParseDocument(doc string, fieldIndex int) (map[int32][]model.SpawnRecord, Stats) {
	var stats Stats
	result := make(map[int32][]model.SpawnRecord)

	pos := 0
	for pos < len(doc) {
		loc := entryHeader.FindStringSubmatchIndex(doc[pos:])
		if loc == nil {
			break
		}
		stats.Entries++

		idText := doc[pos+loc[2] : pos+loc[3]]
		bodyStart := pos + loc[1]

		body, end, ok := ExtractBody(doc, bodyStart)
		if !ok {
			stats.MalformedEntry++
			slog.Debug("questie entry unterminated", "id", idText, "offset", pos+loc[0])
			pos = bodyStart
			continue
		}
		pos = end

		entityID, err := strconv.ParseInt(idText, 10, 32)
		if err != nil {
			stats.MalformedEntry++
			continue
		}

		fields := SplitFields(body)
		if len(fields) <= fieldIndex {
			stats.ShortEntries++
			continue
		}

		spawns, malformed := ParseSpawnTable(fields[fieldIndex])
		stats.MalformedZone += malformed
		if len(spawns) == 0 {
			continue
		}

		records := make([]model.SpawnRecord, len(spawns))
		for i, s := range spawns {
			records[i] = model.SpawnRecord{
				EntityID: int32(entityID),
				ZoneID:   s.ZoneID,
				LocalX:   s.X,
				LocalY:   s.Y,
			}
		}
		if _, dup := result[int32(entityID)]; !dup {
			stats.WithSpawns++
		}
		result[int32(entityID)] = records
	}

	return result, stats
}
