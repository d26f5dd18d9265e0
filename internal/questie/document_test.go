package questie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/questgen/internal/model"
)

func TestParseSpawnTable(t *testing.T) {
	spawns, malformed := ParseSpawnTable(`{[141]={{57.81,41.65},{58, 42.5},},[188]={{10,20}}}`)

	assert.Zero(t, malformed)
	assert.Equal(t, []Spawn{
		{ZoneID: 141, X: 57.81, Y: 41.65},
		{ZoneID: 141, X: 58, Y: 42.5},
		{ZoneID: 188, X: 10, Y: 20},
	}, spawns)
}

func TestParseSpawnTableEmpty(t *testing.T) {
	for _, in := range []string{"", "nil", " nil ", "{}"} {
		spawns, malformed := ParseSpawnTable(in)
		assert.Empty(t, spawns, in)
		assert.Zero(t, malformed, in)
	}
}

func TestParseSpawnTableBadNumberDropsZone(t *testing.T) {
	spawns, malformed := ParseSpawnTable(`{[12]={{1.2.3,4},{5,6}},[40]={{7,8}}}`)

	assert.Equal(t, 1, malformed)
	assert.Equal(t, []Spawn{{ZoneID: 40, X: 7, Y: 8}}, spawns)
}

func TestParseSpawnTableNonDecimalNumberDropsZone(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"nan", `{[12]={{nan,1}},[40]={{7,8}}}`},
		{"inf", `{[12]={{5,inf}},[40]={{7,8}}}`},
		{"signed inf", `{[12]={{-Inf,5}},[40]={{7,8}}}`},
		{"hex float", `{[12]={{0x1p4,5}},[40]={{7,8}}}`},
		{"overflow", `{[12]={{1e400,5}},[40]={{7,8}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spawns, malformed := ParseSpawnTable(tt.input)

			assert.Equal(t, 1, malformed)
			assert.Equal(t, []Spawn{{ZoneID: 40, X: 7, Y: 8}}, spawns)
		})
	}
}

func TestParseSpawnTableDecimalForms(t *testing.T) {
	spawns, malformed := ParseSpawnTable(`{[12]={{.5,-3.},{+1e1,2E-1}}}`)

	assert.Zero(t, malformed)
	assert.Equal(t, []Spawn{
		{ZoneID: 12, X: 0.5, Y: -3},
		{ZoneID: 12, X: 10, Y: 0.2},
	}, spawns)
}

func TestParseSpawnTableSkipsInstanceMarker(t *testing.T) {
	spawns, malformed := ParseSpawnTable(`{[1581]={{-1,-1}},[40]={{42.1,71.6}}}`)

	assert.Zero(t, malformed)
	assert.Equal(t, []Spawn{{ZoneID: 40, X: 42.1, Y: 71.6}}, spawns)
}

func TestParseSpawnTableHugeZoneID(t *testing.T) {
	spawns, malformed := ParseSpawnTable(`{[99999999999]={{1,2}},[40]={{3,4}}}`)

	assert.Equal(t, 1, malformed)
	assert.Equal(t, []Spawn{{ZoneID: 40, X: 3, Y: 4}}, spawns)
}

// npcEntry собирает запись с spawn-таблицей в поле 6.
func npcEntry(id, spawns string) string {
	return `[` + id + `] = {"Name ` + id + `",nil,nil,10,12,0,` + spawns + `,nil,40,{},{},nil,"A"},` + "\n"
}

func TestParseDocument(t *testing.T) {
	doc := "return {\n" +
		npcEntry("100", `{[12]={{42.1,65.3},{43,66}}}`) +
		npcEntry("200", `{[40]={{10,20}},[12]={{1,2}}}`) +
		npcEntry("300", `nil`) +
		"}"

	got, stats := ParseDocument(doc, NpcSpawnsField)

	require.Len(t, got, 2)
	assert.Equal(t, []model.SpawnRecord{
		{EntityID: 100, ZoneID: 12, LocalX: 42.1, LocalY: 65.3},
		{EntityID: 100, ZoneID: 12, LocalX: 43, LocalY: 66},
	}, got[100])
	assert.Len(t, got[200], 2)
	assert.NotContains(t, got, int32(300))

	assert.Equal(t, 3, stats.Entries)
	assert.Equal(t, 2, stats.WithSpawns)
	assert.Zero(t, stats.MalformedEntry)
}

func TestParseDocumentObjectField(t *testing.T) {
	doc := `[1617]={"Silverleaf",{123},nil,{[141]={{55.5,60.1}}},nil},`

	got, _ := ParseDocument(doc, ObjectSpawnsField)

	require.Contains(t, got, int32(1617))
	assert.Equal(t, []model.SpawnRecord{{EntityID: 1617, ZoneID: 141, LocalX: 55.5, LocalY: 60.1}}, got[1617])
}

func TestParseDocumentUnterminatedEntry(t *testing.T) {
	good := npcEntry("100", `{[12]={{42.1,65.3}}}`)
	bad := `[200] = {"Broken",nil,nil,1,1,0,{[12]={{1,2}}},nil` + "\n"

	for name, doc := range map[string]string{
		"bad last":  good + bad,
		"bad first": bad + good,
	} {
		t.Run(name, func(t *testing.T) {
			var got map[int32][]model.SpawnRecord
			var stats Stats
			require.NotPanics(t, func() { got, stats = ParseDocument(doc, NpcSpawnsField) })

			require.Len(t, got, 1)
			assert.Len(t, got[100], 1)
			assert.Empty(t, got[200])
			assert.Equal(t, 1, stats.MalformedEntry)
		})
	}
}

func TestParseDocumentShortEntry(t *testing.T) {
	got, stats := ParseDocument(`[7]={"a","b"},`, NpcSpawnsField)

	assert.Empty(t, got)
	assert.Equal(t, 1, stats.ShortEntries)
}

func TestParseDocumentNestedHeadersNotEntries(t *testing.T) {
	// [12]={...} внутри записи не должен считаться отдельной записью.
	doc := npcEntry("100", `{[12]={{1,2}}}`)

	_, stats := ParseDocument(doc, NpcSpawnsField)
	assert.Equal(t, 1, stats.Entries)
}

func TestParseDocumentQuotedBraces(t *testing.T) {
	doc := `[5]={"Odd {name",nil,nil,1,1,0,{[12]={{3,4}}}},`

	got, stats := ParseDocument(doc, NpcSpawnsField)
	assert.Zero(t, stats.MalformedEntry)
	assert.Equal(t, []model.SpawnRecord{{EntityID: 5, ZoneID: 12, LocalX: 3, LocalY: 4}}, got[5])
}

func TestFieldIndex(t *testing.T) {
	assert.Equal(t, 6, FieldIndex(model.KindCreature))
	assert.Equal(t, 3, FieldIndex(model.KindObject))
}
