package db

import (
	"fmt"

	"github.com/udisondev/questgen/internal/model"
)

// Table names of the world schema per entity kind. Shared with sqlitestore.
type KindTables struct {
	Template string
	Spawn    string
	Loot     string
	Starter  string
	Ender    string
}

var kindTables = map[model.EntityKind]KindTables{
	model.KindCreature: {
		Template: "creature_template",
		Spawn:    "creature",
		Loot:     "creature_loot_template",
		Starter:  "creature_questrelation",
		Ender:    "creature_involvedrelation",
	},
	model.KindObject: {
		Template: "gameobject_template",
		Spawn:    "gameobject",
		Loot:     "gameobject_loot_template",
		Starter:  "gameobject_questrelation",
		Ender:    "gameobject_involvedrelation",
	},
}

// TablesFor returns the table set of kind.
func TablesFor(kind model.EntityKind) (KindTables, error) {
	t, ok := kindTables[kind]
	if !ok {
		return KindTables{}, fmt.Errorf("unsupported entity kind %s", kind)
	}
	return t, nil
}

// QuestKinds is the lookup order for quest givers and takers: NPCs first, then objects.
var QuestKinds = []model.EntityKind{model.KindCreature, model.KindObject}
