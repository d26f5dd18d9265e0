package model

import "strings"

// NPC flags из creature_template.npc_flags.
const (
	NpcFlagTrainer      int32 = 16
	NpcFlagVendor       int32 = 128
	NpcFlagRepair       int32 = 4096
	NpcFlagFlightMaster int32 = 8192
)

// QuestNpc — сущность, которая выдаёт или принимает квест (NPC или game object).
type QuestNpc struct {
	EntityID int32      `json:"entity_id"`
	Name     string     `json:"name"`
	Kind     EntityKind `json:"kind"`
	Position WorldPoint `json:"position"`
}

// ServiceNpc — NPC с сервисной функцией (торговец, ремонт, flight master, учитель).
// Type заполняет планировщик по категории, в которой NPC найден.
type ServiceNpc struct {
	EntityID int32      `json:"entity_id"`
	Name     string     `json:"name"`
	SubName  string     `json:"sub_name,omitempty"`
	Flags    int32      `json:"flags"`
	Type     string     `json:"type"`
	Position WorldPoint `json:"position"`
}

// Service types understood by the profile exporter.
const (
	ServiceNone         = "None"
	ServiceVendor       = "Vendor"
	ServiceRepair       = "Repair"
	ServiceFlightMaster = "FlightMaster"
)

// VendorType returns Repair for repairers and Vendor otherwise.
func VendorType(flags int32) string {
	if flags&NpcFlagRepair != 0 {
		return ServiceRepair
	}
	return ServiceVendor
}

// trainerClasses is checked in order; the first class found in the subname wins.
var trainerClasses = []struct {
	needle string
	typ    string
}{
	{"rogue", "RogueTrainer"},
	{"warrior", "WarriorTrainer"},
	{"paladin", "PaladinTrainer"},
	{"hunter", "HunterTrainer"},
	{"priest", "PriestTrainer"},
	{"shaman", "ShamanTrainer"},
	{"mage", "MageTrainer"},
	{"warlock", "WarlockTrainer"},
	{"druid", "DruidTrainer"},
}

// TrainerType derives the class trainer type from an NPC subname
// ("Warrior Trainer" -> "WarriorTrainer"). Profession and unknown trainers are ServiceNone.
func TrainerType(subName string) string {
	s := strings.ToLower(subName)
	for _, c := range trainerClasses {
		if strings.Contains(s, c.needle) {
			return c.typ
		}
	}
	if strings.Contains(s, "death") && strings.Contains(s, "knight") {
		return "DeathKnightTrainer"
	}
	return ServiceNone
}
