package geo

// Continent IDs (map ids of the world DB).
const (
	ContinentEasternKingdoms int32 = 0
	ContinentKalimdor        int32 = 1
	ContinentOutland         int32 = 530
)

// zoneDefs — границы зон из WorldMapArea.dbc (TBC 2.4.3).
// left/right ограничивают мировой Y (запад +, восток -), top/bottom — мировой X (север +, юг -).
// Blood Elf и Draenei стартовые зоны физически в Азероте, но живут на карте 530.
var zoneDefs = []ZoneGeometry{
	// Eastern Kingdoms
	{ZoneID: 1, ContinentID: ContinentEasternKingdoms, LeftY: -4266.67, RightY: -6400.0, TopX: 2133.33, BottomX: -533.33},      // Dun Morogh
	{ZoneID: 3, ContinentID: ContinentEasternKingdoms, LeftY: -5866.67, RightY: -7466.67, TopX: -2666.67, BottomX: -4266.67},   // Badlands
	{ZoneID: 4, ContinentID: ContinentEasternKingdoms, LeftY: -10133.33, RightY: -12800.0, TopX: -2666.67, BottomX: -5333.33},  // Blasted Lands
	{ZoneID: 8, ContinentID: ContinentEasternKingdoms, LeftY: -9066.67, RightY: -11200.0, TopX: -2133.33, BottomX: -4266.67},   // Swamp of Sorrows
	{ZoneID: 10, ContinentID: ContinentEasternKingdoms, LeftY: -9066.67, RightY: -11733.33, TopX: -533.33, BottomX: -3200.0},   // Duskwood
	{ZoneID: 11, ContinentID: ContinentEasternKingdoms, LeftY: -2133.33, RightY: -4800.0, TopX: 533.33, BottomX: -2133.33},     // Wetlands
	{ZoneID: 12, ContinentID: ContinentEasternKingdoms, LeftY: -8000.0, RightY: -10666.67, TopX: 533.33, BottomX: -2133.33},    // Elwynn Forest
	{ZoneID: 28, ContinentID: ContinentEasternKingdoms, LeftY: 533.33, RightY: -2133.33, TopX: 3200.0, BottomX: 533.33},        // Western Plaguelands
	{ZoneID: 33, ContinentID: ContinentEasternKingdoms, LeftY: -10666.67, RightY: -15466.67, TopX: 533.33, BottomX: -4266.67},  // Stranglethorn Vale
	{ZoneID: 36, ContinentID: ContinentEasternKingdoms, LeftY: 533.33, RightY: -1066.67, TopX: 1066.67, BottomX: -533.33},      // Alterac Mountains
	{ZoneID: 38, ContinentID: ContinentEasternKingdoms, LeftY: -4266.67, RightY: -6400.0, TopX: -2133.33, BottomX: -4266.67},   // Loch Modan
	{ZoneID: 40, ContinentID: ContinentEasternKingdoms, LeftY: -9600.0, RightY: -12266.67, TopX: -533.33, BottomX: -3200.0},    // Westfall
	{ZoneID: 41, ContinentID: ContinentEasternKingdoms, LeftY: -10133.33, RightY: -11200.0, TopX: -1600.0, BottomX: -2666.67},  // Deadwind Pass
	{ZoneID: 44, ContinentID: ContinentEasternKingdoms, LeftY: -8533.33, RightY: -10133.33, TopX: -533.33, BottomX: -2133.33},  // Redridge Mountains
	{ZoneID: 45, ContinentID: ContinentEasternKingdoms, LeftY: -533.33, RightY: -2666.67, TopX: 533.33, BottomX: -1600.0},      // Arathi Highlands
	{ZoneID: 46, ContinentID: ContinentEasternKingdoms, LeftY: -6400.0, RightY: -8533.33, TopX: -533.33, BottomX: -2666.67},    // Burning Steppes
	{ZoneID: 47, ContinentID: ContinentEasternKingdoms, LeftY: 2133.33, RightY: -1066.67, TopX: 2133.33, BottomX: -1066.67},    // The Hinterlands
	{ZoneID: 51, ContinentID: ContinentEasternKingdoms, LeftY: -6400.0, RightY: -8000.0, TopX: -533.33, BottomX: -2133.33},     // Searing Gorge
	{ZoneID: 85, ContinentID: ContinentEasternKingdoms, LeftY: 3200.0, RightY: 533.33, TopX: 2666.67, BottomX: 0.0},            // Tirisfal Glades
	{ZoneID: 130, ContinentID: ContinentEasternKingdoms, LeftY: 1600.0, RightY: -1066.67, TopX: 2133.33, BottomX: -533.33},     // Silverpine Forest
	{ZoneID: 139, ContinentID: ContinentEasternKingdoms, LeftY: 5866.67, RightY: 1600.0, TopX: 3733.33, BottomX: -533.33},      // Eastern Plaguelands
	{ZoneID: 267, ContinentID: ContinentEasternKingdoms, LeftY: 533.33, RightY: -1600.0, TopX: 533.33, BottomX: -1600.0},       // Hillsbrad Foothills
	{ZoneID: 1497, ContinentID: ContinentEasternKingdoms, LeftY: 2185.0, RightY: 1515.0, TopX: 475.0, BottomX: -107.0},         // Undercity
	{ZoneID: 1519, ContinentID: ContinentEasternKingdoms, LeftY: -8430.0, RightY: -9300.0, TopX: 1300.0, BottomX: 320.0},       // Stormwind City
	{ZoneID: 1537, ContinentID: ContinentEasternKingdoms, LeftY: -4533.33, RightY: -5333.33, TopX: -533.33, BottomX: -1333.33}, // Ironforge

	// Blood Elf starting zones (map 530)
	{ZoneID: 3430, ContinentID: ContinentOutland, LeftY: 11733.33, RightY: 6400.0, TopX: 14400.0, BottomX: 9066.67},      // Eversong Woods
	{ZoneID: 3433, ContinentID: ContinentOutland, LeftY: 8533.33, RightY: 5333.33, TopX: 10666.67, BottomX: 5333.33},     // Ghostlands
	{ZoneID: 3487, ContinentID: ContinentOutland, LeftY: 10026.7, RightY: 9360.0, TopX: 10666.7, BottomX: 10000.0},       // Silvermoon City
	{ZoneID: 4080, ContinentID: ContinentOutland, LeftY: 13066.67, RightY: 12533.33, TopX: 13066.67, BottomX: 12533.33},  // Isle of Quel'Danas

	// Kalimdor
	{ZoneID: 14, ContinentID: ContinentKalimdor, LeftY: 426.67, RightY: -2773.33, TopX: 1600.0, BottomX: -1600.0},       // Durotar
	{ZoneID: 15, ContinentID: ContinentKalimdor, LeftY: -2133.33, RightY: -5866.67, TopX: -2666.67, BottomX: -6400.0},   // Dustwallow Marsh
	{ZoneID: 16, ContinentID: ContinentKalimdor, LeftY: -2133.33, RightY: -5333.33, TopX: 4800.0, BottomX: 1600.0},      // Azshara
	{ZoneID: 17, ContinentID: ContinentKalimdor, LeftY: 1600.0, RightY: -4266.67, TopX: 2933.33, BottomX: -2933.33},     // The Barrens
	{ZoneID: 141, ContinentID: ContinentKalimdor, LeftY: 10666.67, RightY: 8533.33, TopX: 12266.67, BottomX: 10133.33},  // Teldrassil
	{ZoneID: 148, ContinentID: ContinentKalimdor, LeftY: 8533.33, RightY: 5333.33, TopX: 8533.33, BottomX: 5333.33},     // Darkshore
	{ZoneID: 188, ContinentID: ContinentKalimdor, LeftY: 1200.0, RightY: 600.0, TopX: 11000.0, BottomX: 10200.0},        // Shadowglen
	{ZoneID: 215, ContinentID: ContinentKalimdor, LeftY: -533.33, RightY: -4266.67, TopX: 1066.67, BottomX: -2666.67},   // Mulgore
	{ZoneID: 331, ContinentID: ContinentKalimdor, LeftY: 4800.0, RightY: 1066.67, TopX: 4266.67, BottomX: 533.33},       // Ashenvale
	{ZoneID: 357, ContinentID: ContinentKalimdor, LeftY: -2133.33, RightY: -6933.33, TopX: 2133.33, BottomX: -2666.67},  // Feralas
	{ZoneID: 361, ContinentID: ContinentKalimdor, LeftY: 4800.0, RightY: 2666.67, TopX: 7466.67, BottomX: 5333.33},      // Felwood
	{ZoneID: 400, ContinentID: ContinentKalimdor, LeftY: -4266.67, RightY: -6933.33, TopX: -2666.67, BottomX: -5333.33}, // Thousand Needles
	{ZoneID: 405, ContinentID: ContinentKalimdor, LeftY: -533.33, RightY: -3200.0, TopX: 2133.33, BottomX: -533.33},     // Desolace
	{ZoneID: 406, ContinentID: ContinentKalimdor, LeftY: 1600.0, RightY: -1066.67, TopX: 3200.0, BottomX: 533.33},       // Stonetalon Mountains
	{ZoneID: 440, ContinentID: ContinentKalimdor, LeftY: -5866.67, RightY: -9066.67, TopX: -2666.67, BottomX: -5866.67}, // Tanaris
	{ZoneID: 490, ContinentID: ContinentKalimdor, LeftY: -6400.0, RightY: -8533.33, TopX: -533.33, BottomX: -2666.67},   // Un'Goro Crater
	{ZoneID: 493, ContinentID: ContinentKalimdor, LeftY: 8533.33, RightY: 6400.0, TopX: 8533.33, BottomX: 6400.0},       // Moonglade
	{ZoneID: 618, ContinentID: ContinentKalimdor, LeftY: 8000.0, RightY: 3733.33, TopX: 6933.33, BottomX: 2666.67},      // Winterspring
	{ZoneID: 1377, ContinentID: ContinentKalimdor, LeftY: -6400.0, RightY: -9600.0, TopX: -2666.67, BottomX: -5866.67},  // Silithus
	{ZoneID: 1637, ContinentID: ContinentKalimdor, LeftY: 2133.33, RightY: 1066.67, TopX: -4266.67, BottomX: -5333.33},  // Orgrimmar
	{ZoneID: 1638, ContinentID: ContinentKalimdor, LeftY: -1066.67, RightY: -1600.0, TopX: -2133.33, BottomX: -2666.67}, // Thunder Bluff
	{ZoneID: 1657, ContinentID: ContinentKalimdor, LeftY: 10186.7, RightY: 9653.33, TopX: 12800.0, BottomX: 12266.7},    // Darnassus

	// Draenei starting zones (map 530)
	{ZoneID: 3524, ContinentID: ContinentOutland, LeftY: -2666.67, RightY: -6400.0, TopX: 12800.0, BottomX: 9066.67},   // Azuremyst Isle
	{ZoneID: 3525, ContinentID: ContinentOutland, LeftY: -1066.67, RightY: -4266.67, TopX: 14933.33, BottomX: 11733.3}, // Bloodmyst Isle
	{ZoneID: 3557, ContinentID: ContinentOutland, LeftY: -3650.0, RightY: -4200.0, TopX: 11350.0, BottomX: 10800.0},    // The Exodar

	// Outland
	{ZoneID: 3483, ContinentID: ContinentOutland, LeftY: 4266.67, RightY: -1333.33, TopX: 5440.0, BottomX: -160.0},     // Hellfire Peninsula
	{ZoneID: 3518, ContinentID: ContinentOutland, LeftY: -1600.0, RightY: -6400.0, TopX: 3413.33, BottomX: -1386.67},   // Nagrand
	{ZoneID: 3519, ContinentID: ContinentOutland, LeftY: -853.33, RightY: -5120.0, TopX: 6080.0, BottomX: 1280.0},      // Terokkar Forest
	{ZoneID: 3520, ContinentID: ContinentOutland, LeftY: -1600.0, RightY: -6133.33, TopX: 1066.67, BottomX: -3466.67},  // Shadowmoon Valley
	{ZoneID: 3521, ContinentID: ContinentOutland, LeftY: 1066.67, RightY: -3733.33, TopX: 8746.67, BottomX: 3946.67},   // Zangarmarsh
	{ZoneID: 3522, ContinentID: ContinentOutland, LeftY: 4266.67, RightY: -1600.0, TopX: 9813.33, BottomX: 4213.33},    // Blade's Edge Mountains
	{ZoneID: 3523, ContinentID: ContinentOutland, LeftY: 6240.0, RightY: 1440.0, TopX: 5866.67, BottomX: 1066.67},      // Netherstorm
	{ZoneID: 3703, ContinentID: ContinentOutland, LeftY: -1725.0, RightY: -2035.0, TopX: 5585.0, BottomX: 5275.0},      // Shattrath City
}

// zoneNames — имена зон, которые встречаются в quest_template.ZoneOrSort.
// Включает зоны без геометрии (инстансы, поля боя).
var zoneNames = map[int32]string{
	1:    "Dun Morogh",
	3:    "Badlands",
	4:    "Blasted Lands",
	8:    "Swamp of Sorrows",
	10:   "Duskwood",
	11:   "Wetlands",
	12:   "Elwynn Forest",
	14:   "Durotar",
	15:   "Dustwallow Marsh",
	16:   "Azshara",
	17:   "The Barrens",
	19:   "Zul'Gurub",
	28:   "Western Plaguelands",
	33:   "Stranglethorn Vale",
	36:   "Alterac Mountains",
	38:   "Loch Modan",
	40:   "Westfall",
	41:   "Deadwind Pass",
	44:   "Redridge Mountains",
	45:   "Arathi Highlands",
	46:   "Burning Steppes",
	47:   "The Hinterlands",
	51:   "Searing Gorge",
	85:   "Tirisfal Glades",
	130:  "Silverpine Forest",
	139:  "Eastern Plaguelands",
	141:  "Teldrassil",
	148:  "Darkshore",
	151:  "Designer Island",
	188:  "Shadowglen",
	215:  "Mulgore",
	220:  "Red Cloud Mesa",
	267:  "Hillsbrad Foothills",
	331:  "Ashenvale",
	335:  "Dustwallow Bay",
	357:  "Feralas",
	361:  "Felwood",
	400:  "Thousand Needles",
	405:  "Desolace",
	406:  "Stonetalon Mountains",
	440:  "Tanaris",
	490:  "Un'Goro Crater",
	493:  "Moonglade",
	616:  "Hyjal",
	618:  "Winterspring",
	1377: "Silithus",
	1497: "Undercity",
	1519: "Stormwind City",
	1537: "Ironforge",
	1637: "Orgrimmar",
	1638: "Thunder Bluff",
	1657: "Darnassus",
	2597: "Alterac Valley",
	3277: "Warsong Gulch",
	3358: "Arathi Basin",
	3430: "Eversong Woods",
	3433: "Ghostlands",
	3483: "Hellfire Peninsula",
	3487: "Silvermoon City",
	3518: "Nagrand",
	3519: "Terokkar Forest",
	3520: "Shadowmoon Valley",
	3521: "Zangarmarsh",
	3522: "Blade's Edge Mountains",
	3523: "Netherstorm",
	3524: "Azuremyst Isle",
	3525: "Bloodmyst Isle",
	3557: "The Exodar",
	3703: "Shattrath City",
	4080: "Isle of Quel'Danas",
}
