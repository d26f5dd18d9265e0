package testutil

// WorldTables — все таблицы world-схемы, в порядке очистки.
var WorldTables = []string{
	"quest_template",
	"creature_template",
	"gameobject_template",
	"creature",
	"gameobject",
	"creature_questrelation",
	"creature_involvedrelation",
	"gameobject_questrelation",
	"gameobject_involvedrelation",
	"item_template",
	"creature_loot_template",
	"gameobject_loot_template",
}

// WorldFixtureSQL — небольшой мир для тестов хранилищ (PostgreSQL и SQLite).
//
// Зона 12: квесты 100 -> 101 (цепочка), 102 (сбор), 103 (групповой) и
// 105 (special flags) отфильтровываются запросом по зоне. Квест 104 в зоне 40
// начинается предметом 9001.
//
// Wolf (500) имеет две точки спавна, вторая — заглушка около (0,0).
// Шаблон 504 — заглушка в квадратных скобках, в сервисные NPC не попадает.
const WorldFixtureSQL = `
INSERT INTO quest_template (entry, title, min_level, quest_level, zone_or_sort, required_races,
    prev_quest_id, next_quest_id, next_quest_in_chain, special_flags, suggested_players, details, objectives,
    req_creature_or_go_id1, req_creature_or_go_count1, req_item_id1, req_item_count1)
VALUES
    (100, 'Wolves Across the Border', 1, 2, 12, 0, 0, 0, 101, 0, 0, 'Kill wolves.', 'Kill 8 Wolves.', 500, 8, 0, 0),
    (101, 'Wolf Pelts', 2, 3, 12, 1101, 100, 0, 0, 0, 0, 'Bring pelts.', 'Bring 5 Wolf Pelts.', 0, 0, 9000, 5),
    (102, 'Herbalism', 3, 4, 12, 690, 0, 0, 0, 0, 0, '', '', -600, 3, 0, 0),
    (103, 'Hogger', 5, 6, 12, 0, 0, 0, 0, 0, 3, '', '', 0, 0, 0, 0),
    (104, 'Torn Letter', 4, 5, 40, 0, 0, 0, 0, 0, 0, '', '', 0, 0, 0, 0),
    (105, 'Escort', 3, 4, 12, 0, 0, 0, 0, 2, 0, '', '', 0, 0, 0, 0);

INSERT INTO creature_template (entry, name, subname, npc_flags) VALUES
    (500, 'Timber Wolf', '', 0),
    (501, 'Marshal McBride', '', 2),
    (502, 'Smith Argus', 'Blacksmith', 4224),
    (503, 'Thor', 'Gryphon Master', 8192),
    (504, '[UNUSED] Vendor', '', 128),
    (506, 'Lyria Du Lac', 'Warrior Trainer', 16);

INSERT INTO creature (guid, id, map, position_x, position_y, position_z) VALUES
    (1, 500, 0, -9000, -100, 80),
    (2, 500, 0, 0.05, 0.02, 0),
    (3, 501, 0, -8900, -150, 82),
    (4, 502, 0, -9100, -50, 83),
    (5, 503, 1, 100, 100, 0),
    (6, 504, 0, -9050, -60, 80),
    (7, 506, 0, -8920, -140, 82);

INSERT INTO gameobject_template (entry, name) VALUES
    (600, 'Peacebloom'),
    (601, 'Wanted Poster');

INSERT INTO gameobject (guid, id, map, position_x, position_y, position_z) VALUES
    (1, 600, 0, -8950, -120, 81),
    (2, 601, 0, -8905, -160, 82);

INSERT INTO creature_questrelation (id, quest) VALUES (501, 100), (501, 101);
INSERT INTO creature_involvedrelation (id, quest) VALUES (501, 100);
INSERT INTO gameobject_questrelation (id, quest) VALUES (601, 102);
INSERT INTO gameobject_involvedrelation (id, quest) VALUES (601, 102);

INSERT INTO item_template (entry, name, start_quest) VALUES
    (9000, 'Wolf Pelt', 0),
    (9001, 'Torn Letter', 104);

INSERT INTO creature_loot_template (entry, item) VALUES (500, 9000), (505, 9000);
INSERT INTO gameobject_loot_template (entry, item) VALUES (600, 9002);
`
