package testutil

import (
	"context"
	"slices"
	"sync"

	"github.com/udisondev/questgen/internal/model"
)

type entityKey struct {
	id   int32
	kind model.EntityKind
}

type lootKey struct {
	item int32
	kind model.EntityKind
}

// MockWorld — in-memory имплементация world store для unit тестов.
// Не требует реальной базы. Семантика повторяет SQL-репозитории:
// отсутствующие записи — nil, nil.
type MockWorld struct {
	mu sync.RWMutex

	quests      []model.Quest
	slots       map[int32][]model.ObjectiveSlot
	texts       map[int32][2]string
	startItems  map[int32]model.Item
	items       map[int32]string
	starters    map[int32]model.QuestNpc
	enders      map[int32]model.QuestNpc
	names       map[entityKey]string
	spawns      map[entityKey][]model.WorldPoint
	gameObjects map[int32]bool
	loot        map[lootKey][]int32
	services    []model.ServiceNpc

	// Err, если задан, возвращается всеми методами.
	Err error
}

// NewMockWorld создаёт пустой MockWorld.
func NewMockWorld() *MockWorld {
	return &MockWorld{
		slots:       make(map[int32][]model.ObjectiveSlot),
		texts:       make(map[int32][2]string),
		startItems:  make(map[int32]model.Item),
		items:       make(map[int32]string),
		starters:    make(map[int32]model.QuestNpc),
		enders:      make(map[int32]model.QuestNpc),
		names:       make(map[entityKey]string),
		spawns:      make(map[entityKey][]model.WorldPoint),
		gameObjects: make(map[int32]bool),
		loot:        make(map[lootKey][]int32),
	}
}

// AddQuest добавляет квест с целями (не более четырёх слотов).
func (m *MockWorld) AddQuest(q model.Quest, slots ...model.ObjectiveSlot) *MockWorld {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.quests = append(m.quests, q)
	full := make([]model.ObjectiveSlot, 4)
	copy(full, slots)
	m.slots[q.ID] = full
	return m
}

// SetQuestText задаёт тексты квеста.
func (m *MockWorld) SetQuestText(questID int32, details, objectives string) *MockWorld {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.texts[questID] = [2]string{details, objectives}
	return m
}

// SetStartItem задаёт предмет, начинающий квест.
func (m *MockWorld) SetStartItem(questID int32, item model.Item) *MockWorld {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startItems[questID] = item
	return m
}

// SetStarter задаёт квестодателя.
func (m *MockWorld) SetStarter(questID int32, npc model.QuestNpc) *MockWorld {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.starters[questID] = npc
	return m
}

// SetEnder задаёт NPC, принимающего квест.
func (m *MockWorld) SetEnder(questID int32, npc model.QuestNpc) *MockWorld {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enders[questID] = npc
	return m
}

// AddEntity регистрирует шаблон сущности и её точки спавна в реляционном хранилище.
func (m *MockWorld) AddEntity(id int32, kind model.EntityKind, name string, spawns ...model.WorldPoint) *MockWorld {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := entityKey{id: id, kind: kind}
	m.names[k] = name
	m.spawns[k] = append(m.spawns[k], spawns...)
	if kind == model.KindObject {
		m.gameObjects[id] = true
	}
	return m
}

// AddLoot регистрирует сущности, с которых падает предмет.
func (m *MockWorld) AddLoot(itemID int32, kind model.EntityKind, ids ...int32) *MockWorld {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := lootKey{item: itemID, kind: kind}
	m.loot[k] = append(m.loot[k], ids...)
	return m
}

// AddItem регистрирует имя предмета.
func (m *MockWorld) AddItem(id int32, name string) *MockWorld {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[id] = name
	return m
}

// AddServiceNpc добавляет спавн сервисного NPC.
func (m *MockWorld) AddServiceNpc(n model.ServiceNpc) *MockWorld {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.services = append(m.services, n)
	return m
}

// QuestsByZone возвращает квесты зоны без special flags, по (min level, id).
func (m *MockWorld) QuestsByZone(ctx context.Context, zoneID int32) ([]model.Quest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	var out []model.Quest
	for _, q := range m.quests {
		if q.ZoneOrSort == zoneID && q.SpecialFlags == 0 {
			out = append(out, q)
		}
	}
	slices.SortStableFunc(out, func(a, b model.Quest) int {
		if a.MinLevel != b.MinLevel {
			return int(a.MinLevel - b.MinLevel)
		}
		return int(a.ID - b.ID)
	})
	return out, nil
}

// ObjectiveSlots возвращает слоты целей квеста.
func (m *MockWorld) ObjectiveSlots(ctx context.Context, questID int32) ([]model.ObjectiveSlot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.slots[questID], nil
}

// QuestText возвращает тексты квеста.
func (m *MockWorld) QuestText(ctx context.Context, questID int32) (string, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return "", "", m.Err
	}
	t := m.texts[questID]
	return t[0], t[1], nil
}

// QuestStartItem возвращает предмет, начинающий квест.
func (m *MockWorld) QuestStartItem(ctx context.Context, questID int32) (*model.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if it, ok := m.startItems[questID]; ok {
		return &it, nil
	}
	return nil, nil
}

// QuestStarter возвращает квестодателя.
func (m *MockWorld) QuestStarter(ctx context.Context, questID int32) (*model.QuestNpc, error) {
	return m.relation(m.starters, questID)
}

// QuestEnder возвращает NPC, принимающего квест.
func (m *MockWorld) QuestEnder(ctx context.Context, questID int32) (*model.QuestNpc, error) {
	return m.relation(m.enders, questID)
}

func (m *MockWorld) relation(rel map[int32]model.QuestNpc, questID int32) (*model.QuestNpc, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if npc, ok := rel[questID]; ok {
		return &npc, nil
	}
	return nil, nil
}

// IsGameObject сообщает, зарегистрирован ли entry как game object.
func (m *MockWorld) IsGameObject(ctx context.Context, entry int32) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return false, m.Err
	}
	return m.gameObjects[entry], nil
}

// EntityName возвращает имя шаблона или "".
func (m *MockWorld) EntityName(ctx context.Context, entry int32, kind model.EntityKind) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return "", m.Err
	}
	return m.names[entityKey{id: entry, kind: kind}], nil
}

// LootSources возвращает сущности, с которых падает предмет, по возрастанию id.
func (m *MockWorld) LootSources(ctx context.Context, itemID int32, kind model.EntityKind) ([]int32, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}
	ids := slices.Clone(m.loot[lootKey{item: itemID, kind: kind}])
	slices.Sort(ids)
	return slices.Compact(ids), nil
}

// ItemName возвращает имя предмета или "".
func (m *MockWorld) ItemName(ctx context.Context, itemID int32) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return "", m.Err
	}
	return m.items[itemID], nil
}

// ServiceNpcs возвращает сервисных NPC карты с пересекающимися флагами.
func (m *MockWorld) ServiceNpcs(ctx context.Context, mapID, flagMask int32) ([]model.ServiceNpc, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}
	var out []model.ServiceNpc
	for _, n := range m.services {
		if n.Position.ContinentID == mapID && n.Flags&flagMask != 0 {
			out = append(out, n)
		}
	}
	return out, nil
}

// SpawnRows возвращает сырые точки спавна из реляционного хранилища.
func (m *MockWorld) SpawnRows(ctx context.Context, entityID int32, kind model.EntityKind) ([]model.WorldPoint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return slices.Clone(m.spawns[entityKey{id: entityID, kind: kind}]), nil
}
