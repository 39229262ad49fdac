package gamedata

import (
	"errors"
)

// RandomSource is the subset of *rand.Rand the registries draw from.
type RandomSource interface {
	Intn(n int) int
}

// MonsterRegistry holds loaded monster archetypes and provides spawning utilities.
type MonsterRegistry struct {
	monsters []MonsterDef
}

// NewMonsterRegistry creates a registry from loaded monster definitions.
func NewMonsterRegistry(monsters []MonsterDef) *MonsterRegistry {
	return &MonsterRegistry{monsters: monsters}
}

// LoadMonsterRegistry loads and creates a registry from the embedded monsters.json.
func LoadMonsterRegistry() (*MonsterRegistry, error) {
	monsters, err := LoadMonsters()
	if err != nil {
		return nil, err
	}
	if len(monsters) == 0 {
		return nil, errors.New("no monsters loaded from monsters.json")
	}
	return NewMonsterRegistry(monsters), nil
}

// MustLoadMonsterRegistry loads a registry, panicking on error.
func MustLoadMonsterRegistry() *MonsterRegistry {
	registry, err := LoadMonsterRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom picks a monster archetype uniformly. It draws exactly one
// number from rng.
func (r *MonsterRegistry) SpawnRandom(rng RandomSource) *MonsterDef {
	if len(r.monsters) == 0 {
		return nil
	}
	return &r.monsters[rng.Intn(len(r.monsters))]
}

// Count returns the number of monster types in the registry.
func (r *MonsterRegistry) Count() int {
	return len(r.monsters)
}

// =============================================================================
// ItemRegistry
// =============================================================================

// ItemRegistry holds loaded item archetypes.
type ItemRegistry struct {
	items []ItemDef
}

// NewItemRegistry creates a registry from loaded item definitions.
func NewItemRegistry(items []ItemDef) *ItemRegistry {
	return &ItemRegistry{items: items}
}

// LoadItemRegistry loads and creates a registry from the embedded items.json.
func LoadItemRegistry() (*ItemRegistry, error) {
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("no items loaded from items.json")
	}
	return NewItemRegistry(items), nil
}

// MustLoadItemRegistry loads a registry, panicking on error.
func MustLoadItemRegistry() *ItemRegistry {
	registry, err := LoadItemRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom picks an item archetype uniformly.
func (r *ItemRegistry) SpawnRandom(rng RandomSource) *ItemDef {
	if len(r.items) == 0 {
		return nil
	}
	return &r.items[rng.Intn(len(r.items))]
}

// Count returns the number of item types in the registry.
func (r *ItemRegistry) Count() int {
	return len(r.items)
}
