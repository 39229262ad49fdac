package gamedata

import (
	"math/rand"
	"testing"
	"testing/fstest"
)

func TestLoadMonsters(t *testing.T) {
	monsters, err := LoadMonsters()
	if err != nil {
		t.Fatalf("Failed to load monsters: %v", err)
	}

	if len(monsters) != 4 {
		t.Errorf("Expected 4 monsters, got %d", len(monsters))
	}

	expected := map[string]int{"goblin": 5, "bat_man": 2, "orc": 15, "bunny": 1}
	for _, m := range monsters {
		hp, ok := expected[m.ID]
		if !ok {
			t.Errorf("Unexpected monster %q", m.ID)
			continue
		}
		if m.HP != hp {
			t.Errorf("%s HP = %d, want %d", m.ID, m.HP, hp)
		}
		delete(expected, m.ID)
	}
	for id := range expected {
		t.Errorf("Expected monster %q not found", id)
	}
}

func TestLoadItems(t *testing.T) {
	items, err := LoadItems()
	if err != nil {
		t.Fatalf("Failed to load items: %v", err)
	}

	types := map[string]bool{}
	for _, it := range items {
		types[it.Type] = true
	}
	for _, want := range []string{"weapon", "armor", "potion", "treasure"} {
		if !types[want] {
			t.Errorf("No item of type %q", want)
		}
	}
}

func TestMonsterRegistry(t *testing.T) {
	registry, err := LoadMonsterRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 4 {
		t.Errorf("Expected 4 monster types, got %d", registry.Count())
	}

	// Spawning is deterministic with the same seed
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))
	for i := 0; i < 10; i++ {
		a := registry.SpawnRandom(rng1).ID
		b := registry.SpawnRandom(rng2).ID
		if a != b {
			t.Errorf("Spawn %d mismatch: %s != %s", i, a, b)
		}
	}
}

func TestItemRegistry(t *testing.T) {
	registry := MustLoadItemRegistry()

	// Every archetype is reachable
	seen := map[string]bool{}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		seen[registry.SpawnRandom(rng).ID] = true
	}
	if len(seen) != registry.Count() {
		t.Errorf("Spawned %d distinct items, want %d", len(seen), registry.Count())
	}
}

func TestEmptyRegistrySpawnsNothing(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if NewMonsterRegistry(nil).SpawnRandom(rng) != nil {
		t.Error("empty monster registry should spawn nil")
	}
	if NewItemRegistry(nil).SpawnRandom(rng) != nil {
		t.Error("empty item registry should spawn nil")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#FFFFFF", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestMonsterDefMethods(t *testing.T) {
	def := MonsterDef{ID: "test", Name: "Test", Glyph: "T", Color: "#FF0000", HP: 3}

	if def.GlyphRune() != 'T' {
		t.Errorf("Expected glyph 'T', got %c", def.GlyphRune())
	}
	if def.TCellColor() == 0 {
		t.Error("TCellColor returned zero color")
	}

	empty := MonsterDef{}
	if empty.GlyphRune() != '?' {
		t.Errorf("Empty glyph = %c, want ?", empty.GlyphRune())
	}
}

func TestLoadFromBadJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.json": &fstest.MapFile{Data: []byte("{not json")},
	}

	if _, err := LoadFrom[MonstersFile](fsys, "broken.json"); err == nil {
		t.Error("LoadFrom should fail on malformed JSON")
	}
	if _, err := LoadFrom[MonstersFile](fsys, "missing.json"); err == nil {
		t.Error("LoadFrom should fail on a missing file")
	}
}
