package entity

import (
	"testing"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

func TestItemTypeString(t *testing.T) {
	tests := []struct {
		itemType ItemType
		expected string
		symbol   rune
	}{
		{ItemWeapon, "Weapon", '}'},
		{ItemArmor, "Armor", '['},
		{ItemPotion, "Potion", '!'},
		{ItemTreasure, "Treasure", '$'},
		{ItemType(99), "Unknown", '$'},
	}

	for _, tt := range tests {
		if got := tt.itemType.String(); got != tt.expected {
			t.Errorf("ItemType(%d).String() = %q, want %q", tt.itemType, got, tt.expected)
		}
		if got := tt.itemType.Symbol(); got != tt.symbol {
			t.Errorf("ItemType(%d).Symbol() = %c, want %c", tt.itemType, got, tt.symbol)
		}
	}
}

func TestNewItemFromDef(t *testing.T) {
	pos := world.Position{X: 3, Y: 4}
	item, err := NewItemFromDef(&gamedata.ItemDef{ID: "helmet", Name: "Helmet", Type: "armor", Quality: 12}, pos)
	if err != nil {
		t.Fatalf("NewItemFromDef() error = %v", err)
	}
	if item.Type != ItemArmor || item.Quality != 12 || item.Position != pos {
		t.Errorf("NewItemFromDef() = %+v", item)
	}

	if _, err := NewItemFromDef(&gamedata.ItemDef{ID: "x", Type: "ring"}, pos); err == nil {
		t.Error("NewItemFromDef() should reject unknown types")
	}
}

func TestNewMonsterFromDef(t *testing.T) {
	def := &gamedata.MonsterDef{ID: "orc", Name: "Orc", Glyph: "o", Color: "#AA0000", HP: 15}
	m := NewMonsterFromDef(def, world.Position{X: 1, Y: 2})

	if m.Name != "Orc" || m.Hitpoints != 15 || m.Symbol != 'o' || m.ID() != "orc" {
		t.Errorf("NewMonsterFromDef() = %+v", m)
	}

	m.TakeDamage(15)
	if m.IsAlive() {
		t.Error("monster at 0 hitpoints should not be alive")
	}
}

func TestPlayerDeathThreshold(t *testing.T) {
	p := NewPlayer("Tester")
	if p.Hitpoints != StartingHitpoints || p.MaxHitpoints != StartingHitpoints {
		t.Fatalf("NewPlayer() hitpoints = %d/%d", p.Hitpoints, p.MaxHitpoints)
	}

	p.Hitpoints = 0
	if p.IsDead() {
		t.Error("player at exactly 0 hitpoints should be alive")
	}
	p.TakeDamage(1)
	if !p.IsDead() {
		t.Error("player at -1 hitpoints should be dead")
	}
}

func TestPlayerRemoveItem(t *testing.T) {
	p := NewPlayer("Tester")
	a := NewItem("A", ItemPotion, 1, world.Position{})
	b := NewItem("B", ItemPotion, 1, world.Position{})
	p.Inventory = []*Item{a, b}

	if !p.RemoveItem(a) {
		t.Fatal("RemoveItem(a) = false")
	}
	if len(p.Inventory) != 1 || p.Inventory[0] != b {
		t.Errorf("Inventory after removal = %v", p.Inventory)
	}
	if p.RemoveItem(a) {
		t.Error("RemoveItem on a missing item should return false")
	}
}
