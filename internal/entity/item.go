package entity

import (
	"fmt"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// ItemType tags what an item's quality means.
type ItemType int

const (
	ItemWeapon ItemType = iota
	ItemArmor
	ItemPotion
	ItemTreasure
)

// ParseItemType maps a data file type name to an ItemType.
func ParseItemType(s string) (ItemType, error) {
	switch s {
	case "weapon":
		return ItemWeapon, nil
	case "armor":
		return ItemArmor, nil
	case "potion":
		return ItemPotion, nil
	case "treasure":
		return ItemTreasure, nil
	default:
		return 0, fmt.Errorf("unknown item type %q", s)
	}
}

// String returns the item type name.
func (t ItemType) String() string {
	switch t {
	case ItemWeapon:
		return "Weapon"
	case ItemArmor:
		return "Armor"
	case ItemPotion:
		return "Potion"
	case ItemTreasure:
		return "Treasure"
	default:
		return "Unknown"
	}
}

// Symbol returns the display symbol for an item lying on the floor.
func (t ItemType) Symbol() rune {
	switch t {
	case ItemWeapon:
		return '}'
	case ItemArmor:
		return '['
	case ItemPotion:
		return '!'
	default:
		return '$'
	}
}

// Item is a tagged variant: Quality is attack for weapons, defense for
// armor, healing for potions and gold for treasure.
type Item struct {
	Name     string
	Quality  int
	Position world.Position // Only meaningful while the item lies on the grid
	Type     ItemType
}

// NewItem creates an item lying at pos.
func NewItem(name string, t ItemType, quality int, pos world.Position) *Item {
	return &Item{
		Name:     name,
		Quality:  quality,
		Position: pos,
		Type:     t,
	}
}

// NewItemFromDef creates an item from a data-driven definition.
func NewItemFromDef(def *gamedata.ItemDef, pos world.Position) (*Item, error) {
	t, err := ParseItemType(def.Type)
	if err != nil {
		return nil, fmt.Errorf("item %s: %w", def.ID, err)
	}
	return NewItem(def.Name, t, def.Quality, pos), nil
}
