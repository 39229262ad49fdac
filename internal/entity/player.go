package entity

import "github.com/samdwyer/dungeoncrawl/internal/world"

// Starting stats for a freshly created character.
const (
	StartingHitpoints = 20
	StartingGold      = 0
)

// Player is the player character. It survives level changes.
type Player struct {
	Name         string
	Hitpoints    int // May go negative; the character dies below zero
	MaxHitpoints int
	Gold         int
	Weapon       *Item // Equipped weapon, nil if none
	Armor        *Item // Equipped armor, nil if none
	Position     world.Position
	Symbol       rune

	// Inventory is kept as weapons, then armor, then potions.
	Inventory []*Item
}

// NewPlayer creates a new character with starting stats.
func NewPlayer(name string) *Player {
	return &Player{
		Name:         name,
		Hitpoints:    StartingHitpoints,
		MaxHitpoints: StartingHitpoints,
		Gold:         StartingGold,
		Symbol:       '@',
		Inventory:    []*Item{},
	}
}

// IsDead reports whether the character has dropped below zero hitpoints.
// Exactly zero is still alive.
func (p *Player) IsDead() bool {
	return p.Hitpoints < 0
}

// TakeDamage reduces hitpoints without clamping.
func (p *Player) TakeDamage(amount int) {
	p.Hitpoints -= amount
}

// MoveTo places the player at pos.
func (p *Player) MoveTo(pos world.Position) {
	p.Position = pos
}

// RemoveItem drops item from the inventory. It reports whether it was found.
func (p *Player) RemoveItem(item *Item) bool {
	for i, it := range p.Inventory {
		if it == item {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// IsEquipped reports whether item sits in one of the equip slots.
func (p *Player) IsEquipped(item *Item) bool {
	return item != nil && (p.Weapon == item || p.Armor == item)
}
