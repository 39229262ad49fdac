// Package entity provides the player character, monsters and items.
package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Monster represents a hostile creature in the dungeon.
type Monster struct {
	Def       *gamedata.MonsterDef // Archetype this monster was spawned from (nil for ad-hoc monsters)
	Name      string
	Symbol    rune
	Position  world.Position
	Hitpoints int
}

// NewMonster creates a monster without an archetype.
func NewMonster(name string, hitpoints int, symbol rune, pos world.Position) *Monster {
	return &Monster{
		Name:      name,
		Symbol:    symbol,
		Position:  pos,
		Hitpoints: hitpoints,
	}
}

// NewMonsterFromDef creates a new monster from a data-driven definition.
func NewMonsterFromDef(def *gamedata.MonsterDef, pos world.Position) *Monster {
	m := NewMonster(def.Name, def.HP, def.GlyphRune(), pos)
	m.Def = def
	return m
}

// IsAlive returns true while the monster has hitpoints left.
func (m *Monster) IsAlive() bool { return m.Hitpoints > 0 }

// TakeDamage subtracts amount from the monster's hitpoints.
func (m *Monster) TakeDamage(amount int) {
	m.Hitpoints -= amount
}

// Color returns the tcell color for this monster.
func (m *Monster) Color() tcell.Color {
	if m.Def != nil {
		return m.Def.TCellColor()
	}
	return tcell.ColorPurple
}

// ID returns the monster's archetype identifier.
func (m *Monster) ID() string {
	if m.Def != nil {
		return m.Def.ID
	}
	return m.Name
}
