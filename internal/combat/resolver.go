// Package combat resolves strikes between the player and monsters.
package combat

import (
	"fmt"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/inventory"
)

// monsterBaseDamage is what every monster hits for before armor.
const monsterBaseDamage = 1

// Result contains the outcome of one strike.
type Result struct {
	Attacker string
	Target   string
	Damage   int
	Killed   bool   // Target dropped to zero or below
	Message  string // Human-readable description
}

// MonsterDamage is the damage a monster deals against the given defense.
// Armor can never bring it below 1.
func MonsterDamage(defense int) int {
	return max(1, monsterBaseDamage-defense)
}

// StrikeMonster applies the player's weapon damage to m.
func StrikeMonster(p *entity.Player, m *entity.Monster) Result {
	damage := inventory.CharacterDamage(p)
	m.TakeDamage(damage)

	return Result{
		Attacker: p.Name,
		Target:   m.Name,
		Damage:   damage,
		Killed:   !m.IsAlive(),
		Message:  fmt.Sprintf("You hit %s for %d damage!", m.Name, damage),
	}
}

// StrikePlayer applies m's attack to the player.
func StrikePlayer(m *entity.Monster, p *entity.Player) Result {
	damage := MonsterDamage(inventory.CharacterDefense(p))
	p.TakeDamage(damage)

	return Result{
		Attacker: m.Name,
		Target:   p.Name,
		Damage:   damage,
		Killed:   p.IsDead(),
		Message:  fmt.Sprintf("%s hits you for %d damage!", m.Name, damage),
	}
}
