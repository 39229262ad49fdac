// Package inventory implements the equip and consumption rules for the
// player's items.
package inventory

import "github.com/samdwyer/dungeoncrawl/internal/entity"

// GiveItem hands a picked-up item to the player and reports whether it was
// auto-equipped. Weapons and armor are equipped only when the slot is empty
// or the new quality is strictly higher. Treasure turns into gold and never
// enters the inventory.
func GiveItem(p *entity.Player, item *entity.Item) bool {
	switch item.Type {
	case entity.ItemWeapon:
		equipped := p.Weapon == nil || item.Quality > p.Weapon.Quality
		if equipped {
			p.Weapon = item
		}
		p.Inventory = insertAt(p.Inventory, 0, item)
		return equipped

	case entity.ItemArmor:
		equipped := p.Armor == nil || item.Quality > p.Armor.Quality
		if equipped {
			p.Armor = item
		}
		p.Inventory = insertAt(p.Inventory, firstNonWeapon(p.Inventory), item)
		return equipped

	case entity.ItemPotion:
		p.Inventory = append(p.Inventory, item)

	case entity.ItemTreasure:
		p.Gold += item.Quality
	}
	return false
}

// UseItem applies an item the player picked from the inventory. Weapons and
// armor are equipped unconditionally; potions heal, raise the hitpoint cap
// if they overflow it, and are used up. It reports whether anything happened.
func UseItem(p *entity.Player, item *entity.Item) bool {
	switch item.Type {
	case entity.ItemWeapon:
		p.Weapon = item
		return true
	case entity.ItemArmor:
		p.Armor = item
		return true
	case entity.ItemPotion:
		p.Hitpoints += item.Quality
		if p.Hitpoints > p.MaxHitpoints {
			p.MaxHitpoints = p.Hitpoints
		}
		p.RemoveItem(item)
		return true
	default:
		return false
	}
}

// CharacterDamage is the damage the player deals per hit.
func CharacterDamage(p *entity.Player) int {
	if p.Weapon != nil {
		return p.Weapon.Quality
	}
	return 1
}

// CharacterDefense is the player's armor value.
func CharacterDefense(p *entity.Player) int {
	if p.Armor != nil {
		return p.Armor.Quality
	}
	return 0
}

// firstNonWeapon returns the index just past the leading run of weapons.
func firstNonWeapon(items []*entity.Item) int {
	i := 0
	for i < len(items) && items[i].Type == entity.ItemWeapon {
		i++
	}
	return i
}

func insertAt(items []*entity.Item, i int, item *entity.Item) []*entity.Item {
	items = append(items, nil)
	copy(items[i+1:], items[i:])
	items[i] = item
	return items
}
