package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/combat"
	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/inventory"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// aggroRadius is the distance from which monsters start chasing the player.
const aggroRadius = 5

// PlayerIntent is an already-resolved player input.
type PlayerIntent int

const (
	IntentMoveUp PlayerIntent = iota
	IntentMoveDown
	IntentMoveLeft
	IntentMoveRight
	IntentOpenInventory
)

// Delta returns the unit step for a movement intent.
func (i PlayerIntent) Delta() world.Position {
	switch i {
	case IntentMoveUp:
		return world.Position{Y: -1}
	case IntentMoveDown:
		return world.Position{Y: 1}
	case IntentMoveLeft:
		return world.Position{X: -1}
	case IntentMoveRight:
		return world.Position{X: 1}
	default:
		return world.Position{}
	}
}

// String returns a human-readable intent name.
func (i PlayerIntent) String() string {
	switch i {
	case IntentMoveUp:
		return "move_up"
	case IntentMoveDown:
		return "move_down"
	case IntentMoveLeft:
		return "move_left"
	case IntentMoveRight:
		return "move_right"
	case IntentOpenInventory:
		return "open_inventory"
	default:
		return "unknown"
	}
}

// TurnResult tells the loop what to do after a player turn.
type TurnResult int

const (
	// TurnOver - render and wait for the next intent
	TurnOver TurnResult = iota
	// TurnOpenInventory - hand control to the inventory screen
	TurnOpenInventory
	// TurnNextLevel - the player found the stairs
	TurnNextLevel
)

// String returns a human-readable result name.
func (r TurnResult) String() string {
	switch r {
	case TurnOver:
		return "turn_over"
	case TurnOpenInventory:
		return "open_inventory"
	case TurnNextLevel:
		return "next_level"
	default:
		return "unknown"
	}
}

// ResolvePlayerTurn applies one intent. Fighting takes precedence over
// picking up, which takes precedence over moving; only one of them happens.
func (e *Engine) ResolvePlayerTurn(ctx context.Context, intent PlayerIntent) TurnResult {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "turn.player")
	defer span.End()

	result := e.resolvePlayerTurn(intent)

	telemetry.TurnsTotal.WithLabelValues(result.String()).Inc()
	span.SetAttributes(
		attribute.String("intent", intent.String()),
		attribute.String("result", result.String()),
		attribute.Int("player.hitpoints", e.player.Hitpoints),
	)
	return result
}

func (e *Engine) resolvePlayerTurn(intent PlayerIntent) TurnResult {
	if intent == IntentOpenInventory {
		e.state = StateInventory
		return TurnOpenInventory
	}

	dest := e.player.Position.Add(intent.Delta())

	if e.attackAt(dest) {
		return TurnOver
	}
	if e.pickUpAt(dest) {
		return TurnOver
	}

	switch e.level.Grid.TileAtPos(dest) {
	case world.TileFloor:
		e.movePlayer(dest)
	case world.TileDoor:
		e.movePlayer(dest)
		e.say("You open a door")
	case world.TileStairs:
		e.say("You find stairs leading down")
		return TurnNextLevel
	default:
		e.say("You hit a wall")
	}
	return TurnOver
}

// attackAt hits every monster standing on dest and reports whether there
// was one. The dead are removed after the scan.
func (e *Engine) attackAt(dest world.Position) bool {
	hit := false
	var dead []*entity.Monster

	for _, m := range e.level.Monsters {
		if m.Position != dest {
			continue
		}
		hit = true
		result := combat.StrikeMonster(e.player, m)
		e.say("%s", result.Message)
		if result.Killed {
			dead = append(dead, m)
		}
	}

	for _, m := range dead {
		e.say("%s dies!", m.Name)
		e.markDirty(m.Position)
		telemetry.MonstersSlain.WithLabelValues(m.ID()).Inc()
	}
	e.level.removeMonsters(dead)
	return hit
}

// pickUpAt grants the first item lying on dest. The player stays put.
func (e *Engine) pickUpAt(dest world.Position) bool {
	i := e.level.ItemIndexAt(dest)
	if i < 0 {
		return false
	}
	item := e.level.Items[i]

	switch item.Type {
	case entity.ItemArmor:
		e.say("You find a %s, it fits you well", item.Name)
	case entity.ItemWeapon:
		e.say("You find a %s to use in battle", item.Name)
	case entity.ItemPotion:
		e.say("You find a potion of %s", item.Name)
	case entity.ItemTreasure:
		e.say("You find a valuable %s and get %d gold!", item.Name, item.Quality)
	}
	inventory.GiveItem(e.player, item)

	e.level.removeItem(i)
	e.markDirty(dest)
	telemetry.ItemsCollected.WithLabelValues(item.Type.String()).Inc()
	return true
}

func (e *Engine) movePlayer(dest world.Position) {
	e.markDirty(e.player.Position)
	e.player.MoveTo(dest)
}

// RunEnemyPhase lets every monster within aggro range take one greedy step
// toward the player, or attack when that step lands on the player.
func (e *Engine) RunEnemyPhase(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "turn.enemies")
	defer span.End()

	active, attacks := 0, 0
	target := e.player.Position

	for _, m := range e.level.Monsters {
		if m.Position.DistanceSquared(target) >= aggroRadius*aggroRadius {
			continue
		}
		active++

		dest := m.Position.Add(pursuitStep(m.Position, target))
		if dest == target {
			result := combat.StrikePlayer(m, e.player)
			e.say("%s", result.Message)
			telemetry.DamageTaken.Add(float64(result.Damage))
			attacks++
			continue
		}

		if e.level.Grid.IsPassable(dest.X, dest.Y) {
			e.markDirty(m.Position)
			m.Position = dest
		}
	}

	span.SetAttributes(
		attribute.Int("monsters.active", active),
		attribute.Int("monsters.attacks", attacks),
		attribute.Int("player.hitpoints", e.player.Hitpoints),
	)
}

// pursuitStep closes the X gap first, then the Y gap, one cell at a time.
func pursuitStep(from, to world.Position) world.Position {
	switch {
	case to.X < from.X:
		return world.Position{X: -1}
	case to.X > from.X:
		return world.Position{X: 1}
	case to.Y > from.Y:
		return world.Position{Y: 1}
	case to.Y < from.Y:
		return world.Position{Y: -1}
	default:
		return world.Position{}
	}
}

// UseInventoryItem applies the inventory entry at index. An out-of-range
// index only produces a message so the prompt can ask again.
func (e *Engine) UseInventoryItem(index int) bool {
	e.messages = nil
	if index < 0 || index >= len(e.player.Inventory) {
		e.say("Invalid selection")
		return false
	}

	item := e.player.Inventory[index]
	if !inventory.UseItem(e.player, item) {
		e.say("You can't use the %s", item.Name)
		return false
	}

	switch item.Type {
	case entity.ItemWeapon:
		e.say("You wield the %s", item.Name)
	case entity.ItemArmor:
		e.say("You put on the %s", item.Name)
	case entity.ItemPotion:
		e.say("You drink the %s and feel better", item.Name)
	}
	return true
}

// CloseInventory returns to exploring without spending a turn.
func (e *Engine) CloseInventory() {
	if e.state == StateInventory {
		e.state = StateExplore
	}
}
