// Package game runs the dungeon: levels, turn resolution and the main loop.
package game

// State represents the current top-level game state.
type State int

const (
	// StateExplore is the default mode: the player moves and fights.
	StateExplore State = iota
	// StateInventory shows the inventory; the level is paused.
	StateInventory
	// StateDead is terminal; the character dropped below zero hitpoints.
	StateDead
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateInventory:
		return "inventory"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}
