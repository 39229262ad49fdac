// Package world provides the dungeon tile grid and level generation.
package world

// Tile represents a single map tile kind.
type Tile rune

const (
	// TileFloor represents a passable floor tile.
	TileFloor Tile = '.'
	// TileWall represents an impassable wall tile.
	TileWall Tile = '#'
	// TileDoor represents an open doorway in a room wall.
	TileDoor Tile = '+'
	// TileStairs leads down to the next level.
	TileStairs Tile = '>'

	// Spawn markers. They only live between generation and entity
	// materialization and are replaced with TileFloor once consumed.
	TileMonsterSpawn Tile = 'm'
	TileItemSpawn    Tile = 'i'
	TilePlayerSpawn  Tile = '@'
)

// IsPassable returns true if creatures may step onto the tile.
func (t Tile) IsPassable() bool {
	return t == TileFloor || t == TileDoor
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileDoor:
		return "door"
	case TileStairs:
		return "stairs"
	case TileMonsterSpawn:
		return "monster_spawn"
	case TileItemSpawn:
		return "item_spawn"
	case TilePlayerSpawn:
		return "player_spawn"
	default:
		return "unknown"
	}
}
