package world

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 80
	DefaultHeight = 18

	// Room box partition of the interior
	roomRows    = 3
	roomColumns = 6

	// Room size bounds, walls included. The limits are exclusive.
	roomMinWidth    = 4
	roomWidthLimit  = 13
	roomMinHeight   = 4
	roomHeightLimit = 15

	// Percent chance per floor cell
	monsterChance = 3
	itemChance    = 4
)

// MinWidth and MinHeight are the smallest grids the room partition fits in.
const (
	MinWidth  = 2 + roomColumns*(roomMinWidth+1)
	MinHeight = 2 + roomRows*(roomMinHeight+1)
)

// ErrGridTooSmall is returned when the requested grid cannot hold the room partition.
var ErrGridTooSmall = errors.New("grid too small for room partition")

// Generate builds a new level: a walled border, one walled room with a single
// door per box of the room partition, spawn markers for monsters and items,
// a player start and a staircase down.
func Generate(ctx context.Context, width, height int, rng RandomSource) (*Grid, error) {
	if width < MinWidth || height < MinHeight {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrGridTooSmall, width, height, MinWidth, MinHeight)
	}

	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	g := NewGrid(width, height)
	g.buildPerimeter()

	rooms := g.placeRooms(rng)
	monsters, items := g.seedSpawns(rng)
	g.placeStartAndStairs()

	span.SetAttributes(
		attribute.Int("dungeon.width", width),
		attribute.Int("dungeon.height", height),
		attribute.Int("dungeon.room_count", len(rooms)),
		attribute.Int("dungeon.monster_spawns", monsters),
		attribute.Int("dungeon.item_spawns", items),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return g, nil
}

// buildPerimeter walls off the outer ring of the grid.
func (g *Grid) buildPerimeter() {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if y == 0 || x == 0 || y == g.Height-1 || x == g.Width-1 {
				g.SetTile(x, y, TileWall)
			}
		}
	}
}

// placeRooms drops one room into every box of the partition.
func (g *Grid) placeRooms(rng RandomSource) []Room {
	boxWidth := (g.Width - 2) / roomColumns
	boxHeight := (g.Height - 2) / roomRows

	rooms := make([]Room, 0, roomRows*roomColumns)
	for row := 0; row < roomRows; row++ {
		for col := 0; col < roomColumns; col++ {
			box := Room{
				X:      1 + col*boxWidth,
				Y:      1 + row*boxHeight,
				Width:  boxWidth,
				Height: boxHeight,
			}
			rooms = append(rooms, g.addRoom(box, rng))
		}
	}
	return rooms
}

// addRoom carves the walls of a random room inside box. Exactly one
// perimeter cell becomes a door: the first one, scanning row by row, that
// lines up with either random door offset.
func (g *Grid) addRoom(box Room, rng RandomSource) Room {
	width := randRange(rng, roomMinWidth, min(roomWidthLimit, box.Width))
	height := randRange(rng, roomMinHeight, min(roomHeightLimit, box.Height))
	room := Room{
		X:      box.X + rng.Intn(box.Width-width+1),
		Y:      box.Y + rng.Intn(box.Height-height+1),
		Width:  width,
		Height: height,
	}
	doorX := randRange(rng, 1, width-1)
	doorY := randRange(rng, 1, height-1)

	doorPlaced := false
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !room.OnPerimeter(room.X+x, room.Y+y) {
				continue
			}
			if !doorPlaced && (x == doorX || y == doorY) {
				g.SetTile(room.X+x, room.Y+y, TileDoor)
				doorPlaced = true
				continue
			}
			g.SetTile(room.X+x, room.Y+y, TileWall)
		}
	}
	return room
}

// seedSpawns rolls every floor cell for a monster, then for an item.
func (g *Grid) seedSpawns(rng RandomSource) (monsters, items int) {
	for i, tile := range g.Tiles {
		if tile != TileFloor {
			continue
		}
		if rng.Intn(100) < monsterChance {
			g.Tiles[i] = TileMonsterSpawn
			monsters++
			continue
		}
		if rng.Intn(100) < itemChance {
			g.Tiles[i] = TileItemSpawn
			items++
		}
	}
	return monsters, items
}

// placeStartAndStairs marks the first floor cell as the player start and the
// last one as the stairs. Either is skipped when no floor is left.
func (g *Grid) placeStartAndStairs() {
	if p, ok := g.Find(TileFloor); ok {
		g.SetTile(p.X, p.Y, TilePlayerSpawn)
	}
	if p, ok := g.FindLast(TileFloor); ok {
		g.SetTile(p.X, p.Y, TileStairs)
	}
}

// randRange returns a value in [lo, hi).
func randRange(rng RandomSource, lo, hi int) int {
	return lo + rng.Intn(hi-lo)
}
