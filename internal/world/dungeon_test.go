package world

import (
	"context"
	"errors"
	"math/rand"
	"testing"
)

func generate(t *testing.T, seed int64) *Grid {
	t.Helper()
	g, err := Generate(context.Background(), DefaultWidth, DefaultHeight, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return g
}

func TestDungeonReproducibility(t *testing.T) {
	// Generate two dungeons with the same seed
	d1 := generate(t, 12345)
	d2 := generate(t, 12345)

	if len(d1.Tiles) != len(d2.Tiles) {
		t.Fatalf("Tile count mismatch: %d != %d", len(d1.Tiles), len(d2.Tiles))
	}
	for i := range d1.Tiles {
		if d1.Tiles[i] != d2.Tiles[i] {
			p := d1.PositionOf(i)
			t.Errorf("Tile mismatch at (%d,%d): %v != %v", p.X, p.Y, d1.Tiles[i], d2.Tiles[i])
		}
	}
}

func TestDungeonDifferentSeeds(t *testing.T) {
	d1 := generate(t, 12345)
	d2 := generate(t, 54321)

	for i := range d1.Tiles {
		if d1.Tiles[i] != d2.Tiles[i] {
			return
		}
	}
	t.Error("Dungeons with different seeds should not be identical")
}

func TestDungeonPerimeterIsWall(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := generate(t, seed)
		for x := 0; x < g.Width; x++ {
			if g.TileAt(x, 0) != TileWall || g.TileAt(x, g.Height-1) != TileWall {
				t.Fatalf("seed %d: border column %d is not wall", seed, x)
			}
		}
		for y := 0; y < g.Height; y++ {
			if g.TileAt(0, y) != TileWall || g.TileAt(g.Width-1, y) != TileWall {
				t.Fatalf("seed %d: border row %d is not wall", seed, y)
			}
		}
	}
}

func TestDungeonStartAndStairs(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := generate(t, seed)

		if got := g.Count(TilePlayerSpawn); got != 1 {
			t.Fatalf("seed %d: %d player spawns, want 1", seed, got)
		}
		if got := g.Count(TileStairs); got > 1 {
			t.Fatalf("seed %d: %d stairs, want at most 1", seed, got)
		}

		start, _ := g.Find(TilePlayerSpawn)
		stairs, ok := g.Find(TileStairs)
		if ok && start == stairs {
			t.Fatalf("seed %d: player start and stairs share %v", seed, start)
		}
	}
}

func TestDungeonEachRoomHasOneDoor(t *testing.T) {
	g := NewGrid(DefaultWidth, DefaultHeight)
	rng := rand.New(rand.NewSource(7))
	box := Room{X: 1, Y: 1, Width: 13, Height: 5}

	room := g.addRoom(box, rng)

	doors := 0
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			tile := g.TileAt(x, y)
			if room.OnPerimeter(x, y) {
				if tile == TileDoor {
					doors++
				} else if tile != TileWall {
					t.Errorf("perimeter (%d,%d) = %v, want wall or door", x, y, tile)
				}
			} else if tile != TileFloor {
				t.Errorf("interior (%d,%d) = %v, want floor", x, y, tile)
			}
		}
	}
	if doors != 1 {
		t.Errorf("room has %d doors, want 1", doors)
	}
	if !box.Contains(room.X, room.Y) || !box.Contains(room.X+room.Width-1, room.Y+room.Height-1) {
		t.Errorf("room %+v does not fit box %+v", room, box)
	}
}

func TestGenerateRejectsSmallGrid(t *testing.T) {
	tests := []struct {
		width, height int
	}{
		{MinWidth - 1, DefaultHeight},
		{DefaultWidth, MinHeight - 1},
		{0, 0},
	}

	for _, tt := range tests {
		_, err := Generate(context.Background(), tt.width, tt.height, rand.New(rand.NewSource(1)))
		if !errors.Is(err, ErrGridTooSmall) {
			t.Errorf("Generate(%d, %d) error = %v, want ErrGridTooSmall", tt.width, tt.height, err)
		}
	}

	if _, err := Generate(context.Background(), MinWidth, MinHeight, rand.New(rand.NewSource(1))); err != nil {
		t.Errorf("Generate(MinWidth, MinHeight) error = %v", err)
	}
}

func TestRoomSizeStaysBelowLimits(t *testing.T) {
	box := Room{X: 0, Y: 0, Width: 20, Height: 20}
	rng := rand.New(rand.NewSource(7))

	maxW, maxH := 0, 0
	for i := 0; i < 500; i++ {
		g := NewGrid(box.Width, box.Height)
		room := g.addRoom(box, rng)
		if room.Width < roomMinWidth || room.Width >= roomWidthLimit {
			t.Fatalf("room width %d outside [%d, %d)", room.Width, roomMinWidth, roomWidthLimit)
		}
		if room.Height < roomMinHeight || room.Height >= roomHeightLimit {
			t.Fatalf("room height %d outside [%d, %d)", room.Height, roomMinHeight, roomHeightLimit)
		}
		maxW = max(maxW, room.Width)
		maxH = max(maxH, room.Height)
	}
	if maxW != roomWidthLimit-1 || maxH != roomHeightLimit-1 {
		t.Errorf("largest room = %dx%d, want %dx%d", maxW, maxH, roomWidthLimit-1, roomHeightLimit-1)
	}
}
