package world

// Position is an integer cell coordinate.
type Position struct {
	X, Y int
}

// Add returns the position offset by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// DistanceSquared returns the squared Euclidean distance between p and o.
func (p Position) DistanceSquared(o Position) int {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

// RandomSource is a seeded uniform integer generator. *rand.Rand satisfies it.
type RandomSource interface {
	// Intn returns a value in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// Grid is a fixed-size, row-major grid of tiles.
type Grid struct {
	Width  int
	Height int
	Tiles  []Tile
}

// NewGrid creates a grid of the given size filled with floor.
func NewGrid(width, height int) *Grid {
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = TileFloor
	}
	return &Grid{
		Width:  width,
		Height: height,
		Tiles:  tiles,
	}
}

// Index returns the tile index for (x, y). It does not check bounds.
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// PositionOf converts a tile index back to a position.
func (g *Grid) PositionOf(index int) Position {
	return Position{X: index % g.Width, Y: index / g.Width}
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// TileAt returns the tile at (x, y). Anything outside the grid is a wall.
func (g *Grid) TileAt(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileWall
	}
	return g.Tiles[g.Index(x, y)]
}

// TileAtPos is TileAt for a Position.
func (g *Grid) TileAtPos(p Position) Tile {
	return g.TileAt(p.X, p.Y)
}

// SetTile sets the tile at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) SetTile(x, y int, t Tile) {
	if !g.InBounds(x, y) {
		return
	}
	g.Tiles[g.Index(x, y)] = t
}

// IsPassable returns true if the given position can be walked on.
func (g *Grid) IsPassable(x, y int) bool {
	return g.TileAt(x, y).IsPassable()
}

// Find returns the position of the first tile of kind t in row-major order.
func (g *Grid) Find(t Tile) (Position, bool) {
	for i, tile := range g.Tiles {
		if tile == t {
			return g.PositionOf(i), true
		}
	}
	return Position{}, false
}

// FindLast returns the position of the last tile of kind t in row-major order.
func (g *Grid) FindLast(t Tile) (Position, bool) {
	for i := len(g.Tiles) - 1; i >= 0; i-- {
		if g.Tiles[i] == t {
			return g.PositionOf(i), true
		}
	}
	return Position{}, false
}

// Count returns how many tiles of kind t the grid holds.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, tile := range g.Tiles {
		if tile == t {
			n++
		}
	}
	return n
}
