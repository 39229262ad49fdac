package world

// Room represents a rectangular room in the dungeon. Only its perimeter is
// carved; the interior keeps whatever was there before.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room including its walls
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// OnPerimeter returns true if the given point lies on the room's outer ring.
func (r Room) OnPerimeter(x, y int) bool {
	if !r.Contains(x, y) {
		return false
	}
	return x == r.X || y == r.Y || x == r.X+r.Width-1 || y == r.Y+r.Height-1
}
