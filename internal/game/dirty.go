package game

import "github.com/zyedidia/generic/mapset"

// DirtyTiles records tile indices whose rendering went stale since the last
// draw, in the order they were marked. The renderer clears it after drawing.
type DirtyTiles struct {
	order []int
	seen  mapset.Set[int]
	full  bool
}

// NewDirtyTiles returns an empty set that asks for a full redraw.
func NewDirtyTiles() *DirtyTiles {
	return &DirtyTiles{seen: mapset.New[int](), full: true}
}

// Mark records index as stale. Repeated marks keep the first position.
func (d *DirtyTiles) Mark(index int) {
	if d.Has(index) {
		return
	}
	d.seen.Put(index)
	d.order = append(d.order, index)
}

// RequestFullRedraw asks the renderer to redraw every tile.
func (d *DirtyTiles) RequestFullRedraw() {
	d.full = true
}

// Full reports whether a full redraw is pending.
func (d *DirtyTiles) Full() bool {
	return d.full
}

// Indices returns the stale tile indices in marking order.
func (d *DirtyTiles) Indices() []int {
	return d.order
}

// Has reports whether index is marked.
func (d *DirtyTiles) Has(index int) bool {
	return d.seen.Has(index)
}

// Len returns the number of marked tiles.
func (d *DirtyTiles) Len() int {
	return len(d.order)
}

// Clear resets the set after a draw cycle.
func (d *DirtyTiles) Clear() {
	d.order = nil
	d.seen = mapset.New[int]()
	d.full = false
}
