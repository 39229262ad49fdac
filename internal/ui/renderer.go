package ui

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// InfoHeight is the number of rows below the map used by the info pane.
const InfoHeight = 6

// Frame is everything the renderer needs to draw one exploring turn.
type Frame struct {
	Grid     *world.Grid
	Player   *entity.Player
	Monsters []*entity.Monster
	Items    []*entity.Item
	Depth    int
	Messages []string
}

// DirtySet lists tile indices that need redrawing.
type DirtySet interface {
	Full() bool
	Indices() []int
	Clear()
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	printer *message.Printer
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{
		screen:  screen,
		printer: message.NewPrinter(language.English),
	}
}

// Render draws the level, its entities and the info pane. Only tiles in
// dirty are redrawn unless it asks for a full redraw; dirty is cleared
// afterwards.
func (r *Renderer) Render(f Frame, dirty DirtySet) {
	g := f.Grid
	if dirty.Full() {
		r.screen.Clear()
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				r.drawTile(g, x, y)
			}
		}
	} else {
		for _, i := range dirty.Indices() {
			p := g.PositionOf(i)
			r.drawTile(g, p.X, p.Y)
		}
	}

	for _, it := range f.Items {
		r.screen.SetContent(it.Position.X, it.Position.Y, it.Type.Symbol(), itemStyle(it.Type))
	}
	for _, m := range f.Monsters {
		r.screen.SetContent(m.Position.X, m.Position.Y, m.Symbol,
			tcell.StyleDefault.Foreground(m.Color()))
	}

	playerStyle := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Bold(true)
	r.screen.SetContent(f.Player.Position.X, f.Player.Position.Y, f.Player.Symbol, playerStyle)

	r.renderInfo(g.Height, f)
	r.screen.Show()
	dirty.Clear()
}

func (r *Renderer) drawTile(g *world.Grid, x, y int) {
	tile := g.TileAt(x, y)
	r.screen.SetContent(x, y, tile.Rune(), tileStyle(tile))
}

// renderInfo draws the status line and the latest messages starting at top.
func (r *Renderer) renderInfo(top int, f Frame) {
	for y := top; y < top+InfoHeight; y++ {
		r.screen.ClearRow(y)
	}

	p := f.Player
	status := r.printer.Sprintf("%s  HP %d/%d  Gold %d  Depth %d",
		p.Name, p.Hitpoints, p.MaxHitpoints, p.Gold, f.Depth)
	r.screen.DrawText(0, top, status, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	msgs := f.Messages
	if len(msgs) > InfoHeight-1 {
		msgs = msgs[len(msgs)-(InfoHeight-1):]
	}
	for i, msg := range msgs {
		r.screen.DrawText(0, top+1+i, msg, tcell.StyleDefault)
	}
}

// RenderInventory replaces the map with the inventory listing. Entries that
// do not fit one column continue in the next one. selection is the index
// typed so far.
func (r *Renderer) RenderInventory(p *entity.Player, messages []string, selection string) {
	r.screen.Clear()
	width, height := r.screen.Size()
	bold := tcell.StyleDefault.Bold(true)
	r.screen.DrawText(0, 0, "Inventory", bold)
	r.screen.DrawText(0, 1, r.printer.Sprintf("HP %d/%d  Gold %d", p.Hitpoints, p.MaxHitpoints, p.Gold), tcell.StyleDefault)

	const top = 3
	footer := len(messages) + 3
	rows := max(1, height-top-footer)

	lines := make([]string, len(p.Inventory))
	colWidth := 0
	for i, it := range p.Inventory {
		line := r.printer.Sprintf("%d) %c %s (%s, quality %d)", i, it.Type.Symbol(), it.Name, it.Type, it.Quality)
		if p.IsEquipped(it) {
			line += " [equipped]"
		}
		lines[i] = line
		colWidth = max(colWidth, utf8.RuneCountInString(line)+2)
	}

	y := top
	if len(lines) == 0 {
		r.screen.DrawText(0, y, "You carry nothing.", tcell.StyleDefault.Foreground(tcell.ColorGray))
		y++
	}
	for i, line := range lines {
		x := (i / rows) * colWidth
		if x >= width {
			break
		}
		r.screen.DrawText(x, top+i%rows, line, itemStyle(p.Inventory[i].Type))
	}
	y += min(len(lines), rows)

	y++
	for _, msg := range messages {
		r.screen.DrawText(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorRed))
		y++
	}
	r.screen.DrawText(0, y, "Use which item? "+selection+"_", bold)
	r.screen.DrawText(0, y+1, "Type a number and press Enter, Esc to go back.", tcell.StyleDefault.Foreground(tcell.ColorGray))
	r.screen.Show()
}

// RenderDeath shows the final stats of a dead character.
func (r *Renderer) RenderDeath(p *entity.Player, depth int, messages []string) {
	r.screen.Clear()
	y := 0
	for _, msg := range messages {
		r.screen.DrawText(0, y, msg, tcell.StyleDefault)
		y++
	}
	y++
	r.screen.DrawText(0, y, "You died", tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	r.screen.DrawText(0, y+1, r.printer.Sprintf("%s fell on depth %d carrying %d gold.", p.Name, depth, p.Gold), tcell.StyleDefault)
	r.screen.DrawText(0, y+3, "Press any key to exit.", tcell.StyleDefault.Foreground(tcell.ColorGray))
	r.screen.Show()
}

// tileStyle returns the appropriate style for a tile type.
func tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case world.TileDoor:
		return tcell.StyleDefault.Foreground(tcell.ColorOlive)
	case world.TileStairs:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	default:
		return tcell.StyleDefault
	}
}

func itemStyle(t entity.ItemType) tcell.Style {
	switch t {
	case entity.ItemWeapon:
		return tcell.StyleDefault.Foreground(tcell.ColorTeal)
	case entity.ItemArmor:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case entity.ItemPotion:
		return tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	case entity.ItemTreasure:
		return tcell.StyleDefault.Foreground(tcell.ColorGold)
	default:
		return tcell.StyleDefault
	}
}
