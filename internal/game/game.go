package game

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/spawn"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/ui"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// maxSelectionDigits bounds the inventory index a player can type.
const maxSelectionDigits = 3

// Options carries what a run needs besides the terminal.
type Options struct {
	Config  Config
	Player  *entity.Player
	RNG     world.RandomSource
	Factory *spawn.Factory
	Logger  *slog.Logger
}

// Game binds the engine to a terminal screen.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	engine   *Engine
	opts     Options
	log      *slog.Logger
	running  bool

	// Digits typed on the inventory screen, submitted with Enter.
	selection []rune
}

// New creates a new game instance on the real terminal.
func New(opts Options) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, opts), nil
}

// NewWithScreen creates a game on an already initialized screen.
func NewWithScreen(screen *ui.Screen, opts Options) *Game {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		opts:     opts,
		log:      log,
		running:  true,
	}
}

// Engine returns the turn engine, or nil before Run has started.
func (g *Game) Engine() *Engine { return g.engine }

// Run executes the main game loop until the player quits or dies.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	width, height := g.opts.Config.LevelSize(g.screen.Size())
	g.engine = NewEngine(EngineConfig{
		Width:   width,
		Height:  height,
		RNG:     g.opts.RNG,
		Factory: g.opts.Factory,
		Player:  g.opts.Player,
		Logger:  g.log,
	})
	if err := g.engine.NewLevel(ctx); err != nil {
		initSpan.RecordError(err)
		initSpan.End()
		g.screen.Close()
		return fmt.Errorf("first level: %w", err)
	}
	initSpan.SetAttributes(
		attribute.Int("level.width", width),
		attribute.Int("level.height", height),
		attribute.String("player.name", g.opts.Player.Name),
	)
	initSpan.End()

	var err error
	for g.running && err == nil {
		g.render()
		err = g.handleInput(ctx)
	}

	g.screen.Close()
	return err
}

// render draws the screen for the current state.
func (g *Game) render() {
	e := g.engine
	switch e.State() {
	case StateInventory:
		g.renderer.RenderInventory(e.Player(), e.Messages(), string(g.selection))
	case StateDead:
		g.renderer.RenderDeath(e.Player(), e.Level().Depth, e.Messages())
	default:
		lvl := e.Level()
		g.renderer.Render(ui.Frame{
			Grid:     lvl.Grid,
			Player:   e.Player(),
			Monsters: lvl.Monsters,
			Items:    lvl.Items,
			Depth:    lvl.Depth,
			Messages: e.Messages(),
		}, e.Dirty())
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) error {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
		g.engine.Dirty().RequestFullRedraw()
	case nil:
		// Screen finalized.
		g.running = false
	}
	return nil
}

// handleKeyEvent dispatches a key according to the current state.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) error {
	switch g.engine.State() {
	case StateDead:
		g.running = false
	case StateInventory:
		g.handleInventoryKey(ev)
	default:
		if isQuit(ev) {
			g.log.Info("player quit", "depth", g.engine.Level().Depth)
			g.running = false
			return nil
		}
		intent, ok := IntentForKey(ev)
		if !ok {
			return nil
		}
		if _, err := g.engine.Step(ctx, intent); err != nil {
			return err
		}
	}
	return nil
}

// handleInventoryKey edits the typed selection. Enter uses the entry with
// that index; Esc or 'i' goes back to the map.
func (g *Game) handleInventoryKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		g.closeInventory()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if n := len(g.selection); n > 0 {
			g.selection = g.selection[:n-1]
		}
	case tcell.KeyEnter:
		g.submitSelection()
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r == 'i' || r == 'I':
			g.closeInventory()
		case r >= '0' && r <= '9':
			if len(g.selection) < maxSelectionDigits {
				g.selection = append(g.selection, r)
			}
		default:
			g.selection = nil
			g.engine.UseInventoryItem(-1)
		}
	}
}

// submitSelection uses the typed entry. An empty or unknown index keeps the
// screen open with a fresh prompt.
func (g *Game) submitSelection() {
	index, err := strconv.Atoi(string(g.selection))
	g.selection = nil
	if err != nil {
		index = -1
	}
	if g.engine.UseInventoryItem(index) {
		g.closeInventory()
	}
}

// closeInventory returns to the map, which the inventory screen overwrote.
func (g *Game) closeInventory() {
	g.selection = nil
	g.engine.CloseInventory()
	g.engine.Dirty().RequestFullRedraw()
}

// IntentForKey maps arrow keys, WASD and 'i' to player intents.
func IntentForKey(ev *tcell.EventKey) (PlayerIntent, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return IntentMoveUp, true
	case tcell.KeyDown:
		return IntentMoveDown, true
	case tcell.KeyLeft:
		return IntentMoveLeft, true
	case tcell.KeyRight:
		return IntentMoveRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return IntentMoveUp, true
		case 's', 'S':
			return IntentMoveDown, true
		case 'a', 'A':
			return IntentMoveLeft, true
		case 'd', 'D':
			return IntentMoveRight, true
		case 'i', 'I':
			return IntentOpenInventory, true
		}
	}
	return 0, false
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
