package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/spawn"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// ErrNoPlayerStart is returned when a generated level has no floor left for
// the player to start on.
var ErrNoPlayerStart = errors.New("level has no player start")

// Engine owns the current level and the player and resolves turns against
// them. It is single-threaded; every call runs to completion.
type Engine struct {
	width, height int
	rng           world.RandomSource
	factory       *spawn.Factory
	log           *slog.Logger

	player   *entity.Player
	level    *Level
	dirty    *DirtyTiles
	messages []string
	state    State
}

// EngineConfig carries the engine's collaborators.
type EngineConfig struct {
	Width, Height int
	RNG           world.RandomSource // Shared for the whole run, never recreated
	Factory       *spawn.Factory
	Player        *entity.Player
	Logger        *slog.Logger // Optional
}

// NewEngine creates an engine without a level; call NewLevel before playing.
func NewEngine(cfg EngineConfig) *Engine {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		width:   cfg.Width,
		height:  cfg.Height,
		rng:     cfg.RNG,
		factory: cfg.Factory,
		log:     log,
		player:  cfg.Player,
		dirty:   NewDirtyTiles(),
		state:   StateExplore,
	}
}

// NewLevel generates the next level, spawns its entities and moves the
// player onto its start tile. Hitpoints, gold and inventory carry over.
func (e *Engine) NewLevel(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "level.descend")
	defer span.End()

	depth := 1
	if e.level != nil {
		depth = e.level.Depth + 1
	}

	grid, err := world.Generate(ctx, e.width, e.height, e.rng)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("generate level %d: %w", depth, err)
	}

	monsters, items, err := e.factory.SpawnEntities(ctx, grid, e.rng)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("spawn entities on level %d: %w", depth, err)
	}

	start, ok := grid.Find(world.TilePlayerSpawn)
	if !ok {
		return fmt.Errorf("level %d: %w", depth, ErrNoPlayerStart)
	}
	grid.SetTile(start.X, start.Y, world.TileFloor)
	e.player.MoveTo(start)

	e.level = &Level{
		Depth:    depth,
		Grid:     grid,
		Monsters: monsters,
		Items:    items,
	}
	e.dirty.Clear()
	e.dirty.RequestFullRedraw()

	telemetry.LevelsGenerated.Inc()
	telemetry.CurrentDepth.Set(float64(depth))
	span.SetAttributes(
		attribute.Int("level.depth", depth),
		attribute.Int("level.monsters", len(monsters)),
		attribute.Int("level.items", len(items)),
	)
	e.log.Info("level generated",
		"depth", depth,
		"monsters", len(monsters),
		"items", len(items),
		"start_x", start.X,
		"start_y", start.Y,
	)
	return nil
}

// Step runs one full turn: the player's intent, then, unless the inventory
// was opened, the enemy phase and the death check. Reaching the stairs
// loads the next level after the enemies have moved. A dead character
// takes no more turns.
func (e *Engine) Step(ctx context.Context, intent PlayerIntent) (TurnResult, error) {
	if e.state == StateDead {
		return TurnOver, nil
	}
	e.messages = nil

	result := e.ResolvePlayerTurn(ctx, intent)
	if result == TurnOpenInventory {
		return result, nil
	}

	e.RunEnemyPhase(ctx)

	if e.player.IsDead() {
		e.state = StateDead
		e.log.Info("player died",
			"name", e.player.Name,
			"depth", e.level.Depth,
			"gold", e.player.Gold,
			"hitpoints", e.player.Hitpoints,
		)
		return result, nil
	}

	if result == TurnNextLevel {
		if err := e.NewLevel(ctx); err != nil {
			return result, err
		}
	}
	e.log.Debug("turn resolved",
		"intent", intent.String(),
		"result", result.String(),
		"hitpoints", e.player.Hitpoints,
		"dirty_tiles", e.dirty.Len(),
	)
	return result, nil
}

// Player returns the player character.
func (e *Engine) Player() *entity.Player { return e.player }

// Level returns the current level.
func (e *Engine) Level() *Level { return e.level }

// Dirty returns the stale-tile set for the renderer.
func (e *Engine) Dirty() *DirtyTiles { return e.dirty }

// Messages returns the messages produced by the last turn, oldest first.
func (e *Engine) Messages() []string { return e.messages }

// State returns the current top-level state.
func (e *Engine) State() State { return e.state }

// PlayerDead reports whether the game has reached its terminal state.
func (e *Engine) PlayerDead() bool { return e.state == StateDead }

// say appends a message for this turn.
func (e *Engine) say(format string, args ...any) {
	e.messages = append(e.messages, fmt.Sprintf(format, args...))
}

// markDirty flags the tile under pos as stale.
func (e *Engine) markDirty(pos world.Position) {
	if e.level.Grid.InBounds(pos.X, pos.Y) {
		e.dirty.Mark(e.level.Grid.Index(pos.X, pos.Y))
	}
}
