// Package spawn materializes monsters and items from the spawn markers a
// generated grid carries.
package spawn

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Factory turns spawn markers into entities using archetype tables.
type Factory struct {
	monsters *gamedata.MonsterRegistry
	items    *gamedata.ItemRegistry
}

// NewFactory creates a factory drawing from the given registries.
func NewFactory(monsters *gamedata.MonsterRegistry, items *gamedata.ItemRegistry) *Factory {
	return &Factory{monsters: monsters, items: items}
}

// SpawnEntities scans grid once in row-major order. Each monster or item
// marker draws one archetype from rng, becomes an entity at that cell, and
// the cell is reset to floor. The scan order fixes the draw order, so a
// seeded rng gives the same entities every time.
func (f *Factory) SpawnEntities(ctx context.Context, grid *world.Grid, rng gamedata.RandomSource) ([]*entity.Monster, []*entity.Item, error) {
	tracer := telemetry.Tracer("spawn")
	_, span := tracer.Start(ctx, "entities.spawn")
	defer span.End()

	monsters := []*entity.Monster{}
	items := []*entity.Item{}

	for i, tile := range grid.Tiles {
		pos := grid.PositionOf(i)
		switch tile {
		case world.TileMonsterSpawn:
			if def := f.monsters.SpawnRandom(rng); def != nil {
				monsters = append(monsters, entity.NewMonsterFromDef(def, pos))
			}
			grid.Tiles[i] = world.TileFloor
		case world.TileItemSpawn:
			if def := f.items.SpawnRandom(rng); def != nil {
				item, err := entity.NewItemFromDef(def, pos)
				if err != nil {
					span.RecordError(err)
					return nil, nil, err
				}
				items = append(items, item)
			}
			grid.Tiles[i] = world.TileFloor
		}
	}

	span.SetAttributes(
		attribute.Int("spawn.monsters", len(monsters)),
		attribute.Int("spawn.items", len(items)),
	)
	return monsters, items, nil
}
