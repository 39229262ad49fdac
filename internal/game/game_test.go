package game

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/inventory"
	"github.com/samdwyer/dungeoncrawl/internal/ui"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

func newTestGame(t *testing.T, e *Engine) *Game {
	t.Helper()
	screen, err := ui.NewScreenFrom(tcell.NewSimulationScreen("UTF-8"))
	require.NoError(t, err)
	t.Cleanup(screen.Close)

	g := NewWithScreen(screen, Options{Player: e.Player()})
	g.engine = e
	return g
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestIntentForKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want PlayerIntent
		ok   bool
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), IntentMoveUp, true},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), IntentMoveDown, true},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), IntentMoveLeft, true},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), IntentMoveRight, true},
		{"w", runeKey('w'), IntentMoveUp, true},
		{"S", runeKey('S'), IntentMoveDown, true},
		{"a", runeKey('a'), IntentMoveLeft, true},
		{"d", runeKey('d'), IntentMoveRight, true},
		{"inventory", runeKey('i'), IntentOpenInventory, true},
		{"unmapped", runeKey('z'), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := IntentForKey(tt.ev)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestQuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		runeKey('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
	} {
		g := newTestGame(t, withLevel(t, walledGrid(10, 10), world.Position{X: 4, Y: 4}))

		require.NoError(t, g.handleKeyEvent(context.Background(), ev))
		assert.False(t, g.running)
	}
}

func TestMoveKeyStepsEngine(t *testing.T) {
	e := withLevel(t, walledGrid(10, 10), world.Position{X: 4, Y: 4})
	g := newTestGame(t, e)

	require.NoError(t, g.handleKeyEvent(context.Background(), runeKey('d')))

	assert.Equal(t, world.Position{X: 5, Y: 4}, e.Player().Position)
	assert.True(t, g.running)
}

func enterKey() *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
}

func TestInventoryKeys(t *testing.T) {
	e := withLevel(t, walledGrid(10, 10), world.Position{X: 4, Y: 4})
	e.player.Hitpoints = 5
	e.player.Inventory = []*entity.Item{entity.NewItem("Apple juice", entity.ItemPotion, 1, world.Position{})}
	g := newTestGame(t, e)
	ctx := context.Background()

	require.NoError(t, g.handleKeyEvent(ctx, runeKey('i')))
	assert.Equal(t, StateInventory, e.State())

	require.NoError(t, g.handleKeyEvent(ctx, runeKey('x')))
	assert.Equal(t, StateInventory, e.State())
	assert.Equal(t, []string{"Invalid selection"}, e.Messages())

	require.NoError(t, g.handleKeyEvent(ctx, enterKey()))
	assert.Equal(t, StateInventory, e.State(), "empty selection keeps the screen open")

	require.NoError(t, g.handleKeyEvent(ctx, runeKey('7')))
	require.NoError(t, g.handleKeyEvent(ctx, enterKey()))
	assert.Equal(t, StateInventory, e.State())
	assert.Equal(t, []string{"Invalid selection"}, e.Messages())
	assert.Empty(t, g.selection)

	require.NoError(t, g.handleKeyEvent(ctx, runeKey('0')))
	assert.Equal(t, StateInventory, e.State(), "a digit alone does not select")
	require.NoError(t, g.handleKeyEvent(ctx, enterKey()))
	assert.Equal(t, StateExplore, e.State())
	assert.Equal(t, 6, e.Player().Hitpoints)
	assert.True(t, e.Dirty().Full())
}

func TestInventorySelectsPastNine(t *testing.T) {
	e := withLevel(t, walledGrid(10, 10), world.Position{X: 4, Y: 4})
	e.player.Hitpoints = 5
	for i := 0; i < 10; i++ {
		inventory.GiveItem(e.player, entity.NewItem("Sword", entity.ItemWeapon, 20, world.Position{}))
	}
	juice := entity.NewItem("Apple juice", entity.ItemPotion, 1, world.Position{})
	inventory.GiveItem(e.player, juice)
	require.Len(t, e.player.Inventory, 11)
	require.Same(t, juice, e.player.Inventory[10])
	g := newTestGame(t, e)
	ctx := context.Background()

	for _, ev := range []*tcell.EventKey{runeKey('i'), runeKey('1'), runeKey('0'), enterKey()} {
		require.NoError(t, g.handleKeyEvent(ctx, ev))
	}

	assert.Equal(t, StateExplore, e.State())
	assert.Equal(t, 6, e.Player().Hitpoints)
	assert.Equal(t, []string{"You drink the Apple juice and feel better"}, e.Messages())
	assert.Len(t, e.Player().Inventory, 10)
}

func TestInventoryBackspaceEditsSelection(t *testing.T) {
	e := withLevel(t, walledGrid(10, 10), world.Position{X: 4, Y: 4})
	sword := entity.NewItem("Sword", entity.ItemWeapon, 20, world.Position{})
	helmet := entity.NewItem("Helmet", entity.ItemArmor, 12, world.Position{})
	e.player.Inventory = []*entity.Item{sword, helmet}
	g := newTestGame(t, e)
	ctx := context.Background()

	for _, ev := range []*tcell.EventKey{
		runeKey('i'), runeKey('9'),
		tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone),
		runeKey('1'), enterKey(),
	} {
		require.NoError(t, g.handleKeyEvent(ctx, ev))
	}

	assert.Same(t, helmet, e.Player().Armor)
	assert.Nil(t, e.Player().Weapon)
	assert.Equal(t, StateExplore, e.State())
}

func TestInventoryEscapeReturnsWithoutTurn(t *testing.T) {
	e := withLevel(t, walledGrid(10, 10), world.Position{X: 4, Y: 4})
	e.level.Monsters = []*entity.Monster{entity.NewMonster("Goblin", 5, 'g', world.Position{X: 5, Y: 4})}
	g := newTestGame(t, e)
	ctx := context.Background()

	require.NoError(t, g.handleKeyEvent(ctx, runeKey('i')))
	require.NoError(t, g.handleKeyEvent(ctx, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))

	assert.Equal(t, StateExplore, e.State())
	assert.True(t, g.running)
	assert.Equal(t, entity.StartingHitpoints, e.Player().Hitpoints)
}

func TestDeadStateAnyKeyExits(t *testing.T) {
	e := withLevel(t, walledGrid(10, 10), world.Position{X: 4, Y: 4})
	e.state = StateDead
	g := newTestGame(t, e)

	require.NoError(t, g.handleKeyEvent(context.Background(), runeKey('d')))

	assert.False(t, g.running)
	assert.Equal(t, world.Position{X: 4, Y: 4}, e.Player().Position)
}

func TestRenderEachState(t *testing.T) {
	e := withLevel(t, walledGrid(10, 10), world.Position{X: 4, Y: 4})
	g := newTestGame(t, e)

	g.render()
	assert.Zero(t, e.Dirty().Len())

	e.state = StateInventory
	g.render()

	e.state = StateDead
	g.render()
}
