package game

import (
	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Level is one floor of the dungeon: its grid and the entities still alive
// or lying on it. It is replaced wholesale when the player descends.
type Level struct {
	Depth    int
	Grid     *world.Grid
	Monsters []*entity.Monster
	Items    []*entity.Item
}

// ItemIndexAt returns the index of the first item lying on pos, or -1.
func (l *Level) ItemIndexAt(pos world.Position) int {
	for i, it := range l.Items {
		if it.Position == pos {
			return i
		}
	}
	return -1
}

// removeMonsters drops the given monsters in one pass.
func (l *Level) removeMonsters(dead []*entity.Monster) {
	if len(dead) == 0 {
		return
	}
	alive := make([]*entity.Monster, 0, len(l.Monsters))
	for _, m := range l.Monsters {
		if !containsMonster(dead, m) {
			alive = append(alive, m)
		}
	}
	l.Monsters = alive
}

// removeItem drops the item at index i.
func (l *Level) removeItem(i int) {
	l.Items = append(l.Items[:i], l.Items[i+1:]...)
}

func containsMonster(list []*entity.Monster, m *entity.Monster) bool {
	for _, x := range list {
		if x == m {
			return true
		}
	}
	return false
}
