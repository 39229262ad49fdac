// Package gamedata holds the monster and item archetype tables and the
// registries the spawner draws from.
package gamedata

import "embed"

// tables carries monsters.json and items.json inside the binary.
//
//go:embed monsters.json items.json
var tables embed.FS
