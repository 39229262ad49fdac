package gamedata

import "github.com/gdamore/tcell/v2"

// MonsterDef defines a monster archetype loaded from JSON.
type MonsterDef struct {
	ID    string `json:"id"`    // Unique identifier (e.g., "goblin")
	Name  string `json:"name"`  // Display name (e.g., "Goblin")
	Glyph string `json:"glyph"` // Single character for rendering (e.g., "g")
	Color string `json:"color"` // Hex color code (e.g., "#00FF00")
	HP    int    `json:"hp"`    // Starting hit points
}

// GlyphRune returns the glyph as a rune for rendering.
func (m *MonsterDef) GlyphRune() rune {
	if len(m.Glyph) == 0 {
		return '?'
	}
	return rune(m.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (m *MonsterDef) TCellColor() tcell.Color {
	return ParseHexColorOr(m.Color, tcell.ColorWhite)
}

// MonstersFile represents the structure of monsters.json.
type MonstersFile struct {
	Monsters []MonsterDef `json:"monsters"`
}

// LoadMonsters loads monster definitions from the embedded monsters.json file.
func LoadMonsters() ([]MonsterDef, error) {
	file, err := Load[MonstersFile]("monsters.json")
	if err != nil {
		return nil, err
	}
	return file.Monsters, nil
}
