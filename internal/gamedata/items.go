package gamedata

// ItemDef defines an item archetype loaded from JSON.
type ItemDef struct {
	ID      string `json:"id"`      // Unique identifier (e.g., "sword")
	Name    string `json:"name"`    // Display name (e.g., "Sword")
	Type    string `json:"type"`    // One of weapon, armor, potion, treasure
	Quality int    `json:"quality"` // Attack, defense, heal amount or gold value depending on type
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}
