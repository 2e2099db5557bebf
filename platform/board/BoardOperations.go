package board

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"monopoly-engine/app/models"
)

// Size is the number of spaces on the board.
const Size = 40

//go:embed catalog.json
var catalogJSON []byte

// rentMultipliers maps improvement level (0 none .. 5 hotel) to the factor
// applied to base rent for properties and railroads. Utilities are flat and
// carry their rent directly in the catalog.
var rentMultipliers = [6]int{1, 2, 4, 6, 8, 10}

// LoadSpaces returns the 40-space catalog, ordered by position so lookup by
// index is O(1). The catalog is static data; a malformed one is a packaging
// error and panics at process start.
func LoadSpaces() []models.Space {
	var spaces []models.Space
	if err := json.Unmarshal(catalogJSON, &spaces); err != nil {
		panic(err)
	}
	if len(spaces) != Size {
		panic(fmt.Sprintf("board catalog has %d spaces, want %d", len(spaces), Size))
	}
	for i, space := range spaces {
		if space.Position != i {
			panic(fmt.Sprintf("board catalog entry %d has position %d", i, space.Position))
		}
	}
	return spaces
}

// GetByPos returns the space at the given board position.
func GetByPos(pos int, spaces []models.Space) (models.Space, error) {
	if pos < 0 || pos >= len(spaces) {
		return models.Space{}, errors.New("not found")
	}
	return spaces[pos], nil
}

// GetByName returns the space with the given name. O(N) time complexity
func GetByName(name string, spaces []models.Space) (models.Space, error) {
	for _, space := range spaces {
		if space.Name == name {
			return space, nil
		}
	}
	return models.Space{}, errors.New("not found")
}

// Ownable reports whether spaces of this type can be bought.
func Ownable(spaceType string) bool {
	switch spaceType {
	case models.SpaceProperty, models.SpaceRailroad, models.SpaceUtility:
		return true
	}
	return false
}

// Rent returns the rent owed for landing on an owned space. Properties and
// railroads scale base rent by the improvement multiplier; utilities charge
// the flat rent from the catalog regardless of improvements.
func Rent(space models.Space, record *models.PropertyRecord) int {
	if space.Type == models.SpaceUtility {
		return space.Rent
	}
	level := record.Houses
	if level < 0 {
		level = 0
	}
	if level > 5 {
		level = 5
	}
	return space.Rent * rentMultipliers[level]
}
