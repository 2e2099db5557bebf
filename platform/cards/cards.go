package cards

import (
	_ "embed"
	"fmt"
	"io/ioutil"
	"math/rand"

	"gopkg.in/yaml.v3"

	"monopoly-engine/app/models"
)

//go:embed decks.yaml
var defaultDecks []byte

// Decks holds the configured card effects per deck. The deck contents are a
// configuration surface: the engine only consumes the DrawFunc.
type Decks struct {
	Chance         []models.Card `yaml:"chance"`
	CommunityChest []models.Card `yaml:"community_chest"`
}

// DrawFunc returns the next card for the given deck type ("chance" or
// "community_chest").
type DrawFunc func(deck string) models.Card

// LoadDecks returns the built-in decks. Static config, panics if the embedded
// file is broken.
func LoadDecks() Decks {
	decks, err := parse(defaultDecks)
	if err != nil {
		panic(err)
	}
	return decks
}

// LoadDecksFile reads a deck configuration override from disk.
func LoadDecksFile(path string) (Decks, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Decks{}, err
	}
	return parse(data)
}

func parse(data []byte) (Decks, error) {
	var decks Decks
	if err := yaml.Unmarshal(data, &decks); err != nil {
		return Decks{}, err
	}
	if len(decks.Chance) == 0 || len(decks.CommunityChest) == 0 {
		return Decks{}, fmt.Errorf("deck config must define both chance and community_chest")
	}
	return decks, nil
}

// Drawer returns a weighted draw over the decks, deterministic given rng.
func (d Decks) Drawer(rng *rand.Rand) DrawFunc {
	return func(deck string) models.Card {
		cards := d.Chance
		if deck == models.SpaceCommunityChest {
			cards = d.CommunityChest
		}
		return pick(cards, rng)
	}
}

func pick(cards []models.Card, rng *rand.Rand) models.Card {
	total := 0
	for _, c := range cards {
		total += weight(c)
	}
	n := rng.Intn(total)
	for _, c := range cards {
		n -= weight(c)
		if n < 0 {
			return c
		}
	}
	return cards[len(cards)-1]
}

func weight(c models.Card) int {
	if c.Weight <= 0 {
		return 1
	}
	return c.Weight
}
