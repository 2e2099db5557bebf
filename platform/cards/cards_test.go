package cards

import (
	"math/rand"
	"testing"

	"monopoly-engine/app/models"
	"monopoly-engine/platform/board"
)

func TestLoadDecks(t *testing.T) {
	decks := LoadDecks()
	if len(decks.Chance) == 0 {
		t.Fatal("default chance deck is empty")
	}
	if len(decks.CommunityChest) == 0 {
		t.Fatal("default community chest deck is empty")
	}

	for _, deck := range [][]models.Card{decks.Chance, decks.CommunityChest} {
		for _, card := range deck {
			switch card.Action {
			case models.CardCredit, models.CardDebit:
				if card.Amount <= 0 {
					t.Errorf("card %q has no amount", card.Text)
				}
			case models.CardMove:
			default:
				t.Errorf("card %q has unknown action %q", card.Text, card.Action)
			}
		}
	}
}

// Move cards must not target another card space; that would draw again.
func TestDefaultDeckMoveTargets(t *testing.T) {
	spaces := board.LoadSpaces()
	decks := LoadDecks()
	for _, deck := range [][]models.Card{decks.Chance, decks.CommunityChest} {
		for _, card := range deck {
			if card.Action != models.CardMove {
				continue
			}
			space, err := board.GetByPos(card.Target, spaces)
			if err != nil {
				t.Errorf("card %q targets invalid position %d", card.Text, card.Target)
				continue
			}
			if space.Type == models.SpaceChance || space.Type == models.SpaceCommunityChest {
				t.Errorf("card %q targets card space %q", card.Text, space.Name)
			}
		}
	}
}

func TestDrawerDeterministic(t *testing.T) {
	decks := LoadDecks()
	first := decks.Drawer(rand.New(rand.NewSource(7)))
	second := decks.Drawer(rand.New(rand.NewSource(7)))

	for i := 0; i < 20; i++ {
		a := first(models.SpaceChance)
		b := second(models.SpaceChance)
		if a.Text != b.Text {
			t.Fatalf("draw %d differs: %q vs %q", i, a.Text, b.Text)
		}
	}
}

func TestDrawerPicksFromRequestedDeck(t *testing.T) {
	decks := Decks{
		Chance:         []models.Card{{Text: "chance card", Action: models.CardCredit, Amount: 10}},
		CommunityChest: []models.Card{{Text: "chest card", Action: models.CardCredit, Amount: 20}},
	}
	draw := decks.Drawer(rand.New(rand.NewSource(1)))

	if card := draw(models.SpaceChance); card.Text != "chance card" {
		t.Errorf("chance draw returned %q", card.Text)
	}
	if card := draw(models.SpaceCommunityChest); card.Text != "chest card" {
		t.Errorf("community chest draw returned %q", card.Text)
	}
}

func TestParseRejectsIncompleteConfig(t *testing.T) {
	if _, err := parse([]byte("chance: []\ncommunity_chest: []\n")); err == nil {
		t.Error("empty decks should be rejected")
	}
	if _, err := parse([]byte("not: [valid")); err == nil {
		t.Error("malformed yaml should be rejected")
	}
}

func TestWeightedPick(t *testing.T) {
	cards := []models.Card{
		{Text: "common", Action: models.CardCredit, Amount: 1, Weight: 9},
		{Text: "rare", Action: models.CardCredit, Amount: 1, Weight: 1},
	}
	rng := rand.New(rand.NewSource(42))

	common := 0
	for i := 0; i < 1000; i++ {
		if pick(cards, rng).Text == "common" {
			common++
		}
	}
	// 9:1 weighting should dominate; generous bounds keep this stable.
	if common < 800 || common > 980 {
		t.Errorf("common drawn %d/1000 times, expected roughly 900", common)
	}
}
