// Package engine implements the game rules: movement, landing consequences,
// rent, jail, improvements, bankruptcy, win detection and the computer-player
// heuristics. Every operation is a synchronous in-memory transition over one
// GameState; the engine performs no I/O and holds no per-game state, so the
// caller owns serializing mutations per game.
package engine

import (
	"math/rand"
	"time"

	"monopoly-engine/app/models"
	"monopoly-engine/platform/cards"
)

// Fixed game amounts.
const (
	StartingMoney = 1500
	GoBonus       = 200
	BailCost      = 50
	MaxJailTurns  = 3
	JailPosition  = 10
	HouseCost     = 100
	HotelCost     = 500
	HotelLevel    = 5

	// cardFallbackBonus is credited on card spaces when no deck is configured.
	cardFallbackBonus = 50
)

// Engine evaluates rule transitions. It holds only the immutable board
// catalog, the card drawer and the random source for AI policies; all mutable
// state lives in the GameState passed to every call.
type Engine struct {
	spaces []models.Space
	draw   cards.DrawFunc
	rng    *rand.Rand
}

// New builds an engine over the given catalog. draw may be nil, in which case
// card spaces credit a flat bonus. rng may be nil for a time-seeded source;
// pass a seeded one for deterministic AI decisions.
func New(spaces []models.Space, draw cards.DrawFunc, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{spaces: spaces, draw: draw, rng: rng}
}
