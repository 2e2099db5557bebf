package engine

import (
	"fmt"

	"monopoly-engine/app/models"
)

// Cash the AI keeps in reserve before committing to a purchase or build.
const (
	buyReserve   = 500
	buildReserve = 800
)

// AI decision kinds accepted by AIDecide.
const (
	DecideBuy   = "buy"
	DecideBuild = "build"
)

// ShouldBuy decides whether a computer player takes a purchase offer: never
// below the cash reserve, always when the price is small next to its money,
// otherwise 70% of the time.
func (e *Engine) ShouldBuy(player *models.Player, record *models.PropertyRecord) bool {
	if player.Money < record.Price+buyReserve {
		return false
	}
	if float64(record.Price) < float64(player.Money)*0.4 {
		return true
	}
	return e.rng.Float64() < 0.7
}

// ShouldBuild decides whether a computer player improves the property. More
// willing once it holds three or more properties.
func (e *Engine) ShouldBuild(player *models.Player, record *models.PropertyRecord) bool {
	if record.Houses >= HotelLevel {
		return false
	}
	cost := buildCost(record.Houses)
	if player.Money < cost+buildReserve {
		return false
	}
	if len(player.Properties) >= 3 {
		return e.rng.Float64() < 0.6
	}
	return e.rng.Float64() < 0.3
}

// ChooseBuildTarget picks the player's own property with the fewest
// improvements, skipping hotels. Ties go to the first one encountered in the
// player's ownership order. Empty string when nothing qualifies.
func (e *Engine) ChooseBuildTarget(player *models.Player, state *models.GameState) string {
	target := ""
	fewest := 0
	for _, name := range player.Properties {
		record, ok := state.Board[name]
		if !ok || record.Houses >= HotelLevel {
			continue
		}
		if target == "" || record.Houses < fewest {
			target = name
			fewest = record.Houses
		}
	}
	return target
}

// AIDecide runs the heuristic for one decision kind and returns the advisory
// action. The engine applies a submitted buy/build identically whether a
// human or this policy requested it.
func (e *Engine) AIDecide(state *models.GameState, playerId, kind, propertyName string) (*models.AIDecision, error) {
	player := state.PlayerById(playerId)
	if player == nil {
		return nil, fmt.Errorf("%w: player %s", ErrNotFound, playerId)
	}
	if !player.IsComputer {
		return nil, fmt.Errorf("%w: %s is not a computer player", ErrIllegalAction, player.Name)
	}

	switch kind {
	case DecideBuy:
		record, ok := state.Board[propertyName]
		if !ok {
			return nil, fmt.Errorf("%w: property %s", ErrNotFound, propertyName)
		}
		if record.Owner == "" && e.ShouldBuy(player, record) {
			return &models.AIDecision{Action: "buy", Property: propertyName}, nil
		}
		return &models.AIDecision{Action: "pass"}, nil

	case DecideBuild:
		name := e.ChooseBuildTarget(player, state)
		if name != "" && e.ShouldBuild(player, state.Board[name]) {
			return &models.AIDecision{Action: "build", Property: name}, nil
		}
		return &models.AIDecision{Action: "pass"}, nil
	}
	return nil, fmt.Errorf("%w: unknown decision kind %q", ErrInvalidInput, kind)
}
