package engine

import (
	"fmt"

	"monopoly-engine/app/models"
	"monopoly-engine/platform/board"
)

// buildCost returns the price of the next improvement: houses are flat, the
// hotel conversion at level 4 is dearer.
func buildCost(houses int) int {
	if houses >= 4 {
		return HotelCost
	}
	return HouseCost
}

// validateBuild re-checks every build precondition against current state.
func validateBuild(player *models.Player, propertyName string, state *models.GameState) (int, error) {
	record, ok := state.Board[propertyName]
	if !ok || !board.Ownable(record.Type) {
		return 0, fmt.Errorf("%w: property %s doesn't exist", ErrNotFound, propertyName)
	}
	if record.Owner != player.Id {
		return 0, fmt.Errorf("%w: %s doesn't own %s", ErrIllegalAction, player.Name, propertyName)
	}
	if record.Houses >= HotelLevel {
		return 0, fmt.Errorf("%w: %s already has a hotel", ErrIllegalAction, propertyName)
	}
	cost := buildCost(record.Houses)
	if player.Money < cost {
		return 0, fmt.Errorf("%w: need $%d to build on %s", ErrInsufficientFunds, cost, propertyName)
	}
	return cost, nil
}

// CanBuild reports whether the player may build on the property right now,
// with a human-readable reason. It never mutates state, so callers may probe
// it freely.
func (e *Engine) CanBuild(player *models.Player, propertyName string, state *models.GameState) (bool, string) {
	if _, err := validateBuild(player, propertyName, state); err != nil {
		return false, err.Error()
	}
	return true, "Can build"
}

// BuildImprovement debits the tiered cost and adds one improvement level.
// Preconditions are validated here from scratch: a prior CanBuild from a
// different request is never trusted.
func (e *Engine) BuildImprovement(state *models.GameState, playerId, propertyName string) (*models.ActionResult, error) {
	if state.Finished() {
		return nil, fmt.Errorf("%w: game is over", ErrIllegalAction)
	}
	player := state.PlayerById(playerId)
	if player == nil {
		return nil, fmt.Errorf("%w: player %s", ErrNotFound, playerId)
	}
	cost, err := validateBuild(player, propertyName, state)
	if err != nil {
		return nil, err
	}

	record := state.Board[propertyName]
	player.Money -= cost
	record.Houses++

	label := "house"
	if record.Houses == HotelLevel {
		label = "hotel"
	}
	return &models.ActionResult{
		Messages: []string{fmt.Sprintf("%s built a %s on %s", player.Name, label, propertyName)},
	}, nil
}
