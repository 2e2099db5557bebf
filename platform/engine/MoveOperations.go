package engine

import (
	"fmt"

	"monopoly-engine/app/models"
	"monopoly-engine/platform/board"
)

// MovePlayer resolves one dice move for the current player: jail handling,
// movement with the passed-Go bonus, landing resolution, bankruptcy removal
// and turn advancement. Dice are supplied by the caller so rolls stay
// auditable and replayable.
func (e *Engine) MovePlayer(state *models.GameState, playerId string, dice1, dice2 int) (*models.ActionResult, error) {
	if state.Finished() {
		return nil, fmt.Errorf("%w: game is over", ErrIllegalAction)
	}
	if dice1 < 1 || dice1 > 6 || dice2 < 1 || dice2 > 6 {
		return nil, fmt.Errorf("%w: dice values must be between 1 and 6", ErrInvalidInput)
	}
	player := state.PlayerById(playerId)
	if player == nil {
		return nil, fmt.Errorf("%w: player %s", ErrNotFound, playerId)
	}
	if state.Players[state.CurrentPlayer].Id != playerId {
		return nil, fmt.Errorf("%w: not %s's turn", ErrIllegalAction, player.Name)
	}

	// Any previous purchase offer lapses once play continues.
	state.PendingOffer = nil

	res := &models.ActionResult{}

	canMove, bankrupt := e.handleJail(player, dice1, dice2, res)
	if !canMove {
		if bankrupt {
			e.removePlayer(state, player, res)
		}
		e.advanceTurn(state, bankrupt)
		return res, nil
	}

	oldPosition := player.Position
	player.Position = (oldPosition + dice1 + dice2) % board.Size
	// Landing exactly on Go is credited once, by the landing resolver.
	if player.Position < oldPosition && player.Position != 0 {
		player.Money += GoBonus
		res.Messages = append(res.Messages, fmt.Sprintf("%s passed Go! Collected $%d", player.Name, GoBonus))
	}

	e.handleLanding(player, player.Position, state, res, 0)

	if res.CanBuy != nil {
		state.PendingOffer = &models.PendingOffer{
			PlayerId: player.Id,
			Property: res.CanBuy.Property,
			Price:    res.CanBuy.Price,
		}
	}

	moverRemoved := false
	if res.Bankrupt {
		e.removePlayer(state, player, res)
		moverRemoved = true
	} else {
		// A payment can leave a player seated at exactly $0; that still ends
		// the game when only one solvent player remains.
		e.settleWin(state, res)
	}
	e.advanceTurn(state, moverRemoved)
	return res, nil
}

// advanceTurn moves play to the next player. When the mover was just removed,
// CurrentPlayer already points at the player who was next in order, so only
// the turn counter advances. A finished game freezes both.
func (e *Engine) advanceTurn(state *models.GameState, moverRemoved bool) {
	if state.Finished() {
		return
	}
	if !moverRemoved {
		state.CurrentPlayer = (state.CurrentPlayer + 1) % len(state.Players)
	}
	state.Turn++
}
