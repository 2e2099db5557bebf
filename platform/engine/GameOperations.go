package engine

import (
	"fmt"

	uuid "github.com/satori/go.uuid"

	"monopoly-engine/app/models"
	"monopoly-engine/platform/board"
)

// CreateGame builds the initial state for the given seats: everyone starts
// with $1500 at Go, and every catalog space gets a board record up front.
func (e *Engine) CreateGame(seats []models.PlayerSeat) *models.GameState {
	players := make([]*models.Player, 0, len(seats))
	for _, seat := range seats {
		players = append(players, &models.Player{
			Id:         uuid.NewV4().String(),
			Name:       seat.Name,
			Color:      seat.Color,
			Position:   0,
			Money:      StartingMoney,
			Properties: []string{},
			IsComputer: seat.IsComputer,
		})
	}

	boardState := make(map[string]*models.PropertyRecord, len(e.spaces))
	for _, space := range e.spaces {
		record := &models.PropertyRecord{
			Position: space.Position,
			Type:     space.Type,
		}
		if board.Ownable(space.Type) {
			record.Price = space.Price
		}
		boardState[space.Name] = record
	}

	return &models.GameState{
		CurrentPlayer: 0,
		Turn:          1,
		Players:       players,
		Board:         boardState,
		Status:        models.StatusActive,
	}
}

// BuyProperty completes the pending purchase offer for the given player. The
// offer is created by landing on an unowned affordable space and stays valid
// until the next move; ownership and funds are re-checked here regardless of
// what the caller believes.
func (e *Engine) BuyProperty(state *models.GameState, playerId, propertyName string) (*models.ActionResult, error) {
	if state.Finished() {
		return nil, fmt.Errorf("%w: game is over", ErrIllegalAction)
	}
	player := state.PlayerById(playerId)
	if player == nil {
		return nil, fmt.Errorf("%w: player %s", ErrNotFound, playerId)
	}
	record, ok := state.Board[propertyName]
	if !ok {
		return nil, fmt.Errorf("%w: property %s", ErrNotFound, propertyName)
	}
	if !board.Ownable(record.Type) {
		return nil, fmt.Errorf("%w: %s cannot be bought", ErrIllegalAction, propertyName)
	}
	offer := state.PendingOffer
	if offer == nil || offer.PlayerId != playerId || offer.Property != propertyName {
		return nil, fmt.Errorf("%w: no purchase offer for %s on %s", ErrIllegalAction, playerId, propertyName)
	}
	if record.Owner != "" {
		return nil, fmt.Errorf("%w: %s is already owned", ErrIllegalAction, propertyName)
	}
	if player.Money < record.Price {
		return nil, fmt.Errorf("%w: %s costs $%d", ErrInsufficientFunds, propertyName, record.Price)
	}

	player.Money -= record.Price
	record.Owner = player.Id
	player.Properties = append(player.Properties, propertyName)
	state.PendingOffer = nil

	return &models.ActionResult{
		Messages: []string{fmt.Sprintf("%s bought %s for $%d", player.Name, propertyName, record.Price)},
	}, nil
}

// CheckWinner returns the sole player with positive funds, or nil. A player
// sitting at exactly $0 is counted out even while still seated, so the win
// does not wait for a bankruptcy to remove them.
func (e *Engine) CheckWinner(state *models.GameState) *models.Player {
	var winner *models.Player
	solvent := 0
	for _, p := range state.Players {
		if p.Money > 0 {
			solvent++
			winner = p
		}
	}
	if solvent == 1 {
		return winner
	}
	return nil
}

// settleWin finishes the game when exactly one solvent player remains.
func (e *Engine) settleWin(state *models.GameState, res *models.ActionResult) {
	winner := e.CheckWinner(state)
	if winner == nil {
		return
	}
	state.Winner = winner.Id
	state.Status = models.StatusFinished
	res.Messages = append(res.Messages, fmt.Sprintf("%s wins the game!", winner.Name))
}

// removePlayer takes a bankrupt player out of the game, returns their
// holdings to the bank and settles the end-of-game conditions. Funds owed to
// a creditor were already transferred during landing resolution; whatever is
// left leaves play. CurrentPlayer is adjusted so the next player in order is
// not skipped.
func (e *Engine) removePlayer(state *models.GameState, player *models.Player, res *models.ActionResult) {
	for _, record := range state.Board {
		if record.Owner == player.Id {
			record.Owner = ""
			record.Houses = 0
		}
	}
	player.Money = 0

	idx := -1
	for i, p := range state.Players {
		if p.Id == player.Id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}
	state.Players = append(state.Players[:idx], state.Players[idx+1:]...)
	if idx < state.CurrentPlayer {
		state.CurrentPlayer--
	}
	if state.CurrentPlayer >= len(state.Players) {
		state.CurrentPlayer = 0
	}
	res.Bankrupt = true
	res.Messages = append(res.Messages, fmt.Sprintf("%s is out of the game!", player.Name))

	e.settleWin(state, res)
	if state.Finished() {
		return
	}
	// Nobody left who could still win: report the anomaly as an explicit draw
	// instead of leaving the winner silently unset.
	if len(state.Players) == 0 || (len(state.Players) == 1 && e.noSolventPlayers(state)) {
		state.Status = models.StatusDraw
		res.Messages = append(res.Messages, "No solvent players remain - the game ends in a draw")
	}
}

func (e *Engine) noSolventPlayers(state *models.GameState) bool {
	for _, p := range state.Players {
		if p.Money > 0 {
			return false
		}
	}
	return true
}
