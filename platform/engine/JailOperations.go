package engine

import (
	"fmt"

	"monopoly-engine/app/models"
)

// handleJail applies the jail state machine for a turn attempt. Doubles free
// the player immediately and the move proceeds. Otherwise the sentence
// counter advances; on the third failed attempt bail is mandatory, so a
// player who cannot cover it goes bankrupt instead of moving.
func (e *Engine) handleJail(player *models.Player, dice1, dice2 int, res *models.ActionResult) (canMove, bankrupt bool) {
	if !player.InJail {
		return true, false
	}

	if dice1 == dice2 {
		player.InJail = false
		player.JailTurns = 0
		res.Messages = append(res.Messages, fmt.Sprintf("%s rolled doubles and got out of jail!", player.Name))
		return true, false
	}

	player.JailTurns++

	if player.JailTurns >= MaxJailTurns {
		if player.Money >= BailCost {
			player.Money -= BailCost
			player.InJail = false
			player.JailTurns = 0
			res.Messages = append(res.Messages, fmt.Sprintf("%s paid $%d to get out of jail", player.Name, BailCost))
			return true, false
		}
		res.Messages = append(res.Messages, fmt.Sprintf("%s can't afford to leave jail! Bankrupt!", player.Name))
		return false, true
	}

	res.Messages = append(res.Messages, fmt.Sprintf("%s is in jail (turn %d/%d)", player.Name, player.JailTurns, MaxJailTurns))
	return false, false
}
