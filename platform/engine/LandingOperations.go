package engine

import (
	"fmt"

	"monopoly-engine/app/models"
	"monopoly-engine/platform/board"
)

// maxCardHops bounds chained card-move resolution so a misconfigured deck
// cannot recurse between card spaces forever.
const maxCardHops = 2

// handleLanding dispatches the consequence of occupying a space: purchase
// offer, rent, tax, card draw, jail entry or nothing. It narrates everything
// it does and never advances the turn counter itself.
func (e *Engine) handleLanding(player *models.Player, position int, state *models.GameState, res *models.ActionResult, hops int) {
	space, err := board.GetByPos(position, e.spaces)
	if err != nil {
		res.Messages = append(res.Messages, "Landed on unknown space")
		return
	}

	res.Messages = append(res.Messages, fmt.Sprintf("%s landed on %s", player.Name, space.Name))

	switch space.Type {
	case models.SpaceProperty, models.SpaceRailroad, models.SpaceUtility:
		e.handleOwnable(player, space, state, res)

	case models.SpaceGo:
		player.Money += GoBonus
		res.Messages = append(res.Messages, fmt.Sprintf("Collect $%d for landing on Go!", GoBonus))

	case models.SpaceTax:
		e.chargeBank(player, space.Amount, "taxes", res)

	case models.SpaceGoToJail:
		player.Position = JailPosition
		player.InJail = true
		player.JailTurns = 0
		res.Messages = append(res.Messages, "Go directly to Jail! Do not pass Go, do not collect $200")

	case models.SpaceJail:
		res.Messages = append(res.Messages, "Just visiting jail")

	case models.SpaceFreeParking:
		res.Messages = append(res.Messages, "Resting at Free Parking")

	case models.SpaceChance, models.SpaceCommunityChest:
		e.applyCard(player, space, state, res, hops)
	}
}

// handleOwnable resolves property, railroad and utility landings. The record
// is materialized lazily if game creation somehow skipped it.
func (e *Engine) handleOwnable(player *models.Player, space models.Space, state *models.GameState, res *models.ActionResult) {
	record, ok := state.Board[space.Name]
	if !ok {
		record = &models.PropertyRecord{
			Position: space.Position,
			Type:     space.Type,
			Price:    space.Price,
		}
		state.Board[space.Name] = record
	}

	switch {
	case record.Owner == "":
		if player.Money >= space.Price {
			res.CanBuy = &models.PurchaseOffer{Property: space.Name, Price: space.Price}
			res.Messages = append(res.Messages, fmt.Sprintf("You can buy %s for $%d", space.Name, space.Price))
		} else {
			res.Messages = append(res.Messages, fmt.Sprintf("%s costs $%d but you only have $%d", space.Name, space.Price, player.Money))
		}

	case record.Owner != player.Id:
		owner := state.PlayerById(record.Owner)
		if owner == nil {
			return
		}
		rent := board.Rent(space, record)
		if player.Money >= rent {
			player.Money -= rent
			owner.Money += rent
			res.Messages = append(res.Messages, fmt.Sprintf("Paid $%d rent to %s", rent, owner.Name))
		} else {
			// The creditor takes whatever is left.
			forfeited := player.Money
			owner.Money += forfeited
			player.Money = 0
			res.Bankrupt = true
			res.Messages = append(res.Messages, fmt.Sprintf("Cannot afford $%d rent! Bankrupt!", rent))
			if forfeited > 0 {
				res.Messages = append(res.Messages, fmt.Sprintf("%s forfeits remaining $%d to %s", player.Name, forfeited, owner.Name))
			}
		}
	}
	// Landing on your own space has no effect.
}

// chargeBank collects a mandatory payment with no creditor; a shortfall
// bankrupts the player and the remaining funds leave play.
func (e *Engine) chargeBank(player *models.Player, amount int, what string, res *models.ActionResult) {
	if player.Money >= amount {
		player.Money -= amount
		res.Messages = append(res.Messages, fmt.Sprintf("Paid $%d in %s", amount, what))
		return
	}
	player.Money = 0
	res.Bankrupt = true
	res.Messages = append(res.Messages, fmt.Sprintf("Cannot afford $%d %s! Bankrupt!", amount, what))
}

// applyCard draws and applies a chance / community chest effect. Without a
// configured drawer the space credits a flat bonus.
func (e *Engine) applyCard(player *models.Player, space models.Space, state *models.GameState, res *models.ActionResult, hops int) {
	if e.draw == nil || hops >= maxCardHops {
		player.Money += cardFallbackBonus
		res.Messages = append(res.Messages, fmt.Sprintf("Drew a card! Received $%d", cardFallbackBonus))
		return
	}

	card := e.draw(space.Type)
	res.Messages = append(res.Messages, fmt.Sprintf("Drew a card! %s", card.Text))

	switch card.Action {
	case models.CardCredit:
		player.Money += card.Amount
		res.Messages = append(res.Messages, fmt.Sprintf("Received $%d", card.Amount))

	case models.CardDebit:
		e.chargeBank(player, card.Amount, "card penalty", res)

	case models.CardMove:
		target := card.Target % board.Size
		if target < 0 {
			target += board.Size
		}
		oldPosition := player.Position
		player.Position = target
		if target < oldPosition && target != 0 {
			player.Money += GoBonus
			res.Messages = append(res.Messages, fmt.Sprintf("%s passed Go! Collected $%d", player.Name, GoBonus))
		}
		e.handleLanding(player, target, state, res, hops+1)
	}
}
