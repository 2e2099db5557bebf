package models

// Game statuses.
const (
	StatusActive   = "active"
	StatusFinished = "finished"
	StatusDraw     = "draw"
)

// PropertyRecord is the per-game mutable state for one board space. Owner is
// empty while unowned. Houses runs 0 (unimproved) through 4 (houses) to 5
// (hotel). Records exist for every catalog space; only ownable kinds carry
// Price and can take an owner.
type PropertyRecord struct {
	Position int    `json:"position"`
	Type     string `json:"type"`
	Price    int    `json:"price,omitempty"`
	Owner    string `json:"owner,omitempty"`
	Houses   int    `json:"houses"`
}

// PendingOffer is the one outstanding purchase offer for a game, created when
// a player lands on an unowned affordable space and cleared on the next move.
type PendingOffer struct {
	PlayerId string `json:"player_id"`
	Property string `json:"property"`
	Price    int    `json:"price"`
}

// GameState is the full mutable state of one session. It is owned by exactly
// one session and must only be mutated inside that game's critical section.
type GameState struct {
	CurrentPlayer int                        `json:"currentPlayer"`
	Turn          int                        `json:"turn"`
	Players       []*Player                  `json:"players"`
	Board         map[string]*PropertyRecord `json:"board"`
	PendingOffer  *PendingOffer              `json:"pending_offer,omitempty"`
	Winner        string                     `json:"winner,omitempty"`
	Status        string                     `json:"status"`
}

// PlayerById returns the player with the given id, or nil.
func (g *GameState) PlayerById(id string) *Player {
	for _, p := range g.Players {
		if p.Id == id {
			return p
		}
	}
	return nil
}

// Finished reports whether the game has ended (won or drawn). A finished game
// rejects all further mutating actions.
func (g *GameState) Finished() bool {
	return g.Status != StatusActive
}

// PurchaseOffer surfaces a buy opportunity to the caller; the engine never
// auto-purchases.
type PurchaseOffer struct {
	Property string `json:"property"`
	Price    int    `json:"price"`
}

// ActionResult carries the narrated outcome of one engine operation.
type ActionResult struct {
	Messages []string       `json:"messages"`
	CanBuy   *PurchaseOffer `json:"can_buy,omitempty"`
	Bankrupt bool           `json:"bankrupt"`
}

// AIDecision is the advisory outcome of AIDecide: "buy", "build" or "pass".
type AIDecision struct {
	Action   string `json:"action"`
	Property string `json:"property,omitempty"`
}
