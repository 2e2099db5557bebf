package models

// Space types as they appear in the board catalog.
const (
	SpaceGo             = "go"
	SpaceProperty       = "property"
	SpaceRailroad       = "railroad"
	SpaceUtility        = "utility"
	SpaceTax            = "tax"
	SpaceChance         = "chance"
	SpaceCommunityChest = "community_chest"
	SpaceJail           = "jail"
	SpaceGoToJail       = "go_to_jail"
	SpaceFreeParking    = "free_parking"
)

// Space is one immutable catalog entry, loaded once at process start. Price
// and Rent apply to ownable spaces only; utilities carry a flat Rent that is
// never multiplied. Amount applies to tax spaces.
type Space struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Position int    `json:"position"`
	Price    int    `json:"price,omitempty"`
	Rent     int    `json:"rent,omitempty"`
	Color    string `json:"color,omitempty"`
	Amount   int    `json:"amount,omitempty"`
}

// Card actions.
const (
	CardCredit = "credit"
	CardDebit  = "debit"
	CardMove   = "move"
)

// Card is one chance / community chest effect. Debit cards are mandatory
// payments. Move cards relocate the player to Target and resolve the landing
// there; deck files must not target another card space.
type Card struct {
	Text   string `json:"text" yaml:"text"`
	Action string `json:"action" yaml:"action"`
	Amount int    `json:"amount,omitempty" yaml:"amount"`
	Target int    `json:"target,omitempty" yaml:"target"`
	Weight int    `json:"weight,omitempty" yaml:"weight"`
}
