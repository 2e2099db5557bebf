package models

// Player is one participant in a single game. Money stays non-negative at
// operation boundaries; a shortfall on a mandatory payment converts into
// bankruptcy instead.
type Player struct {
	Id         string   `json:"id"`
	Name       string   `json:"name"`
	Color      string   `json:"color"`
	Position   int      `json:"position"`
	Money      int      `json:"money"`
	Properties []string `json:"properties"`
	IsComputer bool     `json:"is_computer"`
	InJail     bool     `json:"in_jail"`
	JailTurns  int      `json:"jail_turns"`
}

// PlayerSeat describes one seat when creating a game.
type PlayerSeat struct {
	Name       string `json:"name"`
	Color      string `json:"color"`
	IsComputer bool   `json:"is_computer"`
}
