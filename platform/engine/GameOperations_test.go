package engine

import (
	"errors"
	"strings"
	"testing"

	"monopoly-engine/app/models"
)

func TestBuyPropertyFromOffer(t *testing.T) {
	e := newTestEngine()
	state := newTestGame(e, "Alice", "Bob")
	alice := state.Players[0]

	res, err := e.MovePlayer(state, alice.Id, 1, 2)
	if err != nil {
		t.Fatalf("MovePlayer failed: %v", err)
	}
	if res.CanBuy == nil {
		t.Fatal("expected a purchase offer for Baltic Avenue")
	}

	bought, err := e.BuyProperty(state, alice.Id, "Baltic Avenue")
	if err != nil {
		t.Fatalf("BuyProperty failed: %v", err)
	}
	if alice.Money != StartingMoney-60 {
		t.Errorf("money = %d, want %d", alice.Money, StartingMoney-60)
	}
	record := state.Board["Baltic Avenue"]
	if record.Owner != alice.Id {
		t.Errorf("owner = %q, want Alice", record.Owner)
	}
	if len(alice.Properties) != 1 || alice.Properties[0] != "Baltic Avenue" {
		t.Errorf("ownership list = %v", alice.Properties)
	}
	if state.PendingOffer != nil {
		t.Error("the offer should be consumed by the purchase")
	}
	if !strings.Contains(narration(bought), "bought Baltic Avenue for $60") {
		t.Errorf("narration = %q", narration(bought))
	}

	// The same offer cannot be redeemed twice.
	if _, err := e.BuyProperty(state, alice.Id, "Baltic Avenue"); !errors.Is(err, ErrIllegalAction) {
		t.Errorf("second purchase should be ErrIllegalAction, got %v", err)
	}
}

func TestBuyPropertyValidation(t *testing.T) {
	e := newTestEngine()
	state := newTestGame(e, "Alice", "Bob")
	alice, bob := state.Players[0], state.Players[1]

	if _, err := e.BuyProperty(state, alice.Id, "Baltic Avenue"); !errors.Is(err, ErrIllegalAction) {
		t.Errorf("buying without an offer should be ErrIllegalAction, got %v", err)
	}
	if _, err := e.BuyProperty(state, "nobody", "Baltic Avenue"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown player should be ErrNotFound, got %v", err)
	}
	if _, err := e.BuyProperty(state, alice.Id, "Atlantic City"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown property should be ErrNotFound, got %v", err)
	}
	if _, err := e.BuyProperty(state, alice.Id, "Free Parking"); !errors.Is(err, ErrIllegalAction) {
		t.Errorf("unbuyable space should be ErrIllegalAction, got %v", err)
	}

	// An offer belongs to the player who landed.
	state.PendingOffer = &models.PendingOffer{PlayerId: alice.Id, Property: "Baltic Avenue", Price: 60}
	if _, err := e.BuyProperty(state, bob.Id, "Baltic Avenue"); !errors.Is(err, ErrIllegalAction) {
		t.Errorf("redeeming someone else's offer should be ErrIllegalAction, got %v", err)
	}

	// Ownership is re-checked even with a matching offer.
	state.Board["Baltic Avenue"].Owner = bob.Id
	if _, err := e.BuyProperty(state, alice.Id, "Baltic Avenue"); !errors.Is(err, ErrIllegalAction) {
		t.Errorf("buying an owned property should be ErrIllegalAction, got %v", err)
	}
	state.Board["Baltic Avenue"].Owner = ""

	// Funds are re-checked too.
	alice.Money = 50
	if _, err := e.BuyProperty(state, alice.Id, "Baltic Avenue"); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("unaffordable purchase should be ErrInsufficientFunds, got %v", err)
	}

	state.Status = models.StatusFinished
	if _, err := e.BuyProperty(state, alice.Id, "Baltic Avenue"); !errors.Is(err, ErrIllegalAction) {
		t.Errorf("buying after the game ended should be ErrIllegalAction, got %v", err)
	}
}
