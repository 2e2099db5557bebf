package engine

import (
	"strings"
	"testing"
)

func TestJailDeniesMovementAndCountsTurns(t *testing.T) {
	e := newTestEngine()
	state := newTestGame(e, "Alice", "Bob")
	alice := state.Players[0]
	alice.Position = JailPosition
	alice.InJail = true

	res, err := e.MovePlayer(state, alice.Id, 2, 3)
	if err != nil {
		t.Fatalf("MovePlayer failed: %v", err)
	}
	if alice.Position != JailPosition {
		t.Errorf("jailed player moved to %d", alice.Position)
	}
	if alice.JailTurns != 1 {
		t.Errorf("jail turns = %d, want 1", alice.JailTurns)
	}
	if state.CurrentPlayer != 1 || state.Turn != 2 {
		t.Errorf("a denied move still ends the turn: player %d turn %d", state.CurrentPlayer, state.Turn)
	}
	if !strings.Contains(narration(res), "in jail (turn 1/3)") {
		t.Errorf("narration should report the sentence: %q", narration(res))
	}
}

func TestJailDoublesRelease(t *testing.T) {
	e := newTestEngine()
	state := newTestGame(e, "Alice", "Bob")
	alice := state.Players[0]
	alice.Position = JailPosition
	alice.InJail = true
	alice.JailTurns = 1

	res, err := e.MovePlayer(state, alice.Id, 4, 4)
	if err != nil {
		t.Fatalf("MovePlayer failed: %v", err)
	}
	if alice.InJail || alice.JailTurns != 0 {
		t.Errorf("doubles should free the player: in=%v turns=%d", alice.InJail, alice.JailTurns)
	}
	// The move proceeds in the same turn.
	if alice.Position != 18 {
		t.Errorf("position = %d, want 18", alice.Position)
	}
	if !strings.Contains(narration(res), "rolled doubles") {
		t.Errorf("narration should celebrate the doubles: %q", narration(res))
	}
}

func TestJailThirdTurnPaysBail(t *testing.T) {
	e := newTestEngine()
	state := newTestGame(e, "Alice", "Bob")
	alice := state.Players[0]
	alice.Position = JailPosition
	alice.InJail = true
	alice.JailTurns = 2

	res, err := e.MovePlayer(state, alice.Id, 2, 3)
	if err != nil {
		t.Fatalf("MovePlayer failed: %v", err)
	}
	if alice.InJail {
		t.Error("player should be released after paying bail")
	}
	// Bail debited, then the move proceeds to Pennsylvania Railroad.
	if alice.Money != StartingMoney-BailCost {
		t.Errorf("money = %d, want %d", alice.Money, StartingMoney-BailCost)
	}
	if alice.Position != 15 {
		t.Errorf("position = %d, want 15", alice.Position)
	}
	if !strings.Contains(narration(res), "paid $50") {
		t.Errorf("narration should record the bail: %q", narration(res))
	}
}

func TestJailBailInsolvencyBankrupts(t *testing.T) {
	e := newTestEngine()
	state := newTestGame(e, "Alice", "Bob")
	alice, bob := state.Players[0], state.Players[1]
	alice.Position = JailPosition
	alice.InJail = true
	alice.JailTurns = 2
	alice.Money = 40

	res, err := e.MovePlayer(state, alice.Id, 2, 3)
	if err != nil {
		t.Fatalf("MovePlayer failed: %v", err)
	}
	if !res.Bankrupt {
		t.Fatal("expected bankruptcy instead of a move")
	}
	if len(state.Players) != 1 || state.Players[0].Id != bob.Id {
		t.Fatalf("Alice should be removed, players: %d", len(state.Players))
	}
	if state.Winner != bob.Id {
		t.Errorf("Bob should win, got %q", state.Winner)
	}
}
