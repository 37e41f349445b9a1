package model

import (
	"fmt"
	"testing"
	"time"
)

func TestSession_PushTurnEvictsOldest(t *testing.T) {
	s := NewSession("s1", "Friend")
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	n := HistoryLimit + 50
	for i := 0; i < n; i++ {
		s.PushTurn(RoleUser, fmt.Sprintf("turn %d", i), at.Add(time.Duration(i)*time.Second))
	}

	if len(s.History) != HistoryLimit {
		t.Fatalf("history len = %d, want %d", len(s.History), HistoryLimit)
	}
	if got, want := s.History[0].Text, fmt.Sprintf("turn %d", n-HistoryLimit); got != want {
		t.Errorf("oldest retained turn = %q, want %q", got, want)
	}
	if got, want := s.History[len(s.History)-1].Text, fmt.Sprintf("turn %d", n-1); got != want {
		t.Errorf("newest turn = %q, want %q", got, want)
	}
}

func TestSession_SnapshotIsDeepCopy(t *testing.T) {
	s := NewSession("s1", "Friend")
	s.PushTurn(RoleUser, "hello", time.Now())
	s.ActiveGame = &GameInstance{Def: GameDefinitions[0], Answer: "echo"}

	snap := s.Snapshot()
	snap.History[0].Text = "tampered"
	snap.ActiveGame.Answer = "tampered"

	if s.History[0].Text != "hello" {
		t.Error("snapshot history mutation leaked into the session")
	}
	if s.ActiveGame.Answer != "echo" {
		t.Error("snapshot game mutation leaked into the session")
	}
}

func TestRPSBeats(t *testing.T) {
	wins := map[string]string{"rock": "scissors", "paper": "rock", "scissors": "paper"}
	for a, b := range wins {
		if !RPSBeats(a, b) {
			t.Errorf("RPSBeats(%q, %q) = false, want true", a, b)
		}
		if RPSBeats(b, a) {
			t.Errorf("RPSBeats(%q, %q) = true, want false", b, a)
		}
		if RPSBeats(a, a) {
			t.Errorf("RPSBeats(%q, %q) = true, want false", a, a)
		}
	}
	if RPSBeats("lizard", "rock") {
		t.Error("unknown choice must never win")
	}
}

func TestGameDefinitions(t *testing.T) {
	seen := map[GameID]bool{}
	for _, def := range GameDefinitions {
		if seen[def.ID] {
			t.Errorf("duplicate game id %q", def.ID)
		}
		seen[def.ID] = true
		if def.Name == "" || def.Prompt == "" {
			t.Errorf("game %q has an empty name or prompt", def.ID)
		}
	}
	// Adversarial and per-session games carry no template answer.
	for _, def := range GameDefinitions {
		switch def.ID {
		case GameNumberGuess, GameRockPaperScissors:
			if def.Answer != "" {
				t.Errorf("game %q must not have a template answer", def.ID)
			}
		default:
			if def.Answer == "" {
				t.Errorf("game %q needs a template answer", def.ID)
			}
		}
	}
}
