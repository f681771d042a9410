package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/typefall/internal/engine"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestLettersAreGameplayOnlyWhilePlaying(t *testing.T) {
	km := NewKeyMapper()

	action, r := km.MapKey(runeKey('s'), engine.StatePlaying)
	if action != ActionLetter || r != 's' {
		t.Fatalf("playing 's' = (%v, %q), want letter input", action, r)
	}

	// The same key opens the shop from pause, where letters are free.
	action, _ = km.MapKey(runeKey('s'), engine.StatePaused)
	if action != ActionShop {
		t.Fatalf("paused 's' = %v, want ActionShop", action)
	}
}

func TestEscapePausesAndCloses(t *testing.T) {
	km := NewKeyMapper()
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	if action, _ := km.MapKey(esc, engine.StatePlaying); action != ActionPauseToggle {
		t.Errorf("playing esc = %v, want pause toggle", action)
	}
	if action, _ := km.MapKey(esc, engine.StateShop); action != ActionClose {
		t.Errorf("shop esc = %v, want close", action)
	}
	if action, _ := km.MapKey(esc, engine.StateLeaderboard); action != ActionClose {
		t.Errorf("leaderboard esc = %v, want close", action)
	}
}

func TestCtrlCQuitsEverywhere(t *testing.T) {
	km := NewKeyMapper()
	ctrlC := tea.KeyMsg{Type: tea.KeyCtrlC}

	states := []engine.State{
		engine.StateStart, engine.StatePlaying, engine.StatePaused,
		engine.StateResuming, engine.StateGameOver, engine.StateShop,
	}
	for _, st := range states {
		if action, _ := km.MapKey(ctrlC, st); action != ActionQuit {
			t.Errorf("ctrl+c in %v = %v, want quit", st, action)
		}
	}
}

func TestResumingIgnoresGameKeys(t *testing.T) {
	km := NewKeyMapper()

	if action, _ := km.MapKey(runeKey('a'), engine.StateResuming); action != ActionNone {
		t.Errorf("resuming letter = %v, want none; countdown is uninterruptible", action)
	}
	if action, _ := km.MapKey(tea.KeyMsg{Type: tea.KeyEsc}, engine.StateResuming); action != ActionNone {
		t.Errorf("resuming esc = %v, want none", action)
	}
}

func TestShopPurchaseKeys(t *testing.T) {
	km := NewKeyMapper()

	if action, _ := km.MapKey(runeKey('1'), engine.StateShop); action != ActionBuyShield {
		t.Errorf("shop '1' should buy a shield")
	}
	if action, _ := km.MapKey(runeKey('2'), engine.StateShop); action != ActionBuyLife {
		t.Errorf("shop '2' should buy a life")
	}
}
