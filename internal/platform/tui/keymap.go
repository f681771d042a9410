package tui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/typefall/internal/engine"
)

// Action is a UI-level command derived from a keystroke. What a key
// means depends on the engine state: letters are gameplay input only
// while playing, and shop/menu hotkeys only exist where letters are not
// gameplay.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionStart
	ActionPauseToggle
	ActionReset
	ActionShop
	ActionLeaderboard
	ActionProfile
	ActionAchievements
	ActionClose
	ActionBuyShield
	ActionBuyLife
	ActionNextProfile
	ActionPrevProfile
	ActionNewProfile
	ActionDeleteProfile
	ActionToggleTheme
	ActionLetter
)

// KeyMapper translates Bubble Tea key messages to actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message given the current engine state.
// For ActionLetter the rune carries the typed letter.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, state engine.State) (Action, rune) {
	key := msg.String()

	// Ctrl+C quits from anywhere; plain q only where it is not gameplay.
	if key == "ctrl+c" {
		return ActionQuit, 0
	}

	switch state {
	case engine.StatePlaying:
		switch key {
		case "esc":
			return ActionPauseToggle, 0
		case "tab":
			return ActionLeaderboard, 0
		}
		if r, ok := letterRune(msg); ok {
			return ActionLetter, r
		}

	case engine.StateStart:
		switch key {
		case "enter", " ":
			return ActionStart, 0
		case "q":
			return ActionQuit, 0
		case "l", "tab":
			return ActionLeaderboard, 0
		case "u":
			return ActionProfile, 0
		case "a":
			return ActionAchievements, 0
		case "t":
			return ActionToggleTheme, 0
		}

	case engine.StatePaused:
		switch key {
		case "esc", "p", "enter":
			return ActionPauseToggle, 0
		case "s":
			return ActionShop, 0
		case "l", "tab":
			return ActionLeaderboard, 0
		case "u":
			return ActionProfile, 0
		case "a":
			return ActionAchievements, 0
		case "r":
			return ActionReset, 0
		case "q":
			return ActionQuit, 0
		}

	case engine.StateResuming:
		// The countdown runs to completion; only quit is honored.
		if key == "q" {
			return ActionQuit, 0
		}

	case engine.StateGameOver:
		switch key {
		case "enter", " ":
			return ActionStart, 0
		case "r":
			return ActionReset, 0
		case "l", "tab":
			return ActionLeaderboard, 0
		case "q":
			return ActionQuit, 0
		}

	case engine.StateShop:
		switch key {
		case "1":
			return ActionBuyShield, 0
		case "2":
			return ActionBuyLife, 0
		case "esc", "b", "s":
			return ActionClose, 0
		case "q":
			return ActionQuit, 0
		}

	case engine.StateProfile:
		switch key {
		case "down", "j":
			return ActionNextProfile, 0
		case "up", "k":
			return ActionPrevProfile, 0
		case "n":
			return ActionNewProfile, 0
		case "x":
			return ActionDeleteProfile, 0
		case "esc", "b":
			return ActionClose, 0
		case "q":
			return ActionQuit, 0
		}

	case engine.StateLeaderboard, engine.StateAchievements:
		switch key {
		case "esc", "b", "tab":
			return ActionClose, 0
		case "q":
			return ActionQuit, 0
		}
	}

	return ActionNone, 0
}

// letterRune extracts a single letter keystroke.
func letterRune(msg tea.KeyMsg) (rune, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if !unicode.IsLetter(r) {
		return 0, false
	}
	return r, true
}
