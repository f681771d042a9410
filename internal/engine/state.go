package engine

// State is the coarse game mode. Only StatePlaying gives the simulation
// tick gameplay effect; in every other state only heat passively decays.
type State string

const (
	StateStart        State = "start"
	StatePlaying      State = "playing"
	StatePaused       State = "paused"
	StateResuming     State = "resuming"
	StateGameOver     State = "gameover"
	StateShop         State = "shop"
	StateLeaderboard  State = "leaderboard"
	StateProfile      State = "profile"
	StateAchievements State = "achievements"
)

// IsOverlay reports whether the state is a modal overlay. Entering an
// overlay preserves the session; closing it returns to paused if play was
// in progress, else to the start screen.
func (s State) IsOverlay() bool {
	switch s {
	case StateShop, StateLeaderboard, StateProfile, StateAchievements:
		return true
	}
	return false
}
