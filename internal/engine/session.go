package engine

// Session bounds and tuning.
const (
	StartLives = 3
	MaxLives   = 5

	HeatMax          = 100.0
	HeatPenalty      = 15.0
	HeatDecayPerTick = 0.2

	BasePoints     = 10
	MoneyPerHit    = 2
	MultiplierStep = 0.05
	MultiplierMax  = 10.0
)

// Session is the transient per-playthrough state. Created on (re)start,
// destroyed on restart or return to the start screen.
type Session struct {
	Score      int
	Money      int
	Lives      int
	Shields    int
	Heat       float64
	Multiplier float64
	Combo      int
}

// newSession returns the initial counters for a fresh playthrough.
func newSession() Session {
	return Session{
		Lives:      StartLives,
		Multiplier: 1,
	}
}

// penalize is the single reset operation for every miss-class event:
// a wrong key, a bomb hit, or a normal item escaping the field. All three
// call sites go through here so the "any miss resets multiplier and combo"
// invariant cannot drift apart.
func (s *Session) penalize() {
	s.Multiplier = 1
	s.Combo = 0
}

// addHeat raises heat toward the ceiling and reports whether the ceiling
// was reached by this increase.
func (s *Session) addHeat(amount float64) bool {
	s.Heat += amount
	if s.Heat >= HeatMax {
		s.Heat = HeatMax
		return true
	}
	return false
}

// decayHeat applies the passive per-tick cooldown, floored at zero.
func (s *Session) decayHeat() {
	s.Heat -= HeatDecayPerTick
	if s.Heat < 0 {
		s.Heat = 0
	}
}
