package engine

// Cue is a one-shot feedback event produced by a step or a keystroke.
// The platform drains cues after each engine call and maps them to audio.
// Cues carry no payload; the snapshot holds the state they announce.
type Cue int

const (
	CueHit Cue = iota
	CueHeart
	CueBomb
	CueMiss
	CueCombo
	CueGameOver
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueHit:
		return "hit"
	case CueHeart:
		return "heart"
	case CueBomb:
		return "bomb"
	case CueMiss:
		return "miss"
	case CueCombo:
		return "combo"
	case CueGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// KeyOutcome reports what a keystroke did.
type KeyOutcome int

const (
	// KeyIgnored: not a letter, not playing, or input locked out.
	KeyIgnored KeyOutcome = iota
	// KeyScored: matched a normal or gold item.
	KeyScored
	// KeyHeart: matched a heart, gained a life.
	KeyHeart
	// KeyBomb: matched a bomb, lost a life and locked input.
	KeyBomb
	// KeyWrong: no item carries this letter, heat penalty applied.
	KeyWrong
)
