package engine

import "github.com/vovakirdan/typefall/internal/core"

// ItemView is a read-only copy of a live item for rendering.
type ItemView struct {
	ID    int64
	Char  rune
	X     float64
	Y     float64
	Type  ItemType
	Color core.Color
}

// SessionView is a read-only copy of the session counters.
type SessionView struct {
	Score      int
	Money      int
	Lives      int
	Shields    int
	Heat       float64
	Overheated bool
	Multiplier float64
	Combo      int
}

// ProfileView is the slice of the active profile the HUD shows.
type ProfileView struct {
	Name        string
	Level       int
	XP          int
	XPThreshold int
}

// Snapshot is a complete, immutable view of the engine for one frame.
// Renderers and tests read snapshots; nothing can mutate the engine
// through one.
type Snapshot struct {
	Tick          uint64
	State         State
	Session       SessionView
	Items         []ItemView
	FlashActive   bool
	ResumeSeconds int
	Profile       ProfileView
}

// Snapshot captures the current engine state.
func (e *Engine) Snapshot() Snapshot {
	items := make([]ItemView, len(e.items))
	for i, it := range e.items {
		items[i] = ItemView{
			ID:    it.ID,
			Char:  it.Char,
			X:     it.X,
			Y:     it.Y,
			Type:  it.Type,
			Color: it.Color,
		}
	}

	p := e.profiles.Active()

	return Snapshot{
		Tick:  e.tick,
		State: e.state,
		Session: SessionView{
			Score:      e.session.Score,
			Money:      e.session.Money,
			Lives:      e.session.Lives,
			Shields:    e.session.Shields,
			Heat:       e.session.Heat,
			Overheated: e.overheatUntil != 0,
			Multiplier: e.session.Multiplier,
			Combo:      e.session.Combo,
		},
		Items:         items,
		FlashActive:   e.flashUntil != 0,
		ResumeSeconds: e.ResumeSeconds(),
		Profile: ProfileView{
			Name:        p.Name,
			Level:       p.Level,
			XP:          p.XP,
			XPThreshold: p.XPThreshold(),
		},
	}
}
