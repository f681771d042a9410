// Package audio plays short synthesized feedback cues through the
// system speaker. Playback is strictly fire-and-forget: an unavailable
// or failing audio device silences the game, it never affects it.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/typefall/internal/engine"
)

func msDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// Player owns the speaker and a mixer that short cue tones are added to.
// Safe for use before Init: Play is simply a no-op until the speaker is
// up.
type Player struct {
	mu    sync.Mutex
	mixer *beep.Mixer
	ready bool
}

// NewPlayer returns a silent player. Call Init to open the speaker.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the audio device. The returned error is informational;
// callers keep the player and run silently when it fails.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Close silences the player. The speaker itself stays open; beep has no
// teardown, so clearing the mixer is the whole cleanup.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.ready = false
}

// Play schedules the tone for a cue at the given volume (0..1).
// Unknown cues and a closed player are silent no-ops.
func (p *Player) Play(c engine.Cue, volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || volume <= 0 {
		return
	}
	if volume > 1 {
		volume = 1
	}

	tone := cueTone(c, volume)
	if tone == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(tone)
	speaker.Unlock()
}

// cueTone maps a cue to its tone. Hits are short and bright, misses
// fall, the bomb is a low buzz, game over is a long slide down.
func cueTone(c engine.Cue, volume float64) beep.Streamer {
	switch c {
	case engine.CueHit:
		return newSweep(880, 880, 60, false, volume)
	case engine.CueHeart:
		return newSweep(660, 990, 120, false, volume)
	case engine.CueCombo:
		return newSweep(523, 1047, 160, false, volume)
	case engine.CueBomb:
		return newSweep(140, 90, 220, true, volume)
	case engine.CueMiss:
		return newSweep(330, 220, 120, false, volume)
	case engine.CueGameOver:
		return newSweep(440, 110, 600, false, volume)
	default:
		return nil
	}
}
