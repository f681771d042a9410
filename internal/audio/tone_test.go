package audio

import (
	"testing"

	"github.com/vovakirdan/typefall/internal/engine"
)

func TestSweepToneDrainsWithinBounds(t *testing.T) {
	tone := newSweep(440, 220, 100, false, 0.8)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := tone.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				if v := buf[i][ch]; v < -1 || v > 1 {
					t.Fatalf("sample %v out of [-1,1]", v)
				}
			}
		}
		total += n
		if !ok {
			break
		}
	}

	want := sampleRate.N(msDuration(100))
	if total != want {
		t.Fatalf("streamed %d samples, want %d", total, want)
	}
	if tone.Err() != nil {
		t.Fatalf("Err = %v, want nil", tone.Err())
	}
}

func TestEveryCueHasATone(t *testing.T) {
	cues := []engine.Cue{
		engine.CueHit, engine.CueHeart, engine.CueCombo,
		engine.CueBomb, engine.CueMiss, engine.CueGameOver,
	}
	for _, c := range cues {
		if cueTone(c, 0.5) == nil {
			t.Errorf("cue %v has no tone", c)
		}
	}
}

func TestPlayBeforeInitIsSilent(t *testing.T) {
	p := NewPlayer()
	// Must not panic or block without an open speaker.
	p.Play(engine.CueHit, 0.5)
	p.Close()
}
