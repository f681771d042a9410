package audio

import (
	"math"

	"github.com/gopxl/beep"
)

const sampleRate = beep.SampleRate(48000)

// envelope fraction of a tone spent on attack and release ramps.
const (
	attackFrac  = 0.05
	releaseFrac = 0.30
)

// sweepTone is a finite streamer that glides from one frequency to
// another with a linear attack/release envelope. All cues are built
// from it; a flat tone is a sweep with equal endpoints.
type sweepTone struct {
	from, to float64 // Hz
	square   bool
	volume   float64

	total int // samples
	pos   int
	phase float64
}

func newSweep(from, to float64, durMs int, square bool, volume float64) *sweepTone {
	return &sweepTone{
		from:   from,
		to:     to,
		square: square,
		volume: volume,
		total:  sampleRate.N(msDuration(durMs)),
	}
}

func (s *sweepTone) Stream(out [][2]float64) (int, bool) {
	if s.pos >= s.total {
		return 0, false
	}
	n := 0
	for i := range out {
		if s.pos >= s.total {
			break
		}
		t := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*t
		s.phase += freq / float64(sampleRate)
		if s.phase >= 1 {
			s.phase -= 1
		}

		v := math.Sin(2 * math.Pi * s.phase)
		if s.square {
			if v >= 0 {
				v = 1
			} else {
				v = -1
			}
		}
		v *= s.envelope(s.pos) * s.volume

		out[i][0] = v
		out[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *sweepTone) Err() error { return nil }

func (s *sweepTone) envelope(pos int) float64 {
	attack := int(float64(s.total) * attackFrac)
	release := int(float64(s.total) * releaseFrac)
	switch {
	case attack > 0 && pos < attack:
		return float64(pos) / float64(attack)
	case release > 0 && pos >= s.total-release:
		return float64(s.total-pos) / float64(release)
	default:
		return 1
	}
}
