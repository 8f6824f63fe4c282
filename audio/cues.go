package audio

import (
	"time"

	"github.com/gopxl/beep"

	"ballfield/game"
)

// Cue is a short sound tied to a game event
type Cue int

const (
	CueAbsorb Cue = iota // benign ball absorbed
	CueLose              // hostile contact
	CueWin               // round won
	CueStart             // round started
	cueCount
)

var cueNames = [cueCount]string{"absorb", "lose", "win", "start"}

func (c Cue) String() string {
	if c >= 0 && c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// Cue timings
const (
	absorbDuration = 90 * time.Millisecond
	loseDuration   = 450 * time.Millisecond
	winNote        = 140 * time.Millisecond
	startDuration  = 120 * time.Millisecond
	cueAttack      = 5 * time.Millisecond
)

// NewCue builds the streamer for c, or nil for an unknown cue
func NewCue(c Cue, rate beep.SampleRate) beep.Streamer {
	shaped := func(s beep.Streamer, d time.Duration, release time.Duration) beep.Streamer {
		return NewEnvelope(s, d, cueAttack, release, rate)
	}

	switch c {
	case CueAbsorb:
		blip := NewGlide(660, 990, absorbDuration, WaveSquare, rate)
		return newVolume(shaped(blip, absorbDuration, 40*time.Millisecond), 0.25)
	case CueLose:
		fall := NewGlide(220, 70, loseDuration, WaveSaw, rate)
		return newVolume(shaped(fall, loseDuration, 200*time.Millisecond), 0.35)
	case CueWin:
		notes := make([]beep.Streamer, 0, 3)
		for _, freq := range []float64{523.25, 659.25, 783.99} {
			notes = append(notes, shaped(NewOscillator(freq, winNote, WaveSine, rate), winNote, 60*time.Millisecond))
		}
		return newVolume(beep.Seq(notes...), 0.4)
	case CueStart:
		tone := NewOscillator(440, startDuration, WaveSine, rate)
		return newVolume(shaped(tone, startDuration, 60*time.Millisecond), 0.3)
	default:
		return nil
	}
}

// CueForPhase returns the cue announcing a transition into to
func CueForPhase(to game.Phase) (Cue, bool) {
	switch to {
	case game.PhasePlaying:
		return CueStart, true
	case game.PhaseWin:
		return CueWin, true
	case game.PhaseLose:
		return CueLose, true
	default:
		return 0, false
	}
}

// CueForDestroy returns the cue for a ball leaving the pool. Only absorbed
// benign balls make a sound; the hostile contact is covered by CueLose.
func CueForDestroy(b game.Ball, cause game.DestroyCause) (Cue, bool) {
	if cause == game.CauseContact && !b.Hostile() {
		return CueAbsorb, true
	}
	return 0, false
}
