package audio

import (
	"testing"
	"time"

	"ballfield/game"
)

// TestCuesFinish verifies every cue is finite with the expected length
func TestCuesFinish(t *testing.T) {
	want := map[Cue]time.Duration{
		CueAbsorb: absorbDuration,
		CueLose:   loseDuration,
		CueWin:    3 * winNote,
		CueStart:  startDuration,
	}
	for c, d := range want {
		s := NewCue(c, sampleRate)
		if s == nil {
			t.Fatalf("%v: nil streamer", c)
		}
		got := drain(s, sampleRate.N(5*time.Second))
		if exp := sampleRate.N(d); got != exp {
			t.Errorf("%v: %d samples, want %d", c, got, exp)
		}
	}
	if NewCue(cueCount, sampleRate) != nil {
		t.Error("unknown cue should have no streamer")
	}
}

// TestCueForPhase verifies which transitions make a sound
func TestCueForPhase(t *testing.T) {
	tests := []struct {
		to   game.Phase
		want Cue
		ok   bool
	}{
		{game.PhasePlaying, CueStart, true},
		{game.PhaseWin, CueWin, true},
		{game.PhaseLose, CueLose, true},
		{game.PhaseMenu, 0, false},
	}
	for _, tt := range tests {
		c, ok := CueForPhase(tt.to)
		if ok != tt.ok || (ok && c != tt.want) {
			t.Errorf("CueForPhase(%v) = %v, %v", tt.to, c, ok)
		}
	}
}

// TestCueForDestroy verifies only absorbed benign balls chime
func TestCueForDestroy(t *testing.T) {
	benign := game.Ball{Category: game.CategoryBenign}
	hostile := game.Ball{Category: game.CategoryHostile}

	if c, ok := CueForDestroy(benign, game.CauseContact); !ok || c != CueAbsorb {
		t.Errorf("benign contact = %v, %v", c, ok)
	}
	if _, ok := CueForDestroy(hostile, game.CauseContact); ok {
		t.Error("hostile contact should not chime")
	}
	if _, ok := CueForDestroy(benign, game.CauseReset); ok {
		t.Error("reset should be silent")
	}
}

func TestCueString(t *testing.T) {
	if CueWin.String() != "win" || Cue(42).String() != "unknown" {
		t.Errorf("names: %q %q", CueWin, Cue(42))
	}
}
