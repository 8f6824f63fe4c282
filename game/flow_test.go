package game

import (
	"errors"
	"testing"
	"time"
)

func noReset(int) error { return nil }

func TestFlowStartsInMenu(t *testing.T) {
	cfg := testConfig()
	f := NewFlow(cfg, newManualClock())
	if f.Phase() != PhaseMenu || f.Total() != cfg.BaseBallCount || f.Round() != 0 {
		t.Errorf("phase = %v total = %d round = %d", f.Phase(), f.Total(), f.Round())
	}
	if f.ShouldRestart() {
		t.Error("menu should wait for confirm")
	}
}

func TestFlowMenuConfirmStartsRound(t *testing.T) {
	cfg := testConfig()
	f := NewFlow(cfg, newManualClock())
	f.SetInput(InputSet(0).With(InputConfirm))
	if !f.ShouldRestart() {
		t.Fatal("confirm in menu should restart")
	}

	if err := f.Restart(ResetFunc(noReset)); err != nil {
		t.Fatal(err)
	}
	if f.Phase() != PhasePlaying || f.Round() != 1 || f.RoundTotal() != 2 || f.Threshold() != 1 {
		t.Errorf("phase = %v round = %d played = %d threshold = %d",
			f.Phase(), f.Round(), f.RoundTotal(), f.Threshold())
	}
	if f.ShouldRestart() {
		t.Error("playing never restarts on its own")
	}
}

func TestFlowCheckWin(t *testing.T) {
	cfg := testConfig()
	f := playingFlow(t, cfg, newManualClock(), 4)

	if f.CheckWin(1) {
		t.Fatal("won with 1 of 4")
	}
	if !f.CheckWin(2) {
		t.Fatal("did not win with 2 of 4")
	}
	if f.Phase() != PhaseWin || f.Total() != 6 {
		t.Errorf("phase = %v total = %d", f.Phase(), f.Total())
	}
	if f.CheckWin(2) || f.Total() != 6 {
		t.Error("second win in the same round")
	}
}

func TestFlowLoseResetsTotal(t *testing.T) {
	cfg := testConfig()
	rec := &recorder{}
	f := playingFlow(t, cfg, newManualClock(), 10)
	f.OnTransition(rec.PhaseChanged)

	f.Lose()
	f.Lose()

	if f.Phase() != PhaseLose || f.Total() != cfg.BaseBallCount {
		t.Errorf("phase = %v total = %d", f.Phase(), f.Total())
	}
	if len(rec.phases) != 1 || rec.phases[0] != [2]Phase{PhasePlaying, PhaseLose} {
		t.Errorf("transitions = %v, want one playing->lose", rec.phases)
	}
	if f.CheckWin(5) {
		t.Error("won after losing")
	}
}

func TestFlowRestartWaitsForCooldown(t *testing.T) {
	cfg := testConfig()
	clock := newManualClock()
	f := playingFlow(t, cfg, clock, 2)
	f.CheckWin(1)

	clock.Advance(time.Second)
	if f.ShouldRestart() {
		t.Fatal("restarted after 1s")
	}
	clock.Advance(time.Second)
	if f.ShouldRestart() {
		t.Fatal("restarted at exactly the cooldown")
	}
	clock.Advance(time.Millisecond)
	if !f.ShouldRestart() {
		t.Fatal("no restart after the cooldown")
	}
	if f.CooldownElapsed() <= cfg.RestartCooldown {
		t.Errorf("elapsed = %v", f.CooldownElapsed())
	}
}

func TestFlowIgnoresConfirmDuringCooldown(t *testing.T) {
	clock := newManualClock()
	f := playingFlow(t, testConfig(), clock, 2)
	f.Lose()
	f.SetInput(InputSet(0).With(InputConfirm))
	if f.ShouldRestart() {
		t.Error("confirm skipped the cooldown")
	}
}

func TestFlowRestartRejectsInvalidTotals(t *testing.T) {
	for _, total := range []int{-2, 0, 1, 3, 7} {
		f := NewFlow(testConfig(), newManualClock())
		f.total = total
		called := false
		err := f.Restart(ResetFunc(func(int) error { called = true; return nil }))

		if !errors.Is(err, ErrInvalidBallCount) {
			t.Errorf("total %d: err = %v, want ErrInvalidBallCount", total, err)
		}
		if called || f.Phase() != PhaseMenu || f.Round() != 0 {
			t.Errorf("total %d: reset called = %v phase = %v", total, called, f.Phase())
		}
	}
}

func TestFlowRestartPropagatesResetError(t *testing.T) {
	f := NewFlow(testConfig(), newManualClock())
	boom := errors.New("boom")
	err := f.Restart(ResetFunc(func(int) error { return boom }))
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if f.Phase() != PhaseMenu {
		t.Errorf("phase = %v after failed restart", f.Phase())
	}
}

func TestPhaseString(t *testing.T) {
	want := map[Phase]string{
		PhaseMenu:    "menu",
		PhasePlaying: "playing",
		PhaseWin:     "win",
		PhaseLose:    "lose",
		Phase(7):     "phase(7)",
	}
	for p, s := range want {
		if p.String() != s {
			t.Errorf("%d.String() = %q, want %q", int(p), p.String(), s)
		}
	}
}
