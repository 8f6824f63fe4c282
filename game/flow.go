package game

import (
	"fmt"
)

// Phase is what the frame loop runs
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseWin
	PhaseLose
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseWin:
		return "win"
	case PhaseLose:
		return "lose"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// RoundResetter rebuilds round-local state for a new round of total balls
type RoundResetter interface {
	ResetRound(total int) error
}

// Flow is the authoritative round state. Phase and input are written only
// through its methods; everything else reads them.
type Flow struct {
	phase    Phase
	input    InputSet
	total    int
	played   int
	round    int
	base     int
	step     int
	wait     float64
	cooldown *Cooldown
	notify   func(from, to Phase)
}

// NewFlow creates a flow in Menu with the base ball total of cfg
func NewFlow(cfg Config, clock Clock) *Flow {
	return &Flow{
		phase:    PhaseMenu,
		total:    cfg.BaseBallCount,
		base:     cfg.BaseBallCount,
		step:     cfg.BallCountStep,
		wait:     cfg.RestartCooldown,
		cooldown: NewCooldown(clock),
	}
}

// OnTransition registers fn to run after every phase change
func (f *Flow) OnTransition(fn func(from, to Phase)) {
	f.notify = fn
}

func (f *Flow) Phase() Phase    { return f.phase }
func (f *Flow) Input() InputSet { return f.input }

// Total returns the ball total of the current (or next) round
func (f *Flow) Total() int { return f.total }

// Round returns how many rounds have started
func (f *Flow) Round() int { return f.round }

// RoundTotal returns the ball total the current round started with
func (f *Flow) RoundTotal() int { return f.played }

// Threshold returns the benign hits that win the current round
func (f *Flow) Threshold() int { return f.played / 2 }

// SetInput replaces the held input snapshot
func (f *Flow) SetInput(s InputSet) {
	f.input = s
}

func (f *Flow) setPhase(p Phase) {
	from := f.phase
	f.phase = p
	if from != p && f.notify != nil {
		f.notify(from, p)
	}
}

// Lose ends the round in defeat and resets the ball total to the base.
// Only the first call of a round has an effect.
func (f *Flow) Lose() {
	if f.phase != PhasePlaying {
		return
	}
	f.total = f.base
	f.cooldown.Restart()
	f.setPhase(PhaseLose)
}

// CheckWin ends the round in victory when hits reaches half the round's total
// (integer division) and raises the total for the next round.
func (f *Flow) CheckWin(hits int) bool {
	if f.phase != PhasePlaying || hits != f.total/2 {
		return false
	}
	f.total += f.step
	f.cooldown.Restart()
	f.setPhase(PhaseWin)
	return true
}

// CooldownElapsed returns the seconds spent in the current Win or Lose phase
func (f *Flow) CooldownElapsed() float64 {
	return f.cooldown.Elapsed()
}

// ShouldRestart reports whether the phase calls for a new round this frame:
// Confirm held in Menu, or the cooldown run out after Win or Lose.
func (f *Flow) ShouldRestart() bool {
	switch f.phase {
	case PhaseMenu:
		return f.input.Has(InputConfirm)
	case PhaseWin, PhaseLose:
		return f.cooldown.Elapsed() > f.wait
	default:
		return false
	}
}

// Restart validates the ball total, has round rebuild pool and ship for it,
// and enters Playing. A rejected total leaves the phase unchanged.
func (f *Flow) Restart(round RoundResetter) error {
	if err := checkBallCount(f.total); err != nil {
		return fmt.Errorf("round %d: %w", f.round+1, err)
	}
	if err := round.ResetRound(f.total); err != nil {
		return fmt.Errorf("round %d: %w", f.round+1, err)
	}
	f.played = f.total
	f.round++
	f.setPhase(PhasePlaying)
	return nil
}
