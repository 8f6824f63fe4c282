package game

import (
	"fmt"
	"math/rand"
	"time"
)

// Game represents the main game state
type Game struct {
	config    Config
	flow      *Flow
	pool      *Pool
	ship      *Ship
	evaluator Evaluator
	observers Observers

	// Outcome of the last evaluation pass
	last Report
}

// Option customizes a Game at construction
type Option func(*options)

type options struct {
	source    Source
	clock     Clock
	observers []Observer
}

// WithSource draws ball placement and direction from src instead of a seeded generator
func WithSource(src Source) Option {
	return func(o *options) { o.source = src }
}

// WithClock times the restart cooldown with c instead of the wall clock
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithObserver adds an observer of ball lifecycle and phase changes
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

// NewGame creates a game in the Menu phase
func NewGame(config Config, opts ...Option) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	o := options{clock: SystemClock}
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		seed := config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		o.source = rand.New(rand.NewSource(seed))
	}

	g := &Game{
		config:    config,
		flow:      NewFlow(config, o.clock),
		ship:      NewShip(config),
		evaluator: NewEvaluator(config),
		observers: Observers(o.observers),
	}
	g.pool = NewPool(NewFactory(config, o.source), g.observers)
	g.flow.OnTransition(g.observers.PhaseChanged)

	return g, nil
}

// ResetFunc adapts a function to RoundResetter
type ResetFunc func(total int) error

func (f ResetFunc) ResetRound(total int) error { return f(total) }

// resetRound repopulates the pool and recenters the ship
func (g *Game) resetRound(total int) error {
	if err := g.pool.Populate(total); err != nil {
		return err
	}
	g.ship.Reset()
	return nil
}

// Restart starts a new round with the current ball total
func (g *Game) Restart() error {
	if err := g.flow.Restart(ResetFunc(g.resetRound)); err != nil {
		return fmt.Errorf("failed to restart: %w", err)
	}
	return nil
}

// SetInput hands the collector's held signals to the flow
func (g *Game) SetInput(s InputSet) {
	g.flow.SetInput(s)
}

// Update advances the simulation by dt seconds.
// Restarts happen at the start of a frame and end it. Balls keep drifting
// through Win and Lose; the ship and collisions run only while Playing.
func (g *Game) Update(dt float64) error {
	if dt < 0 {
		dt = 0
	}
	g.last = Report{}

	if g.flow.ShouldRestart() {
		return g.Restart()
	}
	if g.flow.Phase() == PhaseMenu {
		return nil
	}

	g.ship.Update(g.flow, dt)
	g.pool.Advance(dt, float64(g.flow.Total()))

	if g.flow.Phase() == PhasePlaying {
		g.last = g.evaluator.Evaluate(g.ship, g.pool, g.flow)
	}
	return nil
}

// Phase returns the current phase
func (g *Game) Phase() Phase { return g.flow.Phase() }

// Total returns the ball total of the next restart
func (g *Game) Total() int { return g.flow.Total() }

// LastReport returns the outcome of the most recent collision pass
func (g *Game) LastReport() Report { return g.last }

// Config returns the configuration the game was built with
func (g *Game) Config() Config { return g.config }

// Snapshot copies the post-update state for the draw pass
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:     g.flow.Phase(),
		Round:     g.flow.Round(),
		Total:     g.flow.Total(),
		Threshold: g.flow.Threshold(),
		Ship: ShipView{
			Position: g.ship.Position(),
			Velocity: g.ship.Velocity(),
			Rotation: g.ship.Rotation(),
			Scale:    g.ship.Scale(),
			Hits:     g.ship.Hits(),
		},
		Balls: make([]BallView, 0, g.pool.Len()),
	}
	for b := range g.pool.All() {
		s.Balls = append(s.Balls, BallView{
			ID:       b.ID,
			Position: b.Position,
			Category: b.Category,
			Sides:    b.Sides,
			Scale:    b.Scale,
		})
	}
	if s.Phase == PhaseWin || s.Phase == PhaseLose {
		s.Cooldown = max(0, g.config.RestartCooldown-g.flow.CooldownElapsed())
	}
	return s
}
