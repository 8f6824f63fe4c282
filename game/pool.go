package game

import (
	"fmt"
	"iter"
)

// Pool owns the live balls of one round.
// Balls live in a plain slice; removal is a mark-and-compact pass so a scan
// over the pool never observes a shrinking collection.
type Pool struct {
	factory  *Factory
	observer Observer
	balls    []Ball
}

// NewPool creates an empty pool. observer may be nil.
func NewPool(factory *Factory, observer Observer) *Pool {
	if observer == nil {
		observer = NopObserver{}
	}
	return &Pool{
		factory:  factory,
		observer: observer,
		balls:    make([]Ball, 0, 16),
	}
}

// Populate replaces the pool with count fresh balls. The first count/2 are
// hostile and the remainder benign.
func (p *Pool) Populate(count int) error {
	if count < 0 {
		return fmt.Errorf("%w: cannot populate %d balls", ErrInvalidBallCount, count)
	}
	p.Clear()

	hostile := count / 2
	for i := 0; i < count; i++ {
		ball, err := p.factory.Create()
		if err != nil {
			p.Clear()
			return fmt.Errorf("failed to spawn ball %d of %d: %w", i+1, count, err)
		}
		if i < hostile {
			ball.Category = CategoryHostile
		} else {
			ball.Category = CategoryBenign
		}
		p.balls = append(p.balls, ball)
		p.observer.BallSpawned(ball)
	}
	return nil
}

// Clear drops every ball, reporting each as destroyed by a reset
func (p *Pool) Clear() {
	for _, b := range p.balls {
		p.observer.BallDestroyed(b, CauseReset)
	}
	clear(p.balls)
	p.balls = p.balls[:0]
}

// mark flags the ball at index i for removal
func (p *Pool) mark(i int) {
	p.balls[i].marked = true
}

// RemoveFlagged compacts away every marked ball, keeping survivors in order,
// and returns the removed balls.
func (p *Pool) RemoveFlagged() []Ball {
	var removed []Ball
	kept := p.balls[:0]
	for _, b := range p.balls {
		if b.marked {
			b.marked = false
			removed = append(removed, b)
			continue
		}
		kept = append(kept, b)
	}
	clear(p.balls[len(kept):])
	p.balls = kept

	for _, b := range removed {
		p.observer.BallDestroyed(b, CauseContact)
	}
	return removed
}

// Len returns the number of live balls
func (p *Pool) Len() int {
	return len(p.balls)
}

// Count returns how many live balls belong to category c
func (p *Pool) Count(c Category) int {
	n := 0
	for i := range p.balls {
		if p.balls[i].Category == c {
			n++
		}
	}
	return n
}

// All iterates over copies of the live balls in pool order
func (p *Pool) All() iter.Seq[Ball] {
	return func(yield func(Ball) bool) {
		for _, b := range p.balls {
			if !yield(b) {
				return
			}
		}
	}
}

// Advance moves every ball through the integrator
func (p *Pool) Advance(dt, speedFactor float64) {
	Advance(p.balls, dt, speedFactor)
}
