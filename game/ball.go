package game

import (
	"fmt"
)

// Category decides what touching a ball does to the round
type Category int

const (
	// CategoryHostile balls end the round in defeat on contact
	CategoryHostile Category = iota
	// CategoryBenign balls count toward the win condition on contact
	CategoryBenign
)

func (c Category) String() string {
	switch c {
	case CategoryHostile:
		return "hostile"
	case CategoryBenign:
		return "benign"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// BallID identifies a ball for the lifetime of its factory.
// Frontends key per-ball resources on it.
type BallID uint64

// Ball is one wrapping ball of the field
type Ball struct {
	ID       BallID
	Position Vec2
	// Velocity is constant for the ball's lifetime
	Velocity Vec2
	Category Category
	// Sides is the polygon side count of the ball's silhouette
	Sides int
	Scale float64

	marked bool
}

// Hostile reports whether contact with the ball loses the round
func (b *Ball) Hostile() bool {
	return b.Category == CategoryHostile
}

// Marked reports whether the ball is flagged for removal this frame
func (b *Ball) Marked() bool {
	return b.marked
}

// Source is the random source the factory draws from. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Factory builds balls with random direction and constrained placement
type Factory struct {
	rng         Source
	minRadius   float64
	speedDiv    float64
	scale       float64
	sides       int
	maxAttempts int
	nextID      BallID
}

// NewFactory creates a factory drawing from rng with the ball settings of cfg
func NewFactory(cfg Config, rng Source) *Factory {
	return &Factory{
		rng:         rng,
		minRadius:   cfg.MinSpawnRadius,
		speedDiv:    cfg.BallSpeedDivisor,
		scale:       cfg.BallScale,
		sides:       cfg.BallSides,
		maxAttempts: cfg.SpawnMaxAttempts,
	}
}

// uniform returns a sample from [-1, 1)
func (f *Factory) uniform() float64 {
	return f.rng.Float64()*2 - 1
}

// Create builds a ball at a random position at least the spawn radius away
// from the arena center, so nothing spawns on top of the centered ship.
func (f *Factory) Create() (Ball, error) {
	for attempt := 0; attempt < f.maxAttempts; attempt++ {
		pos := Vec2{f.uniform(), f.uniform()}
		if pos.Length() >= f.minRadius {
			return f.CreateAt(pos, f.scale), nil
		}
	}
	return Ball{}, fmt.Errorf("%w: no position beyond radius %v after %d draws", ErrSpawnExhausted, f.minRadius, f.maxAttempts)
}

// CreateAt builds a ball at pos. A non-positive scale selects the configured one.
func (f *Factory) CreateAt(pos Vec2, scale float64) Ball {
	if scale <= 0 {
		scale = f.scale
	}
	f.nextID++
	return Ball{
		ID:       f.nextID,
		Position: pos,
		Velocity: f.direction().Scale(1 / f.speedDiv),
		Sides:    f.sides,
		Scale:    scale,
	}
}

// direction draws a unit vector from per-axis uniform samples. A source
// that only ever yields the center falls back to +X.
func (f *Factory) direction() Vec2 {
	for attempt := 0; attempt < f.maxAttempts; attempt++ {
		d := Vec2{f.uniform(), f.uniform()}
		if d.Length() > 1e-9 {
			return d.Normalize()
		}
	}
	return Vec2{1, 0}
}
