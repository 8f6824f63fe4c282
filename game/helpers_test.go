package game

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

// manualClock only moves when told to
type manualClock struct {
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// constSource always returns the same sample
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

// recorder captures observer notifications
type recorder struct {
	spawned   []BallID
	destroyed []BallID
	causes    []DestroyCause
	phases    [][2]Phase
}

func (r *recorder) BallSpawned(b Ball) {
	r.spawned = append(r.spawned, b.ID)
}

func (r *recorder) BallDestroyed(b Ball, cause DestroyCause) {
	r.destroyed = append(r.destroyed, b.ID)
	r.causes = append(r.causes, cause)
}

func (r *recorder) PhaseChanged(from, to Phase) {
	r.phases = append(r.phases, [2]Phase{from, to})
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 42
	return cfg
}

func testFactory(cfg Config) *Factory {
	return NewFactory(cfg, rand.New(rand.NewSource(cfg.Seed)))
}

// placedPool builds a pool holding exactly the given balls, in order
func placedPool(cfg Config, obs Observer, balls ...Ball) *Pool {
	p := NewPool(testFactory(cfg), obs)
	p.balls = append(p.balls, balls...)
	return p
}

func benignAt(f *Factory, x, y float64) Ball {
	b := f.CreateAt(Vec2{x, y}, 0)
	b.Category = CategoryBenign
	return b
}

func hostileAt(f *Factory, x, y float64) Ball {
	b := f.CreateAt(Vec2{x, y}, 0)
	b.Category = CategoryHostile
	return b
}

// playingFlow returns a flow already in Playing with the given round total
func playingFlow(t *testing.T, cfg Config, clock Clock, total int) *Flow {
	t.Helper()
	f := NewFlow(cfg, clock)
	f.total = total
	if err := f.Restart(ResetFunc(func(int) error { return nil })); err != nil {
		t.Fatalf("restart: %v", err)
	}
	return f
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
