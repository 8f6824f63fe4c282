package game

// PositionQueryable exposes where a body is
type PositionQueryable interface {
	Position() Vec2
}

// ScaleQueryable exposes a body's radius-equivalent
type ScaleQueryable interface {
	Scale() float64
}

// Target is the body the balls are tested against. *Ship satisfies it.
type Target interface {
	PositionQueryable
	ScaleQueryable
	Hits() int
	Absorb()
}

// Referee receives the outcomes the evaluator detects. *Flow satisfies it.
type Referee interface {
	Phase() Phase
	Lose()
	CheckWin(hits int) bool
}

// Contact records one ship-ball touch
type Contact struct {
	Ball     Ball
	Distance float64
}

// Report summarizes one evaluation pass
type Report struct {
	Contacts []Contact
	Removed  []Ball
	Absorbed int
	Fatal    bool
	Won      bool
}

// Evaluator applies the contact rules between the ship and the pool
type Evaluator struct {
	shipFactor float64
	ballFactor float64
}

// NewEvaluator creates an evaluator with the hit-radius factors of cfg
func NewEvaluator(cfg Config) Evaluator {
	return Evaluator{
		shipFactor: cfg.ShipHitFactor,
		ballFactor: cfg.BallHitFactor,
	}
}

// touching reports whether a body of scale ballScale at distance d touches the target.
// The ship and ball sprites have different visual hit radii, hence two factors.
func (e Evaluator) touching(d, shipScale, ballScale float64) bool {
	return d < shipScale*e.shipFactor+ballScale*e.ballFactor
}

// Evaluate scans every ball once, in pool order, and applies the outcome of
// each contact. A hostile contact loses the round immediately but the scan
// continues, so later benign contacts in the same frame still count. Flagged
// balls are removed after the scan, and the win rule is checked only if the
// round is still being played.
//
// Distances are taken in unwrapped space: the integrator keeps ship and balls
// inside the same fundamental domain between checks.
func (e Evaluator) Evaluate(ship Target, pool *Pool, ref Referee) Report {
	var r Report
	if ref.Phase() != PhasePlaying {
		return r
	}

	shipPos := ship.Position()
	shipScale := ship.Scale()
	for i := range pool.balls {
		b := &pool.balls[i]
		d := shipPos.Distance(b.Position)
		if !e.touching(d, shipScale, b.Scale) {
			continue
		}

		r.Contacts = append(r.Contacts, Contact{Ball: *b, Distance: d})
		if b.Hostile() {
			ref.Lose()
			r.Fatal = true
		} else {
			ship.Absorb()
			r.Absorbed++
		}
		pool.mark(i)
	}

	r.Removed = pool.RemoveFlagged()

	if ref.Phase() == PhasePlaying {
		r.Won = ref.CheckWin(ship.Hits())
	}
	return r
}
