package game

import "math"

// Controls is the read-only view of the flow the ship steers by
type Controls interface {
	Phase() Phase
	Input() InputSet
}

// Ship is the player-controlled body
type Ship struct {
	position Vec2
	velocity Vec2
	rotation float64
	scale    float64
	hits     int

	acceleration float64
	maxSpeed     float64
	damping      float64
}

// NewShip creates a ship at the arena center
func NewShip(cfg Config) *Ship {
	return &Ship{
		scale:        cfg.ShipScale,
		acceleration: cfg.ShipAcceleration,
		maxSpeed:     cfg.ShipMaxSpeed,
		damping:      cfg.ShipDamping,
		// Nose up, matching the sprite's rest orientation
		rotation: math.Pi / 2,
	}
}

func (s *Ship) Position() Vec2    { return s.position }
func (s *Ship) Velocity() Vec2    { return s.velocity }
func (s *Ship) Rotation() float64 { return s.rotation }
func (s *Ship) Scale() float64    { return s.scale }

// Hits returns the benign balls absorbed this round
func (s *Ship) Hits() int { return s.hits }

// Absorb counts one benign contact. Only the collision evaluator calls it.
func (s *Ship) Absorb() {
	s.hits++
}

// Reset centers the ship, stops it and zeroes the hit counter
func (s *Ship) Reset() {
	s.position = Vec2{}
	s.velocity = Vec2{}
	s.rotation = math.Pi / 2
	s.hits = 0
}

// Update steers the ship from the held directions. It does nothing outside Playing.
func (s *Ship) Update(c Controls, dt float64) {
	if c.Phase() != PhasePlaying {
		return
	}

	dir := c.Input().Direction()
	if dir.Length() > 0 {
		s.velocity = s.velocity.Add(dir.Scale(s.acceleration * dt))
	} else {
		// Exponential decay keeps the stop distance frame-rate independent
		s.velocity = s.velocity.Scale(math.Exp(-s.damping * dt))
	}

	if speed := s.velocity.Length(); speed > s.maxSpeed {
		s.velocity = s.velocity.Scale(s.maxSpeed / speed)
	}

	s.position = Wrap(s.position.Add(s.velocity.Scale(dt)))

	if s.velocity.Length() > 1e-3 {
		s.rotation = s.velocity.Angle()
	}
}
