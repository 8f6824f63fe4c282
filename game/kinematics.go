package game

import "math"

// ArenaSpan is the width of the arena on each axis; positions live in [-1, 1]
const ArenaSpan = 2.0

// Advance integrates every ball's position by velocity * dt * speedFactor and
// wraps it back into the arena. speedFactor is the round's ball total, so
// fuller rounds move faster.
func Advance(balls []Ball, dt, speedFactor float64) {
	scale := dt * speedFactor
	for i := range balls {
		b := &balls[i]
		b.Position = Wrap(b.Position.Add(b.Velocity.Scale(scale)))
	}
}

// Wrap maps a position back into [-1, 1] on both axes, making the arena a torus
func Wrap(p Vec2) Vec2 {
	return Vec2{wrapAxis(p.X), wrapAxis(p.Y)}
}

func wrapAxis(v float64) float64 {
	if v > 1 {
		v -= ArenaSpan
	} else if v < -1 {
		v += ArenaSpan
	}
	if v > 1 || v < -1 {
		// moved more than a full span in one step
		v = math.Mod(v+1, ArenaSpan)
		if v < 0 {
			v += ArenaSpan
		}
		v--
	}
	return v
}

// PeriodicImages returns p and its eight copies offset by the arena span,
// which is what a renderer draws so bodies straddling an edge show on both sides.
func PeriodicImages(p Vec2) [9]Vec2 {
	var out [9]Vec2
	i := 0
	for _, dy := range [3]float64{-ArenaSpan, 0, ArenaSpan} {
		for _, dx := range [3]float64{-ArenaSpan, 0, ArenaSpan} {
			out[i] = Vec2{p.X + dx, p.Y + dy}
			i++
		}
	}
	return out
}
