package main

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"ballfield/game"
)

// newDust scatters the background dust over the arena
func newDust(rng *rand.Rand) []dust {
	field := make([]dust, dustCount)
	for i := range field {
		field[i] = dust{
			pos:    game.Vec2{X: rng.Float64()*2 - 1, Y: rng.Float64()*2 - 1},
			speed:  0.4 + rng.Float64()*0.6,
			radius: 0.5 + rng.Float64(),
		}
	}
	return field
}

// updateDust drifts the dust opposite to the ship velocity for a parallax effect
func (a *App) updateDust(dt float64, ship game.ShipView) {
	for i := range a.dust {
		d := &a.dust[i]
		drift := ship.Velocity.Scale(-dt * d.speed * dustBaseSpeed)
		// Keep dust on the same torus as everything else
		d.pos = game.Wrap(d.pos.Add(drift))
	}
}

func (a *App) drawDust(screen *ebiten.Image) {
	for _, d := range a.dust {
		x, y := a.view.ToScreen(d.pos)
		drawCircle(screen, x, y, d.radius, colorDust)
	}
}
