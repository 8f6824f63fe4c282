package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ballfield/game"
)

// drawShip draws the ship at every periodic image that overlaps the arena
func (a *App) drawShip(screen *ebiten.Image, ship game.ShipView) {
	for _, p := range game.PeriodicImages(ship.Position) {
		if !visible(p, ship.Scale) {
			continue
		}
		if a.shipImage != nil {
			a.drawShipSprite(screen, p, ship)
		} else {
			a.drawShipTriangle(screen, p, ship)
		}
	}

	// Velocity vector
	if ship.Velocity.Length() > 1e-3 {
		x0, y0 := a.view.ToScreen(ship.Position)
		x1, y1 := a.view.ToScreen(ship.Position.Add(ship.Velocity.Scale(0.25)))
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, colorVelocity, true)
	}
}

func (a *App) drawShipSprite(screen *ebiten.Image, pos game.Vec2, ship game.ShipView) {
	w, h := a.shipImage.Bounds().Dx(), a.shipImage.Bounds().Dy()
	sx, sy := a.view.Scale(ship.Scale * 2)
	cx, cy := a.view.ToScreen(pos)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(sx/float64(w), sy/float64(h))
	// The sprite's nose points up, which is a heading of pi/2; screen y grows down
	op.GeoM.Rotate(math.Pi/2 - ship.Rotation)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(a.shipImage, op)
}

// drawShipTriangle is the fallback when the sprite is unavailable
func (a *App) drawShipTriangle(screen *ebiten.Image, pos game.Vec2, ship game.ShipView) {
	point := func(angle, length float64) (float32, float32) {
		x, y := a.view.ToScreen(pos.Add(game.Vec2{
			X: math.Cos(ship.Rotation+angle) * length * ship.Scale,
			Y: math.Sin(ship.Rotation+angle) * length * ship.Scale,
		}))
		return float32(x), float32(y)
	}
	nx, ny := point(0, shipNoseLength)
	lx, ly := point(shipWingAngle, shipWingLength)
	rx, ry := point(-shipWingAngle, shipWingLength)

	r, g, b := float32(colorShip.R)/255, float32(colorShip.G)/255, float32(colorShip.B)/255
	vertex := func(x, y float32) ebiten.Vertex {
		return ebiten.Vertex{DstX: x, DstY: y, ColorR: r, ColorG: g, ColorB: b, ColorA: 1}
	}
	vertices := []ebiten.Vertex{vertex(nx, ny), vertex(lx, ly), vertex(rx, ry)}
	screen.DrawTriangles(vertices, []uint16{0, 1, 2}, a.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
