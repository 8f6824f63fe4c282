package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ballfield/game"
)

// arenaView maps the [-1, 1] arena onto a screen of Width x Height pixels, +Y up
type arenaView struct {
	Width  float64
	Height float64
}

// ToScreen converts arena coordinates to screen coordinates
func (v arenaView) ToScreen(p game.Vec2) (float64, float64) {
	return (p.X + 1) / 2 * v.Width, (1 - p.Y) / 2 * v.Height
}

// Scale returns the pixel size of an arena length on each axis
func (v arenaView) Scale(l float64) (float64, float64) {
	return l * v.Width / 2, l * v.Height / 2
}

// visible reports whether a body of radius r centered at p overlaps the arena
func visible(p game.Vec2, r float64) bool {
	return p.X+r >= -1 && p.X-r <= 1 && p.Y+r >= -1 && p.Y-r <= 1
}

// drawPolygon fills a regular polygon with the given number of sides as a triangle fan
func (a *App) drawPolygon(dst *ebiten.Image, center game.Vec2, radius float64, sides int, clr color.NRGBA) {
	if sides < 3 {
		sides = 3
	}
	cx, cy := a.view.ToScreen(center)
	rx, ry := a.view.Scale(radius)
	r, g, b, al := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255

	vertices := make([]ebiten.Vertex, 0, sides+1)
	indices := make([]uint16, 0, sides*3)
	vertices = append(vertices, ebiten.Vertex{DstX: float32(cx), DstY: float32(cy), ColorR: r, ColorG: g, ColorB: b, ColorA: al})
	for i := 0; i < sides; i++ {
		angle := 2 * math.Pi * float64(i) / float64(sides)
		vertices = append(vertices, ebiten.Vertex{
			DstX:   float32(cx + math.Cos(angle)*rx),
			DstY:   float32(cy - math.Sin(angle)*ry),
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: al,
		})
		next := uint16(i+1)%uint16(sides) + 1
		indices = append(indices, 0, uint16(i+1), next)
	}

	dst.DrawTriangles(vertices, indices, a.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// drawBalls draws every ball at each periodic image that overlaps the arena,
// so balls straddling an edge show on both sides
func (a *App) drawBalls(screen *ebiten.Image, balls []game.BallView) {
	for _, b := range balls {
		clr := colorBenign
		if b.Category == game.CategoryHostile {
			clr = colorHostile
		}
		for _, p := range game.PeriodicImages(b.Position) {
			if visible(p, b.Scale) {
				a.drawPolygon(screen, p, b.Scale, b.Sides, clr)
			}
		}
	}
}

// drawHitRadius outlines the contact radius of the ship
func (a *App) drawHitRadius(screen *ebiten.Image, ship game.ShipView) {
	cx, cy := a.view.ToScreen(ship.Position)
	rx, _ := a.view.Scale(ship.Scale * a.config.ShipHitFactor)
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(rx), 1, colorHitRadius, true)
}

// drawCircle draws a filled circle
func drawCircle(dst *ebiten.Image, cx, cy, radius float64, clr color.Color) {
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(radius), clr, true)
}

// newWhiteImage returns the 1x1 source image for solid triangles
func newWhiteImage() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}
