package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"ballfield/game"
)

func newFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

// drawCentered draws msg centered horizontally on the screen at height y
func (a *App) drawCentered(screen *ebiten.Image, msg string, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(a.view.Width/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, msg, a.face, op)
}

// drawOverlay draws the phase message: the menu prompt or the round outcome
func (a *App) drawOverlay(screen *ebiten.Image, s game.Snapshot) {
	var title, detail string
	var clr color.Color = colorMessage
	switch s.Phase {
	case game.PhaseMenu:
		title = "Press SPACE"
		detail = "arrows/WASD move, M mute, Esc quit"
	case game.PhaseWin:
		title, clr = "You Win!", colorWin
		detail = fmt.Sprintf("next round: %d balls in %.1fs", s.Total, s.Cooldown)
	case game.PhaseLose:
		title, clr = "You Lose!", colorLose
		detail = fmt.Sprintf("back to %d balls in %.1fs", s.Total, s.Cooldown)
	default:
		return
	}

	vector.DrawFilledRect(screen, 0, 0, float32(a.view.Width), float32(a.view.Height), colorOverlay, false)
	mid := a.view.Height / 2
	a.drawCentered(screen, title, mid-12, 3, clr)
	a.drawCentered(screen, detail, mid+28, 1, colorMessage)
}

// drawHUD draws the heads-up display with round stats
func (a *App) drawHUD(screen *ebiten.Image, s game.Snapshot) {
	hud := fmt.Sprintf("Round %d | Balls %d (%d hostile) | Absorbed %d/%d | TPS %0.0f",
		s.Round, len(s.Balls), s.Hostile(), s.Ship.Hits, s.Threshold, ebiten.ActualTPS())
	if a.sound.Muted() {
		hud += " | muted"
	}
	if a.profiler != nil && a.profiler.IsProfiling() {
		hud += " | profiling"
	}
	ebitenutil.DebugPrintAt(screen, hud, hudMarginX, hudMarginY)
}
