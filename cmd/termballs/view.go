package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"ballfield/game"
)

var (
	styleHostile = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBenign  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleShip    = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWin     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleLose    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleMessage = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

const ballGlyph = '●'

// cellFor maps an arena position onto a w x h grid of cells, +Y up
func cellFor(p game.Vec2, w, h int) (int, int) {
	x := int((p.X + 1) / 2 * float64(w))
	y := int((1 - p.Y) / 2 * float64(h))
	return min(max(x, 0), w-1), min(max(y, 0), h-1)
}

// shipGlyph picks the arrow closest to the ship heading
func shipGlyph(rotation float64) rune {
	glyphs := [4]rune{'▶', '▲', '◀', '▼'}
	quarter := int(math.Round(rotation/(math.Pi/2))) % 4
	if quarter < 0 {
		quarter += 4
	}
	return glyphs[quarter]
}

// draw renders one snapshot. Row 0 holds the HUD; the rest is the arena.
func draw(screen tcell.Screen, s game.Snapshot, muted bool) {
	screen.Clear()
	w, h := screen.Size()
	if w < 1 || h < 2 {
		screen.Show()
		return
	}
	fieldH := h - 1

	for _, b := range s.Balls {
		style := styleBenign
		if b.Category == game.CategoryHostile {
			style = styleHostile
		}
		x, y := cellFor(b.Position, w, fieldH)
		screen.SetContent(x, y+1, ballGlyph, nil, style)
	}

	if s.Phase != game.PhaseMenu {
		x, y := cellFor(s.Ship.Position, w, fieldH)
		screen.SetContent(x, y+1, shipGlyph(s.Ship.Rotation), nil, styleShip)
	}

	hud := fmt.Sprintf("Round %d  Balls %d (%d hostile)  Absorbed %d/%d", s.Round, len(s.Balls), s.Hostile(), s.Ship.Hits, s.Threshold)
	if muted {
		hud += "  muted"
	}
	drawText(screen, 0, 0, styleHUD, hud)

	mid := 1 + fieldH/2
	switch s.Phase {
	case game.PhaseMenu:
		drawCentered(screen, mid, styleMessage, "Press SPACE")
		drawCentered(screen, mid+1, styleHUD, "arrows/WASD move, m mute, q quit")
	case game.PhaseWin:
		drawCentered(screen, mid, styleWin, "You Win!")
		drawCentered(screen, mid+1, styleHUD, fmt.Sprintf("next round: %d balls in %.1fs", s.Total, s.Cooldown))
	case game.PhaseLose:
		drawCentered(screen, mid, styleLose, "You Lose!")
		drawCentered(screen, mid+1, styleHUD, fmt.Sprintf("back to %d balls in %.1fs", s.Total, s.Cooldown))
	}

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, str string) {
	for _, r := range str {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func drawCentered(screen tcell.Screen, y int, style tcell.Style, str string) {
	w, _ := screen.Size()
	drawText(screen, (w-len([]rune(str)))/2, y, style, str)
}
