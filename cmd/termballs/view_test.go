package main

import (
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"ballfield/game"
)

func TestCellFor(t *testing.T) {
	tests := []struct {
		p    game.Vec2
		x, y int
	}{
		{game.Vec2{X: 0, Y: 0}, 20, 10},
		{game.Vec2{X: -1, Y: 1}, 0, 0},
		{game.Vec2{X: 1, Y: -1}, 39, 19}, // far edge clamps into the grid
		{game.Vec2{X: 0.5, Y: 0.5}, 30, 5},
	}
	for _, tt := range tests {
		x, y := cellFor(tt.p, 40, 20)
		if x != tt.x || y != tt.y {
			t.Errorf("cellFor(%+v) = (%d, %d), want (%d, %d)", tt.p, x, y, tt.x, tt.y)
		}
	}
}

func TestShipGlyph(t *testing.T) {
	tests := []struct {
		rot  float64
		want rune
	}{
		{0, '▶'},
		{math.Pi / 2, '▲'},
		{math.Pi, '◀'},
		{-math.Pi / 2, '▼'},
		{0.3, '▶'},
		{2 * math.Pi, '▶'},
	}
	for _, tt := range tests {
		if got := shipGlyph(tt.rot); got != tt.want {
			t.Errorf("shipGlyph(%v) = %q, want %q", tt.rot, got, tt.want)
		}
	}
}

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

func rowText(s tcell.Screen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestDrawPlacesBallsAndShip(t *testing.T) {
	s := newSimScreen(t, 40, 21)
	snap := game.Snapshot{
		Phase:     game.PhasePlaying,
		Round:     2,
		Total:     4,
		Threshold: 2,
		Ship: game.ShipView{
			Position: game.Vec2{X: 0.5, Y: 0.5},
			Rotation: math.Pi / 2,
			Hits:     1,
		},
		Balls: []game.BallView{
			{ID: 1, Position: game.Vec2{X: 0, Y: 0}, Category: game.CategoryHostile},
			{ID: 2, Position: game.Vec2{X: -1, Y: 1}, Category: game.CategoryBenign},
		},
	}
	draw(s, snap, false)

	// field rows start below the HUD
	if r, _, style, _ := s.GetContent(20, 11); r != ballGlyph || style != styleHostile {
		t.Errorf("hostile cell = %q, want %q in hostile style", r, ballGlyph)
	}
	if r, _, style, _ := s.GetContent(0, 1); r != ballGlyph || style != styleBenign {
		t.Errorf("benign cell = %q, want %q in benign style", r, ballGlyph)
	}
	if r, _, _, _ := s.GetContent(30, 6); r != '▲' {
		t.Errorf("ship cell = %q, want ▲", r)
	}

	hud := rowText(s, 0, 40)
	if !strings.Contains(hud, "Round 2") || !strings.Contains(hud, "1/2") {
		t.Errorf("hud = %q", hud)
	}
}

func TestDrawMessages(t *testing.T) {
	tests := []struct {
		phase game.Phase
		want  string
	}{
		{game.PhaseMenu, "Press SPACE"},
		{game.PhaseWin, "You Win!"},
		{game.PhaseLose, "You Lose!"},
	}
	for _, tt := range tests {
		s := newSimScreen(t, 60, 21)
		draw(s, game.Snapshot{Phase: tt.phase, Total: 4}, true)

		if row := rowText(s, 11, 60); !strings.Contains(row, tt.want) {
			t.Errorf("%v: middle row = %q, want %q", tt.phase, row, tt.want)
		}
		if hud := rowText(s, 0, 60); !strings.Contains(hud, "muted") {
			t.Errorf("%v: hud = %q, want muted flag", tt.phase, hud)
		}
	}
}

func TestDrawPlayingHasNoMessage(t *testing.T) {
	s := newSimScreen(t, 60, 21)
	snap := game.Snapshot{
		Phase: game.PhasePlaying,
		Ship:  game.ShipView{Position: game.Vec2{X: 0.5, Y: 0.5}},
	}
	draw(s, snap, false)
	if row := strings.TrimSpace(rowText(s, 11, 60)); row != "" {
		t.Errorf("middle row = %q, want empty", row)
	}
}
