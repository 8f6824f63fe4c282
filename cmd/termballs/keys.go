package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"ballfield/game"
)

// holdWindow is how long a signal stays held after its last key event.
// Terminals report presses and auto-repeats but never releases.
const holdWindow = 150 * time.Millisecond

// holdCollector approximates held keys from press events
type holdCollector struct {
	window  time.Duration
	pressed map[game.Input]time.Time
}

func newHoldCollector(window time.Duration) *holdCollector {
	return &holdCollector{
		window:  window,
		pressed: make(map[game.Input]time.Time),
	}
}

// Press records a key event for in at now
func (h *holdCollector) Press(in game.Input, now time.Time) {
	h.pressed[in] = now
}

// Held returns the signals pressed within the hold window before now
func (h *holdCollector) Held(now time.Time) game.InputSet {
	var s game.InputSet
	for in, at := range h.pressed {
		if now.Sub(at) <= h.window {
			s = s.With(in)
		} else {
			delete(h.pressed, in)
		}
	}
	return s
}

// mapKey translates a terminal key event into a control signal
func mapKey(ev *tcell.EventKey) (game.Input, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.InputUp, true
	case tcell.KeyDown:
		return game.InputDown, true
	case tcell.KeyLeft:
		return game.InputLeft, true
	case tcell.KeyRight:
		return game.InputRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return game.InputUp, true
		case 's', 'S':
			return game.InputDown, true
		case 'a', 'A':
			return game.InputLeft, true
		case 'd', 'D':
			return game.InputRight, true
		case ' ':
			return game.InputConfirm, true
		}
	}
	return 0, false
}

// isQuit reports whether ev asks to leave the game
func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'))
}
