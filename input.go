package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ballfield/game"
)

// keyBindings maps each control signal to the keys that drive it
var keyBindings = [...]struct {
	input game.Input
	keys  []ebiten.Key
}{
	{game.InputUp, []ebiten.Key{ebiten.KeyUp, ebiten.KeyW}},
	{game.InputDown, []ebiten.Key{ebiten.KeyDown, ebiten.KeyS}},
	{game.InputLeft, []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}},
	{game.InputRight, []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}},
	{game.InputConfirm, []ebiten.Key{ebiten.KeySpace}},
}

// keyCollector turns key press and release edges into the held signal set
type keyCollector struct {
	held game.InputSet
}

// Poll applies this tick's key edges. A press sets its signal; a release
// clears it once no other key bound to the same signal is still down.
func (k *keyCollector) Poll() game.InputSet {
	if !ebiten.IsFocused() {
		// Releases are lost while unfocused
		k.held = 0
		return k.held
	}

	for _, b := range keyBindings {
		for _, key := range b.keys {
			if inpututil.IsKeyJustPressed(key) {
				k.held = k.held.With(b.input)
			}
			if inpututil.IsKeyJustReleased(key) && !anyPressed(b.keys) {
				k.held = k.held.Without(b.input)
			}
		}
	}
	return k.held
}

func anyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// handleToggles processes frontend-only keys: mute, hit radius and fullscreen
func (a *App) handleToggles() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.sound.SetMuted(!a.sound.Muted())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		a.showHitRadius = !a.showHitRadius
	}

	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt)
	if altPressed && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			w, h := ebiten.ScreenSizeInFullscreen()
			ebiten.SetWindowSize(int(float64(w)*windowedSizeRatio), int(float64(h)*windowedSizeRatio))
		} else {
			ebiten.SetFullscreen(true)
		}
	}
}
