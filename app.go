package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ballfield/audio"
	"ballfield/game"
)

// newApp wires the frontend around an already built game
func newApp(g *game.Game, sound *audio.SoundManager, sparks *ParticleSystem, rng *rand.Rand) (*App, error) {
	if g == nil {
		return nil, fmt.Errorf("newApp: nil game")
	}
	config := g.Config()
	a := &App{
		game:   g,
		config: config,
		keys:   &keyCollector{},
		sound:  sound,
		view: arenaView{
			Width:  float64(config.ScreenWidth),
			Height: float64(config.ScreenHeight),
		},
		dust:       newDust(rng),
		sparks:     sparks,
		thrust:     NewThrustParticleSystem(rng),
		white:      newWhiteImage(),
		face:       newFace(),
		lastUpdate: time.Now(),
	}

	img, err := loadShipSprite(shipSpriteSize)
	if err != nil {
		log.Printf("Using triangle ship: %v", err)
	} else {
		a.shipImage = img
	}

	a.snapshot = g.Snapshot()
	return a, nil
}

// Update steps the game once per tick
func (a *App) Update() error {
	now := time.Now()
	elapsed := now.Sub(a.lastUpdate)
	a.lastUpdate = now
	if a.profiler != nil {
		a.profiler.ObserveFrame(elapsed)
	}
	deltaTime := math.Min(elapsed.Seconds(), maxDeltaTime)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	a.handleToggles()

	held := a.keys.Poll()
	a.game.SetInput(held)
	if err := a.game.Update(deltaTime); err != nil {
		return err
	}
	a.snapshot = a.game.Snapshot()

	ship := a.snapshot.Ship
	heading := game.Vec2{X: math.Cos(ship.Rotation), Y: math.Sin(ship.Rotation)}
	exhaust := ship.Position.Sub(heading.Scale(ship.Scale * 0.6))
	a.thrust.SetActive(a.snapshot.Phase == game.PhasePlaying && held.Direction().Length() > 0)
	a.thrust.Update(deltaTime, exhaust, ship.Rotation+math.Pi)
	a.sparks.Update(deltaTime, ship.Position, 0)
	a.updateDust(deltaTime, ship)
	return nil
}

// Draw renders the last snapshot
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	s := a.snapshot

	a.drawDust(screen)
	a.drawBalls(screen, s.Balls)
	a.thrust.Draw(screen, a.view)
	a.drawShip(screen, s.Ship)
	if a.showHitRadius {
		a.drawHitRadius(screen, s.Ship)
	}
	a.sparks.Draw(screen, a.view)
	a.drawOverlay(screen, s)
	a.drawHUD(screen, s)
}

// Layout keeps the logical screen at the configured size
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.config.ScreenWidth, a.config.ScreenHeight
}
