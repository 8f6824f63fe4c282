package main

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"ballfield/audio"
	"ballfield/game"
)

// dust represents a single background dust particle, in arena coordinates
type dust struct {
	pos    game.Vec2
	speed  float64
	radius float64
}

// particle is one short-lived spark, in arena coordinates
type particle struct {
	pos      game.Vec2
	vel      game.Vec2
	age      float64
	lifetime float64
	color    color.NRGBA
	size     float64
}

// App is the ebiten frontend: it collects key input, steps the core once per
// tick and draws the resulting snapshot.
type App struct {
	game     *game.Game
	config   game.Config
	keys     *keyCollector
	sound    *audio.SoundManager
	profiler *game.Profiler

	view      arenaView
	dust      []dust
	sparks    *ParticleSystem
	thrust    *ParticleSystem
	snapshot  game.Snapshot
	white     *ebiten.Image
	shipImage *ebiten.Image
	face      text.Face

	lastUpdate    time.Time
	showHitRadius bool // toggled with F3
}
