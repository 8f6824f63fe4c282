package main

import (
	"image/color"
	"math"
	"time"
)

const windowTitle = "Ball Field"

// Gameplay-independent frontend constants
const (
	maxDeltaTime       = 0.1 // seconds; longer frames are clamped
	dustCount          = 70
	dustBaseSpeed      = 0.15 // arena units per second at ship max speed
	burstParticles     = 18
	thrustParticleRate = 60.0
	windowedSizeRatio  = 0.9
	hudMarginX         = 8
	hudMarginY         = 6
	shipSpriteSize     = 64
)

// slowFrameBudget is two ticks at 60 TPS
const slowFrameBudget = 33 * time.Millisecond

// Color constants
var (
	colorBackground = color.NRGBA{R: 51, G: 51, B: 56, A: 255}
	colorDust       = color.NRGBA{R: 120, G: 120, B: 128, A: 255}
	colorHostile    = color.NRGBA{R: 230, G: 40, B: 40, A: 255}
	colorBenign     = color.NRGBA{R: 245, G: 245, B: 245, A: 255}
	colorShip       = color.NRGBA{R: 159, G: 216, B: 255, A: 255}
	colorVelocity   = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	colorHitRadius  = color.NRGBA{R: 255, G: 220, B: 0, A: 160}
	colorOverlay    = color.NRGBA{R: 0, G: 0, B: 0, A: 140}
	colorMessage    = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorWin        = color.NRGBA{R: 120, G: 255, B: 160, A: 255}
	colorLose       = color.NRGBA{R: 255, G: 110, B: 110, A: 255}
	colorThrust     = color.NRGBA{R: 255, G: 200, B: 0, A: 255}
)

// Ship fallback geometry, in multiples of the ship scale
const (
	shipNoseLength = 1.0
	shipWingLength = 0.7
	shipWingAngle  = 140 * math.Pi / 180
)
