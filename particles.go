package main

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"ballfield/game"
)

// IsAlive returns true if the particle is still alive
func (p *particle) IsAlive() bool {
	return p.age < p.lifetime
}

// ParticleSystem emits sparks in arena coordinates, either continuously from
// a moving emitter or in one-off bursts
type ParticleSystem struct {
	game.NopObserver

	rng            *rand.Rand
	particles      []particle
	maxParticles   int
	emissionRate   float64 // particles per second
	emissionTimer  float64 // time since last emission
	emitterPos     game.Vec2
	emitterAngle   float64 // direction particles leave in
	velocityMin    float64 // arena units per second
	velocityMax    float64
	spreadAngle    float64 // half-angle in radians
	lifetimeMin    float64
	lifetimeMax    float64
	sizeMin        float64 // pixels
	sizeMax        float64
	colorBase      color.NRGBA
	colorVariation color.NRGBA
	active         bool // whether the system is continuously emitting
}

// Update moves the emitter, emits while active and ages every particle
func (ps *ParticleSystem) Update(dt float64, emitterPos game.Vec2, emitterAngle float64) {
	ps.emitterPos = emitterPos
	ps.emitterAngle = emitterAngle

	if ps.active {
		ps.emissionTimer += dt
		toEmit := int(ps.emissionRate * ps.emissionTimer)
		if toEmit > 0 {
			ps.emissionTimer -= float64(toEmit) / ps.emissionRate
			for i := 0; i < toEmit; i++ {
				ps.emitParticle(ps.emitterPos, ps.emitterAngle, ps.spreadAngle, ps.colorBase)
			}
		}
	}

	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.age += dt
		p.pos = game.Wrap(p.pos.Add(p.vel.Scale(dt)))
		if p.IsAlive() {
			alive = append(alive, p)
		}
	}
	ps.particles = alive
}

// Burst emits n particles in every direction from pos
func (ps *ParticleSystem) Burst(pos game.Vec2, n int, base color.NRGBA) {
	for i := 0; i < n; i++ {
		ps.emitParticle(pos, 0, math.Pi, base)
	}
}

// emitParticle creates a new particle heading within spread of angle
func (ps *ParticleSystem) emitParticle(pos game.Vec2, angle, spread float64, base color.NRGBA) {
	if len(ps.particles) >= ps.maxParticles {
		return
	}
	dir := angle + (ps.rng.Float64()-0.5)*spread*2
	speed := ps.velocityMin + ps.rng.Float64()*(ps.velocityMax-ps.velocityMin)

	vary := func(c, v uint8) uint8 {
		return uint8(clamp(float64(c)+ps.rng.Float64()*float64(v)*2-float64(v), 0, 255))
	}

	ps.particles = append(ps.particles, particle{
		pos:      pos,
		vel:      game.Vec2{X: math.Cos(dir) * speed, Y: math.Sin(dir) * speed},
		lifetime: ps.lifetimeMin + ps.rng.Float64()*(ps.lifetimeMax-ps.lifetimeMin),
		size:     ps.sizeMin + ps.rng.Float64()*(ps.sizeMax-ps.sizeMin),
		color: color.NRGBA{
			R: vary(base.R, ps.colorVariation.R),
			G: vary(base.G, ps.colorVariation.G),
			B: vary(base.B, ps.colorVariation.B),
			A: base.A,
		},
	})
}

// Draw renders all particles, fading them out with age
func (ps *ParticleSystem) Draw(screen *ebiten.Image, view arenaView) {
	for _, p := range ps.particles {
		x, y := view.ToScreen(p.pos)
		alpha := 0.8 * clamp(1-p.age/p.lifetime, 0, 1)
		c := p.color
		c.A = uint8(float64(c.A) * alpha)
		drawCircle(screen, x, y, p.size, c)
	}
}

// SetActive sets whether the particle system is continuously emitting
func (ps *ParticleSystem) SetActive(active bool) {
	ps.active = active
	if !active {
		ps.emissionTimer = 0
	}
}

// BallDestroyed bursts sparks where an absorbed or fatal ball was
func (ps *ParticleSystem) BallDestroyed(b game.Ball, cause game.DestroyCause) {
	if cause != game.CauseContact {
		return
	}
	clr := colorBenign
	if b.Hostile() {
		clr = colorHostile
	}
	ps.Burst(b.Position, burstParticles, clr)
}

// NewSparkParticleSystem creates the system used for contact bursts
func NewSparkParticleSystem(rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		rng:            rng,
		maxParticles:   400,
		velocityMin:    0.2,
		velocityMax:    0.6,
		lifetimeMin:    0.3,
		lifetimeMax:    0.7,
		sizeMin:        1.5,
		sizeMax:        3.0,
		colorVariation: color.NRGBA{R: 25, G: 25, B: 25},
	}
}

// NewThrustParticleSystem creates the exhaust trail behind the ship
func NewThrustParticleSystem(rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		rng:            rng,
		maxParticles:   50,
		emissionRate:   thrustParticleRate,
		velocityMin:    0.3,
		velocityMax:    0.5,
		spreadAngle:    math.Pi / 6,
		lifetimeMin:    0.2,
		lifetimeMax:    0.5,
		sizeMin:        1.5,
		sizeMax:        3.0,
		colorBase:      colorThrust,
		colorVariation: color.NRGBA{R: 0, G: 100, B: 0},
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
