package game

import (
	"errors"
	"fmt"
	"math"
)

// Config holds game configuration constants
type Config struct {
	// BaseBallCount is the ball total of the first round and after every loss
	BaseBallCount int `toml:"base_ball_count"`

	// BallCountStep is added to the ball total after every win
	BallCountStep int `toml:"ball_count_step"`

	// MinSpawnRadius is the minimum distance from the arena center for a spawned ball
	MinSpawnRadius float64 `toml:"min_spawn_radius"`

	// BallSpeedDivisor divides the unit direction of every ball (base speed = 1/divisor)
	BallSpeedDivisor float64 `toml:"ball_speed_divisor"`

	// BallScale is the radius-equivalent of a ball
	BallScale float64 `toml:"ball_scale"`

	// BallSides is the polygon side count used to draw a ball
	BallSides int `toml:"ball_sides"`

	// ShipScale is the radius-equivalent of the ship
	ShipScale float64 `toml:"ship_scale"`

	// ShipHitFactor multiplies ShipScale in the contact test
	ShipHitFactor float64 `toml:"ship_hit_factor"`

	// BallHitFactor multiplies a ball's scale in the contact test
	BallHitFactor float64 `toml:"ball_hit_factor"`

	// RestartCooldown is the time in seconds spent in Win or Lose before the next round
	RestartCooldown float64 `toml:"restart_cooldown"`

	// ShipAcceleration is the ship acceleration in arena units per second^2
	ShipAcceleration float64 `toml:"ship_acceleration"`

	// ShipMaxSpeed caps the ship speed in arena units per second
	ShipMaxSpeed float64 `toml:"ship_max_speed"`

	// ShipDamping is the per-second velocity decay applied while no direction is held
	ShipDamping float64 `toml:"ship_damping"`

	// SpawnMaxAttempts caps rejection sampling of ball positions
	SpawnMaxAttempts int `toml:"spawn_max_attempts"`

	// Seed seeds the random source; 0 seeds from the clock
	Seed int64 `toml:"seed"`

	// ScreenWidth is the window width in pixels
	ScreenWidth int `toml:"screen_width"`

	// ScreenHeight is the window height in pixels
	ScreenHeight int `toml:"screen_height"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		BaseBallCount:    2,
		BallCountStep:    2,
		MinSpawnRadius:   0.7,
		BallSpeedDivisor: 7.0,
		BallScale:        0.05,
		BallSides:        12,
		ShipScale:        0.2,
		ShipHitFactor:    0.7,
		BallHitFactor:    0.85,
		RestartCooldown:  2.0,
		ShipAcceleration: 4.0,
		ShipMaxSpeed:     1.0,
		ShipDamping:      3.0,
		SpawnMaxAttempts: 10000,
		Seed:             0,
		ScreenWidth:      640,
		ScreenHeight:     640,
	}
}

// Validate reports every invalid field of the configuration
func (c Config) Validate() error {
	var errs []error
	if err := checkBallCount(c.BaseBallCount); err != nil {
		errs = append(errs, fmt.Errorf("base_ball_count: %w", err))
	}
	if c.BallCountStep < 0 || c.BallCountStep%2 != 0 {
		errs = append(errs, fmt.Errorf("ball_count_step: %w: %d is not a non-negative even number", ErrInvalidConfig, c.BallCountStep))
	}
	// The spawn annulus must be reachable inside [-1,1]^2.
	if c.MinSpawnRadius < 0 || c.MinSpawnRadius >= math.Sqrt2 {
		errs = append(errs, fmt.Errorf("min_spawn_radius: %w: %v", ErrInvalidConfig, c.MinSpawnRadius))
	}
	if c.BallSpeedDivisor <= 0 {
		errs = append(errs, fmt.Errorf("ball_speed_divisor: %w: must be positive", ErrInvalidConfig))
	}
	if c.BallScale <= 0 || c.ShipScale <= 0 {
		errs = append(errs, fmt.Errorf("ball_scale/ship_scale: %w: must be positive", ErrInvalidConfig))
	}
	if c.BallSides < 3 {
		errs = append(errs, fmt.Errorf("ball_sides: %w: need at least 3, got %d", ErrInvalidConfig, c.BallSides))
	}
	if c.ShipHitFactor <= 0 || c.BallHitFactor <= 0 {
		errs = append(errs, fmt.Errorf("hit factors: %w: must be positive", ErrInvalidConfig))
	}
	if c.RestartCooldown < 0 {
		errs = append(errs, fmt.Errorf("restart_cooldown: %w: negative", ErrInvalidConfig))
	}
	if c.ShipAcceleration < 0 || c.ShipMaxSpeed < 0 || c.ShipDamping < 0 {
		errs = append(errs, fmt.Errorf("ship movement: %w: negative value", ErrInvalidConfig))
	}
	if c.SpawnMaxAttempts <= 0 {
		errs = append(errs, fmt.Errorf("spawn_max_attempts: %w: must be positive", ErrInvalidConfig))
	}
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("screen size: %w: %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight))
	}
	return errors.Join(errs...)
}
