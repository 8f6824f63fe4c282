package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBallCount is returned when a round would start with a ball total
	// that is negative, below two, or odd.
	ErrInvalidBallCount = errors.New("invalid ball count")

	// ErrSpawnExhausted is returned when no ball position outside the spawn
	// radius was found within the attempt cap.
	ErrSpawnExhausted = errors.New("spawn attempts exhausted")

	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("invalid config")
)

// checkBallCount rejects totals the win rule cannot split evenly
func checkBallCount(n int) error {
	if n < 2 {
		return fmt.Errorf("%w: %d is below 2", ErrInvalidBallCount, n)
	}
	if n%2 != 0 {
		return fmt.Errorf("%w: %d is odd", ErrInvalidBallCount, n)
	}
	return nil
}
