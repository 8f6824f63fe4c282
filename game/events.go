package game

// DestroyCause tells observers why a ball left the pool
type DestroyCause int

const (
	// CauseContact means the ball touched the ship
	CauseContact DestroyCause = iota
	// CauseReset means the pool was cleared for a new round
	CauseReset
)

func (c DestroyCause) String() string {
	switch c {
	case CauseContact:
		return "contact"
	case CauseReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Observer receives entity lifecycle and phase notifications from the core.
// Callbacks run synchronously inside Update and must not call back into the Game.
type Observer interface {
	BallSpawned(b Ball)
	BallDestroyed(b Ball, cause DestroyCause)
	PhaseChanged(from, to Phase)
}

// NopObserver ignores every notification; embed it to implement part of Observer
type NopObserver struct{}

func (NopObserver) BallSpawned(Ball) {}

func (NopObserver) BallDestroyed(Ball, DestroyCause) {}

func (NopObserver) PhaseChanged(Phase, Phase) {}

// Observers fans notifications out in order
type Observers []Observer

func (obs Observers) BallSpawned(b Ball) {
	for _, o := range obs {
		o.BallSpawned(b)
	}
}

func (obs Observers) BallDestroyed(b Ball, cause DestroyCause) {
	for _, o := range obs {
		o.BallDestroyed(b, cause)
	}
}

func (obs Observers) PhaseChanged(from, to Phase) {
	for _, o := range obs {
		o.PhaseChanged(from, to)
	}
}
