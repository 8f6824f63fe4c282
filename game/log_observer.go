package game

import "log"

// LogObserver writes every lifecycle notification to a logger
type LogObserver struct {
	logger *log.Logger
}

// NewLogObserver creates an observer logging to l, or to the standard logger if l is nil
func NewLogObserver(l *log.Logger) *LogObserver {
	if l == nil {
		l = log.Default()
	}
	return &LogObserver{logger: l}
}

func (o *LogObserver) BallSpawned(b Ball) {
	o.logger.Printf("spawned %s ball %d at (%.3f, %.3f)", b.Category, b.ID, b.Position.X, b.Position.Y)
}

func (o *LogObserver) BallDestroyed(b Ball, cause DestroyCause) {
	o.logger.Printf("removed %s ball %d (%s)", b.Category, b.ID, cause)
}

func (o *LogObserver) PhaseChanged(from, to Phase) {
	o.logger.Printf("phase %s -> %s", from, to)
}
