package game

// BallView is the read-only state of one ball as the renderer sees it
type BallView struct {
	ID       BallID
	Position Vec2
	Category Category
	Sides    int
	Scale    float64
}

// ShipView is the read-only state of the ship
type ShipView struct {
	Position Vec2
	Velocity Vec2
	Rotation float64
	Scale    float64
	Hits     int
}

// Snapshot is a stable copy of everything a frontend needs to draw one frame.
// It shares no memory with the Game.
type Snapshot struct {
	Phase     Phase
	Round     int
	Total     int // ball total of the next restart
	Threshold int // benign hits that win the current round
	Ship      ShipView
	Balls     []BallView
	// Cooldown is the time in seconds left before the next round, in Win or Lose
	Cooldown float64
}

// Hostile counts the hostile balls in the snapshot
func (s Snapshot) Hostile() int {
	n := 0
	for _, b := range s.Balls {
		if b.Category == CategoryHostile {
			n++
		}
	}
	return n
}

// Viewer is the read side of the two-phase frame protocol
type Viewer interface {
	Snapshot() Snapshot
}
