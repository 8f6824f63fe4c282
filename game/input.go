package game

import "strings"

// Input is one discrete control signal
type Input uint8

const (
	InputUp Input = iota
	InputDown
	InputLeft
	InputRight
	InputConfirm
	inputCount
)

var inputNames = [inputCount]string{"up", "down", "left", "right", "confirm"}

func (i Input) String() string {
	if i < inputCount {
		return inputNames[i]
	}
	return "unknown"
}

// InputSet is the set of currently held signals. The external collector sets
// a bit on press and clears it on release.
type InputSet uint8

// With returns s with i held
func (s InputSet) With(i Input) InputSet {
	return s | 1<<i
}

// Without returns s with i released
func (s InputSet) Without(i Input) InputSet {
	return s &^ (1 << i)
}

// Has reports whether i is held
func (s InputSet) Has(i Input) bool {
	return s&(1<<i) != 0
}

// Direction returns the unit direction of the held movement signals, or the
// zero vector when none (or only opposing ones) are held. +Y is up.
func (s InputSet) Direction() Vec2 {
	var d Vec2
	if s.Has(InputUp) {
		d.Y++
	}
	if s.Has(InputDown) {
		d.Y--
	}
	if s.Has(InputLeft) {
		d.X--
	}
	if s.Has(InputRight) {
		d.X++
	}
	return d.Normalize()
}

func (s InputSet) String() string {
	var held []string
	for i := Input(0); i < inputCount; i++ {
		if s.Has(i) {
			held = append(held, i.String())
		}
	}
	return "{" + strings.Join(held, ",") + "}"
}
