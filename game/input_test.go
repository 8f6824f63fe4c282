package game

import (
	"math"
	"testing"
)

func TestInputSetHeld(t *testing.T) {
	s := InputSet(0).With(InputUp).With(InputConfirm)
	if !s.Has(InputUp) || !s.Has(InputConfirm) || s.Has(InputDown) {
		t.Fatalf("held = %v", s)
	}
	s = s.Without(InputUp)
	if s.Has(InputUp) || !s.Has(InputConfirm) {
		t.Errorf("after release held = %v", s)
	}
	if got := s.String(); got != "{confirm}" {
		t.Errorf("String() = %q", got)
	}
}

func TestInputSetDirection(t *testing.T) {
	h := math.Sqrt2 / 2
	tests := []struct {
		name string
		set  InputSet
		want Vec2
	}{
		{"none", 0, Vec2{}},
		{"up", InputSet(0).With(InputUp), Vec2{0, 1}},
		{"down left", InputSet(0).With(InputDown).With(InputLeft), Vec2{-h, -h}},
		{"up right", InputSet(0).With(InputUp).With(InputRight), Vec2{h, h}},
		{"opposing", InputSet(0).With(InputLeft).With(InputRight), Vec2{}},
		{"confirm only", InputSet(0).With(InputConfirm), Vec2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.set.Direction()
			if !approx(got.X, tt.want.X) || !approx(got.Y, tt.want.Y) {
				t.Errorf("Direction() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
