package common

import (
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"small_positive", 0.5, 0.5},
		{"pi_stays_pi", math.Pi, math.Pi},
		{"minus_pi_maps_to_pi", -math.Pi, math.Pi},
		{"three_half_pi", 1.5 * math.Pi, -0.5 * math.Pi},
		{"minus_three_half_pi", -1.5 * math.Pi, 0.5 * math.Pi},
		{"full_turns", 4*math.Pi + 0.25, 0.25},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := NormalizeAngle(c.in)
			if math.Abs(got-c.want) > 1e-9 {
				t.Fatalf("NormalizeAngle(%v) = %v, want %v", c.in, got, c.want)
			}
			if got <= -math.Pi || got > math.Pi {
				t.Fatalf("NormalizeAngle(%v) = %v out of (-pi, pi]", c.in, got)
			}
		})
	}
}

func TestForwardAndHeadingRoundTrip(t *testing.T) {
	for _, h := range []float64{0, 0.3, -1.2, math.Pi / 2, -math.Pi / 2, 3} {
		f := Forward(h)
		if math.Abs(f.Length()-1) > 1e-9 {
			t.Fatalf("Forward(%v) not unit: %v", h, f)
		}
		got := NormalizeAngle(HeadingOf(f))
		if math.Abs(got-NormalizeAngle(h)) > 1e-9 {
			t.Fatalf("HeadingOf(Forward(%v)) = %v", h, got)
		}
	}
	if f := Forward(0); math.Abs(f.X) > 1e-12 || math.Abs(f.Y-1) > 1e-12 {
		t.Fatalf("heading 0 should face +Y, got %v", f)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.05); math.Abs(got-10.5) > 1e-12 {
		t.Fatalf("Lerp = %v", got)
	}
}
