package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// NormalizeAngle wraps an angle in radians into (-pi, pi].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	a -= math.Pi
	if a <= -math.Pi {
		return math.Pi
	}
	return a
}

// Forward returns the unit facing vector for a heading. Heading 0 faces +Y,
// the corridor's direction of travel.
func Forward(heading float64) cp.Vector {
	return cp.Vector{X: -math.Sin(heading), Y: math.Cos(heading)}
}

// HeadingOf is the inverse of Forward for a non-zero direction.
func HeadingOf(dir cp.Vector) float64 {
	return math.Atan2(dir.Y, dir.X) - math.Pi/2
}
