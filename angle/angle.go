package angle

import (
	"math"

	"github.com/chewxy/math32"
)

// Mod changes an angle to be within 0-360 degrees
func Mod(a float64) float64 {
	return a - math.Floor(a/360)*360
}

// Mod32 changes an angle to be within 0-360 degrees
func Mod32(a float32) float32 {
	return a - math32.Floor(a/360)*360
}

// Distance returns the minimum separation between two angles in
// degrees, always within 0-180. Inputs need not be canonical; negative
// angles and angles beyond a full turn are reduced first.
func Distance(a, b float64) float64 {
	d := math.Abs(Mod(a) - Mod(b))
	return math.Min(d, 360-d)
}

// Distance32 returns the minimum separation between two angles in
// degrees, always within 0-180.
func Distance32(a, b float32) float32 {
	d := math32.Abs(Mod32(a) - Mod32(b))
	return math32.Min(d, 360-d)
}

// Signed changes an angle to be within (-180, 180] degrees.
func Signed(a float64) float64 {
	d := Mod(a)
	if d > 180 {
		d -= 360
	}
	return d
}

// Delta returns the signed shortest rotation taking the angle from to
// the angle to, within (-180, 180]. Antipodal pairs resolve to +180.
func Delta(from, to float64) float64 {
	return Signed(to - from)
}
