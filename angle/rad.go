// SPDX-License-Identifier: GPL-2.0-or-later

package angle

import (
	"math"

	"gonum.org/v1/gonum/unit"
)

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Separation returns the minimum separation between two typed angles,
// within [0, Pi] radians.
func Separation(a, b unit.Angle) unit.Angle {
	return unit.Angle(Radians(Distance(Degrees(float64(a)), Degrees(float64(b)))))
}
