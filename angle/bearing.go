// SPDX-License-Identifier: GPL-2.0-or-later

package angle

import "math"

// Bearing returns the canonical heading in degrees of the vector
// (dx, dy), measured counterclockwise from the positive x axis.
func Bearing(dx, dy float64) float64 {
	return Mod(Degrees(math.Atan2(dy, dx)))
}
