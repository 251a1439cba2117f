// SPDX-License-Identifier: GPL-2.0-or-later

package angle

// Lerp interpolates from a toward b along the shorter arc and returns
// the canonical result. t is clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	return Mod(a + clamp(0, t, 1)*Delta(a, b))
}

func clamp(min, val, max float64) float64 {
	if min > val {
		return min
	} else if max < val {
		return max
	}
	return val
}
