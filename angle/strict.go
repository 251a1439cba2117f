// SPDX-License-Identifier: GPL-2.0-or-later

package angle

import (
	"math"

	"github.com/pkg/errors"
)

func checkFinite(a float64) error {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return errors.Errorf("angle: non-finite input %v", a)
	}
	return nil
}

// ModStrict is Mod for untrusted input. NaN and infinities are rejected
// instead of propagated.
func ModStrict(a float64) (float64, error) {
	if err := checkFinite(a); err != nil {
		return 0, err
	}
	return Mod(a), nil
}

// DistanceStrict is Distance for untrusted input. NaN and infinities
// are rejected instead of propagated.
func DistanceStrict(a, b float64) (float64, error) {
	if err := checkFinite(a); err != nil {
		return 0, err
	}
	if err := checkFinite(b); err != nil {
		return 0, err
	}
	return Distance(a, b), nil
}
