// SPDX-License-Identifier: EPL-2.0

package utils

// ClampUnit limits v to [0, 1]. NaN maps to 0.
func ClampUnit(v float32) float32 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
