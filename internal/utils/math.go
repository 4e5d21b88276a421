// internal/utils/math.go
package utils

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ScaleInt maps v from a [0, from) range onto [0, to).
func ScaleInt(v, from, to int) int {
	if from <= 0 {
		return 0
	}
	return v * to / from
}
