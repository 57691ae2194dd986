package util

func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Clamp pins v into [lo, hi]. Used for cursor and viewport arithmetic.
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
