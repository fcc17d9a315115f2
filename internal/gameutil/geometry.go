package gameutil

import "math"

// Distance is the Euclidean distance between (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// CirclesCollide reports whether two circles overlap. Touching circles do not
// collide.
func CirclesCollide(x1, y1, r1, x2, y2, r2 float64) bool {
	return Distance(x1, y1, x2, y2) < r1+r2
}

// Clamp limits value to [min, max].
func Clamp(value, min, max float64) float64 {
	return math.Min(math.Max(value, min), max)
}

// Lerp interpolates from start to end. amount is not clamped, so values
// outside [0, 1] extrapolate.
func Lerp(start, end, amount float64) float64 {
	return start + (end-start)*amount
}
