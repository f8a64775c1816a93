package track

import "math"

// EaseIn interpolates a..b with a quadratic ease-in.
func EaseIn(a, b, t float64) float64 {
	return a + (b-a)*t*t
}

// EaseInOut interpolates a..b with a cosine ease; EaseInOut(a, b, 0.5)
// lands exactly on the midpoint.
func EaseInOut(a, b, t float64) float64 {
	return a + (b-a)*((1-math.Cos(t*math.Pi))/2)
}
