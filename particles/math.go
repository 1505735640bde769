package particles

import "math"

// wrapHue normalizes a hue into [0, 360).
func wrapHue(h float32) float32 {
	h = float32(math.Mod(float64(h), 360))
	if h < 0 {
		h += 360
	}
	return h
}

// hypot32 returns sqrt(x*x + y*y).
func hypot32(x, y float32) float32 {
	return float32(math.Sqrt(float64(x*x + y*y)))
}

// abs32 returns the absolute value of x.
func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp32 limits x to [lo, hi].
func clamp32(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
