package dsp

import "math"

// Damp runs a position-tapered moving average over the series for
// visual noise reduction. The window looks forward from each sample,
// never backward, and shrinks across the buffer: full size at the
// start, half size at the midpoint, a single sample at the end.
//
// The forward-only window is deliberate; see the design notes before
// changing it.
func Damp(values []float64, radius float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)

	if radius <= 0 || len(values) == 0 {
		return out
	}

	baseWindow := float64(int(math.Floor(radius)) + 1)
	if baseWindow < 1 {
		baseWindow = 1
	}

	n := len(values)

	for i := range values {
		pos := 0.0
		if n > 1 {
			pos = float64(i) / float64(n-1)
		}

		tapered := taperWindow(baseWindow, pos)

		dynRadius := int(math.Round(tapered)) - 1
		if dynRadius < 0 {
			dynRadius = 0
		}

		end := i + dynRadius
		if end > n-1 {
			end = n - 1
		}

		sum := 0.0
		for _, v := range values[i : end+1] {
			sum += v
		}
		out[i] = sum / float64(end-i+1)
	}

	return out
}

// taperWindow interpolates the window size across two linear segments:
// base at pos 0, base/2 at pos 0.5, exactly 1 at pos 1.
func taperWindow(base, pos float64) float64 {
	half := base / 2

	if pos <= 0.5 {
		return base + (half-base)*(pos*2)
	}
	return half + (1-half)*((pos-0.5)*2)
}
