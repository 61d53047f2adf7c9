package analyzer

import "math"

// applyHann shapes a buffer with a Hann window before the transform.
//
// See https://wikipedia.org/wiki/Window_function
func applyHann(buf []float64) {
	size := len(buf)
	if size < 2 {
		return
	}

	coef := 2 * math.Pi / float64(size)
	for n := range buf {
		buf[n] *= 0.5 - 0.5*math.Cos(coef*float64(n))
	}
}
