package dsp

import "math"

// Resample maps a series onto exactly targetCount samples. Upsampling
// interpolates linearly between neighbors; downsampling averages each
// bucket of source samples. The result never aliases the input.
func Resample(values []float64, targetCount int) []float64 {
	if targetCount <= 0 {
		return []float64{}
	}

	out := make([]float64, targetCount)

	switch {
	case len(values) == 0:
		// leave zeros

	case len(values) == 1:
		for i := range out {
			out[i] = values[0]
		}

	case targetCount == len(values):
		copy(out, values)

	case targetCount > len(values):
		upsample(values, out)

	default:
		downsample(values, out)
	}

	return out
}

func upsample(values, out []float64) {
	last := len(values) - 1
	step := float64(last) / float64(len(out)-1)

	for i := range out {
		pos := float64(i) * step

		lo := int(math.Floor(pos))
		frac := pos - float64(lo)

		hi := lo + 1
		if hi > last {
			hi = last
		}

		out[i] = values[lo] + (values[hi]-values[lo])*frac
	}
}

func downsample(values, out []float64) {
	width := float64(len(values)) / float64(len(out))

	for b := range out {
		lo := int(math.Floor(float64(b) * width))
		hi := int(math.Floor(float64(b+1) * width))

		if hi > len(values) {
			hi = len(values)
		}

		if hi <= lo {
			// degenerate bucket, take the nearest sample
			idx := int(math.Round(float64(b) * width))
			if idx > len(values)-1 {
				idx = len(values) - 1
			}
			out[b] = values[idx]
			continue
		}

		sum := 0.0
		for _, v := range values[lo:hi] {
			sum += v
		}
		out[b] = sum / float64(hi-lo)
	}
}
