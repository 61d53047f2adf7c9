package dsp

import "math"

// RemapFrequencies re-bins a linear-frequency magnitude series into
// targetBinCount perceptually scaled display bins. Each display bin
// center maps back through the inverse scale to a source position and
// interpolates linearly between the two straddling source bins. An
// invalid frequency range is corrected, never rejected.
func RemapFrequencies(values []float64, sampleRate, minFreq, maxFreq float64, targetBinCount int, scale FreqScale) []float64 {
	if targetBinCount <= 0 {
		return []float64{}
	}

	out := make([]float64, targetBinCount)
	if len(values) == 0 {
		return out
	}

	nyquist := sampleRate / 2
	if nyquist < 0 {
		nyquist = 0
	}

	minFreq = clampRange(minFreq, 0, nyquist)
	maxFreq = clampRange(maxFreq, 0, nyquist)

	if maxFreq <= minFreq {
		// auto-expand rather than erroring out
		pad := math.Max(1, nyquist*0.01)
		maxFreq = math.Min(nyquist, minFreq+pad)
		if maxFreq <= minFreq {
			minFreq = math.Max(0, maxFreq-pad)
		}
	}

	scaleMinInput := minFreq
	if scale != ScaleLinear {
		scaleMinInput = math.Max(1e-3, minFreq)
	}

	scaleMin := scale.Forward(scaleMinInput)
	scaleMax := scale.Forward(math.Max(minFreq, maxFreq))
	scaleRange := math.Max(1e-9, scaleMax-scaleMin)

	sourceBins := len(values)
	freqStep := nyquist
	if sourceBins > 1 {
		freqStep = nyquist / float64(sourceBins-1)
	}

	for i := 0; i < targetBinCount; i++ {
		t := (float64(i) + 0.5) / float64(targetBinCount)

		freq := scale.Inverse(scaleMin + scaleRange*t)
		freq = clampRange(freq, minFreq, maxFreq)

		raw := 0.0
		if freqStep > 0 {
			raw = freq / freqStep
		}
		raw = clampRange(raw, 0, float64(sourceBins-1))

		lo := int(math.Floor(raw))
		hi := int(math.Ceil(raw))
		if hi > sourceBins-1 {
			hi = sourceBins - 1
		}
		frac := raw - float64(lo)

		a := sanitize(values[lo])
		b := sanitize(values[hi])

		out[i] = a + (b-a)*frac
	}

	return out
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
