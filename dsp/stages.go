package dsp

// Side selects which mirrored half of the display a series occupies.
// Two channels stacked above and below a shared baseline each rectify
// into one half.
type Side int

const (
	// SideBoth leaves the series untouched.
	SideBoth Side = iota

	// SideA forces every sample non-negative.
	SideA

	// SideB forces every sample non-positive.
	SideB
)

// ParseSide maps a config string onto a Side. Unrecognized values mean
// both halves.
func ParseSide(s string) Side {
	switch s {
	case "a", "A", "up", "top":
		return SideA
	case "b", "B", "down", "bottom":
		return SideB
	}
	return SideBoth
}

// Gain scales a series by max(0, gain) and clamps the result to
// [-1, 1]. The output is always a fresh buffer, even at unity gain.
func Gain(values []float64, gain float64) []float64 {
	if gain < 0 {
		gain = 0
	}

	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = clampUnit(v * gain)
	}

	return out
}

// ApplySide rectifies a series into the requested half.
func ApplySide(values []float64, side Side) []float64 {
	out := make([]float64, len(values))

	switch side {
	case SideA:
		for i, v := range values {
			if v < 0 {
				v = -v
			}
			out[i] = v
		}

	case SideB:
		for i, v := range values {
			if v > 0 {
				v = -v
			}
			out[i] = v
		}

	default:
		copy(out, values)
	}

	return out
}

// NormalizeDb maps decibel values onto [0, 1] across the given range.
func NormalizeDb(values []float64, minDb, maxDb float64) []float64 {
	span := maxDb - minDb
	if span < 1e-6 {
		span = 1e-6
	}

	out := make([]float64, len(values))
	for i, v := range values {
		norm := (v - minDb) / span
		if norm < 0 {
			norm = 0
		} else if norm > 1 {
			norm = 1
		}
		out[i] = norm
	}

	return out
}
