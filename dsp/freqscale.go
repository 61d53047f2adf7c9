package dsp

import "math"

// FreqScale is a perceptual frequency scale for spectrum display.
// Forward and Inverse are defined together and must stay exact
// inverses of each other; the remapper relies on it.
type FreqScale int

const (
	ScaleLinear FreqScale = iota
	ScaleLog
	ScaleMel
)

// ParseFreqScale maps a config string onto a FreqScale. Unrecognized
// values mean linear.
func ParseFreqScale(s string) FreqScale {
	switch s {
	case "log":
		return ScaleLog
	case "mel":
		return ScaleMel
	}
	return ScaleLinear
}

func (fs FreqScale) String() string {
	switch fs {
	case ScaleLog:
		return "log"
	case ScaleMel:
		return "mel"
	}
	return "linear"
}

// Forward maps a frequency in Hz onto scale units.
func (fs FreqScale) Forward(freq float64) float64 {
	switch fs {
	case ScaleLog:
		return math.Log10(math.Max(1e-3, freq))
	case ScaleMel:
		return 2595 * math.Log10(1+freq/700)
	}
	return freq
}

// Inverse maps scale units back onto a frequency in Hz.
func (fs FreqScale) Inverse(v float64) float64 {
	switch fs {
	case ScaleLog:
		return math.Pow(10, v)
	case ScaleMel:
		return 700 * (math.Pow(10, v/2595) - 1)
	}
	return math.Max(0, v)
}
