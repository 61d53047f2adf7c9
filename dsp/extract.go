package dsp

import (
	"math"

	"github.com/Maokus/MVMNT-sub002/feature"
)

// ChannelSeries holds the per-channel series extracted from one track.
// Raw channels keep their extraction order; left, right and the derived
// mid/side pair are also reachable by name.
type ChannelSeries struct {
	raw   [][]float64
	named map[feature.ChannelName][]float64
}

// Channel returns the raw channel at idx, or nil.
func (cs *ChannelSeries) Channel(idx int) []float64 {
	if idx < 0 || idx >= len(cs.raw) {
		return nil
	}
	return cs.raw[idx]
}

// Named returns the series for a channel alias, or nil.
func (cs *ChannelSeries) Named(name feature.ChannelName) []float64 {
	return cs.named[name]
}

// ChannelCount returns the number of raw channels extracted.
func (cs *ChannelSeries) ChannelCount() int {
	return len(cs.raw)
}

// ExtractChannels unpacks a track's flat sample buffer into per-channel
// series. Waveform-minmax frames collapse to the midpoint of their
// (min, max) pair. Non-finite samples read as zero and every value is
// clamped to [-1, 1]. When an equal-length left/right pair exists, mid
// and side are derived from it.
func ExtractChannels(track *feature.Track) *ChannelSeries {
	cs := &ChannelSeries{named: make(map[feature.ChannelName][]float64, 4)}

	if track == nil || len(track.Data) == 0 {
		return cs
	}

	switch track.Format {
	case feature.FormatWaveformMinMax:
		extractMinMax(track, cs)
	default:
		extractInterleaved(track, cs)
	}

	if len(cs.raw) > 0 {
		cs.named[feature.ChannelLeft] = cs.raw[0]
	}
	if len(cs.raw) > 1 {
		cs.named[feature.ChannelRight] = cs.raw[1]
	}

	deriveMidSide(cs)

	return cs
}

func extractMinMax(track *feature.Track, cs *ChannelSeries) {
	stride := track.Channels
	if stride < 1 {
		stride = 1
	}

	usable := stride / 2
	if usable < 1 {
		usable = 1
	}

	frames := frameCount(track, stride)
	cs.raw = make([][]float64, usable)

	for ch := 0; ch < usable; ch++ {
		series := make([]float64, frames)

		for f := 0; f < frames; f++ {
			base := f*stride + ch*2

			lo := sanitize(track.Data[base])
			hi := lo
			if base+1 < len(track.Data) {
				hi = sanitize(track.Data[base+1])
			}

			series[f] = clampUnit((lo + hi) / 2)
		}

		cs.raw[ch] = series
	}
}

func extractInterleaved(track *feature.Track, cs *ChannelSeries) {
	stride := track.Channels
	if stride < 1 {
		stride = 1
	}

	frames := frameCount(track, stride)
	cs.raw = make([][]float64, stride)

	for ch := 0; ch < stride; ch++ {
		series := make([]float64, frames)

		for f := 0; f < frames; f++ {
			series[f] = clampUnit(sanitize(track.Data[f*stride+ch]))
		}

		cs.raw[ch] = series
	}
}

func deriveMidSide(cs *ChannelSeries) {
	left := cs.named[feature.ChannelLeft]
	right := cs.named[feature.ChannelRight]

	if len(left) == 0 || len(left) != len(right) {
		return
	}

	mid := make([]float64, len(left))
	side := make([]float64, len(left))

	for i := range left {
		mid[i] = clampUnit((left[i] + right[i]) / 2)
		side[i] = clampUnit((left[i] - right[i]) / 2)
	}

	cs.named[feature.ChannelMid] = mid
	cs.named[feature.ChannelSide] = side
}

func frameCount(track *feature.Track, stride int) int {
	frames := len(track.Data) / stride
	if track.FrameCount > 0 && track.FrameCount < frames {
		frames = track.FrameCount
	}
	return frames
}

// Resolve picks the series for a selector. An exact alias or index
// match wins; otherwise the fallback order applies, skipping excluded
// names so a secondary channel never duplicates an already-chosen
// primary. Returns false when no non-empty series exists.
func (cs *ChannelSeries) Resolve(sel feature.Selector, exclude map[feature.ChannelName]bool) ([]float64, feature.ChannelName, bool) {
	switch sel.Kind {
	case feature.SelectorIndex:
		if series := cs.Channel(sel.Index); len(series) > 0 {
			return series, cs.nameOf(sel.Index), true
		}

	case feature.SelectorAlias:
		if series := cs.named[sel.Alias]; len(series) > 0 {
			return series, sel.Alias, true
		}
	}

	for _, name := range feature.FallbackOrder {
		if exclude[name] {
			continue
		}
		if series := cs.named[name]; len(series) > 0 {
			return series, name, true
		}
	}

	return nil, "", false
}

func (cs *ChannelSeries) nameOf(idx int) feature.ChannelName {
	switch idx {
	case 0:
		return feature.ChannelLeft
	case 1:
		return feature.ChannelRight
	}
	return ""
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
