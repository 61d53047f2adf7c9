// Package feature defines the data model shared between the sampling
// pipeline and the analysis cache that feeds it.
package feature

// Format describes how a track packs its per-frame samples.
type Format string

const (
	// FormatInterleaved stores one sample per channel per frame.
	FormatInterleaved Format = "interleaved"

	// FormatWaveformMinMax stores a (min, max) amplitude pair per
	// waveform channel per frame, so the stride is twice the number of
	// usable channels.
	FormatWaveformMinMax Format = "waveform-minmax"
)

// Descriptor identifies a previously computed analysis result. The
// pipeline treats it as an opaque lookup key for the Provider.
type Descriptor struct {
	FeatureKey   string
	CalculatorID string

	// BandIndex narrows multi-band features to a single band.
	// Negative means unset.
	BandIndex int

	// ProfileOverrides are passed through to the calculator untouched.
	ProfileOverrides map[string]float64
}

// Track is a read-only slab of analyzed frames for one feature of one
// track. The pipeline only ever reads it.
type Track struct {
	Channels   int
	SampleRate float64
	Format     Format
	Data       []float64
	FrameCount int

	// HopTicks is the timeline-tick spacing between consecutive frames.
	HopTicks float64

	// TrackStartTick and TrackEndTick bound the analyzed portion of the
	// timeline.
	TrackStartTick float64
	TrackEndTick   float64
}

// Frame is a single-instant sample of a feature.
type Frame struct {
	Values     []float64
	SampleRate float64
}

// RangeOptions carry the optional identifiers of a range sample.
type RangeOptions struct {
	CalculatorID string
	ProfileID    string
}

// Provider is the external analysis cache this pipeline reads from.
// Implementations must be safe for concurrent reads.
type Provider interface {
	// SampleFrame returns the feature values at a single instant.
	SampleFrame(trackID string, desc Descriptor, timeSeconds float64) (Frame, bool)

	// SampleRange returns the analyzed frames overlapping the tick
	// window [startTick, endTick).
	SampleRange(trackID, featureKey string, startTick, endTick float64, opts RangeOptions) (*Track, bool)
}
