// Package pipeline turns previously-analyzed audio feature data into
// numeric series ready to plot at an arbitrary playback time and
// display resolution. Every entry point is a pure synchronous function
// over an injected read-only Provider, so concurrent calls need no
// locking.
package pipeline

import (
	"math"

	"github.com/Maokus/MVMNT-sub002/dsp"
	"github.com/Maokus/MVMNT-sub002/feature"
)

// Outcome reports how a sampling request resolved. Nothing in the
// pipeline is an error; the caller owns messaging.
type Outcome int

const (
	// OutcomeOK means Series holds a renderable result.
	OutcomeOK Outcome = iota

	// OutcomeNoData means the descriptor resolved to nothing; the
	// caller renders a placeholder.
	OutcomeNoData

	// OutcomeTooShort means fewer than two samples survived alignment.
	OutcomeTooShort
)

// Result is the output of one sampling request.
type Result struct {
	Series  []float64
	Channel feature.ChannelName
	Outcome Outcome
}

// Sampler is the pipeline entry point. The Provider is injected rather
// than looked up in a global registry so tests and parallel callers can
// each carry their own.
type Sampler struct {
	Provider feature.Provider
}

// WaveformRequest describes one waveform window sample.
type WaveformRequest struct {
	TrackID    string
	FeatureKey string // defaults to "waveform"

	CalculatorID string
	ProfileID    string

	StartTick float64
	EndTick   float64

	// Width is the physical display width in samples. The series is
	// never resampled below its native resolution to fit it.
	Width int

	// Density in (0, 1] intentionally throws away detail for a sparser
	// visual. Values outside the range mean full density.
	Density float64

	DampRadius float64
	Gain       float64
	Side       dsp.Side

	Channel feature.Selector

	// Exclude lists channels already rendered by this element, so a
	// secondary request never silently duplicates the primary.
	Exclude []feature.ChannelName
}

// NewWaveformRequest returns a request with unity gain and density.
func NewWaveformRequest(trackID string) WaveformRequest {
	return WaveformRequest{
		TrackID:    trackID,
		FeatureKey: "waveform",
		Density:    1,
		Gain:       1,
	}
}

// Waveform samples one channel of a waveform-like feature across a
// tick window and shapes it for display.
func (s *Sampler) Waveform(req WaveformRequest) Result {
	if s.Provider == nil {
		return Result{Outcome: OutcomeNoData}
	}

	key := req.FeatureKey
	if key == "" {
		key = "waveform"
	}

	opts := feature.RangeOptions{
		CalculatorID: req.CalculatorID,
		ProfileID:    req.ProfileID,
	}

	track, ok := s.Provider.SampleRange(req.TrackID, key, req.StartTick, req.EndTick, opts)
	if !ok || track == nil {
		return Result{Outcome: OutcomeNoData}
	}

	channels := dsp.ExtractChannels(track)

	series, name, ok := channels.Resolve(req.Channel, excludeSet(req.Exclude))
	if !ok {
		return Result{Outcome: OutcomeNoData}
	}

	plan := dsp.PlanPadding(req.StartTick, req.EndTick,
		track.TrackStartTick, track.TrackEndTick, track.HopTicks, len(series))
	series = dsp.ApplyPadding(series, plan)

	if len(series) < 2 {
		return Result{Channel: name, Outcome: OutcomeTooShort}
	}

	// fit the display width without discarding native detail
	width := req.Width
	if width < len(series) {
		width = len(series)
	}
	series = dsp.Resample(series, width)

	if req.Density > 0 && req.Density < 1 {
		reduced := int(math.Round(float64(len(series)) * req.Density))
		if reduced < 2 {
			reduced = 2
		}
		series = dsp.Resample(series, reduced)
	}

	series = dsp.Damp(series, req.DampRadius)
	series = dsp.Gain(series, req.Gain)
	series = dsp.ApplySide(series, req.Side)

	return Result{Series: series, Channel: name, Outcome: OutcomeOK}
}

// SpectrogramRequest describes one single-instant spectrum sample.
type SpectrogramRequest struct {
	TrackID    string
	Descriptor feature.Descriptor

	TimeSeconds float64

	// Bins is the display bin count; zero means the source bin count.
	Bins int

	// MinFrequency and MaxFrequency bound the displayed range in Hz.
	// A non-positive max means the nyquist frequency.
	MinFrequency float64
	MaxFrequency float64

	Scale dsp.FreqScale

	MinDb float64
	MaxDb float64
}

// NewSpectrogramRequest returns a request over the default -80..0 dB
// window.
func NewSpectrogramRequest(trackID string) SpectrogramRequest {
	return SpectrogramRequest{
		TrackID:    trackID,
		Descriptor: feature.Descriptor{FeatureKey: "spectrogram", BandIndex: -1},
		MinDb:      -80,
		MaxDb:      0,
	}
}

// Spectrogram samples the magnitude spectrum at one instant, re-bins
// it onto the display scale, and normalizes the dB range onto [0, 1].
func (s *Sampler) Spectrogram(req SpectrogramRequest) Result {
	if s.Provider == nil {
		return Result{Outcome: OutcomeNoData}
	}

	frame, ok := s.Provider.SampleFrame(req.TrackID, req.Descriptor, req.TimeSeconds)
	if !ok || len(frame.Values) == 0 {
		return Result{Outcome: OutcomeNoData}
	}

	bins := req.Bins
	if bins <= 0 {
		bins = len(frame.Values)
	}

	maxFreq := req.MaxFrequency
	if maxFreq <= 0 {
		maxFreq = frame.SampleRate / 2
	}

	series := dsp.RemapFrequencies(frame.Values, frame.SampleRate,
		req.MinFrequency, maxFreq, bins, req.Scale)
	series = dsp.NormalizeDb(series, req.MinDb, req.MaxDb)

	return Result{Series: series, Outcome: OutcomeOK}
}

func excludeSet(names []feature.ChannelName) map[feature.ChannelName]bool {
	if len(names) == 0 {
		return nil
	}

	set := make(map[feature.ChannelName]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}
