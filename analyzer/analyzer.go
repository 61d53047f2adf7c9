// Package analyzer computes per-track feature caches (waveform
// extrema, RMS, spectrogram magnitudes) from decoded PCM and serves
// them through the feature.Provider interface.
package analyzer

import (
	"math"
	"sync"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/Maokus/MVMNT-sub002/feature"
)

// Feature keys served by this analyzer.
const (
	KeyWaveform    = "waveform"
	KeyRMS         = "rms"
	KeySpectrogram = "spectrogram"
)

// Config is the analysis setup.
type Config struct {
	SampleRate float64

	// WindowSize is the FFT window in samples.
	WindowSize int

	// HopSize is the spacing between frames in samples.
	HopSize int

	// TicksPerSecond converts between seconds and timeline ticks. The
	// surrounding system derives this from its tempo map.
	TicksPerSecond float64

	// DbFloor clamps spectrogram magnitudes from below.
	DbFloor float64
}

// NewZeroConfig returns the default analysis setup.
func NewZeroConfig() Config {
	return Config{
		SampleRate:     44100,
		WindowSize:     1024,
		HopSize:        512,
		TicksPerSecond: 960,
		DbFloor:        -120,
	}
}

// Validate cleans the config up.
func (cfg *Config) Validate() error {
	if cfg.SampleRate <= 0 {
		return errors.New("sample rate must be positive")
	}

	if cfg.WindowSize < 16 {
		return errors.New("window size too small (16+ required)")
	}

	if cfg.HopSize <= 0 {
		cfg.HopSize = cfg.WindowSize / 2
	}

	if cfg.TicksPerSecond <= 0 {
		cfg.TicksPerSecond = 960
	}

	if cfg.DbFloor >= 0 {
		cfg.DbFloor = -120
	}

	return nil
}

// Analyzer holds analyzed tracks and serves sampling requests over
// them. Analyze and the sampling methods may be called from different
// goroutines.
type Analyzer struct {
	cfg Config

	mu     sync.RWMutex
	tracks map[string]map[string]*feature.Track
}

var _ feature.Provider = (*Analyzer)(nil)

// New returns an empty analyzer.
func New(cfg Config) *Analyzer {
	return &Analyzer{
		cfg:    cfg,
		tracks: make(map[string]map[string]*feature.Track),
	}
}

// Analyze builds the waveform, rms and spectrogram caches for one
// track from its decoded channels.
func (a *Analyzer) Analyze(trackID string, channels [][]float64) error {
	if len(channels) == 0 || len(channels[0]) == 0 {
		return errors.Errorf("track %q has no samples", trackID)
	}

	if err := a.cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid analyzer config")
	}

	cache := map[string]*feature.Track{
		KeyWaveform:    a.analyzeWaveform(channels),
		KeyRMS:         a.analyzeRMS(channels),
		KeySpectrogram: a.analyzeSpectrogram(channels),
	}

	a.mu.Lock()
	a.tracks[trackID] = cache
	a.mu.Unlock()

	return nil
}

// Duration returns the analyzed length of a track in seconds.
func (a *Analyzer) Duration(trackID string) float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()

	cache := a.tracks[trackID]
	if cache == nil {
		return 0
	}

	track := cache[KeyWaveform]
	if track == nil || a.cfg.TicksPerSecond <= 0 {
		return 0
	}

	return (track.TrackEndTick - track.TrackStartTick) / a.cfg.TicksPerSecond
}

// TicksPerSecond exposes the timeline conversion rate.
func (a *Analyzer) TicksPerSecond() float64 {
	return a.cfg.TicksPerSecond
}

// SampleRange returns the frames of a feature track overlapping the
// tick window [startTick, endTick).
func (a *Analyzer) SampleRange(trackID, featureKey string, startTick, endTick float64, _ feature.RangeOptions) (*feature.Track, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	cache := a.tracks[trackID]
	if cache == nil {
		return nil, false
	}

	track := cache[featureKey]
	if track == nil || track.FrameCount == 0 {
		return nil, false
	}

	if track.HopTicks <= 0 || endTick <= startTick {
		return track, true
	}

	firstF := math.Floor((startTick - track.TrackStartTick) / track.HopTicks)
	lastF := math.Ceil((endTick - track.TrackStartTick) / track.HopTicks)

	// clamp before the int conversion, the window may be huge
	if firstF < 0 {
		firstF = 0
	}
	if lastF > float64(track.FrameCount) {
		lastF = float64(track.FrameCount)
	}

	first, last := int(firstF), int(lastF)
	if last <= first {
		return nil, false
	}

	stride := track.Channels
	if stride < 1 {
		stride = 1
	}

	sub := *track
	sub.Data = track.Data[first*stride : last*stride]
	sub.FrameCount = last - first
	sub.TrackStartTick = track.TrackStartTick + float64(first)*track.HopTicks
	sub.TrackEndTick = track.TrackStartTick + float64(last)*track.HopTicks

	return &sub, true
}

// SampleFrame returns the feature values nearest to one instant.
func (a *Analyzer) SampleFrame(trackID string, desc feature.Descriptor, timeSeconds float64) (feature.Frame, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	cache := a.tracks[trackID]
	if cache == nil {
		return feature.Frame{}, false
	}

	key := desc.FeatureKey
	if key == "" {
		key = KeySpectrogram
	}

	track := cache[key]
	if track == nil || track.FrameCount == 0 {
		return feature.Frame{}, false
	}

	tick := timeSeconds * a.cfg.TicksPerSecond

	idxF := 0.0
	if track.HopTicks > 0 {
		idxF = math.Round((tick - track.TrackStartTick) / track.HopTicks)
	}
	if idxF < 0 {
		idxF = 0
	}
	if idxF > float64(track.FrameCount-1) {
		idxF = float64(track.FrameCount - 1)
	}
	idx := int(idxF)

	stride := track.Channels
	if stride < 1 {
		stride = 1
	}

	values := make([]float64, stride)
	copy(values, track.Data[idx*stride:(idx+1)*stride])

	if desc.BandIndex >= 0 && desc.BandIndex < len(values) {
		values = values[desc.BandIndex : desc.BandIndex+1]
	}

	return feature.Frame{Values: values, SampleRate: track.SampleRate}, true
}

func (a *Analyzer) hopTicks() float64 {
	return float64(a.cfg.HopSize) / a.cfg.SampleRate * a.cfg.TicksPerSecond
}

func (a *Analyzer) frameCount(samples int) int {
	frames := (samples + a.cfg.HopSize - 1) / a.cfg.HopSize
	if frames < 1 {
		frames = 1
	}
	return frames
}

// analyzeWaveform stores a per-hop (min, max) pair per channel.
func (a *Analyzer) analyzeWaveform(channels [][]float64) *feature.Track {
	frames := a.frameCount(len(channels[0]))
	stride := len(channels) * 2

	data := make([]float64, frames*stride)

	for ch, samples := range channels {
		for f := 0; f < frames; f++ {
			lo, hi := blockExtrema(samples, f*a.cfg.HopSize, a.cfg.HopSize)

			base := f*stride + ch*2
			data[base] = lo
			data[base+1] = hi
		}
	}

	return a.newTrack(feature.FormatWaveformMinMax, stride, data, frames)
}

// analyzeRMS stores one root-mean-square value per hop per channel.
func (a *Analyzer) analyzeRMS(channels [][]float64) *feature.Track {
	frames := a.frameCount(len(channels[0]))
	stride := len(channels)

	data := make([]float64, frames*stride)

	for ch, samples := range channels {
		for f := 0; f < frames; f++ {
			data[f*stride+ch] = blockRMS(samples, f*a.cfg.HopSize, a.cfg.HopSize)
		}
	}

	return a.newTrack(feature.FormatInterleaved, stride, data, frames)
}

// analyzeSpectrogram stores Hann-windowed dB magnitude frames of the
// mono mixdown, one bin per "channel".
func (a *Analyzer) analyzeSpectrogram(channels [][]float64) *feature.Track {
	mono := mixdown(channels)

	frames := a.frameCount(len(mono))
	bins := a.cfg.WindowSize/2 + 1

	fft := fourier.NewFFT(a.cfg.WindowSize)

	window := make([]float64, a.cfg.WindowSize)
	coeffs := make([]complex128, bins)
	data := make([]float64, frames*bins)

	for f := 0; f < frames; f++ {
		start := f * a.cfg.HopSize

		for i := range window {
			if start+i < len(mono) {
				window[i] = mono[start+i]
			} else {
				window[i] = 0
			}
		}
		applyHann(window)

		fft.Coefficients(coeffs, window)

		scale := 2 / float64(a.cfg.WindowSize)
		for b, c := range coeffs {
			mag := math.Hypot(real(c), imag(c)) * scale
			data[f*bins+b] = magnitudeDb(mag, a.cfg.DbFloor)
		}
	}

	return a.newTrack(feature.FormatInterleaved, bins, data, frames)
}

func (a *Analyzer) newTrack(format feature.Format, stride int, data []float64, frames int) *feature.Track {
	hop := a.hopTicks()

	return &feature.Track{
		Channels:       stride,
		SampleRate:     a.cfg.SampleRate,
		Format:         format,
		Data:           data,
		FrameCount:     frames,
		HopTicks:       hop,
		TrackStartTick: 0,
		TrackEndTick:   float64(frames) * hop,
	}
}

func blockExtrema(samples []float64, start, size int) (lo, hi float64) {
	end := start + size
	if end > len(samples) {
		end = len(samples)
	}
	if start >= end {
		return 0, 0
	}

	lo, hi = samples[start], samples[start]
	for _, v := range samples[start+1 : end] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}

func blockRMS(samples []float64, start, size int) float64 {
	end := start + size
	if end > len(samples) {
		end = len(samples)
	}
	if start >= end {
		return 0
	}

	sum := 0.0
	for _, v := range samples[start:end] {
		sum += v * v
	}

	return math.Sqrt(sum / float64(end-start))
}

func mixdown(channels [][]float64) []float64 {
	if len(channels) == 1 {
		return channels[0]
	}

	mono := make([]float64, len(channels[0]))
	for _, samples := range channels {
		for i, v := range samples {
			if i < len(mono) {
				mono[i] += v
			}
		}
	}

	for i := range mono {
		mono[i] /= float64(len(channels))
	}

	return mono
}

func magnitudeDb(mag, floor float64) float64 {
	db := 20 * math.Log10(math.Max(1e-12, mag))
	if db < floor {
		db = floor
	}
	return db
}
