package mvmnt

import (
	"errors"
	"fmt"
)

// Display modes.
const (
	ModeWave    = "wave"
	ModeRMS     = "rms"
	ModeSpectro = "spectro"
)

// Config drives a full decode → analyze → sample → draw run.
type Config struct {
	// File is the audio file to visualize.
	File string

	// TrackID names the analyzed track in the feature cache.
	TrackID string

	// Mode is one of wave, rms or spectro.
	Mode string

	// Channel is a loose channel selector: an index, a numeric string,
	// or left/right/mid/side.
	Channel string

	// Stereo renders a second channel mirrored below the first.
	Stereo bool

	// Width is the fallback series width when the output has no
	// natural width.
	Width int

	// Bins is the spectrogram display bin count; zero follows Width.
	Bins int

	// WindowSeconds is the waveform window trailing the playhead.
	WindowSeconds float64

	// FrameRate is the number of samples drawn per second.
	FrameRate int

	Gain       float64
	Density    float64
	DampRadius float64

	// Scale is the spectrogram frequency scale: linear, log or mel.
	Scale string

	MinFrequency float64
	MaxFrequency float64

	MinDb float64
	MaxDb float64

	// WindowSize and HopSize drive the analysis pass.
	WindowSize int
	HopSize    int

	// TicksPerSecond converts playback seconds to timeline ticks.
	TicksPerSecond float64

	// Output receives one series per frame.
	Output Output
}

// NewZeroConfig returns the default run setup.
func NewZeroConfig() Config {
	return Config{
		TrackID:        "track",
		Mode:           ModeWave,
		Width:          120,
		WindowSeconds:  2,
		FrameRate:      30,
		Gain:           1,
		Density:        1,
		Scale:          "mel",
		MinFrequency:   20,
		MaxFrequency:   0,
		MinDb:          -80,
		MaxDb:          0,
		WindowSize:     1024,
		HopSize:        512,
		TicksPerSecond: 960,
	}
}

// Validate cleans the config up.
func (cfg *Config) Validate() error {
	if cfg.File == "" {
		return errors.New("no input file given")
	}

	switch cfg.Mode {
	case ModeWave, ModeRMS, ModeSpectro:
	default:
		return fmt.Errorf("unknown mode %q", cfg.Mode)
	}

	if cfg.TrackID == "" {
		cfg.TrackID = "track"
	}

	if cfg.FrameRate < 1 {
		cfg.FrameRate = 1
	}

	if cfg.WindowSeconds <= 0 {
		cfg.WindowSeconds = 2
	}

	if cfg.Width < 2 {
		cfg.Width = 2
	}

	if cfg.Density <= 0 || cfg.Density > 1 {
		cfg.Density = 1
	}

	if cfg.WindowSize < 16 {
		return errors.New("analysis window too small (16+ required)")
	}

	if cfg.MaxDb <= cfg.MinDb {
		return errors.New("dB range is empty")
	}

	return nil
}
