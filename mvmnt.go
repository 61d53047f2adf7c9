// Package mvmnt wires the audio-feature sampling pipeline into a
// runnable playback loop: decode a file, analyze it, then sample and
// draw one display series per frame.
package mvmnt

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/Maokus/MVMNT-sub002/analyzer"
	"github.com/Maokus/MVMNT-sub002/dsp"
	"github.com/Maokus/MVMNT-sub002/feature"
	"github.com/Maokus/MVMNT-sub002/input"
	"github.com/Maokus/MVMNT-sub002/pipeline"
)

// Output receives one sampled series per drawn frame.
type Output interface {
	// Width reports how many samples the output wants per series.
	Width(fallback int) int

	// Write renders one frame.
	Write(series []float64, outcome pipeline.Outcome) error
}

// Run plays a file through the sampling pipeline until it ends or the
// context is canceled.
func Run(ctx context.Context, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Output == nil {
		return errors.New("no output configured")
	}

	buf, err := input.DecodeFile(cfg.File)
	if err != nil {
		return err
	}

	anlz := analyzer.New(analyzer.Config{
		SampleRate:     buf.SampleRate,
		WindowSize:     cfg.WindowSize,
		HopSize:        cfg.HopSize,
		TicksPerSecond: cfg.TicksPerSecond,
		DbFloor:        cfg.MinDb - 40,
	})

	if err := anlz.Analyze(cfg.TrackID, buf.Channels); err != nil {
		return errors.Wrap(err, "analysis failed")
	}

	sampler := &pipeline.Sampler{Provider: anlz}

	duration := anlz.Duration(cfg.TrackID)
	step := 1 / float64(cfg.FrameRate)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FrameRate))
	defer ticker.Stop()

	for playhead := 0.0; playhead <= duration; playhead += step {
		frame := sampleFrame(sampler, cfg, anlz.TicksPerSecond(), playhead)

		if err := cfg.Output.Write(frame.Series, frame.Outcome); err != nil {
			return errors.Wrap(err, "output write failed")
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}

	return nil
}

func sampleFrame(sampler *pipeline.Sampler, cfg *Config, ticksPerSecond, playhead float64) pipeline.Result {
	if cfg.Mode == ModeSpectro {
		return sampleSpectroFrame(sampler, cfg, playhead)
	}
	return sampleWaveFrame(sampler, cfg, ticksPerSecond, playhead)
}

// sampleWaveFrame samples the window trailing the playhead. In stereo
// mode the primary channel fills the top half and a non-duplicating
// secondary fills the bottom.
func sampleWaveFrame(sampler *pipeline.Sampler, cfg *Config, ticksPerSecond, playhead float64) pipeline.Result {
	req := pipeline.NewWaveformRequest(cfg.TrackID)
	if cfg.Mode == ModeRMS {
		req.FeatureKey = analyzer.KeyRMS
	}

	req.StartTick = playhead * ticksPerSecond
	req.EndTick = (playhead + cfg.WindowSeconds) * ticksPerSecond
	req.Width = cfg.Output.Width(cfg.Width)
	req.Density = cfg.Density
	req.DampRadius = cfg.DampRadius
	req.Gain = cfg.Gain
	req.Channel = feature.ParseSelectorString(cfg.Channel)

	if !cfg.Stereo {
		return sampler.Waveform(req)
	}

	req.Side = dsp.SideA
	primary := sampler.Waveform(req)
	if primary.Outcome != pipeline.OutcomeOK {
		return primary
	}

	req.Side = dsp.SideB
	req.Channel = feature.DefaultSelector()
	req.Exclude = []feature.ChannelName{primary.Channel}

	secondary := sampler.Waveform(req)
	if secondary.Outcome != pipeline.OutcomeOK {
		return primary
	}

	merged := make([]float64, len(primary.Series))
	for i := range merged {
		merged[i] = primary.Series[i]
		if i < len(secondary.Series) && -secondary.Series[i] > merged[i] {
			merged[i] = secondary.Series[i]
		}
	}

	return pipeline.Result{Series: merged, Channel: primary.Channel, Outcome: pipeline.OutcomeOK}
}

func sampleSpectroFrame(sampler *pipeline.Sampler, cfg *Config, playhead float64) pipeline.Result {
	req := pipeline.NewSpectrogramRequest(cfg.TrackID)
	req.TimeSeconds = playhead
	req.Bins = cfg.Bins
	if req.Bins <= 0 {
		req.Bins = cfg.Output.Width(cfg.Width)
	}
	req.Scale = dsp.ParseFreqScale(cfg.Scale)
	req.MinFrequency = cfg.MinFrequency
	req.MaxFrequency = cfg.MaxFrequency
	req.MinDb = cfg.MinDb
	req.MaxDb = cfg.MaxDb

	return sampler.Spectrogram(req)
}
