package analyzer

import (
	"math"
	"testing"

	"github.com/Maokus/MVMNT-sub002/feature"
)

func sineChannel(rate float64, freq float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / rate)
	}
	return out
}

func TestAnalyzeBuildsAllFeatures(t *testing.T) {
	t.Parallel()

	a := New(NewZeroConfig())

	if err := a.Analyze("t1", [][]float64{sineChannel(44100, 440, 44100)}); err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	for _, key := range []string{KeyWaveform, KeyRMS, KeySpectrogram} {
		track, ok := a.SampleRange("t1", key, 0, math.MaxFloat64/2, feature.RangeOptions{})
		if !ok {
			t.Errorf("feature %q missing", key)
			continue
		}
		if track.FrameCount == 0 {
			t.Errorf("feature %q has no frames", key)
		}
	}
}

func TestAnalyzeRejectsEmptyInput(t *testing.T) {
	t.Parallel()

	a := New(NewZeroConfig())

	if err := a.Analyze("t1", nil); err == nil {
		t.Error("Analyze(nil) should fail")
	}
}

func TestWaveformMinMaxLayout(t *testing.T) {
	t.Parallel()

	cfg := NewZeroConfig()
	cfg.HopSize = 4
	cfg.WindowSize = 16

	a := New(cfg)

	// one stereo hop: left spans [-1, 1], right stays at 0.25
	left := []float64{-1, 1, 0, 0}
	right := []float64{0.25, 0.25, 0.25, 0.25}

	if err := a.Analyze("t1", [][]float64{left, right}); err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	track, ok := a.SampleRange("t1", KeyWaveform, 0, 1e9, feature.RangeOptions{})
	if !ok {
		t.Fatal("waveform track missing")
	}

	if track.Format != feature.FormatWaveformMinMax {
		t.Errorf("format = %q, want minmax", track.Format)
	}
	if track.Channels != 4 {
		t.Errorf("stride = %d, want 4", track.Channels)
	}

	want := []float64{-1, 1, 0.25, 0.25}
	for i, w := range want {
		if track.Data[i] != w {
			t.Errorf("data[%d] = %v, want %v", i, track.Data[i], w)
		}
	}
}

func TestRMSOfConstantSignal(t *testing.T) {
	t.Parallel()

	cfg := NewZeroConfig()
	cfg.HopSize = 8
	cfg.WindowSize = 16

	a := New(cfg)

	samples := make([]float64, 32)
	for i := range samples {
		samples[i] = 0.5
	}

	if err := a.Analyze("t1", [][]float64{samples}); err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	track, _ := a.SampleRange("t1", KeyRMS, 0, 1e9, feature.RangeOptions{})
	for f := 0; f < track.FrameCount; f++ {
		if math.Abs(track.Data[f]-0.5) > 1e-12 {
			t.Errorf("frame %d rms = %v, want 0.5", f, track.Data[f])
		}
	}
}

func TestSpectrogramPeakBin(t *testing.T) {
	t.Parallel()

	cfg := NewZeroConfig()
	cfg.SampleRate = 44100
	cfg.WindowSize = 1024
	cfg.HopSize = 1024

	a := New(cfg)

	// bin spacing is rate/window ≈ 43 Hz; aim the tone at bin 64
	freq := 64 * cfg.SampleRate / float64(cfg.WindowSize)

	if err := a.Analyze("t1", [][]float64{sineChannel(cfg.SampleRate, freq, 4096)}); err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	frame, ok := a.SampleFrame("t1", feature.Descriptor{FeatureKey: KeySpectrogram, BandIndex: -1}, 0)
	if !ok {
		t.Fatal("SampleFrame failed")
	}

	peak := 0
	for i, v := range frame.Values {
		if v > frame.Values[peak] {
			peak = i
		}
	}

	if peak != 64 {
		t.Errorf("peak bin = %d, want 64", peak)
	}
}

func TestSampleRangeSlicesWindow(t *testing.T) {
	t.Parallel()

	cfg := NewZeroConfig()
	cfg.SampleRate = 1000
	cfg.HopSize = 100
	cfg.WindowSize = 256
	cfg.TicksPerSecond = 1000

	a := New(cfg)

	// 1000 samples = 10 hops, hopTicks = 100
	if err := a.Analyze("t1", [][]float64{make([]float64, 1000)}); err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	track, ok := a.SampleRange("t1", KeyRMS, 250, 450, feature.RangeOptions{})
	if !ok {
		t.Fatal("SampleRange failed")
	}

	// frames 2..4 cover ticks [200, 500)
	if track.FrameCount != 3 {
		t.Errorf("FrameCount = %d, want 3", track.FrameCount)
	}
	if track.TrackStartTick != 200 {
		t.Errorf("TrackStartTick = %v, want 200", track.TrackStartTick)
	}
	if track.TrackEndTick != 500 {
		t.Errorf("TrackEndTick = %v, want 500", track.TrackEndTick)
	}
}

func TestSampleRangeUnknownTrack(t *testing.T) {
	t.Parallel()

	a := New(NewZeroConfig())

	if _, ok := a.SampleRange("nope", KeyWaveform, 0, 100, feature.RangeOptions{}); ok {
		t.Error("unknown track should not resolve")
	}
}

func TestSampleFrameBandIndex(t *testing.T) {
	t.Parallel()

	cfg := NewZeroConfig()
	cfg.WindowSize = 64
	cfg.HopSize = 64

	a := New(cfg)

	if err := a.Analyze("t1", [][]float64{make([]float64, 256)}); err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	desc := feature.Descriptor{FeatureKey: KeySpectrogram, BandIndex: 5}

	frame, ok := a.SampleFrame("t1", desc, 0)
	if !ok {
		t.Fatal("SampleFrame failed")
	}
	if len(frame.Values) != 1 {
		t.Errorf("band-indexed frame has %d values, want 1", len(frame.Values))
	}
}
