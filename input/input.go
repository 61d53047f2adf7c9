// Package input decodes audio files into per-channel float64 samples
// for analysis.
package input

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Buffer is a decoded track: one normalized [-1, 1] sample slice per
// channel.
type Buffer struct {
	SampleRate float64
	Channels   [][]float64
}

// FrameCount returns the number of frames per channel.
func (b *Buffer) FrameCount() int {
	if len(b.Channels) == 0 {
		return 0
	}
	return len(b.Channels[0])
}

// DecodeFile reads a whole audio file, picking the decoder by file
// extension. Supported: .wav, .mp3, .ogg.
func DecodeFile(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open audio file")
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return decodeWav(f)
	case ".mp3":
		return decodeMp3(f)
	case ".ogg":
		return decodeOgg(f)
	}

	return nil, errors.Errorf("unsupported audio format %q", filepath.Ext(path))
}

// deinterleave splits interleaved samples into per-channel slices.
func deinterleave(samples []float64, channels int) [][]float64 {
	if channels < 1 {
		channels = 1
	}

	frames := len(samples) / channels
	out := make([][]float64, channels)

	for ch := range out {
		series := make([]float64, frames)
		for f := 0; f < frames; f++ {
			series[f] = samples[f*channels+ch]
		}
		out[ch] = series
	}

	return out
}
