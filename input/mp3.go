package input

import (
	"io"
	"os"

	mp3 "github.com/hajimehoshi/go-mp3"
	"github.com/pkg/errors"
)

func decodeMp3(f *os.File) (*Buffer, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode mp3")
	}

	// go-mp3 emits 16-bit little-endian stereo PCM
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read mp3 stream")
	}

	samples := make([]float64, len(raw)/2)
	for i := range samples {
		v := int16(uint16(raw[2*i]) | uint16(raw[2*i+1])<<8)
		samples[i] = float64(v) / 32768
	}

	return &Buffer{
		SampleRate: float64(dec.SampleRate()),
		Channels:   deinterleave(samples, 2),
	}, nil
}
