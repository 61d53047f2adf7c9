package input

import (
	"os"

	"github.com/jfreymuth/oggvorbis"
	"github.com/pkg/errors"
)

func decodeOgg(f *os.File) (*Buffer, error) {
	data, format, err := oggvorbis.ReadAll(f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode ogg vorbis")
	}

	samples := make([]float64, len(data))
	for i, v := range data {
		samples[i] = float64(v)
	}

	return &Buffer{
		SampleRate: float64(format.SampleRate),
		Channels:   deinterleave(samples, format.Channels),
	}, nil
}
