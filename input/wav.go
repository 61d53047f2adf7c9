package input

import (
	"os"

	"github.com/go-audio/wav"
	"github.com/pkg/errors"
)

func decodeWav(f *os.File) (*Buffer, error) {
	dec := wav.NewDecoder(f)

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode wav")
	}
	if buf == nil || buf.Format == nil || len(buf.Data) == 0 {
		return nil, errors.New("wav file holds no samples")
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth <= 0 {
		bitDepth = 16
	}
	scale := float64(int64(1) << (bitDepth - 1))

	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float64(v) / scale
	}

	return &Buffer{
		SampleRate: float64(buf.Format.SampleRate),
		Channels:   deinterleave(samples, buf.Format.NumChannels),
	}, nil
}
