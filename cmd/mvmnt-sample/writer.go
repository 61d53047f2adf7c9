package main

import (
	"fmt"

	"github.com/Maokus/MVMNT-sub002/pipeline"
)

// Writer prints each sampled series as one line of numbers, for piping
// into other tools.
type Writer struct {
	width int
}

func NewWriter(width int) *Writer {
	return &Writer{width: width}
}

// Width reports the fixed series width.
func (w *Writer) Width(fallback int) int {
	if w.width > 0 {
		return w.width
	}
	return fallback
}

// Write prints one frame.
func (w *Writer) Write(series []float64, outcome pipeline.Outcome) error {
	switch outcome {
	case pipeline.OutcomeNoData:
		fmt.Println("# no data")
		return nil
	case pipeline.OutcomeTooShort:
		fmt.Println("# not enough samples")
		return nil
	}

	for _, v := range series {
		fmt.Printf("%6.3f ", v)
	}
	fmt.Println()

	return nil
}
