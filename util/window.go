// Package util holds small helpers shared by the display layers.
package util

import "math"

// MovingWindow tracks the mean and standard deviation of the most
// recent values pushed into it. The graphic layer uses it to autoscale
// peaks without reacting to every transient.
type MovingWindow struct {
	values []float64
	head   int
	length int

	sum   float64
	sumSq float64
}

// NewMovingWindow returns a window holding up to size values.
func NewMovingWindow(size int) *MovingWindow {
	if size < 1 {
		size = 1
	}
	return &MovingWindow{values: make([]float64, size)}
}

// Update pushes a value, evicting the oldest when full, and returns
// the new stats.
func (mw *MovingWindow) Update(value float64) (mean, stddev float64) {
	if mw.length == len(mw.values) {
		old := mw.values[mw.head]
		mw.sum -= old
		mw.sumSq -= old * old
	} else {
		mw.length++
	}

	mw.values[mw.head] = value
	mw.head = (mw.head + 1) % len(mw.values)

	mw.sum += value
	mw.sumSq += value * value

	return mw.Stats()
}

// Recalculate rebuilds the running sums from the stored values,
// clearing accumulated float drift.
func (mw *MovingWindow) Recalculate() (mean, stddev float64) {
	mw.sum = 0
	mw.sumSq = 0

	for i := 0; i < mw.length; i++ {
		idx := (mw.head - mw.length + i + len(mw.values)) % len(mw.values)
		v := mw.values[idx]
		mw.sum += v
		mw.sumSq += v * v
	}

	return mw.Stats()
}

// Stats returns the current mean and standard deviation.
func (mw *MovingWindow) Stats() (mean, stddev float64) {
	if mw.length == 0 {
		return 0, 0
	}

	mean = mw.sum / float64(mw.length)

	if mw.length > 1 {
		variance := (mw.sumSq / float64(mw.length)) - mean*mean
		stddev = math.Sqrt(math.Abs(variance))
	}

	return mean, stddev
}

// Len returns how many values the window currently holds.
func (mw *MovingWindow) Len() int {
	return mw.length
}

// Cap returns the window capacity.
func (mw *MovingWindow) Cap() int {
	return len(mw.values)
}

// Mean returns the current mean.
func (mw *MovingWindow) Mean() float64 {
	mean, _ := mw.Stats()
	return mean
}
