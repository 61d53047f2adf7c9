package util

import (
	"math"
	"testing"
)

func TestMovingWindowMean(t *testing.T) {
	t.Parallel()

	mw := NewMovingWindow(4)

	mw.Update(1)
	mw.Update(2)
	mean, _ := mw.Update(3)

	if math.Abs(mean-2) > 1e-12 {
		t.Errorf("mean = %v, want 2", mean)
	}
	if mw.Len() != 3 {
		t.Errorf("Len = %d, want 3", mw.Len())
	}
}

func TestMovingWindowEvictsOldest(t *testing.T) {
	t.Parallel()

	mw := NewMovingWindow(2)

	mw.Update(10)
	mw.Update(2)
	mean, _ := mw.Update(4)

	// the 10 fell out of the window
	if math.Abs(mean-3) > 1e-12 {
		t.Errorf("mean = %v, want 3", mean)
	}
	if mw.Len() != 2 || mw.Cap() != 2 {
		t.Errorf("Len/Cap = %d/%d, want 2/2", mw.Len(), mw.Cap())
	}
}

func TestMovingWindowStdDev(t *testing.T) {
	t.Parallel()

	mw := NewMovingWindow(8)
	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		mw.Update(v)
	}

	_, stddev := mw.Stats()
	if math.Abs(stddev-2) > 1e-9 {
		t.Errorf("stddev = %v, want 2", stddev)
	}
}

func TestMovingWindowRecalculateMatchesStats(t *testing.T) {
	t.Parallel()

	mw := NewMovingWindow(5)
	for i := 0; i < 20; i++ {
		mw.Update(float64(i) * 0.37)
	}

	m1, s1 := mw.Stats()
	m2, s2 := mw.Recalculate()

	if math.Abs(m1-m2) > 1e-9 || math.Abs(s1-s2) > 1e-9 {
		t.Errorf("Recalculate drifted: (%v, %v) vs (%v, %v)", m1, s1, m2, s2)
	}
}

func TestMovingWindowEmpty(t *testing.T) {
	t.Parallel()

	mw := NewMovingWindow(3)

	mean, stddev := mw.Stats()
	if mean != 0 || stddev != 0 {
		t.Errorf("empty window stats = (%v, %v), want zeros", mean, stddev)
	}
}
