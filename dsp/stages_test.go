package dsp

import (
	"math"
	"testing"
)

func TestGainUnityIsFreshCopy(t *testing.T) {
	t.Parallel()

	values := []float64{0.1, -0.2, 0.3}
	got := Gain(values, 1)

	for i := range values {
		if got[i] != values[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], values[i])
		}
	}

	got[0] = 99
	if values[0] == 99 {
		t.Error("Gain returned an aliased buffer")
	}
}

func TestGainScalesAndClamps(t *testing.T) {
	t.Parallel()

	got := Gain([]float64{0.5, -0.5, 0.9}, 3)
	want := []float64{1, -1, 1}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestGainNegativeTreatedAsZero(t *testing.T) {
	t.Parallel()

	got := Gain([]float64{0.5, -0.5}, -2)
	for i, v := range got {
		if v != 0 {
			t.Errorf("got[%d] = %v, want 0", i, v)
		}
	}
}

func TestApplySide(t *testing.T) {
	t.Parallel()

	values := []float64{-0.5, 0.3}

	cases := []struct {
		name string
		side Side
		want []float64
	}{
		{"both", SideBoth, []float64{-0.5, 0.3}},
		{"sideA", SideA, []float64{0.5, 0.3}},
		{"sideB", SideB, []float64{-0.5, -0.3}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := ApplySide(values, tc.side)
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("got[%d] = %v, want %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestNormalizeDbBoundary(t *testing.T) {
	t.Parallel()

	got := NormalizeDb([]float64{-80, -40, 0}, -80, 0)
	want := []float64{0, 0.5, 1}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNormalizeDbClamps(t *testing.T) {
	t.Parallel()

	got := NormalizeDb([]float64{-120, 20}, -80, 0)

	if got[0] != 0 {
		t.Errorf("below range = %v, want 0", got[0])
	}
	if got[1] != 1 {
		t.Errorf("above range = %v, want 1", got[1])
	}
}

func TestNormalizeDbDegenerateRange(t *testing.T) {
	t.Parallel()

	// an empty dB range must not divide by zero
	got := NormalizeDb([]float64{-10, 0}, -10, -10)

	for i, v := range got {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("got[%d] = %v, want finite", i, v)
		}
	}
}

func TestParseSide(t *testing.T) {
	t.Parallel()

	if ParseSide("a") != SideA || ParseSide("up") != SideA {
		t.Error("ParseSide a/up should be SideA")
	}
	if ParseSide("b") != SideB || ParseSide("down") != SideB {
		t.Error("ParseSide b/down should be SideB")
	}
	if ParseSide("both") != SideBoth || ParseSide("") != SideBoth {
		t.Error("ParseSide default should be SideBoth")
	}
}
