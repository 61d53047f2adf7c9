package dsp

import (
	"math"
	"testing"
)

func TestResampleLength(t *testing.T) {
	t.Parallel()

	values := []float64{0, 1, 0, -1, 0.5}

	for _, n := range []int{0, 1, 2, 5, 7, 100} {
		got := Resample(values, n)
		if len(got) != n {
			t.Errorf("Resample(_, %d) length = %d, want %d", n, len(got), n)
		}
	}

	if got := Resample(values, -3); len(got) != 0 {
		t.Errorf("Resample(_, -3) length = %d, want 0", len(got))
	}
}

func TestResampleIdentity(t *testing.T) {
	t.Parallel()

	values := []float64{0.25, -0.75, 0.5, 1}
	got := Resample(values, len(values))

	for i := range values {
		if got[i] != values[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], values[i])
		}
	}

	// fresh buffer, not an alias
	got[0] = 99
	if values[0] == 99 {
		t.Error("Resample returned an aliased buffer")
	}
}

func TestResampleEmptyInput(t *testing.T) {
	t.Parallel()

	got := Resample(nil, 4)
	for i, v := range got {
		if v != 0 {
			t.Errorf("got[%d] = %v, want 0", i, v)
		}
	}
}

func TestResampleSingleValue(t *testing.T) {
	t.Parallel()

	got := Resample([]float64{0.7}, 5)
	for i, v := range got {
		if v != 0.7 {
			t.Errorf("got[%d] = %v, want 0.7", i, v)
		}
	}
}

func TestResampleUpsampleLinear(t *testing.T) {
	t.Parallel()

	got := Resample([]float64{0, 1}, 5)
	want := []float64{0, 0.25, 0.5, 0.75, 1}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestResampleDownsampleBucketMean(t *testing.T) {
	t.Parallel()

	got := Resample([]float64{1, 3, 5, 7}, 2)
	want := []float64{2, 6}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestResampleExtremeDownsample(t *testing.T) {
	t.Parallel()

	values := make([]float64, 10000)
	for i := range values {
		values[i] = float64(i)
	}

	got := Resample(values, 3)
	if len(got) != 3 {
		t.Fatalf("length = %d, want 3", len(got))
	}

	// bucket means of an increasing ramp stay increasing
	if !(got[0] < got[1] && got[1] < got[2]) {
		t.Errorf("bucket means not increasing: %v", got)
	}
}

func BenchmarkResampleDown(b *testing.B) {
	values := make([]float64, 8192)
	for i := range values {
		values[i] = math.Sin(float64(i) / 100)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		Resample(values, 512)
	}
}
