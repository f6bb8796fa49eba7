package level

import (
	"math"
	"testing"
)

func TestMeasure_Empty(t *testing.T) {
	s := Measure(nil)
	if s.Samples != 0 || !math.IsInf(s.Peak_dBFS, -1) || !math.IsInf(s.RMS_dBFS, -1) {
		t.Fatalf("empty stats: %+v", s)
	}
}

func TestMeasure_Silence(t *testing.T) {
	s := Measure(make([]int16, 100))
	if s.Peak != 0 || s.RMS != 0 || s.ZeroCrossings != 0 {
		t.Fatalf("silence stats: %+v", s)
	}
	if !math.IsInf(s.Peak_dBFS, -1) {
		t.Fatalf("silence peak = %v dBFS, want -Inf", s.Peak_dBFS)
	}
}

func TestMeasure_SquareWave(t *testing.T) {
	// Half-scale square wave: peak = rms = 0.5, -6.02 dBFS.
	samples := []int16{16384, -16384, 16384, -16384}
	s := Measure(samples)

	if s.Peak != 0.5 || s.RMS != 0.5 {
		t.Fatalf("peak=%v rms=%v, want 0.5", s.Peak, s.RMS)
	}
	if math.Abs(s.Peak_dBFS-(-6.0206)) > 1e-3 {
		t.Fatalf("Peak_dBFS = %v", s.Peak_dBFS)
	}
	if s.ZeroCrossings != 3 || s.DC != 0 {
		t.Fatalf("zc=%d dc=%v", s.ZeroCrossings, s.DC)
	}
}

func TestMeter_StreamingMatchesOneShot(t *testing.T) {
	samples := make([]int16, 1000)
	for i := range samples {
		samples[i] = int16(10000 * math.Sin(float64(i)*0.05))
	}

	m := NewMeter()
	m.Update(samples[:333])
	m.Update(samples[333:700])
	m.Update(samples[700:])
	got := m.Result()
	want := Measure(samples)

	if got.Samples != want.Samples || got.Peak != want.Peak || got.ZeroCrossings != want.ZeroCrossings {
		t.Fatalf("streaming %+v != one-shot %+v", got, want)
	}
	if math.Abs(got.RMS-want.RMS) > 1e-12 {
		t.Fatalf("RMS %v vs %v", got.RMS, want.RMS)
	}
}

func TestMeter_Clipped(t *testing.T) {
	s := Measure([]int16{math.MaxInt16, 0, math.MinInt16, 100})
	if s.Clipped != 2 {
		t.Fatalf("Clipped = %d, want 2", s.Clipped)
	}
	if s.Peak != 1 {
		t.Fatalf("Peak = %v, want 1", s.Peak)
	}
}

func TestMeter_Reset(t *testing.T) {
	m := NewMeter()
	m.Update([]int16{1000, -1000})
	m.Reset()
	if r := m.Result(); r.Samples != 0 {
		t.Fatalf("Samples after reset = %d", r.Samples)
	}
}
