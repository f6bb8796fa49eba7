package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-wavfilter/internal/testutil"
)

func TestAnalyze_DominantFrequency(t *testing.T) {
	tests := []struct {
		freq float64
		sr   float64
		size int
	}{
		{1000, 44100, 4096},
		{440, 16000, 2048},
		{5000, 48000, 8192},
	}

	for _, tt := range tests {
		s := testutil.Sine16(tt.freq, tt.sr, 0.5, tt.size)
		res, err := Analyze(s, tt.sr, tt.size)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(res.DominantHz-tt.freq) > res.BinHz/2 {
			t.Fatalf("%v Hz: dominant = %.2f Hz (bin %.2f Hz)", tt.freq, res.DominantHz, res.BinHz)
		}
		// Half-scale sine peaks near -6 dB; the Hann main lobe can lose up
		// to 1.5 dB between bins.
		if res.DominantDB > -5.5 || res.DominantDB < -8 {
			t.Fatalf("%v Hz: dominant level = %.2f dB", tt.freq, res.DominantDB)
		}
	}
}

func TestAnalyze_BandLevel(t *testing.T) {
	s := testutil.Sine16(1000, 44100, 0.5, 4096)
	res, err := Analyze(s, 44100, 4096)
	if err != nil {
		t.Fatal(err)
	}
	in := res.BandLevelDB(900, 1100)
	out := res.BandLevelDB(5000, 10000)
	if in-out < 60 {
		t.Fatalf("band levels %.1f dB vs %.1f dB, want > 60 dB apart", in, out)
	}
	if !math.IsInf(res.BandLevelDB(30000, 40000), -1) {
		t.Fatal("band above Nyquist should be -Inf")
	}
}

func TestAnalyze_ZeroPadding(t *testing.T) {
	res, err := Analyze(testutil.Sine16(2000, 32000, 0.5, 100), 32000, 1024)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Magnitude) != 513 {
		t.Fatalf("bins = %d, want 513", len(res.Magnitude))
	}
}

func TestAnalyze_Silence(t *testing.T) {
	res, err := Analyze(make([]int16, 256), 8000, 256)
	if err != nil {
		t.Fatal(err)
	}
	if res.DominantHz != 0 || !math.IsInf(res.DominantDB, -1) {
		t.Fatalf("silence: %v Hz %v dB", res.DominantHz, res.DominantDB)
	}
}

func TestAnalyze_Errors(t *testing.T) {
	if _, err := Analyze(make([]int16, 10), 8000, 1000); !errors.Is(err, ErrFFTSize) {
		t.Fatalf("err = %v, want ErrFFTSize", err)
	}
	if _, err := Analyze(make([]int16, 10), 8000, 1); !errors.Is(err, ErrFFTSize) {
		t.Fatalf("err = %v, want ErrFFTSize", err)
	}
	if _, err := Analyze(nil, 8000, 256); !errors.Is(err, ErrNoSamples) {
		t.Fatalf("err = %v, want ErrNoSamples", err)
	}
}
