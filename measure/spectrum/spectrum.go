// Package spectrum measures the frequency content of 16-bit PCM payloads.
//
// [Analyze] windows a block of samples with a periodic Hann window, runs a
// forward FFT and reports the one-sided magnitude spectrum normalized so a
// full-scale sine reads 0 dB at its bin.
package spectrum

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

const fullScale = 32768.0

var (
	// ErrFFTSize is returned for FFT sizes that are not a power of two >= 2.
	ErrFFTSize = errors.New("spectrum: fft size must be a power of two >= 2")
	// ErrNoSamples is returned when there is nothing to analyze.
	ErrNoSamples = errors.New("spectrum: no samples")
)

// Result is a one-sided magnitude spectrum with its dominant component.
type Result struct {
	FFTSize    int
	SampleRate float64
	BinHz      float64
	Magnitude  []float64 // bins 0..FFTSize/2, linear, full-scale sine = 1
	DominantHz float64   // interpolated frequency of the strongest non-DC bin
	DominantDB float64
}

// Analyze computes the spectrum of the first fftSize samples. Shorter
// inputs are zero-padded.
func Analyze(samples []int16, sampleRate float64, fftSize int) (Result, error) {
	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrFFTSize, fftSize)
	}
	if len(samples) == 0 {
		return Result{}, ErrNoSamples
	}

	win := hann(fftSize)
	winSum := 0.0
	for _, w := range win {
		winSum += w
	}

	block := make([]float64, fftSize)
	for i := 0; i < fftSize && i < len(samples); i++ {
		block[i] = float64(samples[i]) / fullScale
	}
	vecmath.MulBlockInPlace(block, win)

	in := make([]complex128, fftSize)
	for i, v := range block {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("spectrum: init fft plan: %w", err)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	scale := 2 / winSum
	for i := range mag {
		mag[i] *= scale
	}

	res := Result{
		FFTSize:    fftSize,
		SampleRate: sampleRate,
		BinHz:      sampleRate / float64(fftSize),
		Magnitude:  mag,
	}
	res.DominantHz, res.DominantDB = res.dominant()
	return res, nil
}

// BandLevelDB returns the largest bin level in dB within [lowHz, highHz].
// It returns -Inf when the band holds no bins or only silence.
func (r Result) BandLevelDB(lowHz, highHz float64) float64 {
	peak := 0.0
	for i, m := range r.Magnitude {
		f := float64(i) * r.BinHz
		if f < lowHz || f > highHz {
			continue
		}
		if m > peak {
			peak = m
		}
	}
	return toDB(peak)
}

func (r Result) dominant() (float64, float64) {
	k := 0
	for i := 1; i < len(r.Magnitude); i++ {
		if r.Magnitude[i] > r.Magnitude[k] || k == 0 {
			k = i
		}
	}
	if k == 0 || r.Magnitude[k] == 0 {
		return 0, math.Inf(-1)
	}

	// Parabolic interpolation on log magnitudes of the neighbouring bins.
	offset := 0.0
	if k > 0 && k < len(r.Magnitude)-1 {
		a := logOrFloor(r.Magnitude[k-1])
		b := logOrFloor(r.Magnitude[k])
		c := logOrFloor(r.Magnitude[k+1])
		if den := a - 2*b + c; den != 0 {
			offset = 0.5 * (a - c) / den
		}
	}

	return (float64(k) + offset) * r.BinHz, toDB(r.Magnitude[k])
}

func hann(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n))
	}
	return w
}

func logOrFloor(v float64) float64 {
	if v <= 1e-300 {
		return -690
	}
	return math.Log(v)
}

func toDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(v)
}
