package design

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavfilter/dsp/filter/biquad"
)

var (
	// ErrCutoffRange is returned by CheckCutoff for a cutoff outside (0, Nyquist).
	ErrCutoffRange = errors.New("design: cutoff out of range")
	// ErrBandRange is returned by CheckBand for a band outside 0 < low < high < Nyquist.
	ErrBandRange = errors.New("design: band out of range")
	// ErrSampleRate is returned when the sample rate is not a positive finite number.
	ErrSampleRate = errors.New("design: invalid sample rate")
)

// CheckCutoff reports whether 0 < cutoffHz < sampleRate/2.
func CheckCutoff(cutoffHz, sampleRate float64) error {
	if err := checkSampleRate(sampleRate); err != nil {
		return err
	}
	if !inOpenRange(cutoffHz, 0, sampleRate/2) {
		return fmt.Errorf("%w: %v Hz at %v Hz sample rate", ErrCutoffRange, cutoffHz, sampleRate)
	}
	return nil
}

// CheckBand reports whether 0 < lowHz < highHz < sampleRate/2.
func CheckBand(lowHz, highHz, sampleRate float64) error {
	if err := checkSampleRate(sampleRate); err != nil {
		return err
	}
	if !inOpenRange(lowHz, 0, highHz) || !inOpenRange(highHz, lowHz, sampleRate/2) {
		return fmt.Errorf("%w: %v-%v Hz at %v Hz sample rate", ErrBandRange, lowHz, highHz, sampleRate)
	}
	return nil
}

func checkSampleRate(sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: %v", ErrSampleRate, sampleRate)
	}
	return nil
}

func inOpenRange(v, lo, hi float64) bool {
	return v > lo && v < hi && !math.IsNaN(v)
}

// repeat returns n copies of c, one per cascade stage.
func repeat(c biquad.Coefficients, n int) []biquad.Coefficients {
	if n <= 0 {
		return nil
	}
	out := make([]biquad.Coefficients, n)
	for i := range out {
		out[i] = c
	}
	return out
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
