package design

import (
	"math"

	"github.com/cwbudde/algo-wavfilter/dsp/filter/biquad"
)

// Butterworth designs a second-order Butterworth (Q = 1/√2) low-pass or
// high-pass biquad at cutoffHz.
//
// The result is normalized so a0 = 1. No range checking is done.
func Butterworth(cutoffHz, sampleRate float64, highPass bool) biquad.Coefficients {
	w0 := 2 * math.Pi * cutoffHz / sampleRate
	sw := math.Sin(w0)
	cw := math.Cos(w0)
	alpha := sw / (2 * math.Sqrt2)
	norm := 1 / (1 + alpha)

	var c biquad.Coefficients
	if highPass {
		c.B0 = (1 + cw) / 2 * norm
		c.B1 = -(1 + cw) * norm
	} else {
		c.B0 = (1 - cw) / 2 * norm
		c.B1 = (1 - cw) * norm
	}
	c.B2 = c.B0
	c.A1 = -2 * cw * norm
	c.A2 = (1 - alpha) * norm

	return c
}

// ButterworthCascade returns stages identical Butterworth sections for a
// deeper roll-off. Each section is processed with its own state.
func ButterworthCascade(cutoffHz, sampleRate float64, highPass bool, stages int) []biquad.Coefficients {
	return repeat(Butterworth(cutoffHz, sampleRate, highPass), stages)
}
