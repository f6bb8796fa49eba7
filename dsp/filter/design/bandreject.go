package design

import (
	"math"

	"github.com/cwbudde/algo-wavfilter/dsp/filter/biquad"
)

// bandRejectAlpha is the fixed notch damping used by BandReject.
const bandRejectAlpha = 1.0

// BandReject designs a notch biquad centered between lowHz and highHz.
//
// The damping term is fixed at alpha = 1 regardless of the band width, so
// the notch width does not follow highHz-lowHz; only the center frequency
// matters. [BandRejectAlpha] returns the width-derived value for reference.
// The center is the exact midpoint, so (901, 1100) designs 1000.5 Hz rather
// than a whole-Hz value.
func BandReject(lowHz, highHz, sampleRate float64) biquad.Coefficients {
	center := (lowHz + highHz) / 2
	w0 := 2 * math.Pi * center / sampleRate
	cw := math.Cos(w0)

	alpha := bandRejectAlpha

	b0 := 1.0
	b1 := -2 * cw
	b2 := 1.0
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// BandRejectAlpha returns the constant-bandwidth damping term
//
//	sin(w0) * sinh(ln(2)/2 * (highHz-lowHz) * w0 / sin(w0))
//
// that BandReject discards. The bandwidth enters in Hz, so the value
// overflows to +Inf for most audio bands.
func BandRejectAlpha(lowHz, highHz, sampleRate float64) float64 {
	center := (lowHz + highHz) / 2
	bandwidth := highHz - lowHz
	w0 := 2 * math.Pi * center / sampleRate
	sw := math.Sin(w0)

	return sw * math.Sinh(math.Ln2/2*bandwidth*w0/sw)
}

// BandRejectCascade returns stages identical notch sections.
func BandRejectCascade(lowHz, highHz, sampleRate float64, stages int) []biquad.Coefficients {
	return repeat(BandReject(lowHz, highHz, sampleRate), stages)
}
