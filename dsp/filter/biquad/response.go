package biquad

import (
	"math"
	"math/cmplx"
)

// poly evaluates p0 + p1*z^-1 + p2*z^-2 on the unit circle at angle w.
func poly(p0, p1, p2, w float64) complex128 {
	zi := cmplx.Rect(1, -w)
	return complex(p0, 0) + zi*(complex(p1, 0)+zi*complex(p2, 0))
}

func angle(freqHz, sampleRate float64) float64 {
	return 2 * math.Pi * freqHz / sampleRate
}

// Response returns H(e^jw) at freqHz.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := angle(freqHz, sampleRate)
	return poly(c.B0, c.B1, c.B2, w) / poly(1, c.A1, c.A2, w)
}

// MagnitudeSquared returns |H|^2 at freqHz.
func (c *Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	w := angle(freqHz, sampleRate)
	num := poly(c.B0, c.B1, c.B2, w)
	den := poly(1, c.A1, c.A2, w)
	return absSq(num) / absSq(den)
}

// MagnitudeDB returns the gain at freqHz in dB.
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

func absSq(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}

// Response returns the product of all section responses.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	h := complex(1, 0)
	for i := range c.sections {
		h *= c.sections[i].Response(freqHz, sampleRate)
	}
	return h
}

// MagnitudeDB returns the cascade gain at freqHz in dB. An empty chain
// reads 0 dB.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	db := 0.0
	for i := range c.sections {
		db += c.sections[i].MagnitudeDB(freqHz, sampleRate)
	}
	return db
}

type sampleProcessor interface {
	ProcessSample(x float64) float64
	Reset()
}

// impulse runs a unit impulse through p from a cleared history.
func impulse(p sampleProcessor, n int) []float64 {
	p.Reset()
	ir := make([]float64, n)
	x := 1.0
	for i := range ir {
		ir[i] = p.ProcessSample(x)
		x = 0
	}
	return ir
}

// ImpulseResponse returns the first n samples of the impulse response on
// the float path. The section history is left as it was.
func (s *Section) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}
	saved := s.State()
	defer s.SetState(saved)
	return impulse(s, n)
}

// ImpulseResponse returns the first n samples of the cascade impulse
// response. The chain history is left as it was.
func (c *Chain) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}
	saved := c.State()
	defer c.SetState(saved)
	return impulse(c, n)
}
