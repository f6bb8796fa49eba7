// Package level measures the level of 16-bit PCM payloads in full-scale
// units (1.0 = 32768).
package level

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// fullScale is the magnitude of the most negative 16-bit sample.
const fullScale = 32768.0

// Stats holds level statistics normalized to full scale.
//
//nolint:revive
type Stats struct {
	Samples       int
	Peak          float64 // max |x|
	Peak_dBFS     float64
	RMS           float64
	RMS_dBFS      float64
	DC            float64 // mean
	Clipped       int     // samples at +32767 or -32768
	ZeroCrossings int
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

// Meter accumulates level statistics incrementally across blocks.
type Meter struct {
	n             int
	sum           float64
	sumSq         float64
	peak          float64
	clipped       int
	zeroCrossings int
	last          float64
	scratch       []float64
}

// NewMeter creates a new Meter.
func NewMeter() *Meter {
	return &Meter{}
}

// Update adds a block of 16-bit samples to the running statistics.
func (m *Meter) Update(samples []int16) {
	if len(samples) == 0 {
		return
	}
	if cap(m.scratch) < 2*len(samples) {
		m.scratch = make([]float64, 2*len(samples))
	}
	raw := m.scratch[:len(samples)]
	sq := m.scratch[len(samples) : 2*len(samples)]
	for i, s := range samples {
		raw[i] = float64(s) / fullScale
		if s == math.MaxInt16 || s == math.MinInt16 {
			m.clipped++
		}
	}
	vecmath.MulBlock(sq, raw, raw)

	for i, x := range raw {
		m.n++
		m.sum += x
		m.sumSq += sq[i]
		if a := math.Abs(x); a > m.peak {
			m.peak = a
		}
		if m.n > 1 && m.last*x < 0 {
			m.zeroCrossings++
		}
		m.last = x
	}
}

// Result computes the statistics from accumulated data.
func (m *Meter) Result() Stats {
	if m.n == 0 {
		return Stats{
			Peak_dBFS: math.Inf(-1),
			RMS_dBFS:  math.Inf(-1),
		}
	}

	nf := float64(m.n)
	rms := math.Sqrt(m.sumSq / nf)

	return Stats{
		Samples:       m.n,
		Peak:          m.peak,
		Peak_dBFS:     ampTodB(m.peak),
		RMS:           rms,
		RMS_dBFS:      ampTodB(rms),
		DC:            m.sum / nf,
		Clipped:       m.clipped,
		ZeroCrossings: m.zeroCrossings,
	}
}

// Reset clears all accumulated data, allowing the Meter to be reused.
func (m *Meter) Reset() {
	scratch := m.scratch
	*m = Meter{scratch: scratch}
}

// Measure is a one-shot helper over a complete payload.
func Measure(samples []int16) Stats {
	m := NewMeter()
	m.Update(samples)
	return m.Result()
}
