package testutil

import (
	"encoding/binary"
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Sine16 generates a 16-bit sine wave. Amplitude is relative to full scale.
func Sine16(freqHz, sampleRate, amplitude float64, length int) []int16 {
	return Quantize(DeterministicSine(freqHz, sampleRate, amplitude, length))
}

// Noise16 generates 16-bit white noise with a fixed seed.
func Noise16(seed int64, amplitude float64, length int) []int16 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return Quantize(out)
}

// Silence16 returns n zero samples.
func Silence16(n int) []int16 {
	return make([]int16, n)
}

// Quantize converts [-1, 1] floats to int16, saturating at full scale.
func Quantize(in []float64) []int16 {
	out := make([]int16, len(in))
	for i, v := range in {
		s := math.Round(v * 32767)
		if s > math.MaxInt16 {
			s = math.MaxInt16
		} else if s < math.MinInt16 {
			s = math.MinInt16
		}
		out[i] = int16(s)
	}
	return out
}

// PCMBytes encodes samples as 16-bit little-endian PCM.
func PCMBytes(samples []int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

// PCMSamples decodes 16-bit little-endian PCM. An odd trailing byte is ignored.
func PCMSamples(data []byte) []int16 {
	out := make([]int16, len(data)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(data[2*i:]))
	}
	return out
}
