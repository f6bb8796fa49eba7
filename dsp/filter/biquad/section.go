package biquad

import "math"

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
// The sign convention follows the Direct Form I difference equation:
//
//	y[n] = B0*x[n] + B1*x[n-1] + B2*x[n-2] - A1*y[n-1] - A2*y[n-2]
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Section is a single biquad filter with coefficients and its input/output
// history. The zero value of the history is a filter at rest.
type Section struct {
	Coefficients

	x1, x2 float64 // last two inputs
	y1, y2 float64 // last two outputs, before clamping
}

// NewSection returns a Section initialized with the given coefficients
// and zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// Step filters one 16-bit sample and returns the output.
//
// Outputs above math.MaxInt16 are clamped to math.MaxInt16. Negative
// overflow is not clamped: the value is truncated toward zero and wrapped
// to 16 bits. The history keeps the unclamped output.
func (s *Section) Step(x int16) int16 {
	y := s.ProcessSample(float64(x))
	if y > math.MaxInt16 {
		y = math.MaxInt16
	}

	return toInt16(y)
}

// ProcessSample filters one sample without any range handling and returns
// the output.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.B1*s.x1 + s.B2*s.x2 - s.A1*s.y1 - s.A2*s.y2
	s.x2 = s.x1
	s.x1 = x
	s.y2 = s.y1
	s.y1 = y

	return y
}

// ProcessBlock filters a block of 16-bit samples in-place.
func (s *Section) ProcessBlock(buf []int16) {
	for i, x := range buf {
		buf[i] = s.Step(x)
	}
}

// Reset clears the input and output history to zero.
func (s *Section) Reset() {
	s.x1, s.x2 = 0, 0
	s.y1, s.y2 = 0, 0
}

// State returns the current history [x1, x2, y1, y2].
func (s *Section) State() [4]float64 {
	return [4]float64{s.x1, s.x2, s.y1, s.y2}
}

// SetState restores a previously saved history.
func (s *Section) SetState(state [4]float64) {
	s.x1, s.x2 = state[0], state[1]
	s.y1, s.y2 = state[2], state[3]
}

// toInt16 truncates y toward zero and keeps the low 16 bits, the way a
// 32-bit integer conversion followed by a narrowing store behaves.
func toInt16(y float64) int16 {
	if math.IsNaN(y) || y >= math.MaxInt64 || y <= math.MinInt64 {
		return 0
	}

	return int16(int64(y))
}
