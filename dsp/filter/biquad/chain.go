package biquad

// Chain is an ordered cascade of biquad sections processed in series.
// Each section owns its own history; the output of section i is the input
// of section i+1.
type Chain struct {
	sections []Section
}

// NewChain creates a cascade from one or more coefficient sets.
// Each Coefficients value becomes one Section in the cascade.
func NewChain(coeffs []Coefficients) *Chain {
	c := &Chain{
		sections: make([]Section, len(coeffs)),
	}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c
}

// Step cascades one 16-bit sample through all sections in order.
// Every stage applies its own clamping and 16-bit truncation.
func (c *Chain) Step(x int16) int16 {
	for i := range c.sections {
		x = c.sections[i].Step(x)
	}

	return x
}

// ProcessSample cascades a sample through all sections without range
// handling.
func (c *Chain) ProcessSample(x float64) float64 {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through the full cascade,
// sample by sample.
func (c *Chain) ProcessBlock(buf []int16) {
	for i, x := range buf {
		buf[i] = c.Step(x)
	}
}

// Reset clears all section states.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Order returns the total filter order (2 per biquad section).
func (c *Chain) Order() int {
	return 2 * len(c.sections)
}

// NumSections returns the number of biquad sections.
func (c *Chain) NumSections() int {
	return len(c.sections)
}

// Section returns a pointer to the i-th section for inspection or modification.
func (c *Chain) Section(i int) *Section {
	return &c.sections[i]
}

// State returns a snapshot of all section histories.
func (c *Chain) State() [][4]float64 {
	states := make([][4]float64, len(c.sections))
	for i := range c.sections {
		states[i] = c.sections[i].State()
	}

	return states
}

// SetState restores previously saved section states.
// The slice length must match NumSections.
func (c *Chain) SetState(states [][4]float64) {
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
}
