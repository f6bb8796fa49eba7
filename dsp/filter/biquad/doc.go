// Package biquad provides biquad (second-order IIR) filter runtime primitives
// for 16-bit PCM streams.
//
// A [Section] implements the Direct Form I difference equation for a single
// second-order section defined by [Coefficients]. Sections are cascaded via
// [Chain], each stage consuming the previous stage's output.
//
// This package provides the processing runtime only. Coefficient design
// (Butterworth low/high-pass, band-reject) lives in dsp/filter/design.
package biquad
