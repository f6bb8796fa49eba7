// Package design provides digital IIR filter coefficient designers.
//
// The functions in this package produce biquad coefficients consumable by
// dsp/filter/biquad for runtime processing: a second-order Butterworth
// low/high-pass ([Butterworth]) and a band-reject notch ([BandReject]).
//
// Designers never validate their inputs. Frequencies at or above Nyquist
// yield degenerate coefficients rather than errors; use [CheckCutoff] and
// [CheckBand] before designing when the parameters come from a user.
package design
