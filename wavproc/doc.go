// Package wavproc filters 16-bit PCM WAV files chunk by chunk.
//
// A [Processor] opens an input and an output stream on a
// [storage.Storage], copies the 44-byte header unchanged and pushes every
// payload sample through a cascade of biquad sections designed by
// [design]. Three programs are available:
//
//   - [LowPass] and [HighPass]: three Butterworth-style sections at one cutoff.
//   - [BandReject]: two notch sections centred between a low and a high
//     edge. From the twelfth chunk on, filtered samples are multiplied by
//     three with 16-bit wraparound.
//
// Programs report success as a bool and describe failures through the
// configured logger. [Processor.Run] additionally returns a [Report] with
// counters and level statistics of the run.
package wavproc
