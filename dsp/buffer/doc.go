// Package buffer provides the fixed-capacity sample chunk used by the WAV
// stream processor and a pool for reusing chunks across runs.
//
// A [Chunk] holds raw little-endian bytes as read from storage and a 16-bit
// sample view of them. The processor fills it, filters the samples in place
// and encodes them back before writing exactly the bytes that were read.
package buffer
