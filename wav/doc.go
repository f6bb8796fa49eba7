// Package wav encodes and decodes the fixed 44-byte canonical RIFF/WAVE
// header.
//
// The codec reads and writes named fields in little-endian order and never
// validates tags or recomputes lengths: decoding and re-encoding any 44 bytes
// reproduces them exactly. Files with extra chunks before "data" are
// misread.
package wav
