package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"
)

// HeaderSize is the byte length of the canonical header.
const HeaderSize = 44

// ErrShortHeader is returned when fewer than HeaderSize bytes are available.
var ErrShortHeader = errors.New("wav: short header")

// Header mirrors the canonical PCM WAVE header field by field.
type Header struct {
	RiffTag       [4]byte // "RIFF"
	RiffLength    uint32  // file length minus 8
	WaveTag       [4]byte // "WAVE"
	FmtTag        [4]byte // "fmt "
	FmtLength     uint32  // 16 for PCM
	AudioFormat   uint16  // 1 for PCM
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32 // SampleRate * NumChannels * BitsPerSample/8
	BlockAlign    uint16 // NumChannels * BitsPerSample/8
	BitsPerSample uint16
	DataTag       [4]byte // "data"
	DataLength    uint32
}

// NewPCM16 returns a canonical header for 16-bit PCM with dataLength
// payload bytes.
func NewPCM16(sampleRate uint32, numChannels uint16, dataLength uint32) Header {
	const bits = 16
	return Header{
		RiffTag:       [4]byte{'R', 'I', 'F', 'F'},
		RiffLength:    36 + dataLength,
		WaveTag:       [4]byte{'W', 'A', 'V', 'E'},
		FmtTag:        [4]byte{'f', 'm', 't', ' '},
		FmtLength:     16,
		AudioFormat:   1,
		NumChannels:   numChannels,
		SampleRate:    sampleRate,
		ByteRate:      sampleRate * uint32(numChannels) * bits / 8,
		BlockAlign:    numChannels * bits / 8,
		BitsPerSample: bits,
		DataTag:       [4]byte{'d', 'a', 't', 'a'},
		DataLength:    dataLength,
	}
}

// Encode writes the header into b, which must hold at least HeaderSize bytes.
func (h *Header) Encode(b []byte) {
	_ = b[HeaderSize-1] // bounds check hint
	copy(b[0:4], h.RiffTag[:])
	binary.LittleEndian.PutUint32(b[4:8], h.RiffLength)
	copy(b[8:12], h.WaveTag[:])
	copy(b[12:16], h.FmtTag[:])
	binary.LittleEndian.PutUint32(b[16:20], h.FmtLength)
	binary.LittleEndian.PutUint16(b[20:22], h.AudioFormat)
	binary.LittleEndian.PutUint16(b[22:24], h.NumChannels)
	binary.LittleEndian.PutUint32(b[24:28], h.SampleRate)
	binary.LittleEndian.PutUint32(b[28:32], h.ByteRate)
	binary.LittleEndian.PutUint16(b[32:34], h.BlockAlign)
	binary.LittleEndian.PutUint16(b[34:36], h.BitsPerSample)
	copy(b[36:40], h.DataTag[:])
	binary.LittleEndian.PutUint32(b[40:44], h.DataLength)
}

// Decode reads the header from the first HeaderSize bytes of b.
func (h *Header) Decode(b []byte) error {
	if len(b) < HeaderSize {
		return fmt.Errorf("%w: %d bytes", ErrShortHeader, len(b))
	}
	copy(h.RiffTag[:], b[0:4])
	h.RiffLength = binary.LittleEndian.Uint32(b[4:8])
	copy(h.WaveTag[:], b[8:12])
	copy(h.FmtTag[:], b[12:16])
	h.FmtLength = binary.LittleEndian.Uint32(b[16:20])
	h.AudioFormat = binary.LittleEndian.Uint16(b[20:22])
	h.NumChannels = binary.LittleEndian.Uint16(b[22:24])
	h.SampleRate = binary.LittleEndian.Uint32(b[24:28])
	h.ByteRate = binary.LittleEndian.Uint32(b[28:32])
	h.BlockAlign = binary.LittleEndian.Uint16(b[32:34])
	h.BitsPerSample = binary.LittleEndian.Uint16(b[34:36])
	copy(h.DataTag[:], b[36:40])
	h.DataLength = binary.LittleEndian.Uint32(b[40:44])
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (h Header) MarshalBinary() ([]byte, error) {
	b := make([]byte, HeaderSize)
	h.Encode(b)
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (h *Header) UnmarshalBinary(b []byte) error {
	return h.Decode(b)
}

// ReadHeader reads exactly HeaderSize bytes from r and decodes them.
func ReadHeader(r io.Reader) (Header, error) {
	var (
		b [HeaderSize]byte
		h Header
	)
	if _, err := io.ReadFull(r, b[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return h, fmt.Errorf("%w: %w", ErrShortHeader, err)
		}
		return h, fmt.Errorf("wav: read header: %w", err)
	}
	err := h.Decode(b[:])
	return h, err
}

// WriteHeader encodes h and writes it to w.
func WriteHeader(w io.Writer, h Header) error {
	var b [HeaderSize]byte
	h.Encode(b[:])
	if _, err := w.Write(b[:]); err != nil {
		return fmt.Errorf("wav: write header: %w", err)
	}
	return nil
}

// IsCanonical reports whether the four tags hold their canonical values.
// Nothing in the processing path depends on it.
func (h *Header) IsCanonical() bool {
	return string(h.RiffTag[:]) == "RIFF" &&
		string(h.WaveTag[:]) == "WAVE" &&
		string(h.FmtTag[:]) == "fmt " &&
		string(h.DataTag[:]) == "data"
}

// Duration derives the playing time from DataLength and ByteRate as stored.
// It returns 0 when ByteRate is zero.
func (h *Header) Duration() time.Duration {
	if h.ByteRate == 0 {
		return 0
	}
	return time.Duration(float64(h.DataLength) / float64(h.ByteRate) * float64(time.Second))
}

// String returns a one-line summary of the format fields.
func (h Header) String() string {
	return fmt.Sprintf("%q fmt=%d ch=%d rate=%d bits=%d data=%d",
		h.RiffTag[:], h.AudioFormat, h.NumChannels, h.SampleRate, h.BitsPerSample, h.DataLength)
}
