package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWAVFileRoundTrip(t *testing.T) {
	in := Sine16(1000, 8000, 0.25, 64)
	data := WAVFile(t, 8000, in)

	if len(data) != 44+2*len(in) {
		t.Fatalf("file size = %d, want %d", len(data), 44+2*len(in))
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" || string(data[36:40]) != "data" {
		t.Fatalf("unexpected header % x", data[:44])
	}
	RequireSamplesEqual(t, PCMSamples(data[44:]), in)

	path := filepath.Join(t.TempDir(), "rt.wav")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	sr, got := DecodeWAV(t, path)
	if sr != 8000 {
		t.Fatalf("sample rate = %d", sr)
	}
	RequireSamplesEqual(t, got, in)
}
