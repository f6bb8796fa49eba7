// Command wavtone writes a mono 16-bit sine tone as a WAV file.
//
// Usage:
//
//	wavtone [flags] output.wav
//
// Examples:
//
//	wavtone -freq 1000 tone.wav
//	wavtone -freq 440 -rate 16000 -seconds 2 -amp 0.25 a4.wav
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func main() {
	freq := flag.Float64("freq", 1000, "tone frequency in Hz")
	rate := flag.Int("rate", 44100, "sample rate in Hz")
	seconds := flag.Float64("seconds", 1, "duration in seconds")
	amp := flag.Float64("amp", 0.5, "amplitude relative to full scale (0..1]")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wavtone [flags] output.wav\n\n")
		fmt.Fprintf(os.Stderr, "Writes a mono 16-bit sine tone.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if *rate <= 0 || *seconds <= 0 || *amp <= 0 || *amp > 1 {
		log.Fatalf("wavtone: invalid parameters: rate=%d seconds=%v amp=%v", *rate, *seconds, *amp)
	}

	if err := writeTone(flag.Arg(0), *freq, *rate, *seconds, *amp); err != nil {
		log.Fatalf("wavtone: %v", err)
	}
}

func writeTone(path string, freq float64, rate int, seconds, amp float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	n := int(seconds * float64(rate))
	data := make([]int, n)
	step := 2 * math.Pi * freq / float64(rate)
	for i := range data {
		data[i] = int(math.Round(amp * math.MaxInt16 * math.Sin(step*float64(i))))
	}

	enc := wav.NewEncoder(f, rate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize: %w", err)
	}
	return f.Close()
}
