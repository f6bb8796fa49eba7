// Command wavinfo prints the header, level and spectrum of WAV files.
//
// Usage:
//
//	wavinfo [flags] file.wav ...
//
// Examples:
//
//	wavinfo tone.wav
//	wavinfo -fft 8192 in.wav out.wav
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-wavfilter/dsp/buffer"
	"github.com/cwbudde/algo-wavfilter/measure/spectrum"
	"github.com/cwbudde/algo-wavfilter/stats/level"
	"github.com/cwbudde/algo-wavfilter/storage"
	"github.com/cwbudde/algo-wavfilter/wav"
)

type fileInfo struct {
	name     string
	header   wav.Header
	level    level.Stats
	spectrum spectrum.Result
	err      error
}

func main() {
	fftSize := flag.Int("fft", 4096, "FFT size for the dominant frequency (power of two)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wavinfo [flags] file.wav ...\n\n")
		fmt.Fprintf(os.Stderr, "Prints header fields, level and dominant frequency of 16-bit WAV files.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var infos []fileInfo
	failed := false
	for _, name := range flag.Args() {
		info := inspect(storage.Dir{}, name, *fftSize)
		if info.err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", name, info.err)
			failed = true
			continue
		}
		infos = append(infos, info)
	}

	printInfo(infos)
	if failed {
		os.Exit(1)
	}
}

func inspect(store storage.Storage, name string, fftSize int) fileInfo {
	info := fileInfo{name: name}

	in, err := store.OpenRead(name)
	if err != nil {
		info.err = err
		return info
	}
	defer in.Close()

	info.header, err = wav.ReadHeader(in)
	if err != nil {
		info.err = err
		return info
	}

	meter := level.NewMeter()
	head := make([]int16, 0, fftSize)
	chunk := buffer.NewChunk(buffer.DefaultChunkBytes)
	for {
		n, err := chunk.Fill(in)
		if n > 0 {
			samples := chunk.Samples()
			meter.Update(samples)
			if room := fftSize - len(head); room > 0 {
				head = append(head, samples[:min(room, len(samples))]...)
			}
		}
		if errors.Is(err, io.EOF) || (n == 0 && err == nil) {
			break
		}
		if err != nil {
			info.err = fmt.Errorf("read payload: %w", err)
			return info
		}
	}
	info.level = meter.Result()

	if len(head) > 0 {
		info.spectrum, err = spectrum.Analyze(head, float64(info.header.SampleRate), fftSize)
		if err != nil {
			info.err = err
		}
	}
	return info
}

func printInfo(infos []fileInfo) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "File\tFormat\tRate [Hz]\tCh\tBits\tData [B]\tDuration\tPeak [dBFS]\tRMS [dBFS]\tClipped\tDominant [Hz]\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "----\t------\t---------\t--\t----\t--------\t--------\t-----------\t----------\t-------\t-------------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, info := range infos {
		h := info.header
		format := fmt.Sprintf("%d", h.AudioFormat)
		if h.IsCanonical() {
			format = "PCM"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%s\t%.2f\t%.2f\t%d\t%.1f\n",
			info.name,
			format,
			h.SampleRate,
			h.NumChannels,
			h.BitsPerSample,
			h.DataLength,
			h.Duration(),
			info.level.Peak_dBFS,
			info.level.RMS_dBFS,
			info.level.Clipped,
			info.spectrum.DominantHz,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
