// Command wavfilter runs one of the IIR filter programs on a 16-bit WAV file.
//
// Usage:
//
//	wavfilter [flags] input.wav output.wav
//
// Examples:
//
//	wavfilter -program lowpass -cutoff 1000 in.wav out.wav
//	wavfilter -program highpass -cutoff 200 -header-rate in.wav out.wav
//	wavfilter -program notch -low 900 -high 1100 in.wav out.wav
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cwbudde/algo-wavfilter/display"
	"github.com/cwbudde/algo-wavfilter/dsp/filter/design"
	"github.com/cwbudde/algo-wavfilter/storage"
	"github.com/cwbudde/algo-wavfilter/wavproc"
)

// displayAddress is the bus address of the character display the programs
// were written for. The terminal display only records it.
const displayAddress = 0x3c

func main() {
	program := flag.String("program", "lowpass", "filter program: lowpass, highpass or bandreject")
	cutoff := flag.Float64("cutoff", 1000, "cutoff frequency in Hz (lowpass, highpass)")
	low := flag.Float64("low", 900, "lower band edge in Hz (bandreject)")
	high := flag.Float64("high", 1100, "upper band edge in Hz (bandreject)")
	sampleRate := flag.Float64("rate", 44100, "design sample rate in Hz")
	headerRate := flag.Bool("header-rate", false, "design for the sample rate stored in the input header")
	chunk := flag.Int("chunk", 512, "chunk size in bytes")
	dir := flag.String("dir", "", "directory the file names are relative to")
	strict := flag.Bool("strict", false, "reject frequencies outside (0, rate/2)")
	quiet := flag.Bool("quiet", false, "suppress the display")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wavfilter [flags] input.wav output.wav\n\n")
		fmt.Fprintf(os.Stderr, "Filters the payload of a 16-bit WAV file with a biquad cascade.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	prog, err := wavproc.ParseProgram(*program)
	if err != nil {
		log.Fatalf("wavfilter: %v", err)
	}

	if *strict {
		if err := validate(prog, *cutoff, *low, *high, *sampleRate); err != nil {
			log.Fatalf("wavfilter: %v", err)
		}
	}

	var disp display.Display = display.Nop{}
	if !*quiet {
		term := display.NewTerminal(os.Stdout)
		if err := term.Begin(displayAddress); err != nil {
			log.Fatalf("wavfilter: %v", err)
		}
		disp = term
	}

	p := wavproc.New(storage.Dir{Root: *dir},
		wavproc.WithSampleRate(*sampleRate),
		wavproc.WithHeaderSampleRate(*headerRate),
		wavproc.WithChunkBytes(*chunk),
		wavproc.WithDisplay(disp),
		wavproc.WithLogger(log.New(os.Stderr, "", log.LstdFlags)),
	)

	rep, ok := p.Run(wavproc.Request{
		Program:  prog,
		Input:    flag.Arg(0),
		Output:   flag.Arg(1),
		CutoffHz: *cutoff,
		LowHz:    *low,
		HighHz:   *high,
	})
	if !ok {
		os.Exit(1)
	}

	log.Printf("run %s: %s, %d chunks, %d -> %d bytes, peak %.2f -> %.2f dBFS",
		rep.RunID, rep.Program, rep.Chunks, rep.BytesIn, rep.BytesOut,
		rep.Input.Peak_dBFS, rep.Output.Peak_dBFS)
}

func validate(prog wavproc.Program, cutoff, low, high, sampleRate float64) error {
	if prog == wavproc.BandReject {
		return design.CheckBand(low, high, sampleRate)
	}
	return design.CheckCutoff(cutoff, sampleRate)
}
