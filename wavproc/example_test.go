package wavproc_test

import (
	"fmt"
	"io"
	"log"

	"github.com/cwbudde/algo-wavfilter/storage"
	"github.com/cwbudde/algo-wavfilter/wav"
	"github.com/cwbudde/algo-wavfilter/wavproc"
)

func ExampleProcessor_LowPassFilter() {
	store := storage.NewMemory()
	hdr, _ := wav.NewPCM16(44100, 1, 2048).MarshalBinary()
	store.Put("in.wav", append(hdr, make([]byte, 2048)...))

	p := wavproc.New(store, wavproc.WithLogger(log.New(io.Discard, "", 0)))
	ok := p.LowPassFilter("in.wav", "out.wav", 1000)

	out, _ := store.Get("out.wav")
	fmt.Println(ok, len(out))
	// Output: true 2092
}

func ExampleProcessor_Run() {
	store := storage.NewMemory()
	hdr, _ := wav.NewPCM16(44100, 1, 6144).MarshalBinary()
	store.Put("in.wav", append(hdr, make([]byte, 6144)...))

	p := wavproc.New(store, wavproc.WithLogger(log.New(io.Discard, "", 0)))
	rep, ok := p.Run(wavproc.Request{
		Program: wavproc.BandReject,
		Input:   "in.wav",
		Output:  "out.wav",
		LowHz:   900,
		HighHz:  1100,
	})

	fmt.Println(ok, rep.Program, rep.Chunks, rep.BoostedFrom, rep.Final)
	// Output: true bandreject 12 11 closed-success
}

func ExampleParseProgram() {
	p, err := wavproc.ParseProgram("high-pass")
	fmt.Println(p, err)
	// Output: highpass <nil>
}
