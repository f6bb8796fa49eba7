package wavproc

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/cwbudde/algo-wavfilter/dsp/buffer"
	"github.com/cwbudde/algo-wavfilter/dsp/filter/biquad"
	"github.com/cwbudde/algo-wavfilter/dsp/filter/design"
	"github.com/cwbudde/algo-wavfilter/stats/level"
	"github.com/cwbudde/algo-wavfilter/storage"
	"github.com/cwbudde/algo-wavfilter/wav"
)

var chunks = buffer.NewPool()

// Request describes one run. CutoffHz is used by LowPass and HighPass,
// LowHz and HighHz by BandReject.
type Request struct {
	Program  Program
	Input    string
	Output   string
	CutoffHz float64
	LowHz    float64
	HighHz   float64
}

// Report summarises a run.
type Report struct {
	RunID      string
	Program    Program
	SampleRate float64
	// Header is the decoded input header. It is only meaningful when
	// HeaderBytes equals wav.HeaderSize.
	Header      wav.Header
	HeaderBytes int
	// DesignHz is the cutoff or notch centre, DesignDB the cascade gain
	// there. Stable is false when a pole lies on or outside the unit circle.
	DesignHz    float64
	DesignDB    float64
	Stable      bool
	Chunks      int
	BoostedFrom int // first boosted chunk index, -1 if none
	BytesIn     int64
	BytesOut    int64
	ShortWrites int
	Input       level.Stats
	Output      level.Stats
	// ReadErr is the error that ended streaming early, if any.
	ReadErr error
	Final   State
}

// Processor runs filter programs against a storage backend. A Processor
// runs one program at a time; concurrent calls wait for each other.
type Processor struct {
	mu    sync.Mutex
	store storage.Storage
	cfg   Config
}

// New returns a Processor reading and writing through store.
func New(store storage.Storage, opts ...Option) *Processor {
	return &Processor{
		store: store,
		cfg:   ApplyOptions(opts...),
	}
}

// Config returns the effective settings.
func (p *Processor) Config() Config {
	return p.cfg
}

// LowPassFilter filters in into out with a low-pass cascade at cutoffHz.
func (p *Processor) LowPassFilter(in, out string, cutoffHz float64) bool {
	_, ok := p.Run(Request{Program: LowPass, Input: in, Output: out, CutoffHz: cutoffHz})
	return ok
}

// HighPassFilter filters in into out with a high-pass cascade at cutoffHz.
func (p *Processor) HighPassFilter(in, out string, cutoffHz float64) bool {
	_, ok := p.Run(Request{Program: HighPass, Input: in, Output: out, CutoffHz: cutoffHz})
	return ok
}

// BandRejectFilter filters in into out with a notch cascade centred between
// lowHz and highHz, boosting the later chunks.
func (p *Processor) BandRejectFilter(in, out string, lowHz, highHz float64) bool {
	_, ok := p.Run(Request{Program: BandReject, Input: in, Output: out, LowHz: lowHz, HighHz: highHz})
	return ok
}

// ProcessWavFile runs the high-pass program when highPass is set and the
// low-pass program otherwise.
func (p *Processor) ProcessWavFile(in, out string, cutoffHz float64, highPass bool) bool {
	prog := LowPass
	if highPass {
		prog = HighPass
	}
	_, ok := p.Run(Request{Program: prog, Input: in, Output: out, CutoffHz: cutoffHz})
	return ok
}

// Run executes req and reports the outcome. The bool is false only when
// one of the streams could not be opened or the program is unknown.
func (p *Processor) Run(req Request) (Report, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	r := &run{
		p:   p,
		req: req,
		rep: Report{
			RunID:       uuid.NewString(),
			Program:     req.Program,
			SampleRate:  p.cfg.SampleRate,
			BoostedFrom: -1,
		},
	}
	r.enter(Idle)

	p.cfg.Display.Clear()
	p.cfg.Display.Print(req.Program.Title(), 2)

	err := r.execute()
	if err != nil {
		r.logf("%v", err)
		r.enter(ClosedFailure)
		p.cfg.Display.Print("error", 1)
		return r.rep, false
	}

	r.enter(ClosedSuccess)
	r.logf("done: %d chunks, %d bytes in, %d bytes out", r.rep.Chunks, r.rep.BytesIn, r.rep.BytesOut)
	p.cfg.Display.Print("done", 1)
	return r.rep, true
}

var (
	errOpenInput  = errors.New("cannot open input")
	errOpenOutput = errors.New("cannot open output")
)

type run struct {
	p   *Processor
	req Request
	rep Report
}

func (r *run) enter(s State) {
	r.rep.Final = s
	if r.p.cfg.Observer != nil {
		r.p.cfg.Observer(s)
	}
}

func (r *run) logf(format string, args ...any) {
	r.p.cfg.Logger.Printf("wavproc: %s %s: "+format, append([]any{r.req.Program, r.rep.RunID}, args...)...)
}

func (r *run) execute() error {
	if r.req.Program < LowPass || r.req.Program > BandReject {
		return fmt.Errorf("unknown program %d", int(r.req.Program))
	}

	in, err := r.p.store.OpenRead(r.req.Input)
	if err != nil {
		return fmt.Errorf("%w %q: %w", errOpenInput, r.req.Input, err)
	}
	defer r.close("input", in)
	r.enter(InputOpened)

	out, err := r.p.store.OpenWrite(r.req.Output)
	if err != nil {
		return fmt.Errorf("%w %q: %w", errOpenOutput, r.req.Output, err)
	}
	defer r.close("output", out)
	r.enter(OutputOpened)

	r.copyHeader(in, out)
	r.enter(HeaderCopied)

	chain := biquad.NewChain(r.coefficients())
	r.checkDesign(chain)

	r.enter(Streaming)
	r.stream(in, out, chain)
	return nil
}

func (r *run) close(name string, c io.Closer) {
	if err := c.Close(); err != nil {
		r.logf("close %s: %v", name, err)
	}
}

// copyHeader moves up to wav.HeaderSize bytes from in to out unchanged.
func (r *run) copyHeader(in io.Reader, out io.Writer) {
	var hdr [wav.HeaderSize]byte
	n, err := io.ReadFull(in, hdr[:])
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		r.logf("read header: %v", err)
	}
	r.rep.HeaderBytes = n
	r.rep.BytesIn += int64(n)

	if n == wav.HeaderSize {
		_ = r.rep.Header.Decode(hdr[:])
		if r.p.cfg.HeaderSampleRate && r.rep.Header.SampleRate > 0 {
			r.rep.SampleRate = float64(r.rep.Header.SampleRate)
		}
	} else {
		r.logf("short header: %d of %d bytes", n, wav.HeaderSize)
	}

	if n > 0 {
		r.write(out, hdr[:n])
	}
}

func (r *run) coefficients() []biquad.Coefficients {
	sr := r.rep.SampleRate
	switch r.req.Program {
	case HighPass:
		return design.ButterworthCascade(r.req.CutoffHz, sr, true, r.p.cfg.ButterworthStages)
	case BandReject:
		return design.BandRejectCascade(r.req.LowHz, r.req.HighHz, sr, r.p.cfg.NotchStages)
	default:
		return design.ButterworthCascade(r.req.CutoffHz, sr, false, r.p.cfg.ButterworthStages)
	}
}

// checkDesign records the cascade response at the design frequency.
// Out of range frequencies are still processed; they are only logged.
func (r *run) checkDesign(chain *biquad.Chain) {
	r.rep.DesignHz = r.req.CutoffHz
	if r.req.Program == BandReject {
		r.rep.DesignHz = (r.req.LowHz + r.req.HighHz) / 2
	}
	r.rep.DesignDB = chain.MagnitudeDB(r.rep.DesignHz, r.rep.SampleRate)
	r.rep.Stable = chain.IsStable()

	if !r.rep.Stable || math.IsNaN(r.rep.DesignDB) {
		r.logf("degenerate design at %g Hz (sample rate %g): stable=%t gain=%.2f dB",
			r.rep.DesignHz, r.rep.SampleRate, r.rep.Stable, r.rep.DesignDB)
	}
}

func (r *run) stream(in storage.Reader, out io.Writer, chain *biquad.Chain) {
	chunk := chunks.Get(r.p.cfg.ChunkBytes)
	defer chunks.Put(chunk)

	inMeter, outMeter := level.NewMeter(), level.NewMeter()
	defer func() {
		r.rep.Input = inMeter.Result()
		r.rep.Output = outMeter.Result()
	}()

	for in.Available() > 0 {
		n, err := chunk.Fill(in)
		if err != nil && !errors.Is(err, io.EOF) {
			r.rep.ReadErr = err
			r.logf("read chunk %d: %v", r.rep.Chunks, err)
		}
		if n == 0 {
			break
		}
		r.rep.BytesIn += int64(n)

		samples := chunk.Samples()
		inMeter.Update(samples)
		chain.ProcessBlock(samples)
		if r.boosted(r.rep.Chunks) {
			if r.rep.BoostedFrom < 0 {
				r.rep.BoostedFrom = r.rep.Chunks
			}
			boost(samples, r.p.cfg.BoostGain)
		}
		outMeter.Update(samples)

		r.write(out, chunk.Encode())
		r.rep.Chunks++

		if r.rep.ReadErr != nil {
			break
		}
	}
}

func (r *run) boosted(index int) bool {
	return r.req.Program == BandReject && r.p.cfg.BoostGain != 1 && index > r.p.cfg.BoostAfterChunk
}

// boost multiplies every sample by gain, wrapping on overflow.
func boost(samples []int16, gain int) {
	g := int32(gain)
	for i, s := range samples {
		samples[i] = int16(int32(s) * g)
	}
}

func (r *run) write(out io.Writer, p []byte) {
	n, err := out.Write(p)
	r.rep.BytesOut += int64(n)
	if n < len(p) || err != nil {
		r.rep.ShortWrites++
		r.logf("short write: %d of %d bytes: %v", n, len(p), err)
	}
}
