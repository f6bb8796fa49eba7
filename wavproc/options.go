package wavproc

import (
	"io"
	"log"

	"github.com/cwbudde/algo-wavfilter/display"
	"github.com/cwbudde/algo-wavfilter/dsp/buffer"
)

// Config holds the processing settings of a Processor.
type Config struct {
	// SampleRate is used for coefficient design unless HeaderSampleRate
	// is set and the input header carries a non-zero rate.
	SampleRate        float64
	ButterworthStages int
	NotchStages       int
	ChunkBytes        int
	// BoostAfterChunk is the last zero-based chunk index left unboosted
	// by the band-reject program.
	BoostAfterChunk  int
	BoostGain        int
	HeaderSampleRate bool

	Logger   *log.Logger
	Display  display.Display
	Observer Observer
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings of the stock programs.
func DefaultConfig() Config {
	return Config{
		SampleRate:        44100,
		ButterworthStages: 3,
		NotchStages:       2,
		ChunkBytes:        buffer.DefaultChunkBytes,
		BoostAfterChunk:   10,
		BoostGain:         3,
		Logger:            log.Default(),
		Display:           display.Nop{},
	}
}

// WithSampleRate sets the design sample rate.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithStages sets the number of sections of the Butterworth and notch
// cascades.
func WithStages(butterworth, notch int) Option {
	return func(cfg *Config) {
		if butterworth > 0 {
			cfg.ButterworthStages = butterworth
		}
		if notch > 0 {
			cfg.NotchStages = notch
		}
	}
}

// WithChunkBytes sets the chunk size. Odd sizes are rounded down.
func WithChunkBytes(n int) Option {
	return func(cfg *Config) {
		if n >= 2 {
			cfg.ChunkBytes = n &^ 1
		}
	}
}

// WithBoost sets the band-reject boost: chunks with an index greater than
// afterChunk are multiplied by gain. A gain of 1 disables the boost.
func WithBoost(afterChunk, gain int) Option {
	return func(cfg *Config) {
		if afterChunk >= 0 {
			cfg.BoostAfterChunk = afterChunk
		}
		if gain > 0 {
			cfg.BoostGain = gain
		}
	}
}

// WithHeaderSampleRate makes runs design their filters for the sample rate
// stored in the input header.
func WithHeaderSampleRate(enabled bool) Option {
	return func(cfg *Config) {
		cfg.HeaderSampleRate = enabled
	}
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *log.Logger) Option {
	return func(cfg *Config) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		cfg.Logger = l
	}
}

// WithDisplay sets the display that shows run progress.
func WithDisplay(d display.Display) Option {
	return func(cfg *Config) {
		if d != nil {
			cfg.Display = d
		}
	}
}

// WithObserver registers a hook that receives every state transition.
func WithObserver(o Observer) Option {
	return func(cfg *Config) {
		cfg.Observer = o
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
