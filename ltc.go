package ltc

import (
	"fmt"

	"github.com/sithulaka/go-ltc-generator/internal/engine"
	"github.com/sithulaka/go-ltc-generator/internal/wavio"
)

// Generator renders LTC audio for one validated configuration. Generators
// are cheap to create and hold no buffers between calls; create one per
// export.
type Generator struct {
	cfg Config
}

// New creates a generator. The configuration is validated eagerly; no
// generator exists for an invalid configuration.
func New(config *Config) (*Generator, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: *config}, nil
}

// Config returns a copy of the generator's configuration.
func (g *Generator) Config() Config { return g.cfg }

// FrameSamples returns the number of samples spanning one frame,
// truncated from sampleRate/fps.
func (g *Generator) FrameSamples() int {
	return int(float64(g.cfg.SampleRate) / g.cfg.FrameRate.FPS())
}

// TotalSamples returns the output length, floor(duration * sampleRate).
func (g *Generator) TotalSamples() int {
	return int(g.cfg.Duration * float64(g.cfg.SampleRate))
}

// Generate renders the complete signal as normalized float64 samples in
// [-1, 1] and returns it with the sample rate. It performs no I/O; the
// whole buffer for the requested duration is materialized in memory.
func (g *Generator) Generate() ([]float64, int) {
	seq := engine.NewSequencer(engine.Params{
		SampleRate: g.cfg.SampleRate,
		FPS:        g.cfg.FrameRate.FPS(),
		DropFrame:  g.cfg.FrameRate.IsDropFrame(),
		Start: engine.Timecode{
			Hours:   g.cfg.Start.Hours,
			Minutes: g.cfg.Start.Minutes,
			Seconds: g.cfg.Start.Seconds,
			Frames:  g.cfg.Start.Frames,
		},
		Duration: g.cfg.Duration,
	})
	return seq.Run(), g.cfg.SampleRate
}

// WriteWav quantizes samples to the given bit depth and writes them as a
// mono PCM WAV file at path. The write is all-or-nothing: either a
// complete valid file exists afterwards or none does. Errors wrap
// ErrWrite.
func WriteWav(samples []float64, sampleRate, bitDepth int, path string) error {
	if err := wavio.Write(samples, sampleRate, bitDepth, path); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// ExportWav generates the signal and writes it to path.
func (g *Generator) ExportWav(path string) error {
	samples, rate := g.Generate()
	return WriteWav(samples, rate, g.cfg.BitDepth, path)
}
