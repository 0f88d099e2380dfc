package engine

// Params configures a Sequencer. Values are assumed validated by the
// caller.
type Params struct {
	// SampleRate is the output rate in Hz.
	SampleRate int

	// FPS is the exact frame rate, e.g. 30000/1001.
	FPS float64

	// DropFrame enables drop-frame digit numbering.
	DropFrame bool

	// Start is the first timecode to encode.
	Start Timecode

	// Duration is the requested signal length in seconds.
	Duration float64
}

// Sequencer drives the generation loop: build a word for the current
// timecode, modulate it, append it to the output, advance by one frame,
// until the requested sample count is filled.
type Sequencer struct {
	mod          *Modulator
	tc           Timecode
	dropFrame    bool
	framesPerSec int
	totalSamples int
}

// NewSequencer creates a sequencer for the given parameters.
func NewSequencer(p Params) *Sequencer {
	return &Sequencer{
		mod:          NewModulator(p.SampleRate, p.FPS),
		tc:           p.Start,
		dropFrame:    p.DropFrame,
		framesPerSec: int(p.FPS),
		totalSamples: int(p.Duration * float64(p.SampleRate)),
	}
}

// TotalSamples returns the output length, floor(duration * sampleRate).
func (s *Sequencer) TotalSamples() int { return s.totalSamples }

// Run materializes the whole signal. The final frame is truncated when the
// duration is not an exact multiple of the frame period, so the result
// always has exactly TotalSamples samples.
func (s *Sequencer) Run() []float64 {
	out := make([]float64, s.totalSamples)
	pos := 0
	for pos < s.totalSamples {
		frame := s.mod.Modulate(BuildWord(s.tc, s.dropFrame))
		pos += copy(out[pos:], frame)
		s.tc = s.tc.Next(s.framesPerSec)
	}
	return out
}
