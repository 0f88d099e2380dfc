package engine

// Modulator converts LTC words into biphase-mark-coded sample spans.
// It owns the running signal level, which must persist across frames:
// a decoder counts transitions, so resetting the level between frames
// would insert or swallow one.
type Modulator struct {
	frameSamples int
	bitSamples   int
	level        float64
	frame        []float64
}

// NewModulator creates a modulator for the given output rate and frame
// rate. Both the frame length and the bit-cell length use truncating
// division; the few remainder samples per frame stay at zero rather than
// being carried forward, matching the generator's reference timing.
func NewModulator(sampleRate int, fps float64) *Modulator {
	frameSamples := int(float64(sampleRate) / fps)
	return &Modulator{
		frameSamples: frameSamples,
		bitSamples:   frameSamples / WordBits,
		level:        1.0,
		frame:        make([]float64, frameSamples),
	}
}

// FrameSamples returns the number of samples spanning one frame.
func (m *Modulator) FrameSamples() int { return m.frameSamples }

// BitSamples returns the number of samples spanning one bit cell.
func (m *Modulator) BitSamples() int { return m.bitSamples }

// Level returns the current signal level, ±1.
func (m *Modulator) Level() float64 { return m.level }

// Modulate renders one frame of biphase mark audio for w. A '1' bit flips
// the level at its cell boundary; every bit flips at the cell midpoint.
// The returned slice is reused by the next call.
func (m *Modulator) Modulate(w Word) []float64 {
	buf := m.frame
	// Zero the tail left over from truncating the bit-cell width.
	for i := WordBits * m.bitSamples; i < len(buf); i++ {
		buf[i] = 0
	}

	for bit := range WordBits {
		start := bit * m.bitSamples
		mid := start + m.bitSamples/2
		end := start + m.bitSamples

		if w[bit] == 1 {
			m.level = -m.level
		}
		fill(buf[start:mid], m.level)

		m.level = -m.level
		fill(buf[mid:end], m.level)
	}

	return buf
}

func fill(dst []float64, v float64) {
	for i := range dst {
		dst[i] = v
	}
}
