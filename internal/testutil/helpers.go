// Package testutil provides reusable test helpers for LTC generator tests,
// including inverse decoders for frame words and biphase mark audio.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sithulaka/go-ltc-generator/internal/engine"
)

// DecodedWord holds the fields recovered from an 80-bit LTC word.
type DecodedWord struct {
	Timecode  engine.Timecode
	DropFrame bool
	SyncOK    bool
}

// DecodeWord recovers the timecode digits, drop-frame flag and sync word
// from w, inverting the layout used by engine.BuildWord.
func DecodeWord(w engine.Word) DecodedWord {
	return DecodedWord{
		Timecode: engine.Timecode{
			Frames:  bitsValue(w, 0, 4) + 10*bitsValue(w, 8, 2),
			Seconds: bitsValue(w, 12, 4) + 10*bitsValue(w, 20, 3),
			Minutes: bitsValue(w, 24, 4) + 10*bitsValue(w, 32, 3),
			Hours:   bitsValue(w, 36, 4) + 10*bitsValue(w, 44, 2),
		},
		DropFrame: w[10] == 1,
		SyncOK:    bitsValue(w, 64, 16) == engine.SyncWord,
	}
}

// bitsValue reads an LSB-first field of count bits starting at pos.
func bitsValue(w engine.Word, pos, count int) int {
	v := 0
	for i := range count {
		v |= int(w[pos+i]) << i
	}
	return v
}

// DemodulateFrame recovers the 80 bits of one biphase-mark frame from its
// samples. incomingLevel is the signal level preceding the frame's first
// sample (+1 at the very start of a generated signal). A bit is a '1' when
// the level at its cell boundary differs from the level that ended the
// previous cell. Returns the bits and the level after the frame's last
// modulated sample.
func DemodulateFrame(samples []float64, bitSamples int, incomingLevel float64) (bits [engine.WordBits]byte, endLevel float64) {
	level := incomingLevel
	for bit := range engine.WordBits {
		start := bit * bitSamples
		mid := start + bitSamples/2

		if samples[start] != level {
			bits[bit] = 1
		}
		// The half-cell after the midpoint ends the cell.
		level = samples[mid]
	}
	return bits, level
}

// AssertAllInRange verifies that all elements are within [minVal, maxVal].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertIntsInRange verifies that all elements are within [minVal, maxVal].
func AssertIntsInRange(t *testing.T, s []int, minVal, maxVal int) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%d is outside range [%d, %d]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}
