// Package engine implements the LTC signal path: frame word assembly,
// biphase mark modulation and the frame-by-frame generation loop. The
// public package wraps it behind a validated configuration; everything here
// assumes arguments are already range-checked.
package engine

// Word is one 80-bit LTC frame word in transmission order: index 0 is
// transmitted first, and multi-bit fields are stored LSB-first.
type Word [WordBits]byte

// Timecode is the engine's view of an hours:minutes:seconds:frames
// position. Values are assumed in range.
type Timecode struct {
	Hours   int
	Minutes int
	Seconds int
	Frames  int
}

// Next returns the timecode advanced by one frame, carrying
// frames→seconds→minutes→hours and wrapping hours at 24.
// framesPerSecond is the truncated nominal rate, e.g. 29 for 29.97 fps.
func (t Timecode) Next(framesPerSecond int) Timecode {
	t.Frames++
	if t.Frames < framesPerSecond {
		return t
	}
	t.Frames = 0
	t.Seconds++
	if t.Seconds < secondsPerMinute {
		return t
	}
	t.Seconds = 0
	t.Minutes++
	if t.Minutes < minutesPerHour {
		return t
	}
	t.Minutes = 0
	t.Hours++
	if t.Hours >= hoursPerDay {
		t.Hours = 0
	}
	return t
}

// BuildWord assembles the 80-bit LTC word for tc. When dropFrame is set,
// the frame digits are adjusted per the drop-frame numbering rule and bit
// 10 is raised; the timecode itself is never modified.
//
// Bits 48-63 stay zero and the sync word occupies bits 64-79. The formal
// SMPTE layout starts the sync pattern at bit 59; this generator keeps the
// 64-79 placement for byte-for-byte compatibility with existing output.
func BuildWord(tc Timecode, dropFrame bool) Word {
	frames := tc.Frames
	if dropFrame {
		frames = dropFrameNumber(tc)
	}

	var w Word
	putBits(&w, frameUnitsPos, unitsBits, frames%10)
	putBits(&w, frameTensPos, frameTensBits, frames/10)
	if dropFrame {
		w[dropFramePos] = 1
	}
	putBits(&w, secondsUnitsPos, unitsBits, tc.Seconds%10)
	putBits(&w, secondsTensPos, secondsTensBits, tc.Seconds/10)
	putBits(&w, minutesUnitsPos, unitsBits, tc.Minutes%10)
	putBits(&w, minutesTensPos, minutesTensBits, tc.Minutes/10)
	putBits(&w, hoursUnitsPos, unitsBits, tc.Hours%10)
	putBits(&w, hoursTensPos, hoursTensBits, tc.Hours/10)
	putBits(&w, syncPos, syncBits, SyncWord)
	return w
}

// dropFrameNumber applies drop-frame compensation to the encoded frame
// digits. Frame numbers 0 and 1 are skipped at the start of every minute
// that is not a multiple of ten; only the digits change, never the elapsed
// frame count.
func dropFrameNumber(tc Timecode) int {
	if tc.Seconds == 0 && tc.Frames < 2 && tc.Minutes%10 != 0 {
		return tc.Frames + 2
	}
	return tc.Frames
}

// putBits writes value into w LSB-first at pos.
func putBits(w *Word, pos, count, value int) {
	for i := range count {
		w[pos+i] = byte((value >> i) & 1)
	}
}
