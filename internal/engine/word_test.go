package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fieldBits reads an LSB-first field of count bits starting at pos.
func fieldBits(w Word, pos, count int) int {
	v := 0
	for i := range count {
		v |= int(w[pos+i]) << i
	}
	return v
}

// TestBuildWord_FieldLayout verifies each field of the 80-bit word for a
// timecode exercising every digit position.
func TestBuildWord_FieldLayout(t *testing.T) {
	tc := Timecode{Hours: 12, Minutes: 34, Seconds: 56, Frames: 17}
	w := BuildWord(tc, false)

	assert.Equal(t, 7, fieldBits(w, frameUnitsPos, unitsBits), "frame units")
	assert.Equal(t, 1, fieldBits(w, frameTensPos, frameTensBits), "frame tens")
	assert.Equal(t, byte(0), w[dropFramePos], "drop frame flag")
	assert.Equal(t, 6, fieldBits(w, secondsUnitsPos, unitsBits), "seconds units")
	assert.Equal(t, 5, fieldBits(w, secondsTensPos, secondsTensBits), "seconds tens")
	assert.Equal(t, 4, fieldBits(w, minutesUnitsPos, unitsBits), "minutes units")
	assert.Equal(t, 3, fieldBits(w, minutesTensPos, minutesTensBits), "minutes tens")
	assert.Equal(t, 2, fieldBits(w, hoursUnitsPos, unitsBits), "hours units")
	assert.Equal(t, 1, fieldBits(w, hoursTensPos, hoursTensBits), "hours tens")
	assert.Equal(t, SyncWord, fieldBits(w, syncPos, syncBits), "sync word")
}

// TestBuildWord_ZeroFilledBits verifies that user bits, flag bits and the
// reserved region stay zero. Bits 48-63 are intentionally zero even though
// the formal SMPTE layout starts the sync pattern at bit 59; the generator
// keeps the legacy 64-79 sync placement.
func TestBuildWord_ZeroFilledBits(t *testing.T) {
	w := BuildWord(Timecode{Hours: 23, Minutes: 59, Seconds: 59, Frames: 29}, false)

	zeroBits := [][2]int{
		{4, 8},   // user bits 1
		{11, 12}, // color frame flag
		{16, 20}, // user bits 2
		{23, 24}, // binary group flag
		{28, 32}, // user bits 3
		{35, 36}, // binary group flag
		{40, 44}, // user bits 4
		{46, 48}, // binary group flag, polarity correction
		{48, 64}, // reserved region before the sync word
	}
	for _, r := range zeroBits {
		for bit := r[0]; bit < r[1]; bit++ {
			assert.Equal(t, byte(0), w[bit], "bit %d should be zero", bit)
		}
	}
}

// TestBuildWord_SyncPattern verifies the transmitted sync bit sequence.
func TestBuildWord_SyncPattern(t *testing.T) {
	w := BuildWord(Timecode{}, false)

	// 0x3FFD LSB-first: 1011111111111100.
	want := []byte{1, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0}
	require.Len(t, want, syncBits)
	for i, b := range want {
		assert.Equal(t, b, w[syncPos+i], "sync bit %d", i)
	}
}

// TestBuildWord_DropFrameDigits verifies that frame numbers 0 and 1 are
// skipped at the start of non-multiple-of-ten minutes, and only there.
func TestBuildWord_DropFrameDigits(t *testing.T) {
	tests := []struct {
		name       string
		tc         Timecode
		wantFrames int
	}{
		{"minute_1_frame_0_skipped", Timecode{Minutes: 1}, 2},
		{"minute_1_frame_1_skipped", Timecode{Minutes: 1, Frames: 1}, 3},
		{"minute_1_frame_2_unchanged", Timecode{Minutes: 1, Frames: 2}, 2},
		{"minute_0_frame_0_unchanged", Timecode{}, 0},
		{"minute_0_frame_1_unchanged", Timecode{Frames: 1}, 1},
		{"minute_10_frame_0_unchanged", Timecode{Minutes: 10}, 0},
		{"minute_21_frame_1_skipped", Timecode{Minutes: 21, Frames: 1}, 3},
		{"second_1_frame_0_unchanged", Timecode{Minutes: 1, Seconds: 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := BuildWord(tt.tc, true)

			gotFrames := fieldBits(w, frameUnitsPos, unitsBits) + 10*fieldBits(w, frameTensPos, frameTensBits)
			assert.Equal(t, tt.wantFrames, gotFrames, "encoded frame digits")
			assert.Equal(t, byte(1), w[dropFramePos], "drop frame flag")
		})
	}
}

// TestBuildWord_DoesNotMutateTimecode verifies that drop-frame compensation
// changes only the encoded digits.
func TestBuildWord_DoesNotMutateTimecode(t *testing.T) {
	tc := Timecode{Minutes: 1, Frames: 1}
	_ = BuildWord(tc, true)
	assert.Equal(t, Timecode{Minutes: 1, Frames: 1}, tc)
}

// TestTimecode_Next verifies frame carry through seconds, minutes, hours
// and the 24-hour wrap.
func TestTimecode_Next(t *testing.T) {
	const fps30 = 30

	tests := []struct {
		name string
		tc   Timecode
		fps  int
		want Timecode
	}{
		{"frame_increment", Timecode{Frames: 3}, fps30, Timecode{Frames: 4}},
		{"seconds_carry", Timecode{Frames: 29}, fps30, Timecode{Seconds: 1}},
		{"minutes_carry", Timecode{Seconds: 59, Frames: 29}, fps30, Timecode{Minutes: 1}},
		{"hours_carry", Timecode{Minutes: 59, Seconds: 59, Frames: 29}, fps30, Timecode{Hours: 1}},
		{"day_wrap", Timecode{Hours: 23, Minutes: 59, Seconds: 59, Frames: 29}, fps30, Timecode{}},
		{"truncated_2997_carry", Timecode{Frames: 28}, 29, Timecode{Seconds: 1}},
		{"fps25_carry", Timecode{Frames: 24}, 25, Timecode{Seconds: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tc.Next(tt.fps))
		})
	}
}
