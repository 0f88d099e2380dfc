package engine

// WordBits is the number of bits in one LTC frame word.
const WordBits = 80

// SyncWord is the fixed pattern marking the end of every frame word,
// transmitted LSB-first as 0011111111111101.
const SyncWord = 0x3FFD

// Bit positions of the LTC word fields. Each field is written LSB-first
// starting at its position. Positions not listed carry user bits, flag
// bits or reserved zeros.
const (
	frameUnitsPos   = 0
	frameTensPos    = 8
	dropFramePos    = 10
	secondsUnitsPos = 12
	secondsTensPos  = 20
	minutesUnitsPos = 24
	minutesTensPos  = 32
	hoursUnitsPos   = 36
	hoursTensPos    = 44
	syncPos         = 64
)

// Field widths in bits.
const (
	unitsBits       = 4
	frameTensBits   = 2
	secondsTensBits = 3
	minutesTensBits = 3
	hoursTensBits   = 2
	syncBits        = 16
)

// Timecode carry limits.
const (
	secondsPerMinute = 60
	minutesPerHour   = 60
	hoursPerDay      = 24
)
