package ltc

import "fmt"

// FrameRate identifies one of the ten standard frame rates. The set is
// closed: drop-frame variants exist only for 29.97 and 59.94 fps.
type FrameRate int

const (
	// Rate23976 is 24000/1001 fps, non-drop (film for NTSC distribution).
	Rate23976 FrameRate = iota

	// Rate24 is 24 fps, non-drop (film).
	Rate24

	// Rate25 is 25 fps, non-drop (PAL).
	Rate25

	// Rate2997 is 30000/1001 fps, non-drop (NTSC).
	Rate2997

	// Rate30 is 30 fps, non-drop.
	Rate30

	// Rate50 is 50 fps, non-drop.
	Rate50

	// Rate5994 is 60000/1001 fps, non-drop.
	Rate5994

	// Rate60 is 60 fps, non-drop.
	Rate60

	// Rate2997Drop is 30000/1001 fps with drop-frame numbering.
	Rate2997Drop

	// Rate5994Drop is 60000/1001 fps with drop-frame numbering.
	Rate5994Drop
)

// rateInfo holds the immutable attributes of one catalog entry.
type rateInfo struct {
	name    string
	num     int
	den     int
	drop    bool
	display string
}

// rateTable is the catalog, indexed by FrameRate in declaration order.
var rateTable = [...]rateInfo{
	Rate23976:    {"FR_23_976_NDF", 24000, 1001, false, "23.976 fps NDF"},
	Rate24:       {"FR_24_NDF", 24, 1, false, "24 fps NDF"},
	Rate25:       {"FR_25_NDF", 25, 1, false, "25 fps NDF"},
	Rate2997:     {"FR_29_97_NDF", 30000, 1001, false, "29.97 fps NDF"},
	Rate30:       {"FR_30_NDF", 30, 1, false, "30 fps NDF"},
	Rate50:       {"FR_50_NDF", 50, 1, false, "50 fps NDF"},
	Rate5994:     {"FR_59_94_NDF", 60000, 1001, false, "59.94 fps NDF"},
	Rate60:       {"FR_60_NDF", 60, 1, false, "60 fps NDF"},
	Rate2997Drop: {"FR_29_97_DF", 30000, 1001, true, "29.97 fps DF"},
	Rate5994Drop: {"FR_59_94_DF", 60000, 1001, true, "59.94 fps DF"},
}

// valid reports whether r is a catalog entry.
func (r FrameRate) valid() bool {
	return r >= 0 && int(r) < len(rateTable)
}

// FPS returns the actual frames per second (numerator/denominator).
// Non-integer for the fractional rates, e.g. 30000/1001 ≈ 29.97.
func (r FrameRate) FPS() float64 {
	return float64(rateTable[r].num) / float64(rateTable[r].den)
}

// Fraction returns the exact frame rate as a numerator/denominator pair.
func (r FrameRate) Fraction() (num, den int) {
	return rateTable[r].num, rateTable[r].den
}

// IsDropFrame reports whether r uses drop-frame numbering.
func (r FrameRate) IsDropFrame() bool {
	return rateTable[r].drop
}

// Name returns the stable identifier used for lookups, e.g. "FR_29_97_DF".
func (r FrameRate) Name() string {
	return rateTable[r].name
}

// DisplayName returns the human-readable name, e.g. "29.97 fps DF".
func (r FrameRate) DisplayName() string {
	return rateTable[r].display
}

// MaxFrameNumber returns the largest valid frame component for r.
// Fractional rates truncate, so 29.97 fps allows frames 0 through 28.
func (r FrameRate) MaxFrameNumber() int {
	return int(r.FPS()) - 1
}

// RateByName resolves a frame rate by its identifier. The match is exact
// and case-sensitive; unknown names return an error wrapping
// ErrRateNotFound.
func RateByName(name string) (FrameRate, error) {
	for r, info := range rateTable {
		if info.name == name {
			return FrameRate(r), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrRateNotFound, name)
}

// RateInfo describes one catalog entry for presentation to callers.
type RateInfo struct {
	// Name is the identifier accepted by RateByName.
	Name string

	// Display is the human-readable name.
	Display string
}

// ListRates returns all frame rates in declaration order.
func ListRates() []RateInfo {
	out := make([]RateInfo, len(rateTable))
	for i, info := range rateTable {
		out[i] = RateInfo{Name: info.name, Display: info.display}
	}
	return out
}
