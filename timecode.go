package ltc

import (
	"fmt"
	"strconv"
	"strings"
)

// timecodeComponents is the number of fields in HH:MM:SS:FF notation.
const timecodeComponents = 4

// Timecode is an absolute position on a 24-hour timeline, expressed as
// hours, minutes, seconds and frames. The zero value is 00:00:00:00.
type Timecode struct {
	Hours   int
	Minutes int
	Seconds int
	Frames  int
}

// String formats the timecode as "HH:MM:SS:FF".
func (t Timecode) String() string {
	return fmt.Sprintf("%02d:%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds, t.Frames)
}

// ParseTimecode parses "HH:MM:SS:FF" notation. It requires exactly four
// colon-separated decimal components; range checks against a frame rate
// happen later, during Config validation.
func ParseTimecode(s string) (Timecode, error) {
	parts := strings.Split(s, ":")
	if len(parts) != timecodeComponents {
		return Timecode{}, fmt.Errorf("%w: start timecode must have 4 components (HH:MM:SS:FF), got %q",
			ErrInvalidConfig, s)
	}

	vals := make([]int, timecodeComponents)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return Timecode{}, fmt.Errorf("%w: start timecode component %q is not a number", ErrInvalidConfig, p)
		}
		vals[i] = v
	}

	return Timecode{Hours: vals[0], Minutes: vals[1], Seconds: vals[2], Frames: vals[3]}, nil
}
