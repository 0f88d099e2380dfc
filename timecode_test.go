package ltc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTimecode_String verifies zero-padded HH:MM:SS:FF formatting.
func TestTimecode_String(t *testing.T) {
	tests := []struct {
		name string
		tc   Timecode
		want string
	}{
		{"zero", Timecode{}, "00:00:00:00"},
		{"padded", Timecode{Hours: 1, Minutes: 2, Seconds: 3, Frames: 4}, "01:02:03:04"},
		{"max", Timecode{Hours: 23, Minutes: 59, Seconds: 59, Frames: 29}, "23:59:59:29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tc.String())
		})
	}
}

// TestParseTimecode verifies parsing and its structural errors.
func TestParseTimecode(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Timecode
		wantErr bool
	}{
		{"valid", "10:30:15:12", Timecode{Hours: 10, Minutes: 30, Seconds: 15, Frames: 12}, false},
		{"zero", "00:00:00:00", Timecode{}, false},
		{"three_components", "10:30:15", Timecode{}, true},
		{"five_components", "10:30:15:12:00", Timecode{}, true},
		{"non_numeric", "10:30:xx:12", Timecode{}, true},
		{"empty", "", Timecode{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimecode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
