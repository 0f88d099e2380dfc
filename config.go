package ltc

import (
	"errors"
	"fmt"
)

// Common errors returned by the generator.
var (
	// ErrInvalidConfig indicates an invalid configuration parameter.
	// The wrapped message names the field and its valid range or set.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrRateNotFound indicates an unknown frame rate identifier.
	ErrRateNotFound = errors.New("frame rate not found")

	// ErrWrite indicates the output file could not be created or written.
	ErrWrite = errors.New("wav write failed")
)

// Supported bit depths.
const (
	BitDepth16 = 16
	BitDepth24 = 24
)

// supportedSampleRates lists the accepted output sample rates in Hz.
var supportedSampleRates = []int{44100, 48000, 96000, 192000}

// supportedBitDepths lists the accepted PCM bit depths.
var supportedBitDepths = []int{BitDepth16, BitDepth24}

// SampleRates returns the supported output sample rates in Hz.
func SampleRates() []int {
	out := make([]int, len(supportedSampleRates))
	copy(out, supportedSampleRates)
	return out
}

// BitDepths returns the supported PCM bit depths.
func BitDepths() []int {
	out := make([]int, len(supportedBitDepths))
	copy(out, supportedBitDepths)
	return out
}

// Config holds generator configuration. A Config must pass Validate before
// use; New enforces this, so a *Generator always carries a valid Config.
type Config struct {
	// FrameRate selects the timecode frame rate from the catalog.
	FrameRate FrameRate

	// SampleRate is the output sample rate in Hz.
	// Must be one of 44100, 48000, 96000 or 192000.
	SampleRate int

	// BitDepth is the output PCM bit depth, 16 or 24.
	BitDepth int

	// Start is the first timecode to encode.
	Start Timecode

	// Duration is the length of the generated signal in seconds.
	// Must be greater than zero. Callers serving interactive requests
	// should additionally cap it (the bundled CLI enforces 7200 s) since
	// the whole signal is materialized in memory before writing.
	Duration float64
}

// Validate checks the configuration and returns an error wrapping
// ErrInvalidConfig for the first violation found.
func (c *Config) Validate() error {
	if !intInSet(c.SampleRate, supportedSampleRates) {
		return fmt.Errorf("%w: sample rate must be one of %v, got %d",
			ErrInvalidConfig, supportedSampleRates, c.SampleRate)
	}

	if !intInSet(c.BitDepth, supportedBitDepths) {
		return fmt.Errorf("%w: bit depth must be one of %v, got %d",
			ErrInvalidConfig, supportedBitDepths, c.BitDepth)
	}

	if c.Start.Hours < 0 || c.Start.Hours > 23 {
		return fmt.Errorf("%w: hours must be between 0 and 23, got %d",
			ErrInvalidConfig, c.Start.Hours)
	}

	if c.Start.Minutes < 0 || c.Start.Minutes > 59 {
		return fmt.Errorf("%w: minutes must be between 0 and 59, got %d",
			ErrInvalidConfig, c.Start.Minutes)
	}

	if c.Start.Seconds < 0 || c.Start.Seconds > 59 {
		return fmt.Errorf("%w: seconds must be between 0 and 59, got %d",
			ErrInvalidConfig, c.Start.Seconds)
	}

	if !c.FrameRate.valid() {
		return fmt.Errorf("%w: unknown frame rate %d", ErrInvalidConfig, c.FrameRate)
	}

	// The frame bound truncates fractional rates: 29.97 fps allows 0-28.
	if maxFrames := int(c.FrameRate.FPS()); c.Start.Frames < 0 || c.Start.Frames >= maxFrames {
		return fmt.Errorf("%w: frames must be less than %d for %s, got %d",
			ErrInvalidConfig, maxFrames, c.FrameRate.DisplayName(), c.Start.Frames)
	}

	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration must be greater than 0, got %g",
			ErrInvalidConfig, c.Duration)
	}

	return nil
}

func intInSet(v int, set []int) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}
