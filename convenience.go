package ltc

import (
	"fmt"
	"strings"
)

// Common sample rates for convenience constructors.
const (
	// RateCD is the CD quality sample rate.
	RateCD = 44100

	// RateVideo is the video production sample rate.
	RateVideo = 48000

	// RateHiRes96 is the high-resolution 2x video sample rate.
	RateHiRes96 = 96000

	// RateHiRes192 is the very high resolution 4x video sample rate.
	RateHiRes192 = 192000
)

// NewFilm creates a 24 fps generator, the common film setup.
func NewFilm(sampleRate, bitDepth int, start Timecode, duration float64) (*Generator, error) {
	return New(&Config{
		FrameRate:  Rate24,
		SampleRate: sampleRate,
		BitDepth:   bitDepth,
		Start:      start,
		Duration:   duration,
	})
}

// NewPAL creates a 25 fps generator for PAL/EBU production.
func NewPAL(sampleRate, bitDepth int, start Timecode, duration float64) (*Generator, error) {
	return New(&Config{
		FrameRate:  Rate25,
		SampleRate: sampleRate,
		BitDepth:   bitDepth,
		Start:      start,
		Duration:   duration,
	})
}

// NewNTSC creates a 29.97 fps non-drop generator.
func NewNTSC(sampleRate, bitDepth int, start Timecode, duration float64) (*Generator, error) {
	return New(&Config{
		FrameRate:  Rate2997,
		SampleRate: sampleRate,
		BitDepth:   bitDepth,
		Start:      start,
		Duration:   duration,
	})
}

// NewBroadcastDF creates a 29.97 fps drop-frame generator, the common US
// broadcast setup.
func NewBroadcastDF(sampleRate, bitDepth int, start Timecode, duration float64) (*Generator, error) {
	return New(&Config{
		FrameRate:  Rate2997Drop,
		SampleRate: sampleRate,
		BitDepth:   bitDepth,
		Start:      start,
		Duration:   duration,
	})
}

// DefaultFilename builds a descriptive output filename from the
// configuration, for example
// "LTC_10-30-15-00_1m00s_29.97fpsdf_24bit_48khz.wav".
func DefaultFilename(cfg *Config) string {
	timeStr := fmt.Sprintf("%02d-%02d-%02d-%02d",
		cfg.Start.Hours, cfg.Start.Minutes, cfg.Start.Seconds, cfg.Start.Frames)

	durationMins := int(cfg.Duration) / 60
	durationSecs := int(cfg.Duration) % 60
	durationStr := fmt.Sprintf("%dm%02ds", durationMins, durationSecs)

	fpsStr := strings.ToLower(strings.ReplaceAll(cfg.FrameRate.DisplayName(), " ", ""))

	var rateStr string
	if cfg.SampleRate >= 1000 {
		rateStr = fmt.Sprintf("%dkhz", cfg.SampleRate/1000)
	} else {
		rateStr = fmt.Sprintf("%dhz", cfg.SampleRate)
	}

	return fmt.Sprintf("LTC_%s_%s_%s_%dbit_%s.wav", timeStr, durationStr, fpsStr, cfg.BitDepth, rateStr)
}
