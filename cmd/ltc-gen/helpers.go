package main

import (
	"fmt"
	"io"

	ltc "github.com/sithulaka/go-ltc-generator"
)

// buildConfig resolves CLI parameters into a generator configuration,
// applying the user-facing bounds before the library's own validation.
func buildConfig(rateName string, sampleRate, bitDepth int, start string, duration float64) (*ltc.Config, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("duration must be greater than 0, got %g", duration)
	}
	if duration > maxDurationSeconds {
		return nil, fmt.Errorf("duration cannot exceed %d seconds (2 hours), got %g", maxDurationSeconds, duration)
	}

	rate, err := ltc.RateByName(rateName)
	if err != nil {
		return nil, fmt.Errorf("%w (use -list to see available rates)", err)
	}

	startTC, err := ltc.ParseTimecode(start)
	if err != nil {
		return nil, err
	}

	if maxFrames := int(rate.FPS()); startTC.Frames >= maxFrames {
		return nil, fmt.Errorf("frame number must be less than %d for %s, got %d",
			maxFrames, rate.DisplayName(), startTC.Frames)
	}

	return &ltc.Config{
		FrameRate:  rate,
		SampleRate: sampleRate,
		BitDepth:   bitDepth,
		Start:      startTC,
		Duration:   duration,
	}, nil
}

// printRates writes the frame rate catalog in declaration order.
func printRates(w io.Writer) {
	fmt.Fprintf(w, "Available frame rates:\n")
	for _, r := range ltc.ListRates() {
		fmt.Fprintf(w, "  %-14s %s\n", r.Name, r.Display)
	}
}
