// Command ltc-gen generates SMPTE/EBU Linear Timecode audio as a WAV file.
//
// Usage:
//
//	ltc-gen -rate FR_25_NDF -start 10:00:00:00 -duration 60 -o ltc.wav
//	ltc-gen -rate FR_29_97_DF -samplerate 96000 -bits 24 -duration 300
//	ltc-gen -list                                # print the frame rate catalog
//
// When -o is omitted the output filename is derived from the parameters,
// e.g. LTC_10-00-00-00_1m00s_25fpsndf_24bit_48khz.wav in the current
// directory.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	ltc "github.com/sithulaka/go-ltc-generator"
)

const (
	// Caller-side bounds on requested duration. The whole signal is held
	// in memory before writing, so interactive use is capped at 2 hours.
	maxDurationSeconds = 7200

	defaultRateName   = "FR_25_NDF"
	defaultSampleRate = 48000
	defaultBitDepth   = 24
	defaultStart      = "00:00:00:00"
	defaultDuration   = 60.0
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rateName := flag.String("rate", defaultRateName, "Frame rate identifier (see -list)")
	sampleRate := flag.Int("samplerate", defaultSampleRate, "Output sample rate in Hz (44100, 48000, 96000, 192000)")
	bitDepth := flag.Int("bits", defaultBitDepth, "Output bit depth (16 or 24)")
	start := flag.String("start", defaultStart, "Start timecode as HH:MM:SS:FF")
	duration := flag.Float64("duration", defaultDuration, "Duration in seconds (max 7200)")
	output := flag.String("o", "", "Output WAV path (default: derived filename in current directory)")
	list := flag.Bool("list", false, "List available frame rates and exit")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Usage = usage
	flag.Parse()

	if *list {
		printRates(os.Stdout)
		return nil
	}

	cfg, err := buildConfig(*rateName, *sampleRate, *bitDepth, *start, *duration)
	if err != nil {
		return err
	}

	outputPath := *output
	if outputPath == "" {
		outputPath = ltc.DefaultFilename(cfg)
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	gen, err := ltc.New(cfg)
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Frame rate: %s (%.3f fps)", cfg.FrameRate.DisplayName(), cfg.FrameRate.FPS())
		log.Printf("Sample rate: %d Hz, %d-bit", cfg.SampleRate, cfg.BitDepth)
		log.Printf("Start: %s, duration: %gs", cfg.Start, cfg.Duration)
		log.Printf("Output: %s", outputPath)
	}

	begin := time.Now()
	if err := gen.ExportWav(outputPath); err != nil {
		return err
	}
	elapsed := time.Since(begin)

	fmt.Printf("Generated %s\n", outputPath)
	fmt.Printf("  %s at %s, %gs\n", cfg.Start, cfg.FrameRate.DisplayName(), cfg.Duration)
	fmt.Printf("  %d samples (%d Hz, %d-bit mono), wrote in %.2fs\n",
		gen.TotalSamples(), cfg.SampleRate, cfg.BitDepth, elapsed.Seconds())

	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  %s -rate FR_25_NDF -start 10:00:00:00 -duration 60 -o ltc.wav\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s -rate FR_29_97_DF -samplerate 96000 -bits 24 -duration 300\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s -list\n", os.Args[0])
}
