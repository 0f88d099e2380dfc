// Package ltc generates SMPTE/EBU Linear Timecode (LTC) audio in pure Go.
//
// Linear Timecode encodes an hours:minutes:seconds:frames position as a
// biphase-mark-modulated audio signal. Each video frame is represented by an
// 80-bit data word whose bits are modulated into level transitions: every bit
// cell has a transition at its boundary, and an additional mid-cell transition
// encodes a '1'. The resulting signal is written as single-channel
// uncompressed PCM WAV and is readable by standard timecode-consuming
// equipment (cameras, recorders, sync boxes).
//
// # Features
//
//   - All ten standard frame rates from 23.976 to 60 fps, including the
//     29.97 and 59.94 drop-frame variants
//   - Drop-frame digit compensation per the SMPTE numbering policy
//   - Sample rates of 44.1, 48, 96 and 192 kHz at 16- or 24-bit depth
//   - Phase-continuous modulation across frame boundaries
//   - WAV output via github.com/go-audio/wav with atomic file replacement
//
// # Quick Start
//
// Generate one minute of 25 fps timecode starting at 10:00:00:00:
//
//	cfg := &ltc.Config{
//	    FrameRate:  ltc.Rate25,
//	    SampleRate: 48000,
//	    BitDepth:   24,
//	    Start:      ltc.Timecode{Hours: 10},
//	    Duration:   60,
//	}
//	gen, err := ltc.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := gen.ExportWav("ltc.wav"); err != nil {
//	    log.Fatal(err)
//	}
//
// For callers that need the raw signal, [Generator.Generate] returns the
// normalized float64 samples without touching the filesystem, and [WriteWav]
// performs only the serialization step.
//
// # Frame Rates
//
// Frame rates form a closed catalog; [RateByName] resolves the wire names
// used by front-ends (for example "FR_29_97_DF") and [ListRates] enumerates
// the catalog in declaration order for presentation.
//
// # Thread Safety
//
// Generators share no mutable state. Concurrent calls to
// [Generator.Generate] or [Generator.ExportWav] on distinct generators are
// safe without coordination; each call owns its sample buffer from creation
// to write completion.
package ltc
