// Package wavio serializes normalized float samples to mono PCM WAV files.
package wavio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	monoChannels = 1
	pcmFormat    = 1 // WAV audio format tag for uncompressed PCM

	bitsPerSample16 = 16
	bitsPerSample24 = 24

	// One-sided full-scale values. Amplitudes are ±1.0 at most, so no
	// clipping guard is needed.
	maxInt16 = 32767
	maxInt24 = 8388607
)

// Quantize scales normalized [-1, 1] samples to signed integers at the
// given bit depth: ±32767 for 16-bit, ±8388607 for 24-bit.
func Quantize(samples []float64, bitDepth int) ([]int, error) {
	maxVal, err := fullScale(bitDepth)
	if err != nil {
		return nil, err
	}

	out := make([]int, len(samples))
	for i, s := range samples {
		out[i] = int(s * maxVal)
	}
	return out, nil
}

// Write quantizes samples and writes them as a single-channel
// little-endian PCM WAV file at path. The data goes to a temporary file in
// the target directory first and is renamed into place on success, so a
// partial write never leaves a corrupt file under the target name.
func Write(samples []float64, sampleRate, bitDepth int, path string) error {
	data, err := Quantize(samples, bitDepth)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".ltc-*.wav.tmp")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := encode(tmp, data, sampleRate, bitDepth); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close output file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to finalize output file: %w", err)
	}

	return nil
}

// encode writes the WAV container. The go-audio encoder emits the RIFF and
// fmt chunks up front and patches the sizes on Close; 24-bit samples are
// written as the low three bytes of the signed value.
func encode(f *os.File, data []int, sampleRate, bitDepth int) error {
	enc := wav.NewEncoder(f, sampleRate, bitDepth, monoChannels, pcmFormat)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: monoChannels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize wav container: %w", err)
	}
	return nil
}

func fullScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	default:
		return 0, fmt.Errorf("unsupported bit depth %d", bitDepth)
	}
}
