package wavfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/cwbudde/algo-vecmath"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-keyshift/dsp/buffer"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE

	// DefaultBitDepth is the export bit depth.
	DefaultBitDepth = 16
)

var (
	// ErrInvalidFile indicates input that is not a readable WAV file.
	ErrInvalidFile = errors.New("wavfile: not a valid WAV file")
	// ErrUnsupportedFormat indicates a WAV encoding other than integer PCM,
	// or an unsupported bit depth.
	ErrUnsupportedFormat = errors.New("wavfile: unsupported format")
)

// SupportedBitDepth reports whether bits can be used for export.
func SupportedBitDepth(bits int) bool {
	return bits == 16 || bits == 24
}

// Decode reads a PCM WAV stream. It returns the samples scaled to [-1, 1)
// and the source bit depth.
func Decode(r io.ReadSeeker) (*buffer.Buffer, int, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, 0, ErrInvalidFile
	}

	if d.WavAudioFormat != formatPCM && d.WavAudioFormat != formatExtensible {
		return nil, 0, fmt.Errorf("%w: audio format %d", ErrUnsupportedFormat, d.WavAudioFormat)
	}

	pcm, err := d.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("wavfile: decode: %w", err)
	}

	if pcm.Format == nil || pcm.Format.NumChannels <= 0 {
		return nil, 0, fmt.Errorf("%w: missing channel layout", ErrInvalidFile)
	}

	bits := pcm.SourceBitDepth
	if bits == 0 {
		bits = int(d.BitDepth)
	}

	if bits != 8 && bits != 16 && bits != 24 && bits != 32 {
		return nil, 0, fmt.Errorf("%w: %d-bit PCM", ErrUnsupportedFormat, bits)
	}

	scale := 1 / math.Exp2(float64(bits-1))
	interleaved := make([]float64, len(pcm.Data))
	for i, v := range pcm.Data {
		if bits == 8 {
			// 8-bit PCM is unsigned.
			v -= 128
		}
		interleaved[i] = float64(v) * scale
	}

	b, err := buffer.FromInterleaved(pcm.Format.SampleRate, pcm.Format.NumChannels, interleaved)
	if err != nil {
		return nil, 0, fmt.Errorf("wavfile: decode: %w", err)
	}

	return b, bits, nil
}

// ReadFile decodes the WAV file at path.
func ReadFile(path string) (*buffer.Buffer, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	b, bits, err := Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}

	return b, bits, nil
}

// PeakNormalize scales samples so that max|x| maps to the largest positive
// value of a signed bits-wide integer and rounds to the nearest integer.
// All-zero input yields zeros.
func PeakNormalize(samples []float64, bits int) []int {
	out := make([]int, len(samples))

	var peak float64
	for _, v := range samples {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	if peak == 0 || math.IsInf(peak, 0) || math.IsNaN(peak) {
		return out
	}

	full := math.Exp2(float64(bits-1)) - 1
	scaled := make([]float64, len(samples))
	vecmath.ScaleBlock(scaled, samples, full/peak)

	for i, v := range scaled {
		out[i] = int(math.Round(v))
	}

	return out
}

// Encode peak-normalizes b across all channels and writes it as
// interleaved integer PCM.
func Encode(w io.WriteSeeker, b *buffer.Buffer, bits int) error {
	if b == nil || b.NumChannels() == 0 {
		return fmt.Errorf("wavfile: encode: %w", buffer.ErrNoChannels)
	}

	if !SupportedBitDepth(bits) {
		return fmt.Errorf("%w: %d-bit export", ErrUnsupportedFormat, bits)
	}

	pcm := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: b.NumChannels(),
			SampleRate:  b.SampleRate(),
		},
		Data:           PeakNormalize(b.Interleaved(), bits),
		SourceBitDepth: bits,
	}

	e := wav.NewEncoder(w, b.SampleRate(), bits, b.NumChannels(), formatPCM)
	if err := e.Write(pcm); err != nil {
		return fmt.Errorf("wavfile: encode: %w", err)
	}

	if err := e.Close(); err != nil {
		return fmt.Errorf("wavfile: encode: %w", err)
	}

	return nil
}

// WriteFile encodes b to path, replacing any existing file.
func WriteFile(path string, b *buffer.Buffer, bits int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Encode(f, b, bits); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}
