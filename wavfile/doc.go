// Package wavfile reads and writes PCM WAV files as planar float buffers.
//
// Decoding scales integer PCM to [-1, 1). Encoding peak-normalizes the
// buffer so its largest absolute sample maps to full scale, then rounds to
// signed integers: round(x / max|x| * (2^(bits-1) - 1)). Silent buffers are
// written as zeros.
//
// Container handling is delegated to github.com/go-audio/wav.
package wavfile
