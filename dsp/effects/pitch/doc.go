// Package pitch implements an offline, time-domain pitch shifter.
//
// The shifter works on a whole in-memory buffer in four stages:
//
//   - SplitFrames slices channel 0 into overlapping fixed-length frames.
//   - WindowFrames tapers every frame with a Hann window.
//   - Synthesize overlap-adds the frames at a hop scaled by the pitch ratio,
//     which changes the buffer length by that ratio.
//   - Resample linearly interpolates the result back to the source length,
//     so playback speed, and with it pitch, changes by the ratio while the
//     duration stays the same.
//
// Engine wires the stages together behind Load and Shift. Each stage is also
// exported and passes its result explicitly to the next one, so the stages
// can be tested and reused independently.
//
// Overlap-add output is not normalized. With a Hann window at 75% overlap
// the steady-state gain is about 2; peak normalization is left to the export
// step (see package wavfile).
package pitch
