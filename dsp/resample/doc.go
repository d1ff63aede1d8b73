// Package resample stretches or compresses a sample sequence to an exact
// target length by fractional-position interpolation.
//
// Query positions are spaced evenly over [0, len(input)) with the endpoint
// excluded, so output sample j reads input position j*len(input)/outLen.
// Positions past the last input sample clamp to it.
//
// Common workflows:
//   - Stretch(input, outLen)                      linear (default)
//   - Stretch(input, outLen, WithMode(interp.ModeHermite))
//   - StretchInto(dst, input, opts...)            caller-owned output
package resample
