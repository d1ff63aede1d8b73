// Package window generates symmetric cosine-sum tapers and applies them to
// sample blocks.
//
// Coefficients follow w[k] = sum_m a_m cos(2*pi*m*k/(L-1)), so the first and
// last samples of a Hann or Blackman window are zero. A window of length 1 is
// defined as the single coefficient 1.0 (no attenuation) for every type.
package window
