// Package spectrum provides frequency-domain analysis helpers for checking
// what a processor did to a signal: a windowed magnitude spectrum, dominant
// frequency estimation, and single-tone level probes.
//
// FFTs are computed with github.com/MeKo-Christian/algo-fft using
// power-of-two plans; inputs are zero-padded to the next power of two.
package spectrum
