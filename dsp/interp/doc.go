// Package interp provides interpolation primitives for fractional-position
// sample lookup.
//
// Available methods, from cheapest to highest quality:
//
//   - [Linear2]:  2-point linear interpolation
//   - [Hermite4]: 4-point cubic Hermite
//
// [At] evaluates a sample sequence at a fractional position with boundary
// clamping, selecting the kernel by [Mode].
package interp
