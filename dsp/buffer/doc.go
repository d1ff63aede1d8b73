// Package buffer provides the planar PCM container passed between decoders,
// processors, and encoders, plus a pool for reusable scratch slices.
//
// A Buffer holds one []float64 per channel at a fixed sample rate. Processors
// that are mono by nature read [Buffer.Channel](0) and ignore the rest.
package buffer
