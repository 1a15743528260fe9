// Package aiff decodes AIFF files using github.com/go-audio/aiff.
// Only 16-bit PCM files are supported. Decoded samples are interleaved
// float32 in [-1, 1].
package aiff
