// Package vorbis decodes Ogg Vorbis streams using
// github.com/jfreymuth/oggvorbis. Decoded samples are interleaved
// float32 in [-1, 1] at the stream's native rate and channel count.
package vorbis
