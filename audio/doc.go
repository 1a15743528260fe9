// SPDX-License-Identifier: EPL-2.0

// Package audio provides the processing primitives the sample pipeline is
// built from.
//
// # Source Interface
//
// The Source interface is a streaming PCM producer:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Format decoders and processing stages all implement it, so they can be
// chained: decoder -> Resampler -> MonoMixer.
//
// # Pipeline Stages
//
// Resampler converts the sample rate using cubic interpolation:
//
//	res := audio.NewResampler(src, 44100)
//
// MonoMixer downmixes to a single channel by averaging:
//
//	mono := audio.NewMonoMixer(res)
//
// # Clips
//
// Batch operations (loudness measurement, silence scanning, trimming) need
// the whole signal, so the end of a pipeline is collected into a Clip:
//
//	clip, err := audio.Collect(mono, 4096)
//	loudness := clip.DBFS()
//	peak := clip.Peak(0, 10)
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0], with 1.0 as full scale. Loudness is
// reported in dBFS: 0 is full scale, more negative is quieter, and a fully
// silent clip measures negative infinity.
//
// # Error Handling
//
// Streaming reads return io.EOF when the source is exhausted. Any other
// error indicates a problem with the source or the stage itself.
package audio
