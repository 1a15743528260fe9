// Package wav decodes and encodes WAV (RIFF/WAVE) files.
//
// Decoding uses github.com/go-audio/wav, which walks arbitrary chunk
// layouts rather than assuming the canonical 44-byte header, and accepts
// 8, 16, 24 and 32-bit PCM. Decoded samples are normalized float32 in
// [-1, 1].
//
// Encoding always produces mono 16-bit PCM, the format the sample
// consumer expects:
//
//	f, _ := os.Create("out.wav")
//	wav.Encode(f, 44100, samples)
//	f.Close()
package wav
