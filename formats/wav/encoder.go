// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ventfan/sampleprep/utils"
)

// Encode writes samples as a mono 16-bit PCM WAV at sampleRate. Samples are
// clamped to [-1, 1] during conversion. The writer must support seeking so
// the RIFF sizes can be patched on Close.
func Encode(ws io.WriteSeeker, sampleRate int, samples []float32) error {
	enc := gowav.NewEncoder(ws, sampleRate, 16, 1, 1)

	const chunkSize = 8192
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: 16,
	}

	if len(samples) == 0 {
		// A fully trimmed clip still needs a valid header
		buf.Data = make([]int, 0)
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	for off := 0; off < len(samples); off += chunkSize {
		end := min(off+chunkSize, len(samples))
		chunk := samples[off:end]

		if cap(buf.Data) < len(chunk) {
			buf.Data = make([]int, len(chunk))
		}
		buf.Data = buf.Data[:len(chunk)]
		for i, s := range chunk {
			buf.Data[i] = int(utils.Float32ToInt16(s))
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
