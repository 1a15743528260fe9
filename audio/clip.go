// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"
)

// Clip is a fully decoded mono buffer. The batch pipeline collects a Source
// into a Clip so loudness can be measured over the whole signal and leading
// silence can be scanned with random access.
type Clip struct {
	Samples    []float32
	SampleRate int
}

// Collect drains src into a Clip. src must be mono; multi-channel sources
// should be wrapped in a MonoMixer first.
func Collect(src Source, bufferSize int) (*Clip, error) {
	if src.Channels() != 1 {
		return nil, ErrNotMono
	}

	clip := &Clip{
		Samples:    make([]float32, 0, bufferSize),
		SampleRate: src.SampleRate(),
	}
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			clip.Samples = append(clip.Samples, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return clip, nil
}

// Frames returns the number of samples in the clip.
func (c *Clip) Frames() int { return len(c.Samples) }

// DurationMS returns the clip length in whole milliseconds.
func (c *Clip) DurationMS() int {
	return len(c.Samples) * 1000 / c.SampleRate
}

// DBFS measures the clip's RMS loudness relative to full scale (1.0).
// An all-zero clip measures negative infinity.
func (c *Clip) DBFS() float64 {
	if len(c.Samples) == 0 {
		return math.Inf(-1)
	}

	var sum float64
	for _, s := range c.Samples {
		sum += float64(s) * float64(s)
	}
	rms := math.Sqrt(sum / float64(len(c.Samples)))
	if rms == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(rms)
}

// Peak returns the maximum absolute sample value over the half-open
// millisecond interval [fromMS, toMS). Out-of-range bounds are clamped.
func (c *Clip) Peak(fromMS, toMS int) float32 {
	start := c.sampleIndex(fromMS)
	end := c.sampleIndex(toMS)
	if start > len(c.Samples) {
		start = len(c.Samples)
	}
	if end > len(c.Samples) {
		end = len(c.Samples)
	}
	if end < start {
		end = start
	}

	var peak float32
	for _, s := range c.Samples[start:end] {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	return peak
}

// ApplyGain multiplies every sample by the linear equivalent of db decibels.
// Samples are not clamped here; clamping happens on PCM export.
func (c *Clip) ApplyGain(db float64) {
	if db == 0 {
		return
	}
	factor := float32(math.Pow(10, db/20))
	for i := range c.Samples {
		c.Samples[i] *= factor
	}
}

// TrimStart returns a clip with the first ms milliseconds removed. Trimming
// past the end yields an empty clip.
func (c *Clip) TrimStart(ms int) *Clip {
	start := c.sampleIndex(ms)
	if start > len(c.Samples) {
		start = len(c.Samples)
	}
	return &Clip{
		Samples:    c.Samples[start:],
		SampleRate: c.SampleRate,
	}
}

func (c *Clip) sampleIndex(ms int) int {
	if ms < 0 {
		return 0
	}
	return ms * c.SampleRate / 1000
}
