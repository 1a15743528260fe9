// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ventfan/sampleprep/utils"
)

// Resampler converts a source to a target sample rate using Catmull-Rom
// cubic interpolation over a sliding four-frame window. It works on
// interleaved samples and preserves the channel count. When downsampling,
// a one-pole low-pass is applied as a basic anti-aliasing measure.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames advanced per output frame
	channels int

	// window[0] = t-1, window[1] = t0, window[2] = t+1, window[3] = t+2
	window    [4][]float32
	hasFrame  [4]bool
	primed    bool
	pos       float64
	eof       bool
	frameBuf  []float32
	lowpass   bool
	lpState   []float32
	lpAlpha   float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		frameBuf: make([]float32, channels),
		lowpass:  step > 1.0,
		lpAlpha:  0.5,
		lpState:  make([]float32, channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame pulls one interleaved frame from the source into frameBuf.
func (r *Resampler) readFrame() (bool, error) {
	n, err := r.src.ReadSamples(r.frameBuf)
	if n > 0 && r.lowpass {
		for c := 0; c < r.channels; c++ {
			r.frameBuf[c] = r.lpAlpha*r.frameBuf[c] + (1-r.lpAlpha)*r.lpState[c]
			r.lpState[c] = r.frameBuf[c]
		}
	}
	if err == io.EOF {
		r.eof = true
		return n > 0, nil
	}
	if err != nil {
		return n > 0, fmt.Errorf("%w", err)
	}
	return n > 0, nil
}

// advance shifts the window left by one frame and fills the tail slot.
func (r *Resampler) advance() error {
	if r.eof && !r.hasFrame[3] {
		return io.EOF
	}

	copy(r.window[0], r.window[1])
	copy(r.window[1], r.window[2])
	copy(r.window[2], r.window[3])
	r.hasFrame[0], r.hasFrame[1], r.hasFrame[2] = r.hasFrame[1], r.hasFrame[2], r.hasFrame[3]

	if r.eof {
		r.hasFrame[3] = false
		return nil
	}

	got, err := r.readFrame()
	if err != nil {
		return err
	}
	if got {
		copy(r.window[3], r.frameBuf)
	}
	r.hasFrame[3] = got
	return nil
}

// prime fills the initial window with the first four source frames. Short
// streams duplicate their last frame into the remaining slots.
func (r *Resampler) prime() error {
	for i := 0; i < 4; i++ {
		got, err := r.readFrame()
		if err != nil {
			return err
		}
		if !got {
			if i == 0 {
				return io.EOF
			}
			// Duplicate the last valid frame into remaining slots
			copy(r.window[i], r.window[i-1])
			r.hasFrame[i] = true
			continue
		}
		copy(r.window[i], r.frameBuf)
		r.hasFrame[i] = true
		if i == 0 && r.lowpass {
			copy(r.lpState, r.frameBuf)
		}
	}
	r.primed = true
	return nil
}

// ReadSamples produces interleaved samples at the target rate.
// len(dst) must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	framesWanted := len(dst) / r.channels

	for written < framesWanted {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF && written > 0 {
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.hasFrame[1] || !r.hasFrame[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		for c := 0; c < r.channels; c++ {
			y1 := r.window[1][c]
			y2 := r.window[2][c]
			y0 := y1
			if r.hasFrame[0] {
				y0 = r.window[0][c]
			}
			y3 := y2
			if r.hasFrame[3] {
				y3 = r.window[3][c]
			}
			dst[written*r.channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
