// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"
	"math"
	"testing"

	"github.com/ventfan/sampleprep/internal/audiotest"
)

func roundTrip(t *testing.T, rate int, samples []float32) []float32 {
	t.Helper()

	buf := &audiotest.SeekBuffer{}
	if err := Encode(buf, rate, samples); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if _, err := buf.Seek(0, io.SeekStart); err != nil {
		t.Fatal(err)
	}

	src, err := Decoder{}.Decode(buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != rate {
		t.Errorf("SampleRate() = %d, want %d", src.SampleRate(), rate)
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	var out []float32
	read := make([]float32, 1024)
	for {
		n, err := src.ReadSamples(read)
		if n > 0 {
			out = append(out, read[:n]...)
		}
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	in := []float32{0, 0.25, -0.25, 0.5, -0.5, 0.99, -0.99}
	out := roundTrip(t, 44100, in)

	if len(out) != len(in) {
		t.Fatalf("round trip returned %d samples, want %d", len(out), len(in))
	}

	// 16-bit quantization tolerance
	const tolerance = 1.0 / 32000
	for i := range in {
		if math.Abs(float64(out[i]-in[i])) > tolerance {
			t.Errorf("out[%d] = %v, want ≈%v", i, out[i], in[i])
		}
	}
}

func TestEncode_ClampsOutOfRange(t *testing.T) {
	t.Parallel()

	out := roundTrip(t, 44100, []float32{2.0, -2.0})

	if len(out) != 2 {
		t.Fatalf("round trip returned %d samples, want 2", len(out))
	}
	if out[0] < 0.99 || out[0] > 1.0 {
		t.Errorf("out[0] = %v, want clamped to ≈1.0", out[0])
	}
	if out[1] > -0.99 || out[1] < -1.0 {
		t.Errorf("out[1] = %v, want clamped to ≈-1.0", out[1])
	}
}

func TestEncode_Empty(t *testing.T) {
	t.Parallel()

	// A fully trimmed clip exports as a valid zero-frame WAV
	out := roundTrip(t, 44100, nil)
	if len(out) != 0 {
		t.Errorf("round trip of empty clip returned %d samples, want 0", len(out))
	}
}

func TestEncode_LargeClip(t *testing.T) {
	t.Parallel()

	// Larger than one write chunk to exercise the chunked path
	in := make([]float32, 20000)
	for i := range in {
		in[i] = float32(math.Sin(float64(i) / 50))
	}

	out := roundTrip(t, 22050, in)
	if len(out) != len(in) {
		t.Errorf("round trip returned %d samples, want %d", len(out), len(in))
	}
}
