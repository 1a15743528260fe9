// SPDX-License-Identifier: EPL-2.0

package sampleprep

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ventfan/sampleprep/audio"
	"github.com/ventfan/sampleprep/formats/aiff"
	"github.com/ventfan/sampleprep/formats/mp3"
	"github.com/ventfan/sampleprep/formats/vorbis"
	"github.com/ventfan/sampleprep/formats/wav"
)

const collectBufferSize = 4096

// Normalizer converts raw samples into the mono 44.1kHz WAV files the beat
// simulator consumes: decode, resample, downmix, loudness-normalize, trim
// leading silence, export.
type Normalizer struct {
	Config   Config
	Registry *audio.Registry

	// Out receives per-file status lines. Informational only.
	Out io.Writer
}

// NewNormalizer returns a Normalizer with the default decoder registry,
// reporting to stdout.
func NewNormalizer(cfg Config) *Normalizer {
	return &Normalizer{
		Config:   cfg,
		Registry: DefaultRegistry(),
		Out:      os.Stdout,
	}
}

// DefaultRegistry registers every bundled decoder by file extension.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

// ProcessFile normalizes the sample at src and writes the result to dst.
// Any decode or export failure aborts with the filename in the error chain;
// there is no per-file retry.
func (n *Normalizer) ProcessFile(src, dst string) (Entry, error) {
	name := filepath.Base(src)

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(src), "."))
	dec, ok := n.Registry.Get(ext)
	if !ok {
		return Entry{}, fmt.Errorf("%s: %w", name, ErrUnsupportedFormat)
	}

	f, err := os.Open(src)
	if err != nil {
		return Entry{}, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	source, err := dec.Decode(f)
	if err != nil {
		return Entry{}, fmt.Errorf("decoding %s: %w", name, err)
	}
	defer source.Close()

	// Pipeline: resample -> mono -> collect
	var stage audio.Source = source
	if stage.SampleRate() != n.Config.SampleRate {
		stage = audio.NewResampler(stage, n.Config.SampleRate)
	}
	if stage.Channels() != 1 {
		stage = audio.NewMonoMixer(stage)
	}

	clip, err := audio.Collect(stage, collectBufferSize)
	if err != nil {
		return Entry{}, fmt.Errorf("decoding %s: %w", name, err)
	}

	measured := clip.DBFS()
	gain := gainDB(n.Config.TargetDBFS, measured)
	clip.ApplyGain(gain)

	trim := LeadingSilence(clip, n.Config.SilenceThresholdDBFS, n.Config.MinSilenceMS)
	if trim > 0 {
		clip = clip.TrimStart(trim)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return Entry{}, fmt.Errorf("creating output directory for %s: %w", name, err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return Entry{}, fmt.Errorf("exporting %s: %w", name, err)
	}
	if err := wav.Encode(out, clip.SampleRate, clip.Samples); err != nil {
		out.Close()
		return Entry{}, fmt.Errorf("exporting %s: %w", name, err)
	}
	if err := out.Close(); err != nil {
		return Entry{}, fmt.Errorf("exporting %s: %w", name, err)
	}

	fmt.Fprintf(n.Out, "[OK] %s | orig %.1f dBFS | gain %+.1f dB | trimmed %d ms | -> %s\n",
		name, measured, gain, trim, dst)

	return Entry{File: filepath.Base(dst), Label: stem(src)}, nil
}

// gainDB is the adjustment that brings a signal measured at measured dBFS
// to target. A silent signal (negative infinity) gets no gain, so silence
// is never amplified.
func gainDB(target, measured float64) float64 {
	if math.IsInf(measured, -1) {
		return 0
	}
	return target - measured
}

// stem returns the filename without its directory or extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
