// SPDX-License-Identifier: EPL-2.0

package sampleprep

import "fmt"

// Config holds the pipeline parameters. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// TargetDBFS is the loudness every sample is normalized to.
	TargetDBFS float64

	// SilenceThresholdDBFS is the level below which the start of a sample
	// counts as leading silence.
	SilenceThresholdDBFS float64

	// MinSilenceMS is the minimum silence span considered; the scan chunk
	// size is derived from it.
	MinSilenceMS int

	// SampleRate of the exported WAV files, in Hz.
	SampleRate int
}

// DefaultConfig returns the parameters the beat simulator's sample packs
// are prepared with.
func DefaultConfig() Config {
	return Config{
		TargetDBFS:           -6.0,
		SilenceThresholdDBFS: -40.0,
		MinSilenceMS:         50,
		SampleRate:           44100,
	}
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	if c.SilenceThresholdDBFS <= -120.0 || c.SilenceThresholdDBFS > 0.0 {
		return fmt.Errorf("silence threshold must be in (-120, 0] dBFS, got %.1f", c.SilenceThresholdDBFS)
	}
	if c.MinSilenceMS <= 0 {
		return fmt.Errorf("minimum silence duration must be positive, got %d ms", c.MinSilenceMS)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", c.SampleRate)
	}
	return nil
}
