// SPDX-License-Identifier: EPL-2.0

package sampleprep_test

import (
	"fmt"

	"github.com/ventfan/sampleprep"
	"github.com/ventfan/sampleprep/audio"
)

// ExampleLeadingSilence shows how the trim point of a sample is found.
// At a 1kHz sample rate one sample is one millisecond, so the 20ms of
// zeros at the start are reported (in 10ms chunks) as the trim offset.
func ExampleLeadingSilence() {
	samples := make([]float32, 100)
	for i := 20; i < len(samples); i++ {
		samples[i] = 0.5
	}
	clip := &audio.Clip{Samples: samples, SampleRate: 1000}

	trim := sampleprep.LeadingSilence(clip, -40.0, 50)
	fmt.Printf("trim %d ms\n", trim)
	// Output: trim 20 ms
}

// ExampleConfig shows the defaults the sample packs are prepared with.
func ExampleConfig() {
	cfg := sampleprep.DefaultConfig()
	fmt.Printf("target %.1f dBFS, silence below %.1f dBFS\n",
		cfg.TargetDBFS, cfg.SilenceThresholdDBFS)
	// Output: target -6.0 dBFS, silence below -40.0 dBFS
}
