// SPDX-License-Identifier: EPL-2.0

package sampleprep

import (
	"math"

	"github.com/ventfan/sampleprep/audio"
)

// LeadingSilence returns the number of milliseconds to trim from the start
// of clip. The clip is scanned in fixed-size chunks (a fifth of minSilenceMS,
// at least 1 ms); the scan stops at the first chunk whose peak exceeds the
// linear equivalent of thresholdDBFS. A clip that never exceeds the
// threshold reports its full length, so trimming it yields an empty clip.
//
// The result is aligned to chunk boundaries, not samples.
func LeadingSilence(clip *audio.Clip, thresholdDBFS float64, minSilenceMS int) int {
	threshold := float32(math.Pow(10, thresholdDBFS/20))

	chunkMS := minSilenceMS / 5
	if chunkMS < 1 {
		chunkMS = 1
	}

	trimMS := 0
	total := clip.DurationMS()
	for trimMS < total {
		if clip.Peak(trimMS, trimMS+chunkMS) > threshold {
			break
		}
		trimMS += chunkMS
	}
	return trimMS
}
