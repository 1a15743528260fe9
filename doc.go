// SPDX-License-Identifier: EPL-2.0

// Package sampleprep batch-normalizes a directory of audio samples for the
// beat simulator: every eligible file is decoded, resampled to 44.1kHz,
// downmixed to mono, brought to a target loudness, trimmed of leading
// silence, and exported as 16-bit PCM WAV. A manifest.json pairing each
// output file with a label derived from the source filename is written at
// the end of a successful run.
//
// # Quick Start
//
//	n := sampleprep.NewNormalizer(sampleprep.DefaultConfig())
//	if err := n.Run("samples_raw", "samples"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Pipeline
//
// Each file goes through the same sequence:
//
//  1. Decode via the extension-dispatched registry (wav, mp3, ogg, aiff)
//  2. Resample to Config.SampleRate and downmix to mono
//  3. Apply TargetDBFS − measured dBFS of gain (silent input gets none)
//  4. Trim leading silence below SilenceThresholdDBFS
//  5. Export as mono 16-bit WAV named after the source stem
//
// Processing is strictly sequential; the first decode or export failure
// aborts the whole run with the filename in the error chain. A missing or
// empty input directory is not an error.
//
// # Manifest
//
// The manifest is a JSON array in sorted source-name order:
//
//	[
//	  {"file": "kick.wav", "label": "kick"},
//	  {"file": "snare.wav", "label": "snare"}
//	]
//
// Its entry count always equals the number of processed files; no manifest
// is written when nothing was processed.
package sampleprep
