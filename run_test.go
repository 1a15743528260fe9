// SPDX-License-Identifier: EPL-2.0

package sampleprep

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ventfan/sampleprep/audio"
	"github.com/ventfan/sampleprep/formats/wav"
	"github.com/ventfan/sampleprep/internal/audiotest"
)

// stubDecoder stands in for formats whose encoders we don't ship (mp3), so
// orchestration can be tested without real compressed fixtures.
type stubDecoder struct {
	frames int
	value  float32
}

func (d stubDecoder) Decode(io.Reader) (audio.Source, error) {
	return audiotest.NewConstantSource(44100, 1, d.frames, d.value), nil
}

func readManifest(t *testing.T, outDir string) []Entry {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(outDir, ManifestName))
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("parsing manifest: %v", err)
	}
	return entries
}

func manifestExists(outDir string) bool {
	_, err := os.Stat(filepath.Join(outDir, ManifestName))
	return err == nil
}

// Scenario: the input directory holds no eligible files.
func TestRun_NoEligibleFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rawDir := filepath.Join(dir, "samples_raw")
	outDir := filepath.Join(dir, "samples")
	if err := os.MkdirAll(rawDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(rawDir, "notes.txt"), []byte("n/a"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := testNormalizer(&out).Run(rawDir, outDir); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if manifestExists(outDir) {
		t.Error("manifest written despite no eligible files")
	}
	if !strings.Contains(out.String(), "No eligible") {
		t.Errorf("missing report, got %q", out.String())
	}
}

// Scenario: the input directory does not exist yet.
func TestRun_MissingInputDirBootstraps(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rawDir := filepath.Join(dir, "samples_raw")
	outDir := filepath.Join(dir, "samples")

	var out bytes.Buffer
	if err := testNormalizer(&out).Run(rawDir, outDir); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if _, err := os.Stat(rawDir); err != nil {
		t.Errorf("input directory was not created: %v", err)
	}
	if _, err := os.Stat(outDir); err != nil {
		t.Errorf("output directory was not created: %v", err)
	}
	if manifestExists(outDir) {
		t.Error("manifest written in bootstrap state")
	}
	if !strings.Contains(out.String(), "re-run") {
		t.Errorf("missing bootstrap instruction, got %q", out.String())
	}
}

// Scenario: one mono 44.1kHz WAV at -3 dBFS, target -6 dBFS.
func TestRun_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rawDir := filepath.Join(dir, "samples_raw")
	outDir := filepath.Join(dir, "samples")
	if err := os.MkdirAll(rawDir, 0o755); err != nil {
		t.Fatal(err)
	}

	amp := float32(math.Pow(10, -3.0/20))
	writeTestWAV(t, filepath.Join(rawDir, "clap.wav"), 44100, constantSamples(8820, amp))

	var out bytes.Buffer
	if err := testNormalizer(&out).Run(rawDir, outDir); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	entries := readManifest(t, outDir)
	if len(entries) != 1 {
		t.Fatalf("manifest has %d entries, want 1", len(entries))
	}
	if entries[0] != (Entry{File: "clap.wav", Label: "clap"}) {
		t.Errorf("entry = %+v, want {clap.wav clap}", entries[0])
	}

	clip := decodeOutput(t, filepath.Join(outDir, "clap.wav"))
	if clip.SampleRate != 44100 {
		t.Errorf("output rate = %d, want 44100", clip.SampleRate)
	}
	if got := clip.DBFS(); math.Abs(got-(-6.0)) > 0.1 {
		t.Errorf("output loudness = %.2f dBFS, want ≈ -6.0", got)
	}
	if !strings.Contains(out.String(), "Processed 1 file(s).") {
		t.Errorf("missing summary, got %q", out.String())
	}
}

// Scenario: two inputs, a.mp3 and b.wav, in sorted-name manifest order.
func TestRun_TwoFilesSortedOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rawDir := filepath.Join(dir, "samples_raw")
	outDir := filepath.Join(dir, "samples")
	if err := os.MkdirAll(rawDir, 0o755); err != nil {
		t.Fatal(err)
	}

	// b.wav is a real file; a.mp3 goes through a stub decoder since we
	// have no MP3 encoder to make fixtures with
	if err := os.WriteFile(filepath.Join(rawDir, "a.mp3"), []byte("stub"), 0o644); err != nil {
		t.Fatal(err)
	}
	writeTestWAV(t, filepath.Join(rawDir, "b.wav"), 44100, constantSamples(4410, 0.5))

	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", stubDecoder{frames: 4410, value: 0.5})

	var out bytes.Buffer
	n := &Normalizer{Config: DefaultConfig(), Registry: reg, Out: &out}
	if err := n.Run(rawDir, outDir); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	entries := readManifest(t, outDir)
	want := []Entry{
		{File: "a.wav", Label: "a"},
		{File: "b.wav", Label: "b"},
	}
	if len(entries) != len(want) {
		t.Fatalf("manifest has %d entries, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %+v, want %+v", i, entries[i], want[i])
		}
	}

	for _, name := range []string{"a.wav", "b.wav"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}
}

func TestRun_UppercaseExtensionEligible(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rawDir := filepath.Join(dir, "samples_raw")
	outDir := filepath.Join(dir, "samples")
	if err := os.MkdirAll(rawDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeTestWAV(t, filepath.Join(rawDir, "LOUD.WAV"), 44100, constantSamples(4410, 0.5))

	var out bytes.Buffer
	if err := testNormalizer(&out).Run(rawDir, outDir); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	entries := readManifest(t, outDir)
	if len(entries) != 1 || entries[0].Label != "LOUD" {
		t.Errorf("entries = %+v, want one entry labelled LOUD", entries)
	}
}

func TestRun_AbortsOnDecodeFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rawDir := filepath.Join(dir, "samples_raw")
	outDir := filepath.Join(dir, "samples")
	if err := os.MkdirAll(rawDir, 0o755); err != nil {
		t.Fatal(err)
	}

	writeTestWAV(t, filepath.Join(rawDir, "a.wav"), 44100, constantSamples(4410, 0.5))
	if err := os.WriteFile(filepath.Join(rawDir, "z.wav"), []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err := testNormalizer(&out).Run(rawDir, outDir)
	if err == nil {
		t.Fatal("Run() succeeded despite corrupt input, want error")
	}
	if got := strings.Count(err.Error(), "z.wav"); got != 1 {
		t.Errorf("error %q names the failing file %d times, want exactly once", err, got)
	}
	// The failure aborts the run before the manifest is written
	if manifestExists(outDir) {
		t.Error("manifest written despite aborted run")
	}
}

func TestRun_OverwritesPriorManifest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rawDir := filepath.Join(dir, "samples_raw")
	outDir := filepath.Join(dir, "samples")
	if err := os.MkdirAll(rawDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeTestWAV(t, filepath.Join(rawDir, "hat.wav"), 44100, constantSamples(4410, 0.5))

	var out bytes.Buffer
	n := testNormalizer(&out)
	for i := 0; i < 2; i++ {
		if err := n.Run(rawDir, outDir); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	}

	entries := readManifest(t, outDir)
	if len(entries) != 1 {
		t.Errorf("manifest has %d entries after re-run, want 1", len(entries))
	}
}
