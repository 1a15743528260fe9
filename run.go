// SPDX-License-Identifier: EPL-2.0

package sampleprep

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Run scans rawDir, processes every eligible file into outDir, and writes
// the manifest. Eligibility is decided by the registry: a regular file is
// eligible when a decoder is registered for its lowercased extension.
//
// A missing rawDir is a bootstrap state, not an error: it is created, the
// operator is told to populate it, and the run ends cleanly. An empty
// rawDir also ends cleanly, without writing a manifest.
func (n *Normalizer) Run(rawDir, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if _, err := os.Stat(rawDir); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking input directory: %w", err)
		}
		if err := os.MkdirAll(rawDir, 0o755); err != nil {
			return fmt.Errorf("creating input directory: %w", err)
		}
		fmt.Fprintf(n.Out, "Created %s. Add audio files there and re-run.\n", rawDir)
		return nil
	}

	sources, err := n.listEligible(rawDir)
	if err != nil {
		return err
	}

	if len(sources) == 0 {
		fmt.Fprintf(n.Out, "No eligible audio files found in %s. Nothing to do.\n", rawDir)
		return nil
	}

	entries := make([]Entry, 0, len(sources))
	for _, name := range sources {
		dst := filepath.Join(outDir, stem(name)+".wav")
		// ProcessFile already names the failing file in its error chain
		entry, err := n.ProcessFile(filepath.Join(rawDir, name), dst)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}

	manifestPath := filepath.Join(outDir, ManifestName)
	if err := WriteManifest(manifestPath, entries); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	fmt.Fprintf(n.Out, "Processed %d file(s).\n", len(entries))
	fmt.Fprintf(n.Out, "Wrote manifest with %d entries to %s\n", len(entries), manifestPath)
	return nil
}

// listEligible returns the names of processable files in dir, sorted for a
// deterministic manifest order.
func (n *Normalizer) listEligible(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing input directory: %w", err)
	}

	eligible := make(map[string]bool)
	for _, ext := range n.Registry.Extensions() {
		eligible[ext] = true
	}

	var names []string
	for _, de := range dirEntries {
		if !de.Type().IsRegular() {
			continue
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(de.Name()), "."))
		if eligible[ext] {
			names = append(names, de.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
