package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// hiddenPrefix marks dot-files and dot-directories, which never participate
// in matching at any level.
const hiddenPrefix = "."

// Rules parameterizes the correspondence matching.
type Rules struct {
	// AudioExt is the extension joined to a matched basename to resolve the
	// audio file, e.g. ".wav".
	AudioExt string
	// TranscriptExt is the extension joined to a matched basename to resolve
	// the transcript document, e.g. ".docx".
	TranscriptExt string
	// ExcludePattern drops audio entries whose name contains this substring.
	// Empty disables the filter.
	ExcludePattern string
}

// DefaultRules returns the matching rules for the stock corpus layout.
func DefaultRules() Rules {
	return Rules{
		AudioExt:       ".wav",
		TranscriptExt:  ".docx",
		ExcludePattern: "_ASA24_",
	}
}

// listSubdirNames returns the sorted, hidden-filtered subdirectory names of dir.
func listSubdirNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list directories in %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), hiddenPrefix) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// listFileBasenames returns the sorted, hidden-filtered basenames (extension
// stripped) of the regular files in dir. Entries whose full name contains
// exclude are dropped when exclude is non-empty.
func listFileBasenames(dir, exclude string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list files in %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), hiddenPrefix) {
			continue
		}
		if exclude != "" && strings.Contains(entry.Name(), exclude) {
			continue
		}
		name := entry.Name()
		names = append(names, strings.TrimSuffix(name, filepath.Ext(name)))
	}
	sort.Strings(names)
	return names, nil
}

// intersect returns the sorted intersection of two name slices.
func intersect(a, b []string) []string {
	set := make(map[string]struct{}, len(a))
	for _, name := range a {
		set[name] = struct{}{}
	}
	var common []string
	for _, name := range b {
		if _, ok := set[name]; ok {
			common = append(common, name)
			delete(set, name)
		}
	}
	sort.Strings(common)
	return common
}
