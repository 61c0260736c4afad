// Package pathtest provides helpers for building and asserting filesystem
// trees in tests that exercise pathkit operations.
//
// Example usage:
//
//	root := pathtest.TempRoot(t)
//	pathtest.MkTree(t, root, map[string]string{
//	    "a/one.txt": "1",
//	    "a/b/":      "",
//	})
package pathtest

import (
	"iter"
	"sort"
	"strings"
	"testing"

	"github.com/jmgilman/go/pathkit"
)

// TempRoot returns a fresh temporary directory as a Path. The directory is
// removed when the test completes.
func TempRoot(t *testing.T) pathkit.Path {
	t.Helper()
	return pathkit.Must(pathkit.New(t.TempDir()))
}

// MkTree materializes a tree beneath root. Map keys are slash-separated
// relative paths; a trailing slash denotes a directory, anything else a file
// whose content is the map value. Parent directories are created as needed.
func MkTree(t *testing.T, root pathkit.Path, tree map[string]string) {
	t.Helper()
	for rel, content := range tree {
		target := root.Join(rel)
		if strings.HasSuffix(rel, "/") {
			if _, err := target.MkDir(pathkit.WithParents()); err != nil {
				t.Fatalf("MkTree: mkdir %s: %v", target, err)
			}
			continue
		}
		if _, err := target.Parent().MkDir(pathkit.WithParents()); err != nil {
			t.Fatalf("MkTree: mkdir %s: %v", target.Parent(), err)
		}
		if _, err := target.WriteText(content, pathkit.WithOverwrite()); err != nil {
			t.Fatalf("MkTree: write %s: %v", target, err)
		}
	}
}

// Collect drains an entry sequence, failing the test on any iteration error,
// and returns the entries in yield order.
func Collect(t *testing.T, seq iter.Seq2[pathkit.Entry, error]) []pathkit.Entry {
	t.Helper()
	var entries []pathkit.Entry
	for entry, err := range seq {
		if err != nil {
			t.Fatalf("Collect: iteration failed: %v", err)
		}
		entries = append(entries, entry)
	}
	return entries
}

// RelativePaths maps entries to their paths relative to root, sorted.
func RelativePaths(root pathkit.Path, entries []pathkit.Entry) []string {
	rels := make([]string, 0, len(entries))
	for _, entry := range entries {
		rels = append(rels, entry.Path.RelativeTo(root))
	}
	sort.Strings(rels)
	return rels
}
