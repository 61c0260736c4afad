package pathkit

import (
	"errors"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	pkerrors "github.com/jmgilman/go/pathkit/errors"
)

// EntryType classifies a directory entry as reported by the OS, without
// following symlinks.
type EntryType int

const (
	// EntryFile is a regular file.
	EntryFile EntryType = iota
	// EntryDir is a directory.
	EntryDir
	// EntrySymlink is a symbolic link, whatever it points at.
	EntrySymlink
	// EntryOther is any other entry kind (device, socket, fifo).
	EntryOther
)

// String returns a string representation of the EntryType.
func (t EntryType) String() string {
	switch t {
	case EntryFile:
		return "file"
	case EntryDir:
		return "dir"
	case EntrySymlink:
		return "symlink"
	default:
		return "other"
	}
}

// Entry pairs a child path with its OS-reported entry type. Entries are
// produced during iteration and are not meant to be persisted: the
// classification reflects the directory state at read time.
type Entry struct {
	Path Path
	Type EntryType
}

func entryTypeOf(d fs.DirEntry) EntryType {
	switch {
	case d.Type()&fs.ModeSymlink != 0:
		return EntrySymlink
	case d.IsDir():
		return EntryDir
	case d.Type().IsRegular():
		return EntryFile
	default:
		return EntryOther
	}
}

// List lazily yields one entry per direct child of the directory.
//
// The directory handle is opened on first use and released on every exit
// path: normal exhaustion, early break, or error. The sequence is finite and
// restartable; ranging again reopens the directory and reads its current
// state rather than a snapshot.
func (p Path) List() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		f, err := os.Open(p.raw)
		if err != nil {
			yield(Entry{}, osError(err, "open directory", p))
			return
		}
		defer f.Close()

		for {
			batch, err := f.ReadDir(listBatchSize)
			for _, d := range batch {
				child := Entry{
					Path: Path{raw: filepath.Join(p.raw, d.Name())},
					Type: entryTypeOf(d),
				}
				if !yield(child, nil) {
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield(Entry{}, osError(err, "read directory", p))
				}
				return
			}
		}
	}
}

// listBatchSize bounds how many entries List reads per syscall.
const listBatchSize = 128

// Walk lazily yields every entry under the directory, depth-first and
// pre-order, using an explicit work stack so traversal depth never grows the
// call stack. The traversal root itself is never yielded.
//
// Entries are classified without following symlinks, so a symlink to a
// directory is yielded as EntrySymlink and not descended into; traversal
// therefore cannot loop through cyclic symlink structures. Directories that
// fail to open yield their error and traversal continues with the rest of
// the tree.
func (p Path) Walk() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		stack := []Path{p}
		for len(stack) > 0 {
			dir := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			ok := true
			for entry, err := range dir.List() {
				if err != nil {
					if !yield(Entry{}, err) {
						return
					}
					continue
				}
				if !yield(entry, nil) {
					ok = false
					break
				}
				if entry.Type == EntryDir {
					stack = append(stack, entry.Path)
				}
			}
			if !ok {
				return
			}
		}
	}
}

// Glob yields the subset of [Path.Walk] whose path relative to the receiver
// matches the doublestar pattern:
//
//	for entry, err := range dir.Glob("**/*.tar.gz") { ... }
//
// An invalid pattern yields a single errors.CodeInvalidPath error.
func (p Path) Glob(pattern string) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		if !doublestar.ValidatePattern(pattern) {
			yield(Entry{}, pkerrors.Newf(pkerrors.CodeInvalidPath, "invalid glob pattern: %q", pattern))
			return
		}
		for entry, err := range p.Walk() {
			if err != nil {
				if !yield(Entry{}, err) {
					return
				}
				continue
			}
			matched, err := doublestar.Match(pattern, entry.Path.RelativeTo(p))
			if err != nil {
				yield(Entry{}, pkerrors.Wrapf(err, pkerrors.CodeInvalidPath, "invalid glob pattern: %q", pattern))
				return
			}
			if matched && !yield(entry, nil) {
				return
			}
		}
	}
}
