package pathkit

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jmgilman/go/pathkit/errors"
)

// Inspectors return the receiver plus a presence flag instead of a bare
// boolean so results chain:
//
//	if dir, ok := p.IsDir(); ok {
//	    for entry, err := range dir.List() { ... }
//	}
//
// Every failure while querying the OS entry collapses to absence, including
// permission errors: a path the process cannot stat is as unusable as one
// that is missing. The one exception is [Path.Readlink], which must keep
// "absent" and "present but not a symlink" distinguishable.

// Exists reports whether an entry exists at the path, following symlinks.
func (p Path) Exists() (Path, bool) {
	_, err := os.Stat(p.raw)
	return p, err == nil
}

// IsFile reports whether the path names a regular file, following symlinks
// to the target's real type.
func (p Path) IsFile() (Path, bool) {
	info, err := os.Stat(p.raw)
	return p, err == nil && info.Mode().IsRegular()
}

// IsDir reports whether the path names a directory, following symlinks to
// the target's real type.
func (p Path) IsDir() (Path, bool) {
	info, err := os.Stat(p.raw)
	return p, err == nil && info.IsDir()
}

// IsSymlink reports whether the path itself, unresolved, is a symbolic link.
func (p Path) IsSymlink() (Path, bool) {
	info, err := os.Lstat(p.raw)
	return p, err == nil && info.Mode()&fs.ModeSymlink != 0
}

// IsExecutableFile reports whether the path is a regular file with any
// execute bit set. Directories never qualify, whatever their mode.
func (p Path) IsExecutableFile() (Path, bool) {
	info, err := os.Stat(p.raw)
	return p, err == nil && info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}

// IsReadableFile reports whether the path is a regular file. It performs no
// separate read-permission check and is currently identical to [Path.IsFile];
// the name records intent at call sites.
func (p Path) IsReadableFile() (Path, bool) {
	return p.IsFile()
}

// Readlink resolves exactly one symlink hop on the final path component.
// A relative link target is resolved against the link's parent directory.
//
// If the entry is not a symlink the receiver is returned unchanged. If there
// is no entry at all, Readlink fails with errors.CodeNotFound rather than
// reporting absence: a missing entry and a present non-symlink must remain
// distinguishable outcomes.
func (p Path) Readlink() (Path, error) {
	info, err := os.Lstat(p.raw)
	if err != nil {
		if os.IsNotExist(err) {
			return Path{}, errors.Wrapf(err, errors.CodeNotFound, "no entry at %s", p)
		}
		return Path{}, osError(err, "lstat", p)
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return p, nil
	}

	target, err := os.Readlink(p.raw)
	if err != nil {
		return Path{}, osError(err, "readlink", p)
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(p.Parent().raw, target)
	}
	return New(target)
}

// Realpath fully canonicalizes the path, resolving every symlink in every
// component. This is the heavyweight counterpart of the one-hop
// [Path.Readlink]; it fails if any component does not exist.
func (p Path) Realpath() (Path, error) {
	resolved, err := filepath.EvalSymlinks(p.raw)
	if err != nil {
		return Path{}, osError(err, "resolve", p)
	}
	return New(resolved)
}
