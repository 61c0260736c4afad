package pathkit

import (
	"encoding/json"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/pathkit/errors"
)

// MoveOption configures move operations.
type MoveOption func(*moveConfig)

type moveConfig struct {
	force bool
}

// WithForce allows a move to replace an existing destination. The existing
// entry is removed before the rename: two separate OS calls, not atomic. A
// crash between them can leave neither entry, which is an acknowledged
// limitation rather than something this package papers over.
func WithForce() MoveOption {
	return func(c *moveConfig) {
		c.force = true
	}
}

// MoveTo renames the entry at p to the exact destination path.
//
// If the destination exists and the move is not forced, MoveTo fails with
// errors.CodeAlreadyExists. On success the destination path is returned.
func (p Path) MoveTo(dest Path, opts ...MoveOption) (Path, error) {
	var cfg moveConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if _, exists := dest.Exists(); exists {
		if !cfg.force {
			return Path{}, errors.Newf(errors.CodeAlreadyExists, "destination %s exists", dest)
		}
		if err := dest.Remove(WithRecursive()); err != nil {
			return Path{}, err
		}
	}

	if err := os.Rename(p.raw, dest.raw); err != nil {
		return Path{}, osError(err, "rename", p)
	}
	return dest, nil
}

// MoveInto renames the entry at p into the destination directory, keeping
// p's basename. It accepts the same options as [Path.MoveTo].
func (p Path) MoveInto(dir Path, opts ...MoveOption) (Path, error) {
	return p.MoveTo(dir.Join(p.Base()), opts...)
}

// CopyInto copies the file's content into the destination directory under
// the source's basename, preserving the source's permission bits.
//
// An existing destination is always overwritten; there is no force flag.
// The asymmetry with [Path.MoveTo] is intentional: a copy leaves the source
// in place, so replacing the destination loses nothing irrecoverable.
func (p Path) CopyInto(dir Path) (Path, error) {
	dest := dir.Join(p.Base())

	src, err := os.Open(p.raw)
	if err != nil {
		return Path{}, osError(err, "open source", p)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return Path{}, osError(err, "stat source", p)
	}

	dst, err := os.OpenFile(dest.raw, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return Path{}, osError(err, "create destination", dest)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return Path{}, osError(err, "copy content", dest)
	}
	if err := dst.Close(); err != nil {
		return Path{}, osError(err, "close destination", dest)
	}
	return dest, nil
}

// RemoveOption configures remove operations.
type RemoveOption func(*removeConfig)

type removeConfig struct {
	recursive bool
}

// WithRecursive removes a directory and everything beneath it.
func WithRecursive() RemoveOption {
	return func(c *removeConfig) {
		c.recursive = true
	}
}

// Remove deletes the entry at p: a file, an empty directory, or with
// [WithRecursive] a whole tree.
//
// Removing a path that does not exist is a no-op, not an error, so Remove is
// idempotent.
func (p Path) Remove(opts ...RemoveOption) error {
	var cfg removeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.recursive {
		if err := os.RemoveAll(p.raw); err != nil {
			return osError(err, "remove tree", p)
		}
		return nil
	}

	if err := os.Remove(p.raw); err != nil && !os.IsNotExist(err) {
		return osError(err, "remove", p)
	}
	return nil
}

// MkDirOption configures directory creation.
type MkDirOption func(*mkdirConfig)

type mkdirConfig struct {
	parents bool
}

// WithParents creates all missing intermediate directories.
func WithParents() MkDirOption {
	return func(c *mkdirConfig) {
		c.parents = true
	}
}

// MkDir creates a directory at p with mode 0o755 (before umask).
//
// If p is already a directory this is a no-op, so MkDir is idempotent.
// Without [WithParents] it fails when the parent is missing.
func (p Path) MkDir(opts ...MkDirOption) (Path, error) {
	var cfg mkdirConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if _, isDir := p.IsDir(); isDir {
		return p, nil
	}

	mkdir := os.Mkdir
	if cfg.parents {
		mkdir = os.MkdirAll
	}
	if err := mkdir(p.raw, 0o755); err != nil {
		return Path{}, osError(err, "mkdir", p)
	}
	return p, nil
}

// WriteOption configures write operations.
type WriteOption func(*writeConfig)

type writeConfig struct {
	overwrite bool
	indent    int
	perm      fs.FileMode
}

// WithOverwrite allows a write to replace an existing file.
func WithOverwrite() WriteOption {
	return func(c *writeConfig) {
		c.overwrite = true
	}
}

// WithIndent sets the indentation width for structured writes
// ([Path.WriteJSON]). Zero emits compact output.
func WithIndent(width int) WriteOption {
	return func(c *writeConfig) {
		c.indent = width
	}
}

// WithMode sets the permission bits for the written file (default 0o644,
// before umask).
func WithMode(mode fs.FileMode) WriteOption {
	return func(c *writeConfig) {
		c.perm = mode
	}
}

// WriteText writes s as the file's full content.
//
// If the target exists and the write is not overwriting, WriteText fails
// with errors.CodeAlreadyExists.
func (p Path) WriteText(s string, opts ...WriteOption) (Path, error) {
	return p.WriteBytes([]byte(s), opts...)
}

// WriteBytes writes b as the file's full content, under the same overwrite
// policy as [Path.WriteText].
func (p Path) WriteBytes(b []byte, opts ...WriteOption) (Path, error) {
	cfg := writeConfig{perm: 0o644}
	for _, opt := range opts {
		opt(&cfg)
	}

	if _, exists := p.Exists(); exists && !cfg.overwrite {
		return Path{}, errors.Newf(errors.CodeAlreadyExists, "%s exists", p)
	}
	if err := os.WriteFile(p.raw, b, cfg.perm); err != nil {
		return Path{}, osError(err, "write", p)
	}
	return p, nil
}

// WriteJSON serializes v as JSON and writes it, terminated by a newline.
// [WithIndent] selects pretty-printing; the overwrite policy matches
// [Path.WriteText].
func (p Path) WriteJSON(v any, opts ...WriteOption) (Path, error) {
	cfg := writeConfig{perm: 0o644}
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		data []byte
		err  error
	)
	if cfg.indent > 0 {
		data, err = json.MarshalIndent(v, "", strings.Repeat(" ", cfg.indent))
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return Path{}, errors.Wrap(err, errors.CodeUnknown, "marshal json")
	}
	return p.WriteBytes(append(data, '\n'), opts...)
}

// WriteYAML serializes v as YAML and writes it, under the same overwrite
// policy as [Path.WriteText]. The indent option is ignored; YAML output is
// always block-formatted.
func (p Path) WriteYAML(v any, opts ...WriteOption) (Path, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return Path{}, errors.Wrap(err, errors.CodeUnknown, "marshal yaml")
	}
	return p.WriteBytes(data, opts...)
}

// Touch creates an empty file at p, overwriting unconditionally.
func (p Path) Touch() (Path, error) {
	f, err := os.OpenFile(p.raw, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return Path{}, osError(err, "touch", p)
	}
	if err := f.Close(); err != nil {
		return Path{}, osError(err, "touch", p)
	}
	return p, nil
}

// Chmod sets the POSIX permission bits on the entry at p.
func (p Path) Chmod(mode fs.FileMode) (Path, error) {
	if err := os.Chmod(p.raw, mode); err != nil {
		return Path{}, osError(err, "chmod", p)
	}
	return p, nil
}

// SymlinkAt creates a symbolic link at location pointing at p. Note the
// direction: the receiver is the link target, the argument is where the new
// link is created.
//
//	bin.SymlinkAt(usrLocal.Join("bin", "tool")) // /usr/local/bin/tool -> bin
//
// The created link's path is returned.
func (p Path) SymlinkAt(location Path) (Path, error) {
	if err := os.Symlink(p.raw, location.raw); err != nil {
		return Path{}, osError(err, "symlink", location)
	}
	return location, nil
}
