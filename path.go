package pathkit

import (
	"path/filepath"

	"github.com/jmgilman/go/pathkit/errors"
)

// Path is an immutable, normalized, absolute filesystem path.
//
// A Path always starts with the root separator, contains no duplicate
// separators and no "." segments, and carries no trailing separator unless it
// is the root itself. Equality is exact string equality: two distinct strings
// pointing at the same underlying entry through a symlink are not equal.
// Use [Path.Realpath] when canonical identity matters.
//
// The zero value is not a valid Path; construct values with [New] or
// [TryNew]. Path is a comparable value type, so copies are free and == works.
type Path struct {
	raw string
}

// Root is the filesystem root. It is the fixed point of [Path.Parent]:
// Root.Parent() equals Root.
var Root = Path{raw: string(filepath.Separator)}

// New constructs a Path from an absolute string, normalizing "." and ".."
// segments and duplicate separators per platform rules.
//
// It fails with errors.CodeInvalidPath if the input is empty or not absolute.
func New(input string) (Path, error) {
	if input == "" {
		return Path{}, errors.New(errors.CodeInvalidPath, "path must not be empty")
	}
	if !filepath.IsAbs(input) {
		return Path{}, errors.Newf(errors.CodeInvalidPath, "path must be absolute: %q", input)
	}
	return Path{raw: filepath.Clean(input)}, nil
}

// TryNew is like [New] but reports absence instead of failing.
func TryNew(input string) (Path, bool) {
	p, err := New(input)
	if err != nil {
		return Path{}, false
	}
	return p, true
}

// Must returns p if err is nil and panics otherwise. It is intended for
// wiring code and tests where the input is known to be valid:
//
//	home := pathkit.Must(pathkit.New("/home/user"))
func Must(p Path, err error) Path {
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the canonical normalized form of the path.
func (p Path) String() string {
	return p.raw
}

// Equal reports whether p and other are the same path string. It does not
// resolve symlinks: "/a/link" and "/a/target" are unequal even when the link
// points at the target.
func (p Path) Equal(other Path) bool {
	return p.raw == other.raw
}

// IsRoot reports whether p is the filesystem root.
func (p Path) IsRoot() bool {
	return p.raw == Root.raw
}

// isZero reports whether p is the invalid zero value.
func (p Path) isZero() bool {
	return p.raw == ""
}
