package pathkit

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Parent returns the path with its last component stripped.
// The root's parent is the root itself; Parent never errors.
func (p Path) Parent() Path {
	if p.IsRoot() {
		return p
	}
	return Path{raw: filepath.Dir(p.raw)}
}

// Join appends segments to the path and normalizes the result.
//
// Empty segments are dropped. If a segment is itself an absolute path it
// replaces everything accumulated so far; later segments join onto it. This
// short-circuit mirrors how shells resolve arguments and is deliberate:
//
//	pathkit.Root.Join("usr", "/etc", "hosts").String() // "/etc/hosts"
func (p Path) Join(segments ...string) Path {
	result := p.raw
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		if filepath.IsAbs(seg) {
			result = seg
			continue
		}
		result += string(filepath.Separator) + seg
	}
	return Path{raw: filepath.Clean(result)}
}

// Split returns the parent directory and the final component.
func (p Path) Split() (Path, string) {
	return p.Parent(), p.Base()
}

// Base returns the final component of the path.
// For the root it returns the separator itself.
func (p Path) Base() string {
	return filepath.Base(p.raw)
}

// tarExt matches archive-style compound suffixes such as ".tar.gz" or
// ".tar.xz", which are treated as a single extension unit.
var tarExt = regexp.MustCompile(`\.tar\.[^.]+$`)

// Ext returns the path's extension. Compound archive suffixes of the form
// ".tar.<ext>" are recognized as one unit; otherwise the last dot-delimited
// segment is returned, including the dot. Paths without an extension yield "".
func (p Path) Ext() string {
	base := p.Base()
	if m := tarExt.FindString(base); m != "" {
		return m
	}
	return filepath.Ext(base)
}

// RelativeTo computes the minimal relative path from base to p, using "/" as
// the separator. Equal paths yield the empty string.
//
// The result satisfies base.Join(p.RelativeTo(base)).Equal(p):
//
//	target := pathkit.Must(pathkit.New("/tmp/a/b/c.txt"))
//	base := pathkit.Must(pathkit.New("/tmp/a/x/y"))
//	target.RelativeTo(base) // "../../b/c.txt"
func (p Path) RelativeTo(base Path) string {
	if p.Equal(base) {
		return ""
	}
	if base.IsRoot() {
		return strings.TrimPrefix(p.raw, base.raw)
	}

	// Fast path: p sits below base.
	if rest, ok := strings.CutPrefix(p.raw, base.raw+string(filepath.Separator)); ok {
		return rest
	}

	// General path: strip the longest common component prefix, climb out of
	// what remains of base, then descend into what remains of p.
	pc := p.components()
	bc := base.components()
	common := 0
	for common < len(pc) && common < len(bc) && pc[common] == bc[common] {
		common++
	}

	parts := make([]string, 0, len(bc)-common+len(pc)-common)
	for range bc[common:] {
		parts = append(parts, "..")
	}
	parts = append(parts, pc[common:]...)
	return strings.Join(parts, "/")
}

// components returns the path's components without the leading root.
// The root itself has no components.
func (p Path) components() []string {
	if p.IsRoot() {
		return nil
	}
	return strings.Split(strings.TrimPrefix(p.raw, string(filepath.Separator)), string(filepath.Separator))
}
