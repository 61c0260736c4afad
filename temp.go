package pathkit

import (
	"os"
)

// TempOption configures temporary directory creation.
type TempOption func(*tempConfig)

type tempConfig struct {
	prefix string
	parent Path
}

// WithPrefix sets the name prefix of the created directory.
func WithPrefix(prefix string) TempOption {
	return func(c *tempConfig) {
		c.prefix = prefix
	}
}

// WithParent places the temporary directory inside dir instead of the
// system default. The parent is created first if needed, including missing
// intermediates.
func WithParent(dir Path) TempOption {
	return func(c *tempConfig) {
		c.parent = dir
	}
}

// MakeTempDir creates a uniquely named temporary directory and returns its
// concrete path. Uniqueness comes from the OS-level randomized suffix, not
// from any collision checking here.
func MakeTempDir(opts ...TempOption) (Path, error) {
	var cfg tempConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	parent := ""
	if !cfg.parent.isZero() {
		if _, err := cfg.parent.MkDir(WithParents()); err != nil {
			return Path{}, err
		}
		parent = cfg.parent.raw
	}

	dir, err := os.MkdirTemp(parent, cfg.prefix)
	if err != nil {
		return Path{}, osError(err, "create temp directory", cfg.parent)
	}
	return New(dir)
}
