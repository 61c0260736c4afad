package pathkit

import (
	"os"

	"github.com/jmgilman/go/pathkit/errors"
)

// Cwd returns the current working directory of the process.
// The value is read at call time, never cached, so it reflects live process
// state after any chdir.
func Cwd() (Path, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Path{}, errors.Wrap(err, errors.CodeOSFailure, "determine working directory")
	}
	return New(wd)
}

// Home returns the current user's home directory.
// Like [Cwd] it is read at call time, never cached.
func Home() (Path, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Path{}, errors.Wrap(err, errors.CodeOSFailure, "determine home directory")
	}
	return New(home)
}

// osError is the single point where OS call failures cross into the tagged
// error taxonomy. Downstream code matches on the code, never on message
// strings. Not-found maps to CodeNotFound, an existing entry to
// CodeAlreadyExists, and everything else to CodeOSFailure.
func osError(err error, op string, p Path) error {
	if err == nil {
		return nil
	}
	code := errors.CodeOSFailure
	switch {
	case os.IsNotExist(err):
		code = errors.CodeNotFound
	case os.IsExist(err):
		code = errors.CodeAlreadyExists
	}
	return errors.WrapWithContext(err, code, op+" failed", map[string]interface{}{
		"path": p.String(),
	})
}
