// Package config loads settings for the pathkit CLI. Values come from an
// optional YAML file under the user's config directory, overridden by
// PATHKIT_* environment variables.
package config

import (
	"github.com/kelseyhightower/envconfig"

	"github.com/jmgilman/go/pathkit"
	"github.com/jmgilman/go/pathkit/errors"
)

// Config holds CLI settings.
type Config struct {
	// TempDir is the parent directory for `pathkit tmp`. Empty means the
	// system default.
	TempDir string `yaml:"temp_dir" envconfig:"TEMP_DIR"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose" envconfig:"VERBOSE"`

	// AssumeYes skips interactive confirmation prompts.
	AssumeYes bool `yaml:"assume_yes" envconfig:"ASSUME_YES"`
}

// envPrefix namespaces the environment overrides (PATHKIT_TEMP_DIR etc).
const envPrefix = "PATHKIT"

// Load reads the default config file if it exists and applies environment
// overrides on top. A missing file is not an error; environment variables
// alone can configure the CLI.
func Load() (Config, error) {
	path, err := defaultPath()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(path)
}

// LoadFrom is like [Load] but reads the given file instead of the default
// location.
func LoadFrom(path pathkit.Path) (Config, error) {
	var cfg Config

	if _, ok := path.IsFile(); ok {
		if err := path.ReadYAML(&cfg); err != nil {
			return Config{}, errors.Wrapf(err, errors.CodeUnknown, "load config from %s", path)
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, errors.Wrap(err, errors.CodeUnknown, "apply environment overrides")
	}
	return cfg, nil
}

// defaultPath returns ~/.config/pathkit/config.yaml.
func defaultPath() (pathkit.Path, error) {
	home, err := pathkit.Home()
	if err != nil {
		return pathkit.Path{}, err
	}
	return home.Join(".config", "pathkit", "config.yaml"), nil
}
