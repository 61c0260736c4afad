// Command pathkit is a small filesystem toolbox built on the pathkit
// library: path algebra, directory listing and traversal, and mutating
// operations with explicit overwrite policies.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jmgilman/go/pathkit"
	"github.com/jmgilman/go/pathkit/errors"
	"github.com/jmgilman/go/pathkit/internal/config"
)

var (
	cfg    config.Config
	logger *zap.Logger

	flagVerbose bool
	flagYes     bool
)

var rootCmd = &cobra.Command{
	Use:   "pathkit",
	Short: "Inspect and manipulate filesystem paths",
	Long: `pathkit works with normalized absolute paths: compute relative paths,
list and walk directory trees, and move, copy, write, link, and remove
entries with explicit overwrite policies.

Relative arguments are resolved against the current working directory.`,
	SilenceUsage:  true,
	SilenceErrors: true, // errors are formatted in main for consistent output
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if flagYes {
			cfg.AssumeYes = true
		}

		logger = zap.NewNop()
		if flagVerbose || cfg.Verbose {
			logger, err = zap.NewDevelopment()
			if err != nil {
				return err
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "skip confirmation prompts")
}

// resolveArg turns a CLI argument into an absolute Path, resolving relative
// input against the live working directory.
func resolveArg(arg string) (pathkit.Path, error) {
	if p, ok := pathkit.TryNew(arg); ok {
		return p, nil
	}
	cwd, err := pathkit.Cwd()
	if err != nil {
		return pathkit.Path{}, err
	}
	return cwd.Join(arg), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		red := color.New(color.FgRed, color.Bold)
		if code := errors.GetCode(err); code != errors.CodeUnknown {
			red.Fprintf(os.Stderr, "error [%s]: ", code)
		} else {
			red.Fprint(os.Stderr, "error: ")
		}
		fmt.Fprintln(os.Stderr, messageOf(err))
		os.Exit(1)
	}
}

// messageOf prefers the tagged error's message over the full chain string.
func messageOf(err error) string {
	var tagged errors.Error
	if errors.As(err, &tagged) {
		return tagged.Message()
	}
	return err.Error()
}
