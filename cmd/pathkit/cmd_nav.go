package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jmgilman/go/pathkit/platform"
)

var relCmd = &cobra.Command{
	Use:   "rel <base> <target>",
	Short: "Compute the relative path from base to target",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := resolveArg(args[0])
		if err != nil {
			return err
		}
		target, err := resolveArg(args[1])
		if err != nil {
			return err
		}
		fmt.Println(target.RelativeTo(base))
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <path>",
	Short: "Show path components and entry state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolveArg(args[0])
		if err != nil {
			return err
		}
		logger.Debug("inspecting path", zap.String("path", p.String()))

		label := color.New(color.FgCyan)
		label.Print("path:      ")
		fmt.Println(p)
		label.Print("parent:    ")
		fmt.Println(p.Parent())
		label.Print("base:      ")
		fmt.Println(p.Base())
		label.Print("ext:       ")
		fmt.Println(p.Ext())

		state := "missing"
		switch {
		case firstOk(p.IsSymlink()):
			state = "symlink"
			if target, err := p.Readlink(); err == nil {
				state = fmt.Sprintf("symlink -> %s", target)
			}
		case firstOk(p.IsDir()):
			state = "directory"
		case firstOk(p.IsExecutableFile()):
			state = "executable file"
		case firstOk(p.IsFile()):
			state = "file"
		}
		label.Print("entry:     ")
		fmt.Println(state)

		if host, err := platform.Detect(); err == nil {
			label.Print("platform:  ")
			fmt.Println(host)
		}
		return nil
	},
}

// firstOk adapts the chainable inspector shape to a plain condition.
func firstOk(_ any, ok bool) bool {
	return ok
}

func init() {
	rootCmd.AddCommand(relCmd)
	rootCmd.AddCommand(infoCmd)
}
