package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jmgilman/go/pathkit"
)

var lsCmd = &cobra.Command{
	Use:   "ls <dir>",
	Short: "List the direct children of a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveArg(args[0])
		if err != nil {
			return err
		}
		for entry, err := range dir.List() {
			if err != nil {
				return err
			}
			printEntry(dir, entry)
		}
		return nil
	},
}

var walkGlob string

var walkCmd = &cobra.Command{
	Use:   "walk <dir>",
	Short: "Walk a directory tree depth-first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveArg(args[0])
		if err != nil {
			return err
		}

		seq := dir.Walk()
		if walkGlob != "" {
			logger.Debug("filtering walk", zap.String("pattern", walkGlob))
			seq = dir.Glob(walkGlob)
		}

		var count int
		for entry, err := range seq {
			if err != nil {
				return err
			}
			printEntry(dir, entry)
			count++
		}
		logger.Debug("walk finished", zap.Int("entries", count))
		return nil
	},
}

func printEntry(root pathkit.Path, entry pathkit.Entry) {
	rel := entry.Path.RelativeTo(root)
	switch entry.Type {
	case pathkit.EntryDir:
		color.New(color.FgBlue, color.Bold).Println(rel + "/")
	case pathkit.EntrySymlink:
		color.New(color.FgMagenta).Println(rel + "@")
	default:
		fmt.Println(rel)
	}
}

func init() {
	walkCmd.Flags().StringVar(&walkGlob, "glob", "", "only print entries matching this doublestar pattern")
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(walkCmd)
}
