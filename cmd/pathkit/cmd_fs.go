package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jmgilman/go/pathkit"
)

var (
	flagForce     bool
	flagParents   bool
	flagRecursive bool
)

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <dir>",
	Short: "Create a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveArg(args[0])
		if err != nil {
			return err
		}
		var opts []pathkit.MkDirOption
		if flagParents {
			opts = append(opts, pathkit.WithParents())
		}
		created, err := dir.MkDir(opts...)
		if err != nil {
			return err
		}
		fmt.Println(created)
		return nil
	},
}

var mvCmd = &cobra.Command{
	Use:   "mv <source> <destination>",
	Short: "Move an entry; a directory destination keeps the source basename",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := resolveArg(args[0])
		if err != nil {
			return err
		}
		dst, err := resolveArg(args[1])
		if err != nil {
			return err
		}

		var opts []pathkit.MoveOption
		if flagForce {
			opts = append(opts, pathkit.WithForce())
		}

		var moved pathkit.Path
		if _, isDir := dst.IsDir(); isDir {
			moved, err = src.MoveInto(dst, opts...)
		} else {
			moved, err = src.MoveTo(dst, opts...)
		}
		if err != nil {
			return err
		}
		logger.Debug("moved", zap.String("from", src.String()), zap.String("to", moved.String()))
		fmt.Println(moved)
		return nil
	},
}

var cpCmd = &cobra.Command{
	Use:   "cp <file> <directory>",
	Short: "Copy a file into a directory, overwriting any existing copy",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := resolveArg(args[0])
		if err != nil {
			return err
		}
		dir, err := resolveArg(args[1])
		if err != nil {
			return err
		}
		copied, err := src.CopyInto(dir)
		if err != nil {
			return err
		}
		fmt.Println(copied)
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <path>",
	Short: "Remove an entry; removing a missing path is a no-op",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolveArg(args[0])
		if err != nil {
			return err
		}

		var opts []pathkit.RemoveOption
		if flagRecursive {
			opts = append(opts, pathkit.WithRecursive())

			if _, isDir := p.IsDir(); isDir && !cfg.AssumeYes {
				var confirmed bool
				prompt := &survey.Confirm{
					Message: fmt.Sprintf("Recursively remove %s?", p),
				}
				if err := survey.AskOne(prompt, &confirmed); err != nil {
					return err
				}
				if !confirmed {
					return nil
				}
			}
		}
		return p.Remove(opts...)
	},
}

var linkCmd = &cobra.Command{
	Use:   "link <target> <location>",
	Short: "Create a symlink at location pointing at target",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := resolveArg(args[0])
		if err != nil {
			return err
		}
		location, err := resolveArg(args[1])
		if err != nil {
			return err
		}
		link, err := target.SymlinkAt(location)
		if err != nil {
			return err
		}
		fmt.Println(link)
		return nil
	},
}

var touchCmd = &cobra.Command{
	Use:   "touch <file>",
	Short: "Create an empty file, truncating any existing content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolveArg(args[0])
		if err != nil {
			return err
		}
		touched, err := p.Touch()
		if err != nil {
			return err
		}
		fmt.Println(touched)
		return nil
	},
}

func init() {
	mkdirCmd.Flags().BoolVarP(&flagParents, "parents", "p", false, "create missing intermediate directories")
	mvCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "replace an existing destination")
	rmCmd.Flags().BoolVarP(&flagRecursive, "recursive", "r", false, "remove directories and their contents")

	rootCmd.AddCommand(mkdirCmd)
	rootCmd.AddCommand(mvCmd)
	rootCmd.AddCommand(cpCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(touchCmd)
}
