package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/pathkit"
	"github.com/jmgilman/go/pathkit/vals"
)

var tmpPrefix string

var tmpCmd = &cobra.Command{
	Use:   "tmp",
	Short: "Create a uniquely named temporary directory and print its path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := []pathkit.TempOption{
			pathkit.WithPrefix(vals.Coalesce(tmpPrefix, "pathkit-")),
		}
		if cfg.TempDir != "" {
			parent, err := resolveArg(cfg.TempDir)
			if err != nil {
				return err
			}
			opts = append(opts, pathkit.WithParent(parent))
		}

		dir, err := pathkit.MakeTempDir(opts...)
		if err != nil {
			return err
		}
		fmt.Println(dir)
		return nil
	},
}

func init() {
	tmpCmd.Flags().StringVar(&tmpPrefix, "prefix", "", "name prefix for the created directory")
	rootCmd.AddCommand(tmpCmd)
}
