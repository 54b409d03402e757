package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newListCmd())
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Run the list workload",
		Long: `The list command pushes and pops at both ends and then checks forward
and backward traversal and storage density against a slice.

Example:
  collbench list
  collbench list --n 100000 --seed 7 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := runList(numOps, seed)
			if err != nil {
				return err
			}
			return finish(cmd, r)
		},
	}
}
