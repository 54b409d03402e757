package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newSetCmd())
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set",
		Short: "Run the set workload",
		Long: `The set command inserts, removes and probes string members hashed with
the seeded xxhash string hasher and checks them against a builtin map.

Example:
  collbench set
  collbench set --n 100000 --seed 7 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := runSet(numOps, seed)
			if err != nil {
				return err
			}
			return finish(cmd, r)
		},
	}
}
