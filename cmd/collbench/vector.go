package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newVectorCmd())
}

func newVectorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vector",
		Short: "Run the vector workload",
		Long: `The vector command mixes push, pop, insert, remove and swap-remove
operations and checks the vector's contents against a slice after each one.

Example:
  collbench vector
  collbench vector --n 100000 --seed 7 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := runVector(numOps, seed)
			if err != nil {
				return err
			}
			return finish(cmd, r)
		},
	}
}
