package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newMapCmd())
}

func newMapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "map",
		Short: "Run the map workload",
		Long: `The map command mixes inserts, removals and lookups over a bounded key
space and checks every result against a builtin map.

Example:
  collbench map
  collbench map --n 100000 --seed 7 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := runMap(numOps, seed)
			if err != nil {
				return err
			}
			return finish(cmd, r)
		},
	}
}
