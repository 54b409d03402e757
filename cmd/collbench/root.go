package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pavanmanishd/coll"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	numOps      int
	seed        uint64
	jsonOut     bool
	verbose     bool
	jsonLogs    bool
	metricsAddr string
)

var rootCmd = &cobra.Command{
	Use:   "collbench",
	Short: "Exercise coll containers under a random workload",
	Long: `collbench runs a reproducible sequence of random operations against one
coll container, checks every result against the equivalent builtin Go
structure, and prints the container's final allocation statistics.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd.ErrOrStderr())
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&numOps, "n", 10000, "Number of random operations")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 1, "Workload seed")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Log buffer resizes and rehashes to stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().
		StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address after the run")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// configureLogging installs the package logger. Without --verbose or
// --json-logs the library stays silent.
func configureLogging(w io.Writer) {
	if !verbose && !jsonLogs {
		coll.SetLogger(nil)
		return
	}
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	var h slog.Handler = slog.NewTextHandler(w, opts)
	if jsonLogs {
		h = slog.NewJSONHandler(w, opts)
	}
	coll.SetLogger(slog.New(h))
}

// finish prints the report and, if requested, serves its gauges.
func finish(cmd *cobra.Command, r report) error {
	if err := printReport(cmd.OutOrStdout(), r); err != nil {
		return err
	}
	if metricsAddr == "" {
		return nil
	}
	reg := newRegistry()
	reg.publish(r)
	return reg.serve(cmd.Context(), metricsAddr)
}

func printReport(w io.Writer, r report) error {
	if jsonOut {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(r)
	}
	fmt.Fprintf(w, "container:   %s\n", r.Container)
	fmt.Fprintf(w, "ops:         %d (seed %d)\n", r.Ops, r.Seed)
	fmt.Fprintf(w, "len:         %d\n", r.Len)
	if b := r.Buffer; b != nil {
		fmt.Fprintf(w, "capacity:    %d\n", b.Capacity)
		fmt.Fprintf(w, "elem size:   %d bytes\n", b.ElemSize)
		fmt.Fprintf(w, "in use:      %s\n", humanize.IBytes(uint64(b.BytesInUse)))
		fmt.Fprintf(w, "reserved:    %s\n", humanize.IBytes(uint64(b.BytesReserved)))
		fmt.Fprintf(w, "utilization: %.2f%%\n", b.Utilization*100)
	}
	if t := r.Table; t != nil {
		fmt.Fprintf(w, "buckets:     %d (%d used)\n", t.Buckets, t.UsedBuckets)
		fmt.Fprintf(w, "max chain:   %d\n", t.MaxChain)
		fmt.Fprintf(w, "load factor: %.2f\n", t.LoadFactor)
		fmt.Fprintf(w, "node slots:  %s in %d chunks\n", humanize.Comma(int64(t.NodeSlots)), t.NodeChunks)
	}
	return nil
}
