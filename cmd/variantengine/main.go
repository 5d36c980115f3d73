// Command variantengine hosts the worker protocol loop and a handful
// of developer subcommands (perft, version) behind a cobra CLI.
//
// zurichess sources: interface.go's flag-parsed variant selection at
// process start, replaced by cobra subcommands since the worker
// protocol carries rules/position per-request instead of per-process.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mosoi-variant/vareng/internal/board"
	"github.com/mosoi-variant/vareng/internal/eval"
	"github.com/mosoi-variant/vareng/internal/exec"
	"github.com/mosoi-variant/vareng/internal/moveset"
	"github.com/mosoi-variant/vareng/internal/rules"
	"github.com/mosoi-variant/vareng/internal/worker"
)

// version is stamped at release build time via -ldflags; "dev" covers
// local builds.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "variantengine",
		Short: "Move legality and search core for arbitrary chess variants",
	}
	root.AddCommand(newServeCmd(), newPerftCmd(), newVersionCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON worker protocol loop over stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer log.Sync()

			registry := moveset.StandardRegistry()
			values := eval.StandardValues()
			srv := worker.NewServer(os.Stdin, os.Stdout, registry, values, log)
			return srv.Run(context.Background())
		},
	}
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug-level logging")
	return cmd
}

func newPerftCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "perft",
		Short: "Count leaf positions from the standard starting position (move-generator correctness check)",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := moveset.StandardRegistry()
			rset := rules.Default()
			b := board.FromPlacements(rset, registry, board.StandardPlacements(), rset.TurnOrder[0])
			start := time.Now()
			n := exec.Perft(b, depth)
			fmt.Printf("perft(%d) = %d  (%s)\n", depth, n, time.Since(start))
			return nil
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 4, "perft depth in plies")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	// stdout is reserved for the worker protocol's JSON responses; all
	// logging goes to stderr so the two streams never interleave.
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
