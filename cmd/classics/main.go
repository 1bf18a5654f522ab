// Package main provides the classics CLI: one subcommand per fixed program,
// each printing a single checksum integer to stdout.
//
//	$ classics fibonacci
//	20295
//	$ classics verify
//	fibonacci 20295 ok
//	...
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/classics/checksum"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries per-invocation state shared by the command tree.
type app struct {
	verbose bool
	logger  *zap.Logger
	runner  *checksum.Runner
}

// newRootCmd builds a fresh command tree. Output goes to cmd.OutOrStdout,
// logs to cmd.ErrOrStderr.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "classics",
		Short: "Run the classic algorithm programs and print their checksums",
		Long: `classics runs textbook algorithms (Fibonacci, linked list traversal,
matrix add/multiply, popcount, quicksort, naive string search) on fixed
inputs. Every subcommand prints exactly one integer: the checksum of that
program. "verify" runs all of them against the expected values.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), a.verbose)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			a.logger = logger
			a.runner = checksum.NewRunner(checksum.WithLogger(a.logger))

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log scenario details to stderr")

	for _, s := range checksum.Scenarios() {
		root.AddCommand(a.scenarioCmd(s))
	}
	root.AddCommand(a.verifyCmd())

	return root
}

// scenarioCmd prints the output of a single scenario.
func (a *app) scenarioCmd(s checksum.Scenario) *cobra.Command {
	name := s.Name

	return &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("Print the %s checksum (expected %d)", name, s.Want),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			got, err := a.runner.Run(name)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), got)

			return err
		},
	}
}

// verifyCmd runs every scenario and fails when any output is wrong.
func (a *app) verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Run every program and compare with its expected checksum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.runner.RunAll()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range results {
				status := "ok"
				if !r.OK() {
					status = fmt.Sprintf("FAIL (want %d)", r.Want)
				}
				fmt.Fprintf(out, "%s %d %s\n", r.Name, r.Got, status)
			}
			if err = checksum.Mismatch(results); err != nil {
				return err
			}
			a.logger.Info("all scenarios verified", zap.Int("count", len(results)))

			return nil
		},
	}
}

// newLogger builds the production logger (JSON, sampling, caller and
// stacktrace on error) at debug level when verbose is set. Entries are
// written to w rather than the config's output paths so the command's
// stderr can be redirected.
func newLogger(w io.Writer, verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	redirect := zap.WrapCore(func(zapcore.Core) zapcore.Core {
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(config.EncoderConfig),
			zapcore.AddSync(w),
			config.Level,
		)
		if s := config.Sampling; s != nil {
			return zapcore.NewSamplerWithOptions(core, time.Second, s.Initial, s.Thereafter)
		}

		return core
	})

	return config.Build(redirect)
}
