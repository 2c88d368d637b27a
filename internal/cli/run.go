package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/tester/internal/examples"
	"github.com/roach88/tester/internal/tester"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions

	// Clock allows overriding the run clock (for testing).
	// If nil, the wall clock is used.
	Clock tester.Clock
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return newRunCommand(&RunOptions{RootOptions: rootOpts})
}

func newRunCommand(opts *RunOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <suite>",
		Short: "Run an example suite",
		Long: `Run one of the bundled example suites and print its report.

Test lines and the summary go to stdout. When tests fail, the error list goes
to stderr.

Exit codes:
  0 - All tests passed
  1 - One or more tests failed
  2 - Command error (unknown suite, etc.)

Examples:
  tester run example1
  tester run example2 --verbose`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuite(opts, args[0], cmd)
		},
	}

	return cmd
}

func runSuite(opts *RunOptions, name string, cmd *cobra.Command) error {
	suite, ok := examples.Lookup(name)
	if !ok {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("unknown suite %q: must be one of %v", name, examples.Names()))
	}

	runOpts := []tester.Option{
		tester.WithOutput(cmd.OutOrStdout()),
		tester.WithErrorOutput(cmd.ErrOrStderr()),
		tester.WithLogger(newLogger(opts.RootOptions, cmd.ErrOrStderr())),
	}
	if opts.Clock != nil {
		runOpts = append(runOpts, tester.WithClock(opts.Clock))
	}

	if code := tester.RunAll(suite.Tests, runOpts...); code != tester.ExitSuccess {
		return NewExitError(ExitFailure, fmt.Sprintf("suite %s failed", suite.Name))
	}
	return nil
}
