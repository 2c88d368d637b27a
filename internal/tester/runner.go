package tester

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
)

// Exit codes returned by RunAll.
const (
	ExitSuccess = 0 // No test recorded an error
	ExitFailure = 1 // At least one test failed
)

// rootName labels failures that escape the root function of RunAll.
const rootName = "(root)"

// Runner executes tests and records their outcomes in a RunState.
//
// Each Runner owns its state, so independent runs never share counters.
// A Runner is not safe for concurrent use.
type Runner struct {
	state RunState

	stdout io.Writer
	stderr io.Writer

	// out is where test lines are written right now. RunTest swaps it for a
	// capture buffer while the test body runs.
	out io.Writer

	clock  Clock
	ids    RunIDGenerator
	logger *slog.Logger
	column int
}

// New creates a Runner writing to os.Stdout and os.Stderr unless overridden.
func New(opts ...Option) *Runner {
	r := defaultRunner()
	for _, opt := range opts {
		opt(r)
	}
	r.out = r.stdout
	return r
}

// RunAll runs tests on a fresh Runner and returns the exit code.
func RunAll(tests Test, opts ...Option) int {
	return New(opts...).RunAll(tests)
}

// State returns a snapshot of the run state.
func (r *Runner) State() RunState {
	s := r.state
	s.Errors = append([]string(nil), r.state.Errors...)
	return s
}

// Start resets all counters, clears the error list and records the start time.
// Calling Start twice in a row leaves the same state as calling it once.
func (r *Runner) Start() {
	r.state = RunState{
		RunID:     r.ids.Generate(),
		Errors:    []string{},
		StartTime: r.clock.Now(),
	}
	r.out = r.stdout

	r.logger.Info("run started", "run_id", r.state.RunID)
}

// Stop records the stop time.
func (r *Runner) Stop() {
	r.state.StopTime = r.clock.Now()

	r.logger.Info("run stopped",
		"run_id", r.state.RunID,
		"elapsed_ms", r.state.Elapsed().Milliseconds(),
		"tests", r.state.TestCount,
		"errors", len(r.state.Errors),
	)
}

// Report prints the run summary.
//
// Counts go to the standard stream. Errors, if any, go to the error stream
// under an "Errors:" heading; otherwise "No errors" goes to the standard stream.
// If Stop was never called the current time is used as the stop mark.
func (r *Runner) Report() {
	s := r.state
	if s.StopTime.IsZero() {
		s.StopTime = r.clock.Now()
	}

	fmt.Fprint(r.stdout, "\n")
	fmt.Fprintf(r.stdout, "Time      : %d ms\n", s.Elapsed().Milliseconds())
	fmt.Fprintf(r.stdout, "Tests     : %d/%d\n", s.Passed(), s.TestCount)
	fmt.Fprintf(r.stdout, "Assertions: %d\n\n", s.AssertionCount)

	if len(s.Errors) > 0 {
		flush(r.stdout)
		fmt.Fprint(r.stderr, "Errors: \n")
		for _, e := range s.Errors {
			fmt.Fprintf(r.stderr, "  %s\n", e)
		}
		fmt.Fprint(r.stderr, "\n")
		flush(r.stderr)
		return
	}

	fmt.Fprint(r.stdout, "No errors\n\n")
	flush(r.stdout)
}

// RunAll starts a run, invokes tests, stops the run and prints the report.
//
// A failure raised by tests itself, outside any RunTest, is recovered and
// recorded as one failed test.
func (r *Runner) RunAll(tests Test) int {
	r.Start()

	root := &T{runner: r, name: rootName}
	if outcome := r.invoke(root, tests); outcome.Failed() {
		r.state.TestCount++
		r.record(rootName, outcome)
	}

	r.Stop()
	r.Report()

	if len(r.state.Errors) > 0 {
		return ExitFailure
	}
	return ExitSuccess
}

// RunTest executes one named test and prints its status line.
//
// The line is the name indented two spaces per nesting level, padded to the
// status column, then OK or FAIL. Lines printed by nested tests are buffered
// while the body runs and printed after the marker. RunTest never panics:
// every failure inside the body is recorded in the error list.
func (r *Runner) RunTest(test Test, name string) {
	r.state.TestCount++

	fmt.Fprint(r.out, statusPrefix(name, r.state.Depth, r.column))

	var captured bytes.Buffer
	outcome := r.capture(&captured, func() Outcome {
		return r.invoke(&T{runner: r, name: name}, test)
	})
	r.record(name, outcome)

	// Children record their own failures; only this body's outcome counts.
	if outcome.Failed() {
		fmt.Fprint(r.out, "FAIL")
	} else {
		fmt.Fprint(r.out, "OK")
	}
	fmt.Fprint(r.out, "\n")

	r.out.Write(captured.Bytes())
	flush(r.out)

	r.logger.Debug("test finished",
		"run_id", r.state.RunID,
		"test", name,
		"depth", r.state.Depth,
		"outcome", outcome.Kind.String(),
	)
}

// capture redirects output into buf and increases the depth for the duration
// of fn. Both are restored even when fn panics.
func (r *Runner) capture(buf *bytes.Buffer, fn func() Outcome) Outcome {
	saved := r.out
	r.out = buf
	r.state.Depth++
	defer func() {
		r.state.Depth--
		r.out = saved
	}()
	return fn()
}

// invoke calls the test body and converts whatever it raises into an Outcome.
func (r *Runner) invoke(t *T, test Test) (outcome Outcome) {
	defer func() {
		outcome = classify(recover())
	}()
	test(t)
	return Outcome{Kind: OutcomeSuccess}
}

// record appends the error line for a failed outcome.
func (r *Runner) record(name string, outcome Outcome) {
	if !outcome.Failed() {
		return
	}
	r.state.Errors = append(r.state.Errors, name+": "+outcome.Message)
}

// flush flushes w if it buffers its writes.
func flush(w io.Writer) {
	if f, ok := w.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}
