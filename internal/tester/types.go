package tester

import "time"

// Test is a named, zero-argument unit of work. The *T handle is the only way a
// body reaches the runner that owns the counters.
type Test func(t *T)

// RunState holds the counters of one run.
// It is reset by Start and is fully determined by the RunTest and assertion
// calls made between Start and Stop.
type RunState struct {
	// RunID identifies the run in structured logs.
	RunID string

	// AssertionCount is incremented once per successful assertion.
	AssertionCount uint

	// TestCount is incremented once per test invocation, pass or fail.
	TestCount uint

	// Errors holds one line per failed test, in discovery order.
	// len(Errors) <= TestCount always holds.
	Errors []string

	StartTime time.Time
	StopTime  time.Time

	// Depth is the nesting level of the running test.
	Depth uint
}

// Passed returns the number of tests that did not record an error.
func (s RunState) Passed() uint {
	return s.TestCount - uint(len(s.Errors))
}

// Elapsed returns the run duration truncated to whole milliseconds.
func (s RunState) Elapsed() time.Duration {
	return s.StopTime.Sub(s.StartTime).Truncate(time.Millisecond)
}

// OutcomeKind tags the result of invoking a test body.
type OutcomeKind int

const (
	OutcomeSuccess         OutcomeKind = iota // Body returned normally
	OutcomeAssertionFailed                    // A check failed
	OutcomeOtherFailure                       // Body panicked with an error, Stringer or string
	OutcomeUnknownFailure                     // Body panicked with nothing to inspect
)

// String returns the outcome name used in logs.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeAssertionFailed:
		return "assertion_failed"
	case OutcomeOtherFailure:
		return "other_failure"
	case OutcomeUnknownFailure:
		return "unknown_failure"
	default:
		return "invalid"
	}
}

// Outcome is the tagged result of invoking a test body.
type Outcome struct {
	Kind OutcomeKind

	// Message is the assertion message or the failure description.
	// Empty for OutcomeSuccess.
	Message string
}

// Failed reports whether the outcome is any kind of failure.
func (o Outcome) Failed() bool {
	return o.Kind != OutcomeSuccess
}
