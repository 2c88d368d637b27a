package tester

import (
	"fmt"
	"io"

	"github.com/stretchr/testify/assert"
)

// T is the handle a test body receives. It binds the body to the runner that
// owns the counters and carries the assertion primitives.
type T struct {
	runner *Runner
	name   string
}

// Name returns the test name.
func (t *T) Name() string {
	return t.name
}

// Run declares and runs a nested test in one step.
func (t *T) Run(name string, test Test) {
	t.runner.RunTest(test, name)
}

// Check counts a successful assertion when cond is true. When cond is false it
// unwinds the test body with an *AssertionError naming the expression and the
// line of the call. An optional message, or format and args, prefixes it.
func (t *T) Check(cond bool, msgAndArgs ...any) {
	if cond {
		t.runner.state.AssertionCount++
		return
	}
	line, text := callSite(1, func(args []string) string { return args[0] })
	if text == "" {
		text = "false"
	}
	panic(&AssertionError{Expr: text, Line: line, Message: messageFromMsgAndArgs(msgAndArgs...)})
}

// Equal checks that lhs and rhs are equal objects.
func (t *T) Equal(lhs, rhs any, msgAndArgs ...any) {
	if assert.ObjectsAreEqual(lhs, rhs) {
		t.runner.state.AssertionCount++
		return
	}
	t.fail(lhs, rhs, "==", msgAndArgs)
}

// NotEqual checks that lhs and rhs are not equal objects.
func (t *T) NotEqual(lhs, rhs any, msgAndArgs ...any) {
	if !assert.ObjectsAreEqual(lhs, rhs) {
		t.runner.state.AssertionCount++
		return
	}
	t.fail(lhs, rhs, "!=", msgAndArgs)
}

// fail raises the failure of a binary comparison called two frames up.
func (t *T) fail(lhs, rhs any, op string, msgAndArgs []any) {
	line, text := callSite(2, func(args []string) string {
		return args[0] + " " + op + " " + args[1]
	})
	if text == "" {
		text = fmt.Sprintf("%#v %s %#v", lhs, op, rhs)
	}
	panic(&AssertionError{Expr: text, Line: line, Message: messageFromMsgAndArgs(msgAndArgs...)})
}

// Output returns the writer test output goes to. While a test runs it is the
// capture buffer of that test, so anything written appears under its parent.
func (t *T) Output() io.Writer {
	return t.runner.out
}

// Printf writes formatted text to Output.
func (t *T) Printf(format string, args ...any) {
	fmt.Fprintf(t.runner.out, format, args...)
}

// Println writes its operands and a newline to Output.
func (t *T) Println(args ...any) {
	fmt.Fprintln(t.runner.out, args...)
}
