package tester

import (
	"errors"
	"fmt"
	"runtime"
)

// AssertionError is raised by a failed check.
// It carries the failing expression's source text and line.
type AssertionError struct {
	Expr    string // Source text of the tested expression
	Line    int    // Line of the assertion call, 0 if unknown
	Message string // Optional caller-supplied message
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	pos := fmt.Sprintf("(%s)", e.Expr)
	if e.Line > 0 {
		pos = fmt.Sprintf("(%s) at line %d", e.Expr, e.Line)
	}
	if e.Message != "" {
		return e.Message + ": " + pos
	}
	return pos
}

// unknownFailure is recorded when a recovered value carries nothing to inspect.
const unknownFailure = "Unknown failure type caught"

// classify turns a value recovered from a test body into an Outcome.
func classify(recovered any) Outcome {
	switch v := recovered.(type) {
	case nil:
		return Outcome{Kind: OutcomeSuccess}
	case *AssertionError:
		return Outcome{Kind: OutcomeAssertionFailed, Message: v.Error()}
	case error:
		var nilPanic *runtime.PanicNilError
		if errors.As(v, &nilPanic) {
			return Outcome{Kind: OutcomeUnknownFailure, Message: unknownFailure}
		}
		return otherFailure(v, v.Error())
	case fmt.Stringer:
		return otherFailure(v, v.String())
	case string:
		return otherFailure(v, v)
	default:
		return Outcome{Kind: OutcomeUnknownFailure, Message: unknownFailure}
	}
}

func otherFailure(v any, text string) Outcome {
	return Outcome{
		Kind:    OutcomeOtherFailure,
		Message: fmt.Sprintf("Uncaught failure of type '%T' with error: %s", v, text),
	}
}

// messageFromMsgAndArgs builds the optional message of an assertion.
// A leading string is a format for the remaining args; any other single
// value is printed with %+v.
func messageFromMsgAndArgs(msgAndArgs ...any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if msg, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(msg, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%+v", msgAndArgs[0])
}
