// Package tester is a minimal unit-testing harness.
//
// A caller declares named test functions, runs them (possibly nested) through
// a Runner and gets a plain-text report with timing and counts. The report
// doubles as a process exit status.
//
// # Usage
//
//	func main() {
//	    os.Exit(tester.RunAll(func(t *tester.T) {
//	        t.Run("example", func(t *tester.T) {
//	            a := 10
//	            t.Check(a == 10)
//	            t.Equal(a, 10)
//	            t.NotEqual(a, 11)
//	        })
//	    }))
//	}
//
// Output:
//
//	example                                           OK
//
//	Time      : 0 ms
//	Tests     : 1/1
//	Assertions: 3
//
//	No errors
//
// # Nesting
//
// A test body may run further tests. Each nested test is indented two spaces
// per level and its lines are buffered while the parent runs, then printed as
// a block right after the parent's own OK/FAIL marker.
//
// A child's failure is recorded at the child's own frame. It does not fail the
// parent: the parent is reported OK unless the parent body itself fails.
//
// # Failures
//
// A failed Check unwinds the test body with an *AssertionError. Any other
// panic raised inside a test body is recovered at the same frame and recorded
// with its type and text. Nothing raised inside a test body escapes RunTest,
// so one failing test never stops its siblings.
//
// A Runner is not safe for concurrent use. Tests run strictly in call order.
package tester
