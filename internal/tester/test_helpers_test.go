package tester

import "runtime"

// currentLine returns the line of its caller.
func currentLine() int {
	_, _, line, _ := runtime.Caller(1)
	return line
}
