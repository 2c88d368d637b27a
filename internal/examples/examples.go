// Package examples holds the demonstration suites run by the tester command.
package examples

import (
	"errors"
	"sort"
	"time"

	"github.com/roach88/tester/internal/tester"
)

// Suite is a named top-level test function.
type Suite struct {
	Name        string
	Description string
	Tests       tester.Test
}

// Example3Delay is how long the example3 test sleeps.
var Example3Delay = 200 * time.Millisecond

var suites = map[string]Suite{
	"example1": {
		Name:        "example1",
		Description: "a single test checking values",
		Tests:       example1Suite,
	},
	"example2": {
		Name:        "example2",
		Description: "tests grouped by calling tests inside tests",
		Tests:       example2Suite,
	},
	"example3": {
		Name:        "example3",
		Description: "a test declared and run in one step",
		Tests:       example3Suite,
	},
	"failures": {
		Name:        "failures",
		Description: "each kind of failure and how siblings keep running",
		Tests:       failuresSuite,
	},
}

// Lookup returns the suite with the given name.
func Lookup(name string) (Suite, bool) {
	s, ok := suites[name]
	return s, ok
}

// Names returns the suite names in sorted order.
func Names() []string {
	names := make([]string, 0, len(suites))
	for name := range suites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func example1(t *tester.T) {
	a := 10

	t.Check(a == 10)
	t.Equal(a, 10)
	t.NotEqual(a, 11)
}

func example1Suite(t *tester.T) {
	t.Run("example1", example1)
}

func example2Sub11(t *tester.T) { t.Check(true) }
func example2Sub12(t *tester.T) { t.Check(true) }
func example2Sub2(t *tester.T) { t.Check(true) }

func example2Sub1(t *tester.T) {
	t.Run("example2_sub1_1", example2Sub11)
	t.Run("example2_sub1_2", example2Sub12)
}

func example2(t *tester.T) {
	t.Run("example2_sub1", example2Sub1)
	t.Run("example2_sub2", example2Sub2)
}

func example2Suite(t *tester.T) {
	t.Run("example2", example2)
}

func example3Suite(t *tester.T) {
	t.Run("example3", func(t *tester.T) {
		t.Check(true)
		time.Sleep(Example3Delay)
	})
}

var errConnectionReset = errors.New("connection reset")

func failuresSuite(t *tester.T) {
	t.Run("failures", func(t *tester.T) {
		t.Run("assertion", func(t *tester.T) {
			t.Equal(len("abc"), 4)
		})
		t.Run("error", func(t *tester.T) {
			panic(errConnectionReset)
		})
		t.Run("unknown", func(t *tester.T) {
			panic(struct{}{})
		})
		t.Run("still_runs", func(t *tester.T) {
			t.Check(true)
		})
	})
}
