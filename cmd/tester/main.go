// Command tester runs the bundled example suites of the tester harness.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/tester/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// The report already lists failed tests.
		if !cli.IsTestFailure(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
