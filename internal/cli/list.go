package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/tester/internal/examples"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the example suites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, name := range examples.Names() {
				suite, _ := examples.Lookup(name)
				fmt.Fprintf(w, "%-10s %s\n", suite.Name, suite.Description)
			}
			return nil
		},
	}
}
