package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newRootCmd constructs the petcare command. Without a subcommand it serves.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "petcare",
		Short: "petcare - pet care center REST API",
		Long:  "petcare serves the customer, pet, trainer, employee, class and booking API backed by PostgreSQL or an in-memory store.",
		RunE:  runServe,
	}
	cmd.SilenceUsage = true
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
