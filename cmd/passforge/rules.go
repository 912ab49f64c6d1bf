package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// createRulesCommand creates the command that lists the rulesets of a
// rules file with their indices.
func createRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules <rulesfile>",
		Short: "List parsed rulesets from a rules file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := newApp(cmd, afero.NewOsFs())
			result, err := app.ListRules(args[0])
			if err != nil {
				return fmt.Errorf("failed to list rulesets: %w", err)
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), result)
			return nil
		},
	}
}
