package main

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"passforge/internal/cli"
	"passforge/internal/config"
)

// createRootCommand creates the main root command that shows help by default.
func createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "passforge",
		Short: "Transform wordlists with character substitution rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Show help when run without subcommands
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultPath, "Path to config file")

	rootCmd.AddCommand(
		createApplyCommand(),
		createValidateCommand(),
		createRulesCommand(),
	)

	return rootCmd
}

// loadConfigFromCommand reads the optional config file named by the
// persistent --config flag.
func loadConfigFromCommand(cmd *cobra.Command, fs afero.Fs) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Load(fs, configPath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// newApp builds the CLI app against the command's output streams.
func newApp(cmd *cobra.Command, fs afero.Fs) *cli.App {
	var stderr io.Writer = cmd.ErrOrStderr()
	return cli.New(fs, cmd.OutOrStdout(), stderr)
}
