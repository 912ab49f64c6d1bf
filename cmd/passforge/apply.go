package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"passforge/internal/cli"
	"passforge/internal/config"
	"passforge/internal/logging"
	"passforge/internal/prompt"
	"passforge/internal/storage"
)

// createApplyCommand creates the command that runs rulesets over a
// wordlist. Without --rules it collects rulesets interactively.
func createApplyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply rulesets to a wordlist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fs := afero.NewOsFs()

			cfg, err := loadConfigFromCommand(cmd, fs)
			if err != nil {
				return err
			}
			if err := initLogging(cfg, fs); err != nil {
				return err
			}

			opts, err := applyOptions(cmd, cfg)
			if err != nil {
				return err
			}

			app := newApp(cmd, fs)
			if opts.Rules == "" {
				prompter, err := newPrompter(fs)
				if err != nil {
					return err
				}
				defer func() { _ = prompter.Close() }()
				app.WithPrompter(prompter)
			}

			return app.Run(opts)
		},
	}

	cmd.Flags().StringP("wordlist", "w", "", "The wordlist file")
	cmd.Flags().StringP("rules", "r", "", "File containing rules")
	cmd.Flags().StringP("output", "o", "", "Output file for generated words")
	cmd.Flags().Bool("detail", false, "Include detailed transformation information in output")
	cmd.Flags().BoolP("case-insensitive", "i", false, "Make character matching case-insensitive")
	_ = cmd.MarkFlagRequired("wordlist")

	return cmd
}

// applyOptions merges config defaults with command-line flags; a flag
// set on the command line wins.
func applyOptions(cmd *cobra.Command, cfg *config.Config) (cli.Options, error) {
	opts := cli.Options{
		Detail:          cfg.Detail,
		CaseInsensitive: cfg.CaseInsensitive,
	}

	var err error
	if opts.Wordlist, err = cmd.Flags().GetString("wordlist"); err != nil {
		return opts, fmt.Errorf("failed to get wordlist flag: %w", err)
	}
	if opts.Rules, err = cmd.Flags().GetString("rules"); err != nil {
		return opts, fmt.Errorf("failed to get rules flag: %w", err)
	}
	if opts.Output, err = cmd.Flags().GetString("output"); err != nil {
		return opts, fmt.Errorf("failed to get output flag: %w", err)
	}
	if cmd.Flags().Changed("detail") {
		if opts.Detail, err = cmd.Flags().GetBool("detail"); err != nil {
			return opts, fmt.Errorf("failed to get detail flag: %w", err)
		}
	}
	if cmd.Flags().Changed("case-insensitive") {
		if opts.CaseInsensitive, err = cmd.Flags().GetBool("case-insensitive"); err != nil {
			return opts, fmt.Errorf("failed to get case-insensitive flag: %w", err)
		}
	}
	return opts, nil
}

func initLogging(cfg *config.Config, fs afero.Fs) error {
	logPath := cfg.Logging.Path
	if logPath == "" {
		var err error
		if logPath, err = storage.New(fs).GetLogPath(); err != nil {
			return err
		}
	}
	return logging.Init(logPath, cfg.Logging.Level)
}

func newPrompter(fs afero.Fs) (prompt.Prompter, error) {
	historyPath, err := storage.New(fs).GetHistoryPath()
	if err != nil {
		return nil, err
	}
	return prompt.NewLinerPrompter(historyPath), nil
}
