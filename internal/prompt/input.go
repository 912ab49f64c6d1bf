// Package prompt provides interactive ruleset entry for runs without a
// rules file.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

// ErrCancelled is returned when the user aborts input with Ctrl-C or EOF.
var ErrCancelled = errors.New("cancelled by user")

// Prompter interface wraps basic prompting functionality for testability
type Prompter interface {
	Prompt(string) (string, error)
	AppendHistory(string)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter, persisting
// history to historyPath on Close.
type LinerPrompter struct {
	state       *liner.State
	historyPath string
}

// NewLinerPrompter creates a new liner-based prompter. historyPath may
// be empty to disable history persistence.
func NewLinerPrompter(historyPath string) *LinerPrompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true) // Ctrl+C to cancel

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil { //nolint:gosec // path from storage manager
			_, _ = line.ReadHistory(f)
			_ = f.Close()
		}
	}

	return &LinerPrompter{state: line, historyPath: historyPath}
}

// Prompt reads one line of input with a colored prompt.
func (p *LinerPrompter) Prompt(prompt string) (string, error) {
	result, err := p.state.Prompt(color.CyanString(prompt + " "))
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("text input failed: %w", err)
	}
	return result, nil
}

// AppendHistory records a line in the in-memory history.
func (p *LinerPrompter) AppendHistory(line string) {
	p.state.AppendHistory(line)
}

// Close writes history back out and releases the terminal.
func (p *LinerPrompter) Close() error {
	if p.historyPath != "" {
		if f, err := os.Create(p.historyPath); err == nil { //nolint:gosec // path from storage manager
			_, _ = p.state.WriteHistory(f)
			_ = f.Close()
		}
	}
	return p.state.Close() //nolint:wrapcheck // direct liner wrapper
}
