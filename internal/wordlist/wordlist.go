// Package wordlist reads input words from text files.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
)

// Read loads words from a file, one per line. Words are trimmed of
// surrounding whitespace and blank lines are skipped.
func Read(fs afero.Fs, path string) ([]string, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wordlist %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	words, err := ReadFrom(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read wordlist %s: %w", path, err)
	}
	return words, nil
}

// ReadFrom loads words from an arbitrary reader using the same
// trimming rules as Read.
func ReadFrom(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wordlist scan failed: %w", err)
	}
	return words, nil
}
