// Package domain contains the core domain models of the embedstr corpus scanner.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ConfigVersion is the only configuration file version understood by the loader.
const ConfigVersion = "1"

// SplitMode selects how file contents are cut into tokens.
type SplitMode string

const (
	// SplitWords splits on Unicode white space.
	SplitWords SplitMode = "words"
	// SplitLines yields one token per line, without the line terminator.
	SplitLines SplitMode = "lines"
	// SplitFields splits on anything that is not a letter, digit or underscore, yielding identifiers.
	SplitFields SplitMode = "fields"
)

// ParseSplitMode converts a string to a SplitMode. The empty string selects SplitWords.
func ParseSplitMode(s string) (SplitMode, error) {
	switch SplitMode(strings.ToLower(s)) {
	case "", SplitWords:
		return SplitWords, nil
	case SplitLines:
		return SplitLines, nil
	case SplitFields:
		return SplitFields, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidSplitMode, "failed to parse split mode"), "split", s)
	}
}

// Config describes what to scan and how.
type Config struct {
	// Inputs are file paths, directories or glob patterns.
	Inputs []string
	// Ignore holds base-name patterns skipped while walking directories.
	Ignore []string
	// Split selects the tokenizer.
	Split SplitMode
	// Concurrency bounds the number of files scanned at once. Zero means one per CPU.
	Concurrency int
}

// DefaultConfig returns the configuration used when no configuration file exists.
func DefaultConfig() *Config {
	return &Config{
		Split: SplitWords,
	}
}

// Validate checks the configuration for values the scanner cannot honor.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return ErrNoInputs
	}
	if _, err := ParseSplitMode(string(c.Split)); err != nil {
		return err
	}
	if c.Concurrency < 0 {
		return zerr.With(zerr.Wrap(ErrInvalidConcurrency, "failed to validate config"), "concurrency", c.Concurrency)
	}
	return nil
}
