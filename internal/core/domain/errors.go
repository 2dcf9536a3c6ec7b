package domain

import "go.trai.ch/zerr"

var (
	// ErrNoInputs is returned when neither the command line nor the configuration names any input.
	ErrNoInputs = zerr.New("no inputs specified")

	// ErrInputNotFound is returned when an input pattern matches no file.
	ErrInputNotFound = zerr.New("input not found")

	// ErrUnsupportedVersion is returned when the configuration file declares an unknown version.
	ErrUnsupportedVersion = zerr.New("unsupported configuration version")

	// ErrInvalidSplitMode is returned when a split mode other than words, lines or fields is requested.
	ErrInvalidSplitMode = zerr.New("invalid split mode")

	// ErrInvalidConcurrency is returned when the scan concurrency is negative.
	ErrInvalidConcurrency = zerr.New("invalid concurrency")
)
