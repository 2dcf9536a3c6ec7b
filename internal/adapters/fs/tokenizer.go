package fs

import (
	"bufio"
	"context"
	"os"
	"unicode"
	"unicode/utf8"

	"go.trai.ch/embedstr/internal/core/domain"
	"go.trai.ch/embedstr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Tokenizer = (*Tokenizer)(nil)

// MaxTokenSize is the longest token the Tokenizer accepts.
const MaxTokenSize = 1 << 20

// Tokenizer implements ports.Tokenizer on top of bufio.Scanner.
type Tokenizer struct{}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize calls fn for every token of the file at path.
func (t *Tokenizer) Tokenize(ctx context.Context, path string, mode domain.SplitMode, fn func(string) error) error {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), MaxTokenSize)
	switch mode {
	case domain.SplitLines:
		sc.Split(bufio.ScanLines)
	case domain.SplitFields:
		sc.Split(ScanFields)
	default:
		sc.Split(bufio.ScanWords)
	}

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(sc.Text()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}
	return nil
}

// ScanFields is a bufio.SplitFunc that yields runs of letters, digits and underscores.
func ScanFields(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) {
		if !atEOF && !utf8.FullRune(data[start:]) {
			return start, nil, nil
		}
		r, width := utf8.DecodeRune(data[start:])
		if isFieldRune(r) {
			break
		}
		start += width
	}

	for i := start; i < len(data); {
		if !atEOF && !utf8.FullRune(data[i:]) {
			return start, nil, nil
		}
		r, width := utf8.DecodeRune(data[i:])
		if !isFieldRune(r) {
			return i + width, data[start:i], nil
		}
		i += width
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

func isFieldRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
