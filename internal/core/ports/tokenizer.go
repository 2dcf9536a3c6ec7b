package ports

import (
	"context"

	"go.trai.ch/embedstr/internal/core/domain"
)

// Tokenizer defines the interface for cutting a file into tokens.
//
//go:generate mockgen -destination=mocks/tokenizer_mock.go -package=mocks -source=tokenizer.go
type Tokenizer interface {
	// Tokenize calls fn for every token of the file at path, in order.
	// It stops at the first error returned by fn or when ctx is done.
	Tokenize(ctx context.Context, path string, mode domain.SplitMode, fn func(token string) error) error
}
