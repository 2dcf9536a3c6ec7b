package fs

import (
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/embedstr/internal/core/domain"
	"go.trai.ch/embedstr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver implements the InputResolver interface using filepath.Glob and a Walker.
type Resolver struct {
	walker *Walker
}

// NewResolver creates a new Resolver.
func NewResolver(walker *Walker) *Resolver {
	return &Resolver{walker: walker}
}

// ResolveInputs expands the given inputs into a sorted, duplicate-free list of file paths.
// An input matching nothing is an error.
func (r *Resolver) ResolveInputs(inputs, ignore []string) ([]string, error) {
	uniquePaths := make(map[string]struct{})

	for _, input := range inputs {
		matches, err := filepath.Glob(input)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", input)
		}
		if len(matches) == 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrInputNotFound, "failed to resolve input"), "path", input)
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", match)
			}
			if !info.IsDir() {
				uniquePaths[match] = struct{}{}
				continue
			}
			for file := range r.walker.WalkFiles(match, ignore) {
				uniquePaths[file] = struct{}{}
			}
		}
	}

	result := make([]string, 0, len(uniquePaths))
	for path := range uniquePaths {
		result = append(result, path)
	}
	slices.Sort(result)

	return result, nil
}
