package ports

// InputResolver defines the interface for resolving input files.
//
//go:generate mockgen -destination=mocks/resolver_mock.go -package=mocks -source=resolver.go
type InputResolver interface {
	// ResolveInputs expands files, directories and glob patterns into a sorted list of file paths.
	// Directory entries whose base name matches one of ignore are skipped.
	ResolveInputs(inputs []string, ignore []string) ([]string, error)
}
