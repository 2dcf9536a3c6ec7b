// Package config provides the configuration loader for embedstr.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/embedstr/internal/core/domain"
	"go.trai.ch/embedstr/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration file at path.
// Relative inputs are resolved against the directory holding the file.
func (l *Loader) Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	cfg, err := toDomain(&file, filepath.Dir(path))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.logger.Info("loaded configuration from " + path)
	return cfg, nil
}

func toDomain(file *File, root string) (*domain.Config, error) {
	if file.Version != "" && file.Version != domain.ConfigVersion {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedVersion, "failed to load config"), "version", file.Version)
	}

	split, err := domain.ParseSplitMode(file.Split)
	if err != nil {
		return nil, err
	}

	if file.Concurrency < 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConcurrency, "failed to load config"), "concurrency", file.Concurrency)
	}

	inputs := make([]string, 0, len(file.Inputs))
	for _, in := range file.Inputs {
		if !filepath.IsAbs(in) {
			in = filepath.Join(root, in)
		}
		inputs = append(inputs, in)
	}

	return &domain.Config{
		Inputs:      inputs,
		Ignore:      file.Ignore,
		Split:       split,
		Concurrency: file.Concurrency,
	}, nil
}
