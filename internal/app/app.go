// Package app implements the application layer for embedstr.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"go.trai.ch/embedstr"
	"go.trai.ch/embedstr/internal/core/domain"
	"go.trai.ch/embedstr/internal/core/ports"
	"go.trai.ch/embedstr/internal/engine/scanner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.InputResolver
	scanner      *scanner.Scanner
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.InputResolver,
	sc *scanner.Scanner,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		scanner:      sc,
		telemetry:    telemetry,
		logger:       logger,
	}
}

// ScanOptions holds the command line overrides of a scan.
type ScanOptions struct {
	// ConfigPath is the configuration file to read.
	ConfigPath string
	// RequireConfig makes a missing configuration file an error.
	RequireConfig bool
	// Split overrides the configured split mode when not empty.
	Split string
	// Concurrency overrides the configured concurrency when positive.
	Concurrency int
}

// Inspect builds an EmbeddedString for every text.
func (a *App) Inspect(texts []string) []embedstr.EmbeddedString {
	return embedstr.NewEmbeddedStrings(texts)
}

// Scan tokenizes the inputs and reports how the tokens are stored.
// Inputs given as arguments replace the configured ones.
func (a *App) Scan(ctx context.Context, inputs []string, opts ScanOptions) (report *domain.Report, err error) {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, err
	}
	if len(inputs) > 0 {
		cfg.Inputs = inputs
	}
	if opts.Split != "" {
		if cfg.Split, err = domain.ParseSplitMode(opts.Split); err != nil {
			return nil, err
		}
	}
	if opts.Concurrency > 0 {
		cfg.Concurrency = opts.Concurrency
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	files, err := a.resolver.ResolveInputs(cfg.Inputs, cfg.Ignore)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve inputs")
	}

	defer func() {
		if closeErr := a.telemetry.Close(); closeErr != nil && err == nil {
			err = zerr.Wrap(closeErr, "failed to close telemetry")
		}
	}()

	report, err = a.scanner.Scan(ctx, files, cfg.Split, cfg.Concurrency)
	if err != nil {
		return nil, zerr.Wrap(err, "scan failed")
	}

	a.logger.Info(fmt.Sprintf("scanned %d tokens in %d files", report.Tokens, len(report.Files)))
	return report, nil
}

func (a *App) loadConfig(opts ScanOptions) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) && !opts.RequireConfig {
		a.logger.Info("no configuration file found, using defaults")
		return domain.DefaultConfig(), nil
	}
	return nil, zerr.Wrap(err, "failed to load configuration")
}
