// Package scanner turns input files into EmbeddedString tokens and aggregates how they are stored.
package scanner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"go.trai.ch/embedstr"
	"go.trai.ch/embedstr/internal/core/domain"
	"go.trai.ch/embedstr/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Scanner scans files concurrently and reports embedded versus boxed token counts.
type Scanner struct {
	tokenizer ports.Tokenizer
	telemetry ports.Telemetry
	logger    ports.Logger
}

// NewScanner creates a new Scanner.
func NewScanner(tokenizer ports.Tokenizer, telemetry ports.Telemetry, logger ports.Logger) *Scanner {
	return &Scanner{
		tokenizer: tokenizer,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Scan tokenizes files with at most concurrency files in flight (one per CPU when
// concurrency is not positive). File reports keep the order of files.
// The first failing file cancels the remaining work and its error is returned.
func (s *Scanner) Scan(
	ctx context.Context,
	files []string,
	split domain.SplitMode,
	concurrency int,
) (*domain.Report, error) {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	s.logger.Info(fmt.Sprintf("scanning %d files (concurrency %d, split %s)", len(files), concurrency, split))

	reports := make([]domain.FileReport, len(files))
	distinct := embedstr.NewSet(0)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, path := range files {
		g.Go(func() error {
			report, seen, err := s.scanFile(gctx, path, split)
			if err != nil {
				return err
			}
			reports[i] = report

			mu.Lock()
			defer mu.Unlock()
			for tok := range seen.All() {
				distinct.Add(tok)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := domain.NewReport()
	for _, r := range reports {
		total.Add(r)
	}
	total.Distinct = distinct.Len()
	return total, nil
}

func (s *Scanner) scanFile(ctx context.Context, path string, split domain.SplitMode) (domain.FileReport, *embedstr.Set, error) {
	ctx, vertex := s.telemetry.Record(ctx, "scan "+path)

	report := domain.FileReport{Path: path}
	seen := embedstr.NewSet(0)
	err := s.tokenizer.Tokenize(ctx, path, split, func(tok string) error {
		e := embedstr.NewEmbeddedString(tok)
		report.Count(&e)
		seen.Add(e)
		return nil
	})
	if err != nil {
		vertex.Log(domain.LogLevelError, err.Error())
		vertex.Complete(err)
		return report, nil, zerr.With(zerr.Wrap(err, "failed to scan file"), "path", path)
	}

	vertex.Log(domain.LogLevelInfo, fmt.Sprintf("%d tokens, %d embedded, %d boxed", report.Tokens, report.Embedded, report.Boxed))
	vertex.Complete(nil)
	return report, seen, nil
}
