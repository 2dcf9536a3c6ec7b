package scanner_test

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/embedstr/internal/adapters/telemetry"
	"go.trai.ch/embedstr/internal/core/domain"
	"go.trai.ch/embedstr/internal/core/ports"
	"go.trai.ch/embedstr/internal/core/ports/mocks"
	"go.trai.ch/embedstr/internal/engine/scanner"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// emit returns a Tokenize implementation yielding the given tokens.
func emit(tokens ...string) func(context.Context, string, domain.SplitMode, func(string) error) error {
	return func(_ context.Context, _ string, _ domain.SplitMode, fn func(string) error) error {
		for _, tok := range tokens {
			if err := fn(tok); err != nil {
				return err
			}
		}
		return nil
	}
}

func newLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return log
}

func TestScanner_Scan(t *testing.T) {
	ctrl := gomock.NewController(t)
	tok := mocks.NewMockTokenizer(ctrl)

	long := "long string is longer than limit"
	tok.EXPECT().Tokenize(gomock.Any(), "a.txt", domain.SplitWords, gomock.Any()).
		DoAndReturn(emit("go", "build", long, "go"))
	tok.EXPECT().Tokenize(gomock.Any(), "b.txt", domain.SplitWords, gomock.Any()).
		DoAndReturn(emit("test", long, ""))

	s := scanner.NewScanner(tok, telemetry.NewNoOp(), newLogger(ctrl))
	report, err := s.Scan(context.Background(), []string{"a.txt", "b.txt"}, domain.SplitWords, 2)
	require.NoError(t, err)

	require.Len(t, report.Files, 2)
	assert.Equal(t, "a.txt", report.Files[0].Path)
	assert.Equal(t, 4, report.Files[0].Tokens)
	assert.Equal(t, 3, report.Files[0].Embedded)
	assert.Equal(t, 1, report.Files[0].Boxed)
	assert.Equal(t, "b.txt", report.Files[1].Path)
	assert.Equal(t, 3, report.Files[1].Tokens)

	assert.Equal(t, 7, report.Tokens)
	assert.Equal(t, 5, report.Embedded)
	assert.Equal(t, 2, report.Boxed)
	assert.Equal(t, 2*len(long), report.BoxedBytes)
	assert.Equal(t, len("go")*2+len("build")+len("test"), report.EmbeddedBytes)
	// go, build, long, test and the empty token.
	assert.Equal(t, 5, report.Distinct)
}

func TestScanner_Scan_NoFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := scanner.NewScanner(mocks.NewMockTokenizer(ctrl), telemetry.NewNoOp(), newLogger(ctrl))

	report, err := s.Scan(context.Background(), nil, domain.SplitLines, 0)
	require.NoError(t, err)
	assert.Empty(t, report.Files)
	assert.Zero(t, report.Tokens)
	assert.Zero(t, report.Distinct)
}

func TestScanner_Scan_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	tok := mocks.NewMockTokenizer(ctrl)
	tel := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)

	readErr := zerr.New("read failed")
	tel.EXPECT().Record(gomock.Any(), "scan broken.txt").
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		})
	tok.EXPECT().Tokenize(gomock.Any(), "broken.txt", domain.SplitFields, gomock.Any()).Return(readErr)
	vertex.EXPECT().Log(domain.LogLevelError, gomock.Any())
	vertex.EXPECT().Complete(readErr)

	s := scanner.NewScanner(tok, tel, newLogger(ctrl))
	_, err := s.Scan(context.Background(), []string{"broken.txt"}, domain.SplitFields, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
	assert.Contains(t, err.Error(), "failed to scan file")
}

func TestScanner_Scan_RecordsVertices(t *testing.T) {
	ctrl := gomock.NewController(t)
	tok := mocks.NewMockTokenizer(ctrl)
	tel := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)

	tel.EXPECT().Record(gomock.Any(), "scan a.txt").
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		})
	tok.EXPECT().Tokenize(gomock.Any(), "a.txt", domain.SplitWords, gomock.Any()).DoAndReturn(emit("x", "y"))
	vertex.EXPECT().Log(domain.LogLevelInfo, "2 tokens, 2 embedded, 0 boxed")
	vertex.EXPECT().Complete(nil)

	s := scanner.NewScanner(tok, tel, newLogger(ctrl))
	_, err := s.Scan(context.Background(), []string{"a.txt"}, domain.SplitWords, 1)
	require.NoError(t, err)
}

func TestScanner_Scan_ConcurrencyLimit(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tok := mocks.NewMockTokenizer(ctrl)

		var inFlight, peak atomic.Int32
		tok.EXPECT().Tokenize(gomock.Any(), gomock.Any(), domain.SplitWords, gomock.Any()).
			DoAndReturn(func(_ context.Context, path string, _ domain.SplitMode, fn func(string) error) error {
				n := inFlight.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(time.Second)
				inFlight.Add(-1)
				return fn(strings.ToUpper(path))
			}).Times(6)

		s := scanner.NewScanner(tok, telemetry.NewNoOp(), newLogger(ctrl))
		files := []string{"a", "b", "c", "d", "e", "f"}
		report, err := s.Scan(context.Background(), files, domain.SplitWords, 2)
		require.NoError(t, err)

		assert.Equal(t, int32(2), peak.Load())
		assert.Equal(t, 6, report.Tokens)
		assert.Equal(t, 6, report.Distinct)
	})
}
