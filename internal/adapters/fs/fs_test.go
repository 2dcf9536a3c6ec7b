package fs_test

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/embedstr/internal/adapters/fs"
	"go.trai.ch/embedstr/internal/core/domain"
)

// writeTree creates files (relative path -> content) below a fresh temp dir.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return root
}

func TestWalker_WalkFiles(t *testing.T) {
	root := writeTree(t, map[string]string{
		".git/config":     "git config",
		"ignored/file":    "x",
		"src/main.go":     "package main",
		"src/vendor/a.go": "package a",
		"README.md":       "readme",
	})

	var got []string
	for path := range fs.NewWalker().WalkFiles(root, []string{"ignored", "vendor"}) {
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)
		got = append(got, filepath.ToSlash(rel))
	}
	slices.Sort(got)

	assert.Equal(t, []string{"README.md", "src/main.go"}, got)
}

func TestWalker_WalkFiles_EarlyStop(t *testing.T) {
	root := writeTree(t, map[string]string{"a": "1", "b": "2", "c": "3"})

	count := 0
	for range fs.NewWalker().WalkFiles(root, nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestResolver_ResolveInputs(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.txt":       "a",
		"b.txt":       "b",
		"c.log":       "c",
		"dir/d.txt":   "d",
		"dir/skip/e":  "e",
		"dir/f.log":   "f",
		"other/g.txt": "g",
	})
	resolver := fs.NewResolver(fs.NewWalker())

	t.Run("Glob", func(t *testing.T) {
		got, err := resolver.ResolveInputs([]string{filepath.Join(root, "*.txt")}, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, "a.txt"), filepath.Join(root, "b.txt")}, got)
	})

	t.Run("Directory with ignore", func(t *testing.T) {
		got, err := resolver.ResolveInputs([]string{filepath.Join(root, "dir")}, []string{"skip"})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, "dir", "d.txt"), filepath.Join(root, "dir", "f.log")}, got)
	})

	t.Run("Overlapping inputs are deduplicated", func(t *testing.T) {
		got, err := resolver.ResolveInputs([]string{
			filepath.Join(root, "a.txt"),
			filepath.Join(root, "*.txt"),
		}, nil)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("No matches", func(t *testing.T) {
		_, err := resolver.ResolveInputs([]string{filepath.Join(root, "*.nonexistent")}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInputNotFound)
	})

	t.Run("Malformed glob", func(t *testing.T) {
		_, err := resolver.ResolveInputs([]string{filepath.Join(root, "[")}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to glob path")
	})
}

func tokenize(t *testing.T, content string, mode domain.SplitMode) []string {
	t.Helper()
	root := writeTree(t, map[string]string{"input": content})

	var got []string
	err := fs.NewTokenizer().Tokenize(context.Background(), filepath.Join(root, "input"), mode, func(tok string) error {
		got = append(got, tok)
		return nil
	})
	require.NoError(t, err)
	return got
}

func TestTokenizer_Tokenize(t *testing.T) {
	content := "func main() {\n\tfmt.Println(\"héllo_wörld\")\r\n}\n"

	tests := []struct {
		mode domain.SplitMode
		want []string
	}{
		{
			mode: domain.SplitWords,
			want: []string{"func", "main()", "{", "fmt.Println(\"héllo_wörld\")", "}"},
		},
		{
			mode: domain.SplitLines,
			want: []string{"func main() {", "\tfmt.Println(\"héllo_wörld\")", "}"},
		},
		{
			mode: domain.SplitFields,
			want: []string{"func", "main", "fmt", "Println", "héllo_wörld"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			assert.Equal(t, tt.want, tokenize(t, content, tt.mode))
		})
	}
}

func TestTokenizer_CallbackError(t *testing.T) {
	root := writeTree(t, map[string]string{"input": "a b c"})
	stop := assert.AnError

	calls := 0
	err := fs.NewTokenizer().Tokenize(context.Background(), filepath.Join(root, "input"), domain.SplitWords, func(string) error {
		calls++
		return stop
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestTokenizer_Canceled(t *testing.T) {
	root := writeTree(t, map[string]string{"input": "a b c"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := fs.NewTokenizer().Tokenize(ctx, filepath.Join(root, "input"), domain.SplitWords, func(string) error {
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTokenizer_MissingFile(t *testing.T) {
	err := fs.NewTokenizer().Tokenize(context.Background(), filepath.Join(t.TempDir(), "absent"), domain.SplitWords, func(string) error {
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestScanFields_SmallBuffer(t *testing.T) {
	// A tiny buffer forces tokens and multibyte runes to straddle reads.
	input := strings.Repeat("ünïcode-token ", 50)
	sc := bufio.NewScanner(strings.NewReader(input))
	sc.Buffer(make([]byte, 0, 16), 64)
	sc.Split(fs.ScanFields)

	var got []string
	for sc.Scan() {
		got = append(got, sc.Text())
	}
	require.NoError(t, sc.Err())
	require.Len(t, got, 100)
	for i := 0; i < len(got); i += 2 {
		assert.Equal(t, "ünïcode", got[i])
		assert.Equal(t, "token", got[i+1])
	}
}
