package embedstr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/embedstr"
)

func TestSet(t *testing.T) {
	t.Run("Duplicates are rejected", func(t *testing.T) {
		set := embedstr.NewSet(0)

		assert.True(t, set.Add(embedstr.NewEmbeddedString("build")))
		assert.False(t, set.Add(embedstr.NewEmbeddedString("build")))
		assert.True(t, set.Add(embedstr.NewEmbeddedString("long string is longer than limit")))
		assert.False(t, set.Add(embedstr.NewEmbeddedString("long string is longer than limit")))

		assert.Equal(t, 2, set.Len())
	})

	t.Run("Members are found regardless of mode", func(t *testing.T) {
		set := embedstr.NewSet(4)
		set.Add(embedstr.NewEmbeddedString("short"))
		set.Add(embedstr.NewEmbeddedString("long string is longer than limit"))

		assert.True(t, set.Contains(embedstr.NewEmbeddedString("short")))
		assert.True(t, set.Contains(embedstr.NewEmbeddedString("long string is longer than limit")))
		assert.False(t, set.Contains(embedstr.NewEmbeddedString("missing")))
	})

	t.Run("Sorted returns byte order", func(t *testing.T) {
		set := embedstr.NewSet(4)
		for _, s := range []string{"deploy", "build", "a-rather-long-integration-test", "test"} {
			set.Add(embedstr.NewEmbeddedString(s))
		}

		got := embedstr.Strings(set.Sorted())
		assert.Equal(t, []string{"a-rather-long-integration-test", "build", "deploy", "test"}, got)
	})

	t.Run("All stops when yield returns false", func(t *testing.T) {
		set := embedstr.NewSet(4)
		for _, s := range []string{"a", "b", "c"} {
			set.Add(embedstr.NewEmbeddedString(s))
		}

		count := 0
		for range set.All() {
			count++
			break
		}
		assert.Equal(t, 1, count)
	})
}
