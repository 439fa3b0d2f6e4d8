package disk

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/datakit-cli/internal/core/domain"
)

func TestPath_Deterministic(t *testing.T) {
	store := New()

	a := store.Path("/tmp/cache", "https://example.org/iris.csv")
	b := store.Path("/tmp/cache", "https://example.org/iris.csv")
	assert.Equal(t, a, b)
}

func TestPath_DistinctIdentifiers(t *testing.T) {
	store := New()

	a := store.Path("/tmp/cache", "https://example.org/iris.csv")
	b := store.Path("/tmp/cache", "https://example.org/quakes.csv")
	assert.NotEqual(t, a, b)
}

func TestPath_Format(t *testing.T) {
	store := New()

	path := store.Path("/tmp/cache", "anything")
	base := filepath.Base(path)
	require.True(t, strings.HasPrefix(base, "ds"))
	// "ds" + 16 hex digits of the 64-bit hash.
	assert.Len(t, base, 18)
}

func TestWriteRead_RoundTrip(t *testing.T) {
	store := New()
	path := store.Path(t.TempDir(), "https://example.org/data")
	payload := []byte("col1,col2\n1,2\n")

	require.NoError(t, store.Write(path, payload))
	require.True(t, store.Exists(path))

	got, err := store.Read(path)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestWrite_CreatesParentDirectory(t *testing.T) {
	store := New()
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	path := store.Path(dir, "id")

	require.NoError(t, store.Write(path, []byte("x")))
	assert.True(t, store.Exists(path))

	// Writing again must not fail on the existing directory.
	require.NoError(t, store.Write(path, []byte("y")))
}

func TestWrite_Overwrites(t *testing.T) {
	store := New()
	path := store.Path(t.TempDir(), "id")

	require.NoError(t, store.Write(path, []byte("first")))
	require.NoError(t, store.Write(path, []byte("second")))

	got, err := store.Read(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestWrite_LeavesNoTempFiles(t *testing.T) {
	store := New()
	dir := t.TempDir()
	path := store.Path(dir, "id")

	require.NoError(t, store.Write(path, []byte("data")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRead_Missing(t *testing.T) {
	store := New()

	_, err := store.Read(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCacheIO)
}

func TestExists_Missing(t *testing.T) {
	store := New()
	assert.False(t, store.Exists(filepath.Join(t.TempDir(), "nope")))
}
