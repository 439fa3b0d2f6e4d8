package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/datakit-cli/internal/core/domain"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_HeaderedEntry(t *testing.T) {
	url := pointAt(t, "name;score\nalpha;10\n")
	path := writeCatalog(t, `
datasets:
  - name: scores
    description: local scores
    url: `+url+`
    format: csv-headered
    separator: ";"
`)

	entries, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "scores", entries[0].Name)
	assert.Equal(t, url, entries[0].Source.URL)

	table, err := entries[0].Load(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "score"}, table.Columns)
	assert.Equal(t, []string{"alpha", "10"}, table.Rows[0])
}

func TestLoadFile_PreprocessPipeline(t *testing.T) {
	url := pointAt(t, "junk header\n1   2\n3   4\n")
	path := writeCatalog(t, `
datasets:
  - name: widths
    url: `+url+`
    preprocess: ["drop-lines:1", "fixed-width"]
`)

	entries, err := LoadFile(path)
	require.NoError(t, err)

	table, err := entries[0].Load(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "2"}, {"3", "4"}}, table.Rows)
}

func TestLoadFile_JSONEntry(t *testing.T) {
	url := pointAt(t, `[{"k":"v"}]`)
	path := writeCatalog(t, `
datasets:
  - name: docs
    url: `+url+`
    format: json
`)

	entries, err := LoadFile(path)
	require.NoError(t, err)

	table, err := entries[0].Load(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, []string{"k"}, table.Columns)
	assert.Equal(t, []string{"v"}, table.Rows[0])
}

func TestLoadFile_DefaultsToHeaderlessCSV(t *testing.T) {
	path := writeCatalog(t, `
datasets:
  - name: plain
    url: https://example.org/data.csv
`)

	entries, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestLoadFile_UnknownFormat(t *testing.T) {
	path := writeCatalog(t, `
datasets:
  - name: bad
    url: https://example.org/x
    format: parquet
`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestLoadFile_MissingName(t *testing.T) {
	path := writeCatalog(t, `
datasets:
  - url: https://example.org/x
`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoadFile_BadSeparator(t *testing.T) {
	path := writeCatalog(t, `
datasets:
  - name: bad
    url: https://example.org/x
    separator: "ab"
`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoadFile_BadPreprocessStep(t *testing.T) {
	path := writeCatalog(t, `
datasets:
  - name: bad
    url: https://example.org/x
    preprocess: ["transpose"]
`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestLoadFile_NotYAML(t *testing.T) {
	path := writeCatalog(t, "\t{nonsense")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
