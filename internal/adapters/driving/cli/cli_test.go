package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		catalogFlag = ""
		cacheDirFlag = ""
		outputFormat = "table"
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "datakit", rootCmd.Use)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "datakit version")
}

func TestDatasetCmd_HasSubcommands(t *testing.T) {
	commands := datasetCmd.Commands()
	names := make([]string, 0, len(commands))
	for _, cmd := range commands {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "get")
}

func TestDatasetListCmd_IncludesBuiltIns(t *testing.T) {
	out, err := execute(t, "dataset", "list", "--cache-dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "iris")
	assert.Contains(t, out, "quakes")
	assert.Contains(t, out, "Total:")
}

func TestDatasetGetCmd_RequiresArg(t *testing.T) {
	_, err := execute(t, "dataset", "get")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestDatasetGetCmd_UnknownDataset(t *testing.T) {
	_, err := execute(t, "dataset", "get", "no-such-dataset", "--cache-dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-dataset")
}

// writeLocalCatalog serves CSV locally and writes a catalog pointing
// at it, so dataset loads never leave the test process.
func writeLocalCatalog(t *testing.T) string {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("name,score\nalpha,10\nbeta,20\n"))
	}))
	t.Cleanup(server.Close)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := "datasets:\n  - name: scores\n    description: test scores\n    url: " + server.URL + "\n    format: csv-headered\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDatasetGetCmd_Table(t *testing.T) {
	path := writeLocalCatalog(t)

	out, err := execute(t, "dataset", "get", "scores", "--catalog", path, "--cache-dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "name")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "2 rows")
}

func TestDatasetGetCmd_CSV(t *testing.T) {
	path := writeLocalCatalog(t)

	out, err := execute(t, "dataset", "get", "scores", "--catalog", path, "--cache-dir", t.TempDir(), "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "name,score\n")
	assert.Contains(t, out, "alpha,10\n")
}

func TestDatasetGetCmd_JSON(t *testing.T) {
	path := writeLocalCatalog(t)

	out, err := execute(t, "dataset", "get", "scores", "--catalog", path, "--cache-dir", t.TempDir(), "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "alpha"`)
}

func TestDatasetGetCmd_BadFormat(t *testing.T) {
	path := writeLocalCatalog(t)

	_, err := execute(t, "dataset", "get", "scores", "--catalog", path, "--cache-dir", t.TempDir(), "--format", "xml")
	require.Error(t, err)
}

func TestCacheDirCmd(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "cache", "dir", "--cache-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, dir)
}

func TestCachePathCmd(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "cache", "path", "https://example.org/data.csv", "--cache-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, dir)
	assert.Contains(t, out, "ds")
}

func TestCacheClearCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ds0123"), []byte("x"), 0o644))

	out, err := execute(t, "cache", "clear", "--cache-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed")
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}
