package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.CacheDir)
	assert.Zero(t, cfg.HTTPTimeoutSeconds)
	assert.Zero(t, cfg.RateLimitPerSecond)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		CacheDir:           "/data/cache",
		HTTPTimeoutSeconds: 60,
		RateLimitPerSecond: 2.5,
	}
	require.NoError(t, cfg.Save(dir))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestSave_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", ".datakit")
	cfg := &Config{CacheDir: "/tmp/x"}

	require.NoError(t, cfg.Save(dir))
	_, err := os.Stat(filepath.Join(dir, "config.toml"))
	assert.NoError(t, err)
}

func TestLoad_MalformedTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("cache_dir = [broken"), 0o600))

	_, err := Load(dir)
	require.Error(t, err)
}
