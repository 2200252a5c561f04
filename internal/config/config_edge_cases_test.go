package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMergeCachedYearsReplacesNotAppends(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".opldb.yaml"), []byte("cache:\n  cached_years: [2022, 2023]\n"), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []int{2022, 2023}, cfg.Cache.CachedYears)
}

func TestLoadZeroValuesNotMerged(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	// An explicit zero page size in the file should not clobber the default,
	// since mergeWith treats zero as "unset".
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".opldb.yaml"), []byte("query:\n  default_page_size: 0\n"), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, NewConfig().Query.DefaultPageSize, cfg.Query.DefaultPageSize)
}

func TestLoadNegativeQueryCacheSizeFailsValidation(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("OPLDB_QUERY_CACHE_SIZE", "-1")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".opldb.yaml"), []byte("version: 1\n"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadUnreadableConfigFileReturnsError(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := filepath.Join(dir, ".opldb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: ["), 0o644)) // malformed YAML

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestConfigJSONRoundTrip(t *testing.T) {
	cfg := NewConfig()
	cfg.Cache.CachedYears = []int{2021, 2022}

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	var out Config
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, cfg.Data, out.Data)
	assert.Equal(t, cfg.Cache.CachedYears, out.Cache.CachedYears)
}

func TestConfigUnmarshalJSONInvalidReturnsError(t *testing.T) {
	var out Config
	err := json.Unmarshal([]byte("{not valid json"), &out)
	assert.Error(t, err)
}

func TestGetUserConfigPathFallsBackWithoutXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "opldb", "config.yaml"), GetUserConfigPath())
}
