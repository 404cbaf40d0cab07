package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetGetRoundTrip(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("gemini.model", "gemini-2.5-flash"))
	assert.Equal(t, "gemini-2.5-flash", store.GetString("gemini.model"))

	val, ok := store.Get("gemini.model")
	assert.True(t, ok)
	assert.Equal(t, "gemini-2.5-flash", val)

	_, ok = store.Get("missing.key")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("missing.key"))
}

func TestConfigStore_LoadNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := "[gemini]\napi_key = \"test-key\"\nmodel = \"gemini-2.5-flash\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "test-key", store.GetString("gemini.api_key"))
	assert.Equal(t, "gemini-2.5-flash", store.GetString("gemini.model"))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("gemini.api_key", "persisted"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "persisted", reopened.GetString("gemini.api_key"))
}

func TestConfigStore_MissingFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
	assert.NoFileExists(t, store.Path())
	assert.Empty(t, store.GetString("gemini.api_key"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("gemini.api_key", "secret"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
