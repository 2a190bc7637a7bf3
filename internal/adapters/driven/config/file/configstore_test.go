package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ConfigStore {
	t.Helper()
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestConfigStore_SetGet(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("llm.provider", "ollama"))
	require.NoError(t, store.Set("collect.limit", int64(25)))
	require.NoError(t, store.Set("verbose", true))

	assert.Equal(t, "ollama", store.GetString("llm.provider"))
	assert.Equal(t, 25, store.GetInt("collect.limit"))
	assert.True(t, store.GetBool("verbose"))
}

func TestConfigStore_MissingKeys(t *testing.T) {
	store := newTestStore(t)

	_, ok := store.Get("nope")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("nope"))
	assert.Zero(t, store.GetInt("nope"))
	assert.False(t, store.GetBool("nope"))
}

func TestConfigStore_WrongTypes(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("key", "not a number"))

	assert.Zero(t, store.GetInt("key"))
	assert.False(t, store.GetBool("key"))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("reddit.client_id", "abc123"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "abc123", reopened.GetString("reddit.client_id"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("llm.api_key", "secret"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_LoadsNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := "[reddit]\nclient_id = \"abc\"\n\n[llm]\nprovider = \"openai\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "abc", store.GetString("reddit.client_id"))
	assert.Equal(t, "openai", store.GetString("llm.provider"))
}

func TestConfigStore_MissingFileStartsEmpty(t *testing.T) {
	store := newTestStore(t)

	_, err := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err))
	assert.Empty(t, store.GetString("anything"))
}
