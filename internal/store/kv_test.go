package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKV(t *testing.T) *KV {
	t.Helper()
	kv, err := OpenKV(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func TestKV_SetAndGet(t *testing.T) {
	kv := newTestKV(t)

	require.NoError(t, kv.Set("tasks", `[{"id":1}]`))

	got, ok, err := kv.Get("tasks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, got)
}

func TestKV_GetMissing(t *testing.T) {
	kv := newTestKV(t)

	_, ok, err := kv.Get("nonexistent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKV_SetOverwrite(t *testing.T) {
	kv := newTestKV(t)

	require.NoError(t, kv.Set("key", "first"))
	require.NoError(t, kv.Set("key", "second"))

	got, ok, err := kv.Get("key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", got)
}

func TestKV_Delete(t *testing.T) {
	kv := newTestKV(t)

	require.NoError(t, kv.Set("key", "value"))
	require.NoError(t, kv.Delete("key"))

	_, ok, err := kv.Get("key")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpenKV_EmptyPath(t *testing.T) {
	_, err := OpenKV("")
	assert.Error(t, err)
}
