package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestWriteJSON_ReadJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	in := payload{Name: "projects", Count: 3}
	require.NoError(t, WriteJSON(path, in))

	var out payload
	require.NoError(t, ReadJSON(path, &out))
	assert.Equal(t, in, out)
}

func TestReadJSON_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")

	var out payload
	err := ReadJSON(path, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), path)
}

func TestReadJSON_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	var out payload
	err := ReadJSON(path, &out)
	require.Error(t, err)
	assert.NotErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "corrupt")
}

func TestWriteJSON_ReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, WriteJSON(path, payload{Name: "old", Count: 1}))
	require.NoError(t, WriteJSON(path, payload{Name: "new", Count: 2}))

	var out payload
	require.NoError(t, ReadJSON(path, &out))
	assert.Equal(t, payload{Name: "new", Count: 2}, out)
}

func TestWriteJSON_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, WriteJSON(path, payload{Name: "x"}))
	require.NoError(t, WriteJSON(path, payload{Name: "y"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "data.json", entries[0].Name())
}

func TestWriteJSON_FailedWriteLeavesFileIntact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, WriteJSON(path, payload{Name: "original", Count: 1}))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	// func values cannot be serialized, so the write fails before touching
	// the target.
	err = WriteJSON(path, map[string]any{"f": func() {}})
	require.Error(t, err)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestWriteJSON_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "data.json")
	require.NoError(t, WriteJSON(path, payload{Name: "x"}))

	var out payload
	require.NoError(t, ReadJSON(path, &out))
	assert.Equal(t, "x", out.Name)
}
