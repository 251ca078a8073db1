package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONStoreLoadMissingFile(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "praxis.json"))
	require.NoError(t, s.Open())

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestJSONStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "praxis.json")
	s := NewJSONStore(path)
	require.NoError(t, s.Init())

	require.NoError(t, s.Save(sampleEntries()))
	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, sampleEntries(), got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// No temporary files left behind.
	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestJSONStoreInitTwice(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "praxis.json"))
	require.NoError(t, s.Init())
	assert.Error(t, s.Init())
}

func TestJSONStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "praxis.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"entries":"nope"}`), 0600))

	_, err := NewJSONStore(path).Load()
	var sErr *StorageError
	assert.ErrorAs(t, err, &sErr)
	assert.ErrorIs(t, err, ErrNoEntries)
}
