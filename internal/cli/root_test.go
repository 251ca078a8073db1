package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/praxis/internal/models"
	"github.com/julianstephens/praxis/internal/session"
	"github.com/julianstephens/praxis/internal/storage"
)

func TestJournal_OpensOnceAndLocks(t *testing.T) {
	dir := t.TempDir()
	ctx := &Context{
		Store:   storage.NewJSONStore(filepath.Join(dir, "praxis.json")),
		LockDir: dir,
		Out:     &bytes.Buffer{},
	}

	j1, err := ctx.Journal()
	require.NoError(t, err)
	j2, err := ctx.Journal()
	require.NoError(t, err)
	assert.Same(t, j1, j2)

	_, err = os.Stat(session.Path(dir))
	require.NoError(t, err)

	ctx.Close()
	_, err = os.Stat(session.Path(dir))
	assert.True(t, os.IsNotExist(err))
}

func TestPerformAutomaticBackup(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewJSONStore(filepath.Join(dir, "praxis.json"))
	require.NoError(t, store.Init())
	require.NoError(t, store.Save([]models.Entry{{ID: "a", Kind: models.KindCheckIn, CreatedAt: "2025-01-01T00:00:00.000Z"}}))

	ctx := &Context{Store: store}
	ctx.PerformAutomaticBackup()

	files, err := os.ReadDir(filepath.Join(dir, "backups"))
	require.NoError(t, err)
	assert.Len(t, files, 1)

	// Stores without a local file are skipped silently.
	(&Context{Store: storage.NewMemoryStore()}).PerformAutomaticBackup()
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		ctx := &Context{Out: &out, In: strings.NewReader(tt.input)}
		got, err := ctx.Confirm("Delete?")
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
		assert.Equal(t, "Delete? [y/N]: ", out.String())
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".config/praxis/praxis.db"), ExpandPath("~/.config/praxis/praxis.db"))
	assert.Equal(t, "/abs/path.db", ExpandPath("/abs/path.db"))
	assert.Equal(t, "postgres://localhost/praxis", ExpandPath("postgres://localhost/praxis"))
}
