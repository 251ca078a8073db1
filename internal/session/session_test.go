package session

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/mitchellh/go-ps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockProcess struct {
	pid        int
	executable string
}

func (p *mockProcess) Pid() int           { return p.pid }
func (p *mockProcess) PPid() int          { return 0 }
func (p *mockProcess) Executable() string { return p.executable }

func withProcesses(t *testing.T, procs map[int]string) {
	t.Helper()
	old := findProcessFunc
	t.Cleanup(func() { findProcessFunc = old })
	findProcessFunc = func(pid int) (ps.Process, error) {
		exe, ok := procs[pid]
		if !ok {
			return nil, nil
		}
		return &mockProcess{pid: pid, executable: exe}, nil
	}
}

func TestAcquireAndRelease(t *testing.T) {
	dir := t.TempDir()
	withProcesses(t, map[int]string{})

	lock, err := Acquire(dir)
	require.NoError(t, err)

	content, err := os.ReadFile(Path(dir))
	require.NoError(t, err)
	assert.Contains(t, string(content), strconv.Itoa(os.Getpid())+"|")

	require.NoError(t, lock.Release())
	_, err = os.Stat(Path(dir))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	assert.NoError(t, lock.Release())
}

func TestAcquire_LiveHolder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir), []byte("424242|praxis"), 0o600))
	withProcesses(t, map[int]string{424242: "praxis"})

	_, err := Acquire(dir)
	assert.ErrorIs(t, err, ErrLocked)
}

func TestAcquire_StaleHolder(t *testing.T) {
	tests := []struct {
		name  string
		procs map[int]string
	}{
		{"process gone", map[int]string{}},
		{"pid reused by another program", map[int]string{424242: "bash"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(Path(dir), []byte("424242|praxis"), 0o600))
			withProcesses(t, tt.procs)

			lock, err := Acquire(dir)
			require.NoError(t, err)
			defer lock.Release()

			holder, _, err := Inspect(Path(dir))
			require.NoError(t, err)
			assert.Equal(t, os.Getpid(), holder.PID)
		})
	}
}

func TestAcquire_MalformedLockIsReplaced(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir), []byte("garbage"), 0o600))
	withProcesses(t, map[int]string{})

	lock, err := Acquire(dir)
	require.NoError(t, err)
	require.NoError(t, lock.Release())
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.lock")

	_, _, err := Inspect(path)
	assert.ErrorIs(t, err, os.ErrNotExist)

	for _, bad := range []string{"", "12", "abc|praxis", "-4|praxis", "1|2|3"} {
		require.NoError(t, os.WriteFile(path, []byte(bad), 0o600))
		_, _, err := Inspect(path)
		assert.Error(t, err, bad)
	}

	withProcesses(t, map[int]string{77: "praxis-long-na"})
	require.NoError(t, os.WriteFile(path, []byte("77|praxis-long-name-binary"), 0o600))
	holder, alive, err := Inspect(path)
	require.NoError(t, err)
	assert.True(t, alive)
	assert.Equal(t, 77, holder.PID)
}

func TestAcquire_LosesRaceForStaleLock(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir), []byte("424242|praxis"), 0o600))
	withProcesses(t, map[int]string{515151: "praxis"})

	// Another process swaps in its own lock right after the stale one goes.
	old := removeFunc
	t.Cleanup(func() { removeFunc = old })
	removeFunc = func(path string) error {
		if err := os.Remove(path); err != nil {
			return err
		}
		return os.WriteFile(path, []byte("515151|praxis"), 0o600)
	}

	_, err := Acquire(dir)
	assert.ErrorIs(t, err, ErrLocked)

	holder, alive, err := Inspect(Path(dir))
	require.NoError(t, err)
	assert.True(t, alive)
	assert.Equal(t, 515151, holder.PID)
}

func TestAcquire_FreshLockIsExclusive(t *testing.T) {
	dir := t.TempDir()
	withProcesses(t, map[int]string{})

	lock, err := Acquire(dir)
	require.NoError(t, err)
	defer lock.Release()

	info, err := os.Stat(Path(dir))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// A second Acquire from the same process keeps the lock.
	again, err := Acquire(dir)
	require.NoError(t, err)
	assert.NotNil(t, again)
}
