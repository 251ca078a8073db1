// Package session guards a store against two praxis processes writing it at
// once. The lock is a file holding "<pid>|<executable>"; a lock whose
// process is gone or belongs to another program is stale and gets taken over.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/praxis/internal/constants"
	"github.com/julianstephens/praxis/internal/logger"
)

var findProcessFunc = ps.FindProcess

// ErrLocked is wrapped by the error returned when a live process holds the lock.
var ErrLocked = errors.New("store is in use by another praxis process")

// Holder describes the process recorded in a lock file.
type Holder struct {
	PID        int
	Executable string
}

type Lock struct {
	path string
	held bool
}

// Path returns the lock file location for a store whose files live in dir.
func Path(dir string) string {
	return filepath.Join(dir, constants.LockfileName)
}

// Acquire takes the lock in dir. The file is created exclusively, so of two
// processes starting together only one gets it. An existing lock is taken
// over only when its holder is gone.
func Acquire(dir string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	path := Path(dir)

	self := Holder{PID: os.Getpid(), Executable: filepath.Base(os.Args[0])}
	content := []byte(strconv.Itoa(self.PID) + "|" + self.Executable)

	err := createExclusive(path, content)
	if errors.Is(err, os.ErrExist) {
		err = takeOver(path, content)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("Session lock acquired", "path", path, "pid", self.PID)
	return &Lock{path: path, held: true}, nil
}

// takeOver replaces an existing lock file whose holder is not running.
func takeOver(path string, content []byte) error {
	holder, alive, err := Inspect(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Released between our create and the read.
	case err != nil:
		logger.Warn("Replacing unreadable lock file", "path", path, "error", err)
	case holder.PID == os.Getpid():
		return writeLock(path, content)
	case alive:
		return fmt.Errorf("%w (pid %d)", ErrLocked, holder.PID)
	default:
		logger.Debug("Removing stale lock file", "path", path, "pid", holder.PID)
	}

	if err := removeFunc(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove stale lock file: %w", err)
	}

	err = createExclusive(path, content)
	if errors.Is(err, os.ErrExist) {
		// Another process replaced the stale lock first.
		if holder, _, inspectErr := Inspect(path); inspectErr == nil {
			return fmt.Errorf("%w (pid %d)", ErrLocked, holder.PID)
		}
		return ErrLocked
	}
	return err
}

var removeFunc = os.Remove

func createExclusive(path string, content []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return err
		}
		return fmt.Errorf("failed to create lock file: %w", err)
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write lock file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write lock file: %w", err)
	}
	return nil
}

func writeLock(path string, content []byte) error {
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return fmt.Errorf("failed to write lock file: %w", err)
	}
	return nil
}

// Release removes the lock file if this process still owns it.
func (l *Lock) Release() error {
	if l == nil || !l.held {
		return nil
	}
	l.held = false

	holder, _, err := Inspect(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err == nil && holder.PID != os.Getpid() {
		logger.Warn("Lock file taken over by another process", "path", l.path, "pid", holder.PID)
		return nil
	}
	if err := os.Remove(l.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return nil
}

// Inspect reads the lock file at path and reports whether its holder is
// still running. Errors wrap os.ErrNotExist when there is no lock file.
func Inspect(path string) (Holder, bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Holder{}, false, err
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 2 {
		return Holder{}, false, errors.New("lock file is malformed")
	}

	pid, err := strconv.Atoi(parts[0])
	if err != nil || pid <= 0 {
		return Holder{}, false, errors.New("invalid process ID in lock file")
	}
	holder := Holder{PID: pid, Executable: parts[1]}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return holder, false, nil
	}

	// Process names may be truncated by the OS.
	exe := process.Executable()
	if exe != "" && !strings.HasPrefix(holder.Executable, exe) {
		return holder, false, nil
	}
	return holder, true, nil
}
