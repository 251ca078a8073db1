package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julianstephens/praxis/internal/backup"
	"github.com/julianstephens/praxis/internal/config"
	"github.com/julianstephens/praxis/internal/journal"
	"github.com/julianstephens/praxis/internal/logger"
	"github.com/julianstephens/praxis/internal/session"
	"github.com/julianstephens/praxis/internal/storage"
)

// Context is shared by every command. Store is not opened until a command
// asks for the journal.
type Context struct {
	Store    storage.Provider
	Settings config.Settings
	// SettingsPath is the YAML file Settings was loaded from.
	SettingsPath string
	// LockDir holds the session lock file.
	LockDir string

	Out   io.Writer
	In    io.Reader
	Clock func() time.Time

	journal *journal.Journal
	lock    *session.Lock
	opened  bool
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// Now returns the current time from Clock, or the wall clock.
func (c *Context) Now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock()
}

// Printf writes to the command output.
func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.out(), args...)
}

// AcquireLock takes the session lock for the store, if a lock directory is
// configured. It is held until Close.
func (c *Context) AcquireLock() error {
	if c.LockDir == "" || c.lock != nil {
		return nil
	}
	lock, err := session.Acquire(c.LockDir)
	if err != nil {
		return err
	}
	c.lock = lock
	return nil
}

// OpenStore opens the backend once.
func (c *Context) OpenStore() error {
	if c.opened {
		return nil
	}
	if err := c.Store.Open(); err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	c.opened = true
	return nil
}

// Journal takes the session lock, opens the store and loads the journal.
func (c *Context) Journal() (*journal.Journal, error) {
	if c.journal != nil {
		return c.journal, nil
	}

	if err := c.AcquireLock(); err != nil {
		return nil, err
	}
	if err := c.OpenStore(); err != nil {
		return nil, err
	}

	j, err := journal.Open(c.Store)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal: %w", err)
	}
	c.journal = j
	return j, nil
}

// Close releases the store and the session lock.
func (c *Context) Close() {
	if c.opened {
		if err := c.Store.Close(); err != nil {
			logger.Warn("Failed to close storage", "error", err)
		}
		c.opened = false
	}
	c.journal = nil
	if err := c.lock.Release(); err != nil {
		logger.Warn("Failed to release session lock", "error", err)
	}
	c.lock = nil
}

// PerformAutomaticBackup backs up local stores before destructive changes.
// Failures are logged and never block the caller.
func (c *Context) PerformAutomaticBackup() {
	if !storage.IsLocalFile(c.Store) {
		return
	}
	if _, err := os.Stat(c.Store.GetConfigPath()); err != nil {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Confirm asks a y/N question on In.
func (c *Context) Confirm(prompt string) (bool, error) {
	in := c.In
	if in == nil {
		in = os.Stdin
	}
	c.Printf("%s [y/N]: ", prompt)

	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		if err == io.EOF {
			return false, nil
		}
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// ExpandPath resolves a leading ~ to the home directory.
func ExpandPath(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
