package system

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/praxis/internal/backup"
	"github.com/julianstephens/praxis/internal/cli"
	"github.com/julianstephens/praxis/internal/session"
	"github.com/julianstephens/praxis/internal/storage"
)

type DoctorCmd struct{}

type check struct {
	name string
	// warnOnly failures are reported but do not fail the run.
	warnOnly bool
	// needsStore checks are skipped when the store cannot be opened.
	needsStore bool
	run        func(ctx *cli.Context) error
}

var checks = []check{
	{name: "Storage reachable", run: checkStoreReachable},
	{name: "Schema version", needsStore: true, run: checkSchemaVersion},
	{name: "Journal document", needsStore: true, run: checkDocument},
	{name: "Entry integrity", needsStore: true, warnOnly: true, run: checkEntries},
	{name: "Backups present", warnOnly: true, run: checkBackupsPresent},
	{name: "Session lock", warnOnly: true, run: checkLock},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	reachable := true
	for _, c := range checks {
		if c.needsStore && !reachable {
			ctx.Printf("⊘ %s: SKIPPED (storage not reachable)\n", c.name)
			continue
		}

		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		}

		if c.name == "Storage reachable" && err != nil {
			reachable = false
		}
	}

	ctx.Println()
	if hasError {
		return errors.New("some checks failed")
	}
	ctx.Println("All checks passed!")
	return nil
}

func checkStoreReachable(ctx *cli.Context) error {
	if storage.IsLocalFile(ctx.Store) {
		if _, err := os.Stat(ctx.Store.GetConfigPath()); os.IsNotExist(err) {
			return fmt.Errorf("no store at %s; run 'praxis init'", ctx.Store.GetConfigPath())
		}
	}
	return ctx.OpenStore()
}

func checkSchemaVersion(ctx *cli.Context) error {
	m, ok := ctx.Store.(storage.Migrator)
	if !ok {
		return nil
	}

	current, latest, err := m.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current < latest {
		return fmt.Errorf("schema version %d is behind %d; run 'praxis migrate'", current, latest)
	}
	if current > latest {
		return fmt.Errorf("schema version %d is newer than this build supports (%d)", current, latest)
	}
	return nil
}

func checkDocument(ctx *cli.Context) error {
	_, err := ctx.Store.Load()
	return err
}

func checkEntries(ctx *cli.Context) error {
	entries, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(entries))
	var missingID, duplicates, badTime int
	for _, e := range entries {
		switch {
		case e.ID == "":
			missingID++
		case seen[e.ID]:
			duplicates++
		}
		seen[e.ID] = true
		if _, err := e.Time(); err != nil {
			badTime++
		}
	}

	if missingID+duplicates+badTime == 0 {
		return nil
	}
	return fmt.Errorf("%d entries without id, %d duplicate ids, %d unreadable timestamps", missingID, duplicates, badTime)
}

func checkBackupsPresent(ctx *cli.Context) error {
	if !storage.IsLocalFile(ctx.Store) {
		return nil
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	list, err := mgr.List()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return fmt.Errorf("no backups found in %s; run 'praxis backup create'", mgr.Dir())
	}
	return nil
}

func checkLock(ctx *cli.Context) error {
	if ctx.LockDir == "" {
		return nil
	}

	holder, alive, err := session.Inspect(session.Path(ctx.LockDir))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("lock file is unreadable: %w", err)
	}
	if alive && holder.PID != os.Getpid() {
		return fmt.Errorf("store is in use by pid %d", holder.PID)
	}
	if !alive {
		return fmt.Errorf("stale lock left by pid %d; it will be replaced on next use", holder.PID)
	}
	return nil
}
