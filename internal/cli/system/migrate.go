package system

import (
	"errors"
	"fmt"

	"github.com/julianstephens/praxis/internal/cli"
	"github.com/julianstephens/praxis/internal/storage"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	m, ok := ctx.Store.(storage.Migrator)
	if !ok {
		return errors.New("this store has no schema to migrate")
	}

	if err := ctx.OpenStore(); err != nil {
		return err
	}

	current, latest, err := m.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	ctx.Printf("Current schema version: %d\n", current)
	ctx.Printf("Latest schema version:  %d\n", latest)

	applied, err := m.Migrate(func(msg string) { ctx.Println("  " + msg) })
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if applied == 0 {
		ctx.Println("✓ Schema is up to date")
	} else {
		ctx.Printf("✓ Applied %d migration(s)\n", applied)
	}
	return nil
}
