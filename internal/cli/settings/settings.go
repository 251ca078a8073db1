package settings

import (
	"errors"
	"fmt"

	"github.com/julianstephens/praxis/internal/cli"
	"github.com/julianstephens/praxis/internal/config"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	HistoryLimit    *int    `help:"Most recent entries shown in history."`
	StatusClearMs   *int    `name:"status-clear-ms" help:"Milliseconds a status message stays visible."`
	ExportDir       *string `help:"Default directory for exports."`
	TimestampFormat *string `help:"Go time layout used for history timestamps."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	if ctx.SettingsPath == "" {
		return errors.New("no settings file configured")
	}

	// Re-read the file so values expanded at startup are not written back.
	settings, err := config.Load(ctx.SettingsPath)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		ctx.Println("Current Settings:")
		ctx.Printf("  History Limit:      %d\n", settings.HistoryLimit)
		ctx.Printf("  Status Clear:       %d ms\n", settings.StatusClearMS)
		ctx.Printf("  Export Directory:   %s\n", settings.ExportDir)
		ctx.Printf("  Timestamp Format:   %s\n", settings.TimestampFormat)
		ctx.Printf("\nSettings file: %s\n", ctx.SettingsPath)
		return nil
	}

	updated := false
	if c.HistoryLimit != nil {
		settings.HistoryLimit = *c.HistoryLimit
		updated = true
	}
	if c.StatusClearMs != nil {
		settings.StatusClearMS = *c.StatusClearMs
		updated = true
	}
	if c.ExportDir != nil {
		settings.ExportDir = *c.ExportDir
		updated = true
	}
	if c.TimestampFormat != nil {
		settings.TimestampFormat = *c.TimestampFormat
		updated = true
	}

	if !updated {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := config.Save(ctx.SettingsPath, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	ctx.Println("Settings updated successfully.")
	return nil
}
