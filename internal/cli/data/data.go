package data

import (
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/praxis/internal/cli"
	"github.com/julianstephens/praxis/internal/constants"
	"github.com/julianstephens/praxis/internal/journal"
	"github.com/julianstephens/praxis/internal/transfer"
)

type ExportCmd struct {
	Dir string `help:"Directory to write the export to (defaults to export_dir)." type:"path"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	j, err := ctx.Journal()
	if err != nil {
		return err
	}

	dir := c.Dir
	if dir == "" {
		dir = cli.ExpandPath(ctx.Settings.ExportDir)
	}

	path, err := transfer.ExportFile(dir, j.Entries(), ctx.Now())
	if err != nil {
		return err
	}

	ctx.Printf("✓ %s %d entries written to %s\n", constants.MsgExported, j.Len(), path)
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"Export file to merge into this journal." type:"existingfile"`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	imported, err := transfer.ImportFile(c.File)
	if err != nil {
		return err
	}

	j, err := ctx.Journal()
	if err != nil {
		return err
	}
	before := j.Len()

	ctx.PerformAutomaticBackup()
	merged, err := j.MergeImport(imported)
	if err != nil {
		return err
	}

	ctx.Printf("✓ %s %d entries in file, %d new, %d total\n", constants.MsgImported, len(imported), len(merged)-before, len(merged))
	return nil
}

type WipeCmd struct {
	Yes bool `help:"Skip the confirmation prompt."`

	confirm journal.ConfirmFunc
}

func (c *WipeCmd) Run(ctx *cli.Context) error {
	j, err := ctx.Journal()
	if err != nil {
		return err
	}

	confirm := c.confirm
	switch {
	case c.Yes:
		confirm = func(string) (bool, error) { return true, nil }
	case confirm == nil:
		confirm = huhConfirm
	}

	ok, err := j.WipeAll(func(prompt string) (bool, error) {
		yes, err := confirm(prompt)
		if yes && err == nil && j.Len() > 0 {
			ctx.PerformAutomaticBackup()
		}
		return yes, err
	})
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("Wipe cancelled.")
		return nil
	}

	ctx.Printf("✓ %s\n", constants.MsgWiped)
	return nil
}

func huhConfirm(prompt string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(prompt).
		Affirmative("Delete").
		Negative("Cancel").
		Value(&ok).
		Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}
