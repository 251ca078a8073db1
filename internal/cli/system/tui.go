package system

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/praxis/internal/cli"
	"github.com/julianstephens/praxis/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	j, err := ctx.Journal()
	if err != nil {
		return err
	}

	m := tui.NewModel(j, tui.Options{
		Settings:     ctx.Settings,
		BeforeChange: ctx.PerformAutomaticBackup,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
