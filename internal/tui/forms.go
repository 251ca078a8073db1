package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

func (m *Model) newCheckInForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Mood (0–10)").
				Value(&m.checkIn.Mood),
			huh.NewText().
				Title("Notes").
				Placeholder("What is going on right now?").
				Value(&m.checkIn.Notes),
		),
	)
}

func (m *Model) newPlanForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Theme").
				Placeholder("optional").
				Value(&m.plan.Theme),
			huh.NewInput().
				Title("Priority 1").
				Value(&m.plan.Priorities[0]),
			huh.NewInput().
				Title("Priority 2").
				Value(&m.plan.Priorities[1]),
			huh.NewInput().
				Title("Priority 3").
				Value(&m.plan.Priorities[2]),
			huh.NewInput().
				Title("Smallest next step").
				Value(&m.plan.Step),
			huh.NewInput().
				Title("Time box (minutes)").
				Value(&m.plan.Timebox),
		),
	)
}

func (m *Model) newImportForm() *huh.Form {
	*m.importPath = ""
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Import file").
				Placeholder("path to a praxis export .json").
				Value(m.importPath).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("enter a file path")
					}
					return nil
				}),
		),
	)
}
