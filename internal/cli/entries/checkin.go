package entries

import (
	"github.com/julianstephens/praxis/internal/cli"
	"github.com/julianstephens/praxis/internal/constants"
	"github.com/julianstephens/praxis/internal/models"
)

type CheckInCmd struct {
	Mood  string `help:"Mood from 0 to 10." required:""`
	Notes string `help:"What is going on right now." required:""`
}

func (c *CheckInCmd) Run(ctx *cli.Context) error {
	j, err := ctx.Journal()
	if err != nil {
		return err
	}

	entry, err := j.AddCheckIn(models.CheckInForm{Mood: c.Mood, Notes: c.Notes})
	if err != nil {
		return err
	}

	ctx.Printf("✓ %s (%s)\n", constants.MsgSaved, entry.ID)
	return nil
}
