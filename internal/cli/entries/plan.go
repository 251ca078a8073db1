package entries

import (
	"github.com/julianstephens/praxis/internal/cli"
	"github.com/julianstephens/praxis/internal/constants"
	"github.com/julianstephens/praxis/internal/drafter"
	"github.com/julianstephens/praxis/internal/models"
)

type PlanCmd struct {
	Add   PlanAddCmd   `cmd:"" help:"Save a plan."`
	Draft PlanDraftCmd `cmd:"" help:"Suggest a plan from a mood and notes without saving it."`
}

type PlanAddCmd struct {
	Theme   string `help:"Optional theme for the day."`
	P1      string `name:"p1" help:"Priority 1." required:""`
	P2      string `name:"p2" help:"Priority 2." required:""`
	P3      string `name:"p3" help:"Priority 3." required:""`
	Step    string `help:"Smallest next step." required:""`
	Timebox string `help:"Time box in minutes (5-180)." default:"25"`
}

func (c *PlanAddCmd) Run(ctx *cli.Context) error {
	j, err := ctx.Journal()
	if err != nil {
		return err
	}

	entry, err := j.AddPlan(models.PlanForm{
		Theme:      c.Theme,
		Priorities: [constants.PriorityCount]string{c.P1, c.P2, c.P3},
		Step:       c.Step,
		Timebox:    c.Timebox,
	})
	if err != nil {
		return err
	}

	ctx.Printf("✓ %s (%s)\n", constants.MsgSaved, entry.ID)
	return nil
}

type PlanDraftCmd struct {
	Mood  string `help:"Current mood, may be blank."`
	Notes string `help:"Current notes, may be blank."`
}

func (c *PlanDraftCmd) Run(ctx *cli.Context) error {
	draft := drafter.QuickPlan(models.CheckInForm{Mood: c.Mood, Notes: c.Notes})

	ctx.Println(constants.MsgDrafted)
	ctx.Println()
	ctx.Printf("Theme:    %s\n", draft.Theme)
	for i, p := range draft.Priorities {
		ctx.Printf("%d. %s\n", i+1, p)
	}
	ctx.Printf("Smallest step: %s\n", draft.Step)
	ctx.Printf("Time box: %s min\n", draft.Timebox)
	return nil
}
