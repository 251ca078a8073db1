package entries

import (
	"fmt"
	"os"

	"github.com/julianstephens/praxis/internal/cli"
	"github.com/julianstephens/praxis/internal/view"
)

type HistoryCmd struct {
	Limit int    `help:"Maximum number of entries to show (defaults to history_limit)."`
	HTML  string `name:"html" help:"Write the history as an HTML page to this file instead." type:"path"`
	Width int    `help:"Card width in columns." default:"80"`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	j, err := ctx.Journal()
	if err != nil {
		return err
	}

	limit := c.Limit
	if limit <= 0 {
		limit = ctx.Settings.HistoryLimit
	}
	cards := view.History(j.Entries(), view.Options{
		Limit:      limit,
		TimeFormat: ctx.Settings.TimestampFormat,
	})

	if c.HTML == "" {
		ctx.Println(view.RenderTerminal(cards, c.Width))
		return nil
	}

	f, err := os.Create(c.HTML)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", c.HTML, err)
	}
	if err := view.RenderHTML(f, cards); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.HTML, err)
	}

	ctx.Printf("✓ History written to %s\n", c.HTML)
	return nil
}
