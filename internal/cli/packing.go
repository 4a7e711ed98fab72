package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/ukydev/trip-planner/internal/models"
	"github.com/ukydev/trip-planner/internal/packing"
)

type packCmd struct {
	app *App
}

func (*packCmd) Name() string     { return "pack" }
func (*packCmd) Synopsis() string { return "show the packing checklist" }
func (*packCmd) Usage() string {
	return `pack
`
}

func (*packCmd) SetFlags(*flag.FlagSet) {}

func (c *packCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := c.app.read(ctx)
	if err != nil {
		return c.app.fail(err)
	}
	out := c.app.Out
	fmt.Fprintf(out, "Packed %d%%\n", packing.Progress(doc.PackingList))
	for _, g := range packing.GroupByCategory(doc.PackingList) {
		fmt.Fprintf(out, "\n%s\n", g.Category)
		for _, item := range g.Items {
			box := "[ ]"
			if item.Checked {
				box = "[x]"
			}
			fmt.Fprintf(out, "  %s %s  (%s)\n", box, item.Text, item.ID)
		}
	}
	return subcommands.ExitSuccess
}

type addItemCmd struct {
	app      *App
	text     string
	category string
}

func (*addItemCmd) Name() string     { return "add-item" }
func (*addItemCmd) Synopsis() string { return "add an item to the packing checklist" }
func (*addItemCmd) Usage() string {
	return `add-item -text <text> [-category <category>]
`
}

func (c *addItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.text, "text", "", "Item")
	f.StringVar(&c.category, "category", "", "Category, defaults to "+packing.CustomCategory)
}

func (c *addItemCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var added models.PackingItem
	status := c.app.mutate(ctx, "add packing item", func(doc *models.TripDocument) error {
		var err error
		doc.PackingList, added, err = packing.Add(doc.PackingList, c.text, c.category)
		return err
	})
	if status == subcommands.ExitSuccess {
		fmt.Fprintf(c.app.Out, "Added %s to %s\n", added.ID, added.Category)
	}
	return status
}

type toggleItemCmd struct {
	app *App
	id  string
}

func (*toggleItemCmd) Name() string     { return "toggle-item" }
func (*toggleItemCmd) Synopsis() string { return "check or uncheck a packing item" }
func (*toggleItemCmd) Usage() string {
	return `toggle-item -id <item>
`
}

func (c *toggleItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Item id (required)")
}

func (c *toggleItemCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.app.mutate(ctx, "toggle packing item", func(doc *models.TripDocument) error {
		if !packing.Toggle(doc.PackingList, c.id) {
			return notFound("packing item", c.id)
		}
		return nil
	})
}

type rmItemCmd struct {
	app *App
	id  string
}

func (*rmItemCmd) Name() string     { return "rm-item" }
func (*rmItemCmd) Synopsis() string { return "remove a packing item" }
func (*rmItemCmd) Usage() string {
	return `rm-item -id <item>
`
}

func (c *rmItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Item id (required)")
}

func (c *rmItemCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.app.mutate(ctx, "remove packing item", func(doc *models.TripDocument) error {
		var ok bool
		doc.PackingList, ok = packing.Delete(doc.PackingList, c.id)
		if !ok {
			return notFound("packing item", c.id)
		}
		return nil
	})
}
