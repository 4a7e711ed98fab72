package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/ukydev/trip-planner/internal/itinerary"
	"github.com/ukydev/trip-planner/internal/models"
)

type eventFields struct {
	time  string
	typ   string
	title string
	loc   string
	image string
	tags  string
	desc  string
	note  string
}

func (e *eventFields) register(f *flag.FlagSet) {
	f.StringVar(&e.time, "time", "", "Start time, HH:MM")
	f.StringVar(&e.typ, "type", string(models.EventSight), "Event type: sight, food, transport or hotel")
	f.StringVar(&e.title, "title", "", "Title")
	f.StringVar(&e.loc, "loc", "", "Location")
	f.StringVar(&e.image, "image", "", "Image URL")
	f.StringVar(&e.tags, "tags", "", "Comma separated tags")
	f.StringVar(&e.desc, "desc", "", "Description")
	f.StringVar(&e.note, "note", "", "Note")
}

type addEventCmd struct {
	app *App
	dayFlag
	eventFields
}

func (*addEventCmd) Name() string     { return "add-event" }
func (*addEventCmd) Synopsis() string { return "add an event to a day of the timeline" }
func (*addEventCmd) Usage() string {
	return `add-event -day <n> -time <HH:MM> -title <title> [-type <type>] [-loc ...] [-tags a,b]

  Adds an event. The day's timeline is kept ordered by time; an event
  sharing its time with others goes after them.
`
}

func (c *addEventCmd) SetFlags(f *flag.FlagSet) {
	c.dayFlag.register(f)
	c.eventFields.register(f)
}

func (c *addEventCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var added models.Event
	status := c.app.mutate(ctx, "add event", func(doc *models.TripDocument) error {
		day, err := c.lookup(doc)
		if err != nil {
			return err
		}
		added, err = itinerary.InsertEvent(day, itinerary.EventInput{
			Time:  c.time,
			Type:  models.EventType(c.typ),
			Title: c.title,
			Loc:   c.loc,
			Image: c.image,
			Tags:  splitList(c.tags),
			Desc:  c.desc,
			Note:  c.note,
		})
		return err
	})
	if status == subcommands.ExitSuccess {
		fmt.Fprintf(c.app.Out, "Added event %s at %s\n", added.ID, added.Time)
	}
	return status
}

type editEventCmd struct {
	app *App
	dayFlag
	eventFields
	id string
}

func (*editEventCmd) Name() string     { return "edit-event" }
func (*editEventCmd) Synopsis() string { return "change fields of an event" }
func (*editEventCmd) Usage() string {
	return `edit-event -day <n> -id <event> [-time ...] [-title ...] [-type ...] ...

  Changes only the fields given on the command line. The event keeps its
  place in the timeline even when its time changes.
`
}

func (c *editEventCmd) SetFlags(f *flag.FlagSet) {
	c.dayFlag.register(f)
	c.eventFields.register(f)
	f.StringVar(&c.id, "id", "", "Event id (required)")
}

func (c *editEventCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return c.app.fail(usagef("-id is required"))
	}
	set := visited(f)
	var patch itinerary.EventPatch
	if set["time"] {
		patch.Time = &c.time
	}
	if set["type"] {
		t := models.EventType(c.typ)
		patch.Type = &t
	}
	if set["title"] {
		patch.Title = &c.title
	}
	if set["loc"] {
		patch.Loc = &c.loc
	}
	if set["image"] {
		patch.Image = &c.image
	}
	if set["tags"] {
		tags := splitList(c.tags)
		patch.Tags = &tags
	}
	if set["desc"] {
		patch.Desc = &c.desc
	}
	if set["note"] {
		patch.Note = &c.note
	}

	return c.app.mutate(ctx, "edit event", func(doc *models.TripDocument) error {
		day, err := c.lookup(doc)
		if err != nil {
			return err
		}
		_, found, err := itinerary.UpdateEvent(day, c.id, patch)
		if err != nil {
			return err
		}
		if !found {
			return notFound("event", c.id)
		}
		return nil
	})
}

type rmEventCmd struct {
	app *App
	dayFlag
	id string
}

func (*rmEventCmd) Name() string     { return "rm-event" }
func (*rmEventCmd) Synopsis() string { return "remove an event" }
func (*rmEventCmd) Usage() string {
	return `rm-event -day <n> -id <event>
`
}

func (c *rmEventCmd) SetFlags(f *flag.FlagSet) {
	c.dayFlag.register(f)
	f.StringVar(&c.id, "id", "", "Event id (required)")
}

func (c *rmEventCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.app.mutate(ctx, "remove event", func(doc *models.TripDocument) error {
		day, err := c.lookup(doc)
		if err != nil {
			return err
		}
		if !itinerary.DeleteEvent(day, c.id) {
			return notFound("event", c.id)
		}
		return nil
	})
}

type setTransitCmd struct {
	app *App
	dayFlag
	id       string
	mode     string
	duration string
	note     string
	url      string
	clear    bool
}

func (*setTransitCmd) Name() string     { return "set-transit" }
func (*setTransitCmd) Synopsis() string { return "describe travel from an event to the next one" }
func (*setTransitCmd) Usage() string {
	return `set-transit -day <n> -id <event> -mode <mode> [-duration 25m] [-note ...] [-url ...]
set-transit -day <n> -id <event> -clear

  Modes: train, walk, taxi, bus, other.
`
}

func (c *setTransitCmd) SetFlags(f *flag.FlagSet) {
	c.dayFlag.register(f)
	f.StringVar(&c.id, "id", "", "Event id (required)")
	f.StringVar(&c.mode, "mode", "", "Transport mode")
	f.StringVar(&c.duration, "duration", "", "Travel time, free text")
	f.StringVar(&c.note, "note", "", "Note")
	f.StringVar(&c.url, "url", "", "Route link")
	f.BoolVar(&c.clear, "clear", false, "Remove the travel detail")
}

func (c *setTransitCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var detail *models.TransportDetail
	if !c.clear {
		detail = &models.TransportDetail{
			Mode:     models.TransportMode(c.mode),
			Duration: c.duration,
			Note:     c.note,
			URL:      c.url,
		}
	}
	return c.app.mutate(ctx, "set transit", func(doc *models.TripDocument) error {
		day, err := c.lookup(doc)
		if err != nil {
			return err
		}
		found, err := itinerary.SetTransitToNext(day, c.id, detail)
		if err != nil {
			return err
		}
		if !found {
			return notFound("event", c.id)
		}
		return nil
	})
}

type addSubCmd struct {
	app *App
	dayFlag
	event string
	typ   string
	text  string
}

func (*addSubCmd) Name() string     { return "add-sub" }
func (*addSubCmd) Synopsis() string { return "add a must buy/eat/do entry to an event" }
func (*addSubCmd) Usage() string {
	return `add-sub -day <n> -event <event> -type <buy|eat|do> -text <text>
`
}

func (c *addSubCmd) SetFlags(f *flag.FlagSet) {
	c.dayFlag.register(f)
	f.StringVar(&c.event, "event", "", "Event id (required)")
	f.StringVar(&c.typ, "type", string(models.SubItemDo), "Entry type: buy, eat or do")
	f.StringVar(&c.text, "text", "", "Entry text")
}

func (c *addSubCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var added models.SubItem
	status := c.app.mutate(ctx, "add sub-item", func(doc *models.TripDocument) error {
		day, err := c.lookup(doc)
		if err != nil {
			return err
		}
		item, found, err := itinerary.AddSubItem(day, c.event, models.SubItemType(c.typ), c.text)
		if err != nil {
			return err
		}
		if !found {
			return notFound("event", c.event)
		}
		added = item
		return nil
	})
	if status == subcommands.ExitSuccess && added.ID != "" {
		fmt.Fprintf(c.app.Out, "Added %s %s\n", added.Type, added.ID)
	}
	return status
}

type toggleSubCmd struct {
	app *App
	dayFlag
	event string
	id    string
}

func (*toggleSubCmd) Name() string     { return "toggle-sub" }
func (*toggleSubCmd) Synopsis() string { return "check or uncheck an event checklist entry" }
func (*toggleSubCmd) Usage() string {
	return `toggle-sub -day <n> -event <event> -id <entry>
`
}

func (c *toggleSubCmd) SetFlags(f *flag.FlagSet) {
	c.dayFlag.register(f)
	f.StringVar(&c.event, "event", "", "Event id (required)")
	f.StringVar(&c.id, "id", "", "Entry id (required)")
}

func (c *toggleSubCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.app.mutate(ctx, "toggle sub-item", func(doc *models.TripDocument) error {
		day, err := c.lookup(doc)
		if err != nil {
			return err
		}
		if !itinerary.ToggleSubItem(day, c.event, c.id) {
			return notFound("sub-item", c.id)
		}
		return nil
	})
}

type rmSubCmd struct {
	app *App
	dayFlag
	event string
	id    string
}

func (*rmSubCmd) Name() string     { return "rm-sub" }
func (*rmSubCmd) Synopsis() string { return "remove an event checklist entry" }
func (*rmSubCmd) Usage() string {
	return `rm-sub -day <n> -event <event> -id <entry>
`
}

func (c *rmSubCmd) SetFlags(f *flag.FlagSet) {
	c.dayFlag.register(f)
	f.StringVar(&c.event, "event", "", "Event id (required)")
	f.StringVar(&c.id, "id", "", "Entry id (required)")
}

func (c *rmSubCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.app.mutate(ctx, "remove sub-item", func(doc *models.TripDocument) error {
		day, err := c.lookup(doc)
		if err != nil {
			return err
		}
		if !itinerary.DeleteSubItem(day, c.event, c.id) {
			return notFound("sub-item", c.id)
		}
		return nil
	})
}
