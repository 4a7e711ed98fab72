package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/trip-planner/internal/daysync"
	"github.com/ukydev/trip-planner/internal/export"
	"github.com/ukydev/trip-planner/internal/models"
	"github.com/ukydev/trip-planner/internal/weather"
)

type showCmd struct {
	app   *App
	day   int
	raw   bool
	style string
	width int
	live  bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "print the itinerary of a day or of the whole trip" }
func (*showCmd) Usage() string {
	return `show [-day <n>] [-live] [-raw] [-style dark|light|notty] [-width 100]

  Without -day the whole trip is printed, followed by bookings, packing
  progress and the expense summary.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.day, "day", 0, "Day number, 0 for the whole trip")
	f.BoolVar(&c.raw, "raw", false, "Print Markdown instead of rendering it")
	f.StringVar(&c.style, "style", "dark", "Rendering style")
	f.IntVar(&c.width, "width", 100, "Word wrap width")
	f.BoolVar(&c.live, "live", false, "Look up the current weather")
}

func (c *showCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := c.app.read(ctx)
	if err != nil {
		return c.app.fail(err)
	}
	f, err := c.app.formatter()
	if err != nil {
		return c.app.fail(err)
	}

	idx := c.day - 1
	var board *weather.Board
	if c.live {
		board = weather.NewBoard(c.app.fetcher())
		if idx >= 0 && idx < len(doc.Days) {
			board.Refresh(ctx, doc.Days[idx].LocationKey)
		} else {
			seen := map[string]bool{}
			for _, day := range doc.Days {
				if !seen[day.LocationKey] {
					seen[day.LocationKey] = true
					board.Refresh(ctx, day.LocationKey)
				}
			}
		}
		board.Wait()
	}

	md, err := export.Markdown(doc, idx, f, board)
	if err != nil {
		return c.app.fail(err)
	}
	if c.raw {
		fmt.Fprint(c.app.Out, md)
		return subcommands.ExitSuccess
	}
	out, err := export.Render(md, c.width, c.style)
	if err != nil {
		return c.app.fail(err)
	}
	fmt.Fprint(c.app.Out, out)
	return subcommands.ExitSuccess
}

type spyCmd struct {
	app  *App
	live bool
}

func (*spyCmd) Name() string     { return "spy" }
func (*spyCmd) Synopsis() string { return "follow day selection from a stream of scroll reports" }
func (*spyCmd) Usage() string {
	return `spy [-live] < reports

  Reads one report per line from stdin and prints the selected day whenever
  it changes:

    jump <n>                          explicit selection of day n
    view <height> <top>,<bottom> ...  section extents of days 1..n in a viewport
    wait <duration>                   pause, e.g. 700ms

  View reports are ignored for a short while after a jump.
`
}

func (c *spyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.live, "live", false, "Look up the weather of each newly selected day")
}

func (c *spyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := c.app.read(ctx)
	if err != nil {
		return c.app.fail(err)
	}
	sel := daysync.NewSelector(len(doc.Days), daysync.WithCooldown(c.app.Config.SelectionCooldown))

	var board *weather.Board
	if c.live {
		board = weather.NewBoard(c.app.fetcher())
	}
	sel.OnChange(func(idx int) {
		day := doc.Days[idx]
		fmt.Fprintf(c.app.Out, "day %d: %s\n", idx+1, day.Title)
		if board != nil {
			board.Refresh(ctx, day.LocationKey)
		}
	})

	scanner := bufio.NewScanner(c.app.In)
	for line := 1; scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if err := c.apply(sel, fields); err != nil {
			log.WithError(err).WithField("line", line).Warn("Skipping report")
		}
	}
	if err := scanner.Err(); err != nil {
		return c.app.fail(err)
	}

	if board != nil {
		board.Wait()
		seen := map[string]bool{}
		for _, day := range doc.Days {
			if seen[day.LocationKey] {
				continue
			}
			seen[day.LocationKey] = true
			if r, ok := board.Get(day.LocationKey); ok {
				fmt.Fprintf(c.app.Out, "%s: %d°C (%s)\n", day.LocationKey, r.Temperature, r.Icon())
			}
		}
	}
	return subcommands.ExitSuccess
}

func (c *spyCmd) apply(sel *daysync.Selector, fields []string) error {
	switch fields[0] {
	case "jump":
		if len(fields) != 2 {
			return usagef("jump takes a day number")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return usagef("bad day %q", fields[1])
		}
		if !sel.Jump(n - 1) {
			return fmt.Errorf("%w: %d", models.ErrDayOutOfRange, n)
		}
	case "view":
		if len(fields) < 2 {
			return usagef("view takes a height and section extents")
		}
		height, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return usagef("bad height %q", fields[1])
		}
		sections := make([]daysync.Section, 0, len(fields)-2)
		for _, ext := range fields[2:] {
			top, bottom, ok := strings.Cut(ext, ",")
			if !ok {
				return usagef("bad extent %q", ext)
			}
			t, err1 := strconv.ParseFloat(top, 64)
			b, err2 := strconv.ParseFloat(bottom, 64)
			if err1 != nil || err2 != nil {
				return usagef("bad extent %q", ext)
			}
			sections = append(sections, daysync.Section{Top: t, Bottom: b})
		}
		if idx, ok := daysync.VisibleIndex(sections, height); ok {
			sel.Observe(idx)
		}
	case "wait":
		if len(fields) != 2 {
			return usagef("wait takes a duration")
		}
		d, err := time.ParseDuration(fields[1])
		if err != nil {
			return usagef("bad duration %q", fields[1])
		}
		time.Sleep(d)
	default:
		return usagef("unknown report %q", fields[0])
	}
	return nil
}

type weatherCmd struct {
	app *App
	day int
}

func (*weatherCmd) Name() string     { return "weather" }
func (*weatherCmd) Synopsis() string { return "show the current weather at a day's location" }
func (*weatherCmd) Usage() string {
	return `weather -day <n>
`
}

func (c *weatherCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.day, "day", 1, "Day number, starting at 1")
}

func (c *weatherCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := c.app.read(ctx)
	if err != nil {
		return c.app.fail(err)
	}
	day, err := doc.DayAt(c.day - 1)
	if err != nil {
		return c.app.fail(err)
	}
	place, ok := weather.Lookup(day.LocationKey)
	if !ok {
		fmt.Fprintf(c.app.Out, "No weather for %q\n", day.LocationKey)
		return subcommands.ExitSuccess
	}
	r, err := c.app.fetcher().Current(ctx, place.Location)
	if err != nil {
		log.WithError(err).WithField("location", day.LocationKey).Warn("Weather lookup failed")
		fmt.Fprintf(c.app.Out, "%s: weather unavailable\n", place.Name)
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(c.app.Out, "%s: %d°C (%s)\n", place.Name, r.Temperature, r.Icon())
	return subcommands.ExitSuccess
}

type exportCmd struct {
	app    *App
	format string
	out    string
	day    int
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the itinerary as Markdown or PDF" }
func (*exportCmd) Usage() string {
	return `export -format md|pdf [-out <file>] [-day <n>]

  Markdown goes to stdout unless -out is given. PDF always needs -out.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "md", "md or pdf")
	f.StringVar(&c.out, "out", "", "Output file")
	f.IntVar(&c.day, "day", 0, "Day number for Markdown, 0 for the whole trip")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := c.app.read(ctx)
	if err != nil {
		return c.app.fail(err)
	}

	var buf bytes.Buffer
	switch c.format {
	case "md":
		f, err := c.app.formatter()
		if err != nil {
			return c.app.fail(err)
		}
		md, err := export.Markdown(doc, c.day-1, f, nil)
		if err != nil {
			return c.app.fail(err)
		}
		buf.WriteString(md)
	case "pdf":
		if c.out == "" {
			return c.app.fail(usagef("-out is required for pdf"))
		}
		if err := export.PDF(&buf, doc); err != nil {
			return c.app.fail(err)
		}
	default:
		return c.app.fail(usagef("unknown format %q", c.format))
	}

	if c.out == "" {
		_, _ = buf.WriteTo(c.app.Out)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.out, buf.Bytes(), 0o644); err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintf(c.app.Out, "Wrote %s\n", c.out)
	return subcommands.ExitSuccess
}

type queryCmd struct {
	app *App
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression against the trip" }
func (*queryCmd) Usage() string {
	return `query <expression>

  Example: query '$.days[*].events[?(@.type=="food")].title'
`
}

func (*queryCmd) SetFlags(*flag.FlagSet) {}

func (c *queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return c.app.fail(usagef("query takes exactly one expression"))
	}
	doc, err := c.app.read(ctx)
	if err != nil {
		return c.app.fail(err)
	}
	v, err := export.Query(doc, f.Arg(0))
	if err != nil {
		return c.app.fail(err)
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintln(c.app.Out, string(out))
	return subcommands.ExitSuccess
}
