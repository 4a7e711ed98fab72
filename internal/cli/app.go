// Package cli implements the tripplan commands. Each command opens the trip
// store, applies one change or renders one view, and exits.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/trip-planner/internal/config"
	"github.com/ukydev/trip-planner/internal/db"
	"github.com/ukydev/trip-planner/internal/ledger"
	"github.com/ukydev/trip-planner/internal/models"
	"github.com/ukydev/trip-planner/internal/notify"
	"github.com/ukydev/trip-planner/internal/store"
	"github.com/ukydev/trip-planner/internal/weather"
)

// App carries the configuration and output streams shared by all commands.
type App struct {
	Config config.Config
	In     io.Reader
	Out    io.Writer
	Err    io.Writer

	// Fetcher overrides the weather client, for tests.
	Fetcher weather.Fetcher
}

// NewApp returns an App writing to the standard streams.
func NewApp(cfg config.Config) *App {
	return &App{Config: cfg, In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// SetupLogging configures logrus from cfg.
func SetupLogging(cfg config.Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	log.SetOutput(os.Stderr)
}

// Register adds every command to c, grouped for the help output.
func Register(c *subcommands.Commander, app *App) {
	c.Register(&showCmd{app: app}, "itinerary")
	c.Register(&addEventCmd{app: app}, "itinerary")
	c.Register(&editEventCmd{app: app}, "itinerary")
	c.Register(&rmEventCmd{app: app}, "itinerary")
	c.Register(&setTransitCmd{app: app}, "itinerary")
	c.Register(&addSubCmd{app: app}, "itinerary")
	c.Register(&toggleSubCmd{app: app}, "itinerary")
	c.Register(&rmSubCmd{app: app}, "itinerary")
	c.Register(&spyCmd{app: app}, "itinerary")

	c.Register(&addMealCmd{app: app}, "meals")
	c.Register(&editMealCmd{app: app}, "meals")
	c.Register(&rmMealCmd{app: app}, "meals")

	c.Register(&addExpenseCmd{app: app}, "expenses")
	c.Register(&rmExpenseCmd{app: app}, "expenses")
	c.Register(&balancesCmd{app: app}, "expenses")

	c.Register(&packCmd{app: app}, "packing")
	c.Register(&addItemCmd{app: app}, "packing")
	c.Register(&toggleItemCmd{app: app}, "packing")
	c.Register(&rmItemCmd{app: app}, "packing")

	c.Register(&bookingsCmd{app: app}, "bookings")
	c.Register(&addBookingCmd{app: app}, "bookings")
	c.Register(&editBookingCmd{app: app}, "bookings")
	c.Register(&rmBookingCmd{app: app}, "bookings")
	c.Register(&bookingQRCmd{app: app}, "bookings")

	c.Register(&weatherCmd{app: app}, "views")
	c.Register(&exportCmd{app: app}, "views")
	c.Register(&queryCmd{app: app}, "views")
}

// Open connects the configured slot and loads the store. The returned
// function releases every connection.
func (a *App) Open(ctx context.Context) (*store.Store, func(), error) {
	slot, closeSlot, err := db.OpenSlot(ctx, a.Config.Storage)
	if err != nil {
		return nil, func() {}, fmt.Errorf("open %s storage: %w", a.Config.Storage.Backend, err)
	}
	s := store.Open(ctx, slot)

	n, err := notify.New(ctx, a.Config.Notify)
	if err != nil {
		// notifications are optional, the planner works without them
		log.WithError(err).WithField("backend", a.Config.Notify.Backend).Warn("Change notifications disabled")
	}
	if n != nil {
		s.Subscribe(n)
	}
	return s, func() {
		if n != nil {
			n.Close()
		}
		closeSlot()
	}, nil
}

// formatter builds the currency formatter from the configured codes.
func (a *App) formatter() (*ledger.Formatter, error) {
	return ledger.NewFormatter(a.Config.Currency.Primary, a.Config.Currency.Secondary)
}

func (a *App) fetcher() weather.Fetcher {
	if a.Fetcher != nil {
		return a.Fetcher
	}
	return weather.NewClient(a.Config.Weather)
}

// mutate opens the store, applies fn and closes it again. When fn reports a
// missing entity nothing is saved and the command still succeeds.
func (a *App) mutate(ctx context.Context, reason string, fn func(doc *models.TripDocument) error) subcommands.ExitStatus {
	s, closeFn, err := a.Open(ctx)
	if err != nil {
		return a.fail(err)
	}
	defer closeFn()
	err = s.Update(ctx, reason, fn)
	if errors.Is(err, errNotFound) {
		// a missing entity is a no-op, not a failure
		fmt.Fprintf(a.Out, "Nothing changed: %v\n", err)
		return subcommands.ExitSuccess
	}
	if err != nil {
		return a.fail(err)
	}
	return subcommands.ExitSuccess
}

// read opens the store and returns a copy of the document.
func (a *App) read(ctx context.Context) (*models.TripDocument, error) {
	s, closeFn, err := a.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer closeFn()
	return s.Document(), nil
}

// fail prints err and maps it to an exit status.
func (a *App) fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(a.Err, "Error: %v\n", err)
	switch {
	case errors.Is(err, errUsage),
		errors.Is(err, models.ErrDayOutOfRange),
		errors.Is(err, models.ErrInvalidEvent),
		errors.Is(err, models.ErrInvalidTransport),
		errors.Is(err, models.ErrInvalidMealOption),
		errors.Is(err, models.ErrInvalidExpense),
		errors.Is(err, models.ErrInvalidReservation),
		errors.Is(err, models.ErrInvalidPackingItem):
		return subcommands.ExitUsageError
	default:
		return subcommands.ExitFailure
	}
}

var (
	errUsage    = errors.New("usage")
	errNotFound = errors.New("not found")
)

func usagef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

func notFound(what, id string) error {
	return fmt.Errorf("%w: %s %q", errNotFound, what, id)
}

// visited returns the names of the flags that were set on the command line.
func visited(f *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return set
}

// splitList parses a comma separated flag value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// dayFlag is shared by every command working on one day. Days are numbered
// from 1 on the command line.
type dayFlag struct {
	day int
}

func (d *dayFlag) register(f *flag.FlagSet) {
	f.IntVar(&d.day, "day", 1, "Day number, starting at 1")
}

func (d *dayFlag) lookup(doc *models.TripDocument) (*models.Day, error) {
	return doc.DayAt(d.day - 1)
}
