package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ukydev/trip-planner/internal/booking"
	"github.com/ukydev/trip-planner/internal/models"
)

type bookingFields struct {
	typ      string
	name     string
	status   string
	dateTime string
	ref      string
	notes    string
	url      string
}

func (b *bookingFields) register(f *flag.FlagSet) {
	f.StringVar(&b.typ, "type", "", "flight, hotel, restaurant or ticket (default ticket)")
	f.StringVar(&b.name, "name", "", "Name")
	f.StringVar(&b.status, "status", "", "booked, pending or to-book (default pending)")
	f.StringVar(&b.dateTime, "when", "", "Date and time, free text")
	f.StringVar(&b.ref, "ref", "", "Reference number")
	f.StringVar(&b.notes, "notes", "", "Notes")
	f.StringVar(&b.url, "url", "", "Booking link")
}

type bookingsCmd struct {
	app *App
}

func (*bookingsCmd) Name() string     { return "bookings" }
func (*bookingsCmd) Synopsis() string { return "list reservations" }
func (*bookingsCmd) Usage() string {
	return `bookings
`
}

func (*bookingsCmd) SetFlags(*flag.FlagSet) {}

func (c *bookingsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := c.app.read(ctx)
	if err != nil {
		return c.app.fail(err)
	}
	for _, r := range doc.Reservations {
		fmt.Fprintf(c.app.Out, "%s %s  %-32s %-8s %s", r.ID, booking.TypeIcon(r.Type), r.Name, booking.StatusLabel(r.Status), r.DateTime)
		if r.RefNumber != "" {
			fmt.Fprintf(c.app.Out, "  ref %s", r.RefNumber)
		}
		fmt.Fprintln(c.app.Out)
	}
	return subcommands.ExitSuccess
}

type addBookingCmd struct {
	app *App
	bookingFields
}

func (*addBookingCmd) Name() string     { return "add-booking" }
func (*addBookingCmd) Synopsis() string { return "add a reservation" }
func (*addBookingCmd) Usage() string {
	return `add-booking -name <name> [-type ...] [-status ...] [-when ...] [-ref ...] [-url ...]
`
}

func (c *addBookingCmd) SetFlags(f *flag.FlagSet) {
	c.bookingFields.register(f)
}

func (c *addBookingCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var added models.Reservation
	status := c.app.mutate(ctx, "add reservation", func(doc *models.TripDocument) error {
		var err error
		doc.Reservations, added, err = booking.Add(doc.Reservations, booking.Input{
			Type:      models.ReservationType(c.typ),
			Name:      c.name,
			Status:    models.ReservationStatus(c.status),
			DateTime:  c.dateTime,
			RefNumber: c.ref,
			Notes:     c.notes,
			URL:       c.url,
		})
		return err
	})
	if status == subcommands.ExitSuccess {
		fmt.Fprintf(c.app.Out, "Added reservation %s\n", added.ID)
	}
	return status
}

type editBookingCmd struct {
	app *App
	bookingFields
	id string
}

func (*editBookingCmd) Name() string     { return "edit-booking" }
func (*editBookingCmd) Synopsis() string { return "change fields of a reservation" }
func (*editBookingCmd) Usage() string {
	return `edit-booking -id <reservation> [-status booked] [-ref ...] ...

  Changes only the fields given on the command line.
`
}

func (c *editBookingCmd) SetFlags(f *flag.FlagSet) {
	c.bookingFields.register(f)
	f.StringVar(&c.id, "id", "", "Reservation id (required)")
}

func (c *editBookingCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return c.app.fail(usagef("-id is required"))
	}
	set := visited(f)
	var patch booking.Patch
	if set["type"] {
		t := models.ReservationType(c.typ)
		patch.Type = &t
	}
	if set["name"] {
		patch.Name = &c.name
	}
	if set["status"] {
		s := models.ReservationStatus(c.status)
		patch.Status = &s
	}
	if set["when"] {
		patch.DateTime = &c.dateTime
	}
	if set["ref"] {
		patch.RefNumber = &c.ref
	}
	if set["notes"] {
		patch.Notes = &c.notes
	}
	if set["url"] {
		patch.URL = &c.url
	}

	return c.app.mutate(ctx, "edit reservation", func(doc *models.TripDocument) error {
		_, found, err := booking.Update(doc.Reservations, c.id, patch)
		if err != nil {
			return err
		}
		if !found {
			return notFound("reservation", c.id)
		}
		return nil
	})
}

type rmBookingCmd struct {
	app *App
	id  string
}

func (*rmBookingCmd) Name() string     { return "rm-booking" }
func (*rmBookingCmd) Synopsis() string { return "remove a reservation" }
func (*rmBookingCmd) Usage() string {
	return `rm-booking -id <reservation>
`
}

func (c *rmBookingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Reservation id (required)")
}

func (c *rmBookingCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.app.mutate(ctx, "remove reservation", func(doc *models.TripDocument) error {
		var ok bool
		doc.Reservations, ok = booking.Delete(doc.Reservations, c.id)
		if !ok {
			return notFound("reservation", c.id)
		}
		return nil
	})
}

type bookingQRCmd struct {
	app  *App
	id   string
	out  string
	size int
}

func (*bookingQRCmd) Name() string     { return "booking-qr" }
func (*bookingQRCmd) Synopsis() string { return "write a QR code PNG of a reservation" }
func (*bookingQRCmd) Usage() string {
	return `booking-qr -id <reservation> -out <file.png> [-size 256]

  Encodes the booking link, or the reference number when there is no link.
`
}

func (c *bookingQRCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Reservation id (required)")
	f.StringVar(&c.out, "out", "", "Output file (required)")
	f.IntVar(&c.size, "size", 256, "Image size in pixels")
}

func (c *bookingQRCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.out == "" {
		return c.app.fail(usagef("-id and -out are required"))
	}
	doc, err := c.app.read(ctx)
	if err != nil {
		return c.app.fail(err)
	}
	r, ok := booking.Find(doc.Reservations, c.id)
	if !ok {
		return c.app.fail(notFound("reservation", c.id))
	}
	png, err := booking.QRCode(r, c.size)
	if err != nil {
		return c.app.fail(err)
	}
	if err := os.WriteFile(c.out, png, 0o644); err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintf(c.app.Out, "Wrote %s (%s)\n", c.out, booking.QRContent(r))
	return subcommands.ExitSuccess
}
