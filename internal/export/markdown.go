// Package export renders the trip for reading outside the planner: Markdown
// for the terminal, a printable PDF and JSONPath queries for scripting.
package export

import (
	"fmt"
	"strings"

	"github.com/ukydev/trip-planner/internal/booking"
	"github.com/ukydev/trip-planner/internal/itinerary"
	"github.com/ukydev/trip-planner/internal/ledger"
	"github.com/ukydev/trip-planner/internal/models"
	"github.com/ukydev/trip-planner/internal/packing"
	"github.com/ukydev/trip-planner/internal/weather"
)

// AllDays selects the whole trip in Markdown.
const AllDays = -1

var mealOrder = []struct {
	meal  models.MealType
	label string
}{
	{models.MealBreakfast, "Breakfast"},
	{models.MealLunch, "Lunch"},
	{models.MealDinner, "Dinner"},
}

// Markdown renders one day, or with AllDays the whole trip followed by the
// bookings, packing progress and the expense summary. Live readings are
// taken from board when it is not nil.
func Markdown(doc *models.TripDocument, dayIdx int, f *ledger.Formatter, board *weather.Board) (string, error) {
	var b strings.Builder
	if dayIdx != AllDays {
		day, err := doc.DayAt(dayIdx)
		if err != nil {
			return "", err
		}
		writeDay(&b, dayIdx, day, f, doc.CurrencyRate, board)
		return b.String(), nil
	}

	b.WriteString("# Trip itinerary\n\n")
	for i := range doc.Days {
		writeDay(&b, i, &doc.Days[i], f, doc.CurrencyRate, board)
	}
	writeReservations(&b, doc.Reservations)
	writePacking(&b, doc.PackingList)
	if err := writeExpenses(&b, doc, f); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeDay(b *strings.Builder, idx int, day *models.Day, f *ledger.Formatter, rate float64, board *weather.Board) {
	fmt.Fprintf(b, "## Day %d · %s (%s) · %s\n\n", idx+1, day.Date, day.Weekday, day.Title)

	place, ok := weather.Lookup(day.LocationKey)
	if ok {
		fmt.Fprintf(b, "*%s* · %s", place.Name, day.Weather)
	} else {
		fmt.Fprintf(b, "%s", day.Weather)
	}
	if board != nil {
		if r, ok := board.Get(day.LocationKey); ok {
			fmt.Fprintf(b, " · now %d°C (%s)", r.Temperature, r.Icon())
		}
	}
	b.WriteString("\n\n")

	if day.MealOptions != nil {
		var lines []string
		for _, m := range mealOrder {
			for _, opt := range *day.MealOptions.Bucket(m.meal) {
				lines = append(lines, fmt.Sprintf("- **%s**: %s, %s (%s)", m.label, opt.Name, opt.Dish, opt.PriceLevel))
			}
		}
		if len(lines) > 0 {
			b.WriteString("### Meals\n\n")
			b.WriteString(strings.Join(lines, "\n"))
			b.WriteString("\n\n")
		}
	}

	if len(day.Events) == 0 {
		b.WriteString("_Nothing planned._\n\n")
		return
	}
	b.WriteString("### Timeline\n\n")
	conns := itinerary.Connectors(day)
	for i, ev := range day.Events {
		fmt.Fprintf(b, "- **%s** %s: %s", ev.Time, ev.Type, ev.Title)
		if ev.Loc != "" {
			fmt.Fprintf(b, " @ %s", ev.Loc)
		}
		b.WriteString("\n")
		if len(ev.Tags) > 0 {
			fmt.Fprintf(b, "  - tags: %s\n", strings.Join(ev.Tags, ", "))
		}
		if ev.Desc != "" {
			fmt.Fprintf(b, "  - %s\n", ev.Desc)
		}
		if ev.Note != "" {
			fmt.Fprintf(b, "  - note: %s\n", ev.Note)
		}
		for _, item := range ev.SubItems {
			box := "[ ]"
			if item.Checked {
				box = "[x]"
			}
			fmt.Fprintf(b, "  - %s %s: %s\n", box, item.Type, item.Text)
		}
		if i < len(conns) && conns[i].Transit != nil {
			fmt.Fprintf(b, "  - ↓ %s\n", transitText(conns[i].Transit))
		}
	}
	b.WriteString("\n")
}

func transitText(t *models.TransportDetail) string {
	s := string(t.Mode)
	if t.Duration != "" {
		s += " " + t.Duration
	}
	if t.Note != "" {
		s += " (" + t.Note + ")"
	}
	return s
}

func writeReservations(b *strings.Builder, list []models.Reservation) {
	if len(list) == 0 {
		return
	}
	b.WriteString("## Reservations\n\n")
	for _, r := range list {
		fmt.Fprintf(b, "- %s **%s** · %s · %s", booking.TypeIcon(r.Type), r.Name, booking.StatusLabel(r.Status), r.DateTime)
		if r.RefNumber != "" {
			fmt.Fprintf(b, " · ref `%s`", r.RefNumber)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writePacking(b *strings.Builder, items []models.PackingItem) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## Packing (%d%%)\n\n", packing.Progress(items))
	for _, g := range packing.GroupByCategory(items) {
		fmt.Fprintf(b, "**%s**\n\n", g.Category)
		for _, item := range g.Items {
			box := "[ ]"
			if item.Checked {
				box = "[x]"
			}
			fmt.Fprintf(b, "- %s %s\n", box, item.Text)
		}
		b.WriteString("\n")
	}
}

func writeExpenses(b *strings.Builder, doc *models.TripDocument, f *ledger.Formatter) error {
	balances, err := ledger.ComputeBalances(doc.Members, doc.Expenses)
	if err != nil {
		return err
	}
	total := float64(ledger.TotalSpent(doc.Expenses))
	fmt.Fprintf(b, "## Expenses\n\nTotal %s (≈ %s)\n\n",
		f.Format(total, ledger.Primary, doc.CurrencyRate),
		f.Format(total, ledger.Secondary, doc.CurrencyRate))

	b.WriteString("| Member | Balance |\n|---|---|\n")
	for _, bal := range ledger.OrderedBalances(doc.Members, doc.Expenses, balances) {
		fmt.Fprintf(b, "| %s | %s |\n", bal.Member, f.Format(bal.Amount, ledger.Primary, doc.CurrencyRate))
	}
	b.WriteString("\n")
	return nil
}
