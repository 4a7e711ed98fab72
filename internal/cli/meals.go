package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/ukydev/trip-planner/internal/itinerary"
	"github.com/ukydev/trip-planner/internal/models"
)

type mealFields struct {
	meal        string
	name        string
	dish        string
	price       string
	rating      string
	note        string
	url         string
	locationURL string
}

func (m *mealFields) register(f *flag.FlagSet) {
	f.StringVar(&m.meal, "meal", string(models.MealLunch), "Meal: breakfast, lunch or dinner")
	f.StringVar(&m.name, "name", "", "Restaurant name")
	f.StringVar(&m.dish, "dish", "", "Dish to try")
	f.StringVar(&m.price, "price", "", "Price level, free text")
	f.StringVar(&m.rating, "rating", "", "Rating, free text")
	f.StringVar(&m.note, "note", "", "Note")
	f.StringVar(&m.url, "url", "", "Restaurant link")
	f.StringVar(&m.locationURL, "location-url", "", "Map link")
}

func (m *mealFields) option(id string) models.RestaurantOption {
	return models.RestaurantOption{
		ID:          id,
		Name:        m.name,
		Dish:        m.dish,
		PriceLevel:  m.price,
		Rating:      m.rating,
		Note:        m.note,
		URL:         m.url,
		LocationURL: m.locationURL,
	}
}

type addMealCmd struct {
	app *App
	dayFlag
	mealFields
}

func (*addMealCmd) Name() string     { return "add-meal" }
func (*addMealCmd) Synopsis() string { return "add a restaurant to a day's meal shortlist" }
func (*addMealCmd) Usage() string {
	return `add-meal -day <n> -meal <breakfast|lunch|dinner> -name <name> [-dish ...] [-price ...]
`
}

func (c *addMealCmd) SetFlags(f *flag.FlagSet) {
	c.dayFlag.register(f)
	c.mealFields.register(f)
}

func (c *addMealCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var added models.RestaurantOption
	status := c.app.mutate(ctx, "add meal option", func(doc *models.TripDocument) error {
		day, err := c.lookup(doc)
		if err != nil {
			return err
		}
		added, err = itinerary.UpsertMealOption(day, models.MealType(c.meal), c.option(""), true)
		return err
	})
	if status == subcommands.ExitSuccess {
		fmt.Fprintf(c.app.Out, "Added %s option %s\n", c.meal, added.ID)
	}
	return status
}

type editMealCmd struct {
	app *App
	dayFlag
	mealFields
	id string
}

func (*editMealCmd) Name() string     { return "edit-meal" }
func (*editMealCmd) Synopsis() string { return "replace a restaurant of a day's meal shortlist" }
func (*editMealCmd) Usage() string {
	return `edit-meal -day <n> -meal <meal> -id <option> -name <name> [-dish ...] [-price ...]

  Replaces the whole option; fields not given are cleared.
`
}

func (c *editMealCmd) SetFlags(f *flag.FlagSet) {
	c.dayFlag.register(f)
	c.mealFields.register(f)
	f.StringVar(&c.id, "id", "", "Option id (required)")
}

func (c *editMealCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return c.app.fail(usagef("-id is required"))
	}
	return c.app.mutate(ctx, "edit meal option", func(doc *models.TripDocument) error {
		day, err := c.lookup(doc)
		if err != nil {
			return err
		}
		got, err := itinerary.UpsertMealOption(day, models.MealType(c.meal), c.option(c.id), false)
		if err != nil {
			return err
		}
		if got.ID == "" {
			return notFound("meal option", c.id)
		}
		return nil
	})
}

type rmMealCmd struct {
	app *App
	dayFlag
	meal string
	id   string
}

func (*rmMealCmd) Name() string     { return "rm-meal" }
func (*rmMealCmd) Synopsis() string { return "remove a restaurant from a day's meal shortlist" }
func (*rmMealCmd) Usage() string {
	return `rm-meal -day <n> -meal <meal> -id <option>
`
}

func (c *rmMealCmd) SetFlags(f *flag.FlagSet) {
	c.dayFlag.register(f)
	f.StringVar(&c.meal, "meal", string(models.MealLunch), "Meal: breakfast, lunch or dinner")
	f.StringVar(&c.id, "id", "", "Option id (required)")
}

func (c *rmMealCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.app.mutate(ctx, "remove meal option", func(doc *models.TripDocument) error {
		day, err := c.lookup(doc)
		if err != nil {
			return err
		}
		if !itinerary.DeleteMealOption(day, models.MealType(c.meal), c.id) {
			return notFound("meal option", c.id)
		}
		return nil
	})
}
