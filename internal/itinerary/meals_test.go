package itinerary

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/trip-planner/internal/models"
)

func TestUpsertMealOption(t *testing.T) {
	day := &models.Day{}

	added, err := UpsertMealOption(day, models.MealLunch, models.RestaurantOption{Name: "Ichiran", Dish: "Ramen"}, true)
	require.NoError(t, err)
	require.NotNil(t, day.MealOptions)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, []models.RestaurantOption{added}, day.MealOptions.Lunch)
	assert.Empty(t, day.MealOptions.Dinner)

	added.Dish = "Tonkotsu ramen"
	replaced, err := UpsertMealOption(day, models.MealLunch, added, false)
	require.NoError(t, err)
	assert.Equal(t, added, replaced)
	assert.Equal(t, "Tonkotsu ramen", day.MealOptions.Lunch[0].Dish)

	// no match in the replace case is a no-op
	ghost := models.RestaurantOption{ID: "missing", Name: "Ghost"}
	got, err := UpsertMealOption(day, models.MealLunch, ghost, false)
	require.NoError(t, err)
	assert.Empty(t, got.ID)
	assert.Len(t, day.MealOptions.Lunch, 1)
}

func TestUpsertMealOption_Validation(t *testing.T) {
	day := &models.Day{}
	_, err := UpsertMealOption(day, "brunch", models.RestaurantOption{Name: "N"}, true)
	assert.True(t, errors.Is(err, models.ErrInvalidMealOption))

	_, err = UpsertMealOption(day, models.MealDinner, models.RestaurantOption{Name: " "}, true)
	assert.True(t, errors.Is(err, models.ErrInvalidMealOption))
	assert.Nil(t, day.MealOptions)
}

func TestDeleteMealOption(t *testing.T) {
	day := &models.Day{}
	assert.False(t, DeleteMealOption(day, models.MealDinner, "x"))

	a, err := UpsertMealOption(day, models.MealDinner, models.RestaurantOption{Name: "A"}, true)
	require.NoError(t, err)
	b, err := UpsertMealOption(day, models.MealDinner, models.RestaurantOption{Name: "B"}, true)
	require.NoError(t, err)

	assert.False(t, DeleteMealOption(day, models.MealBreakfast, a.ID))
	assert.True(t, DeleteMealOption(day, models.MealDinner, a.ID))
	assert.Equal(t, []models.RestaurantOption{b}, day.MealOptions.Dinner)
	assert.False(t, DeleteMealOption(day, "brunch", b.ID))
}

func TestSubItems(t *testing.T) {
	day := &models.Day{}
	ev := mustInsert(t, day, "10:00", "Nakamise")

	item, ok, err := AddSubItem(day, ev.ID, models.SubItemBuy, " Ningyo-yaki ")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Ningyo-yaki", item.Text)
	assert.False(t, item.Checked)

	assert.True(t, ToggleSubItem(day, ev.ID, item.ID))
	assert.True(t, day.Events[0].SubItems[0].Checked)
	assert.True(t, ToggleSubItem(day, ev.ID, item.ID))
	assert.False(t, day.Events[0].SubItems[0].Checked)
	assert.False(t, ToggleSubItem(day, ev.ID, "missing"))

	_, ok, err = AddSubItem(day, "missing", models.SubItemDo, "x")
	assert.NoError(t, err)
	assert.False(t, ok)

	_, _, err = AddSubItem(day, ev.ID, "steal", "x")
	assert.True(t, errors.Is(err, models.ErrInvalidEvent))

	assert.True(t, DeleteSubItem(day, ev.ID, item.ID))
	assert.False(t, DeleteSubItem(day, ev.ID, item.ID))
	assert.Empty(t, day.Events[0].SubItems)
}
