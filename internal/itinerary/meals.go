package itinerary

import (
	"fmt"
	"strings"

	"github.com/ukydev/trip-planner/internal/ident"
	"github.com/ukydev/trip-planner/internal/models"
)

// UpsertMealOption adds option to the meal bucket when isNew is set, giving
// it a fresh id. Otherwise it replaces the option sharing option.ID; a
// missing id is a no-op and the zero option is returned.
func UpsertMealOption(day *models.Day, meal models.MealType, option models.RestaurantOption, isNew bool) (models.RestaurantOption, error) {
	if !models.IsValidMealType(meal) {
		return models.RestaurantOption{}, fmt.Errorf("%w: unknown meal %q", models.ErrInvalidMealOption, meal)
	}
	if strings.TrimSpace(option.Name) == "" {
		return models.RestaurantOption{}, fmt.Errorf("%w: name is required", models.ErrInvalidMealOption)
	}
	if day.MealOptions == nil {
		day.MealOptions = models.NewMealPlan()
	}
	bucket := day.MealOptions.Bucket(meal)

	if isNew {
		option.ID = ident.New()
		*bucket = append(*bucket, option)
		return option, nil
	}
	for i := range *bucket {
		if (*bucket)[i].ID == option.ID {
			(*bucket)[i] = option
			return option, nil
		}
	}
	return models.RestaurantOption{}, nil
}

// DeleteMealOption removes the option with the given id from the meal bucket.
func DeleteMealOption(day *models.Day, meal models.MealType, id string) bool {
	if day.MealOptions == nil {
		return false
	}
	bucket := day.MealOptions.Bucket(meal)
	if bucket == nil {
		return false
	}
	for i := range *bucket {
		if (*bucket)[i].ID == id {
			*bucket = append((*bucket)[:i], (*bucket)[i+1:]...)
			return true
		}
	}
	return false
}
