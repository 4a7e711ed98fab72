// Package packing manages the packing checklist of a trip.
package packing

import (
	"fmt"
	"math"
	"strings"

	"github.com/ukydev/trip-planner/internal/ident"
	"github.com/ukydev/trip-planner/internal/models"
)

// CustomCategory is used for items added without a category.
const CustomCategory = "Custom"

// Group is one category of the checklist.
type Group struct {
	Category string               `json:"category"`
	Items    []models.PackingItem `json:"items"`
}

// Toggle flips the checked flag of the item with the given id.
func Toggle(items []models.PackingItem, id string) bool {
	for i := range items {
		if items[i].ID == id {
			items[i].Checked = !items[i].Checked
			return true
		}
	}
	return false
}

// Add appends an unchecked item. An empty category files it under
// CustomCategory.
func Add(items []models.PackingItem, text, category string) ([]models.PackingItem, models.PackingItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return items, models.PackingItem{}, fmt.Errorf("%w: text is required", models.ErrInvalidPackingItem)
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = CustomCategory
	}
	item := models.PackingItem{ID: ident.New(), Category: category, Text: text}
	return append(items, item), item, nil
}

// Delete removes the item with the given id.
func Delete(items []models.PackingItem, id string) ([]models.PackingItem, bool) {
	for i := range items {
		if items[i].ID == id {
			return append(items[:i], items[i+1:]...), true
		}
	}
	return items, false
}

// GroupByCategory splits items by category. Groups come in the order their
// category first appears and items keep their relative order.
func GroupByCategory(items []models.PackingItem) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, Group{Category: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// Progress is the share of checked items as a whole percentage, 0 for an
// empty list.
func Progress(items []models.PackingItem) int {
	if len(items) == 0 {
		return 0
	}
	checked := 0
	for _, item := range items {
		if item.Checked {
			checked++
		}
	}
	return int(math.Floor(float64(checked)*100/float64(len(items)) + 0.5))
}
