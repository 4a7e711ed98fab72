package itinerary

import (
	"fmt"
	"strings"

	"github.com/ukydev/trip-planner/internal/ident"
	"github.com/ukydev/trip-planner/internal/models"
)

// AddSubItem appends an unchecked checklist entry to the event. It reports
// false when the event does not exist.
func AddSubItem(day *models.Day, eventID string, typ models.SubItemType, text string) (models.SubItem, bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.SubItem{}, false, fmt.Errorf("%w: sub-item text is required", models.ErrInvalidEvent)
	}
	if !models.IsValidSubItemType(typ) {
		return models.SubItem{}, false, fmt.Errorf("%w: unknown sub-item type %q", models.ErrInvalidEvent, typ)
	}
	ev := FindEvent(day, eventID)
	if ev == nil {
		return models.SubItem{}, false, nil
	}
	item := models.SubItem{ID: ident.New(), Type: typ, Text: text}
	ev.SubItems = append(ev.SubItems, item)
	return item, true, nil
}

// ToggleSubItem flips the checked flag of a checklist entry.
func ToggleSubItem(day *models.Day, eventID, itemID string) bool {
	ev := FindEvent(day, eventID)
	if ev == nil {
		return false
	}
	for i := range ev.SubItems {
		if ev.SubItems[i].ID == itemID {
			ev.SubItems[i].Checked = !ev.SubItems[i].Checked
			return true
		}
	}
	return false
}

// DeleteSubItem removes a checklist entry from the event.
func DeleteSubItem(day *models.Day, eventID, itemID string) bool {
	ev := FindEvent(day, eventID)
	if ev == nil {
		return false
	}
	for i := range ev.SubItems {
		if ev.SubItems[i].ID == itemID {
			ev.SubItems = append(ev.SubItems[:i], ev.SubItems[i+1:]...)
			return true
		}
	}
	return false
}
