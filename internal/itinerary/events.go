// Package itinerary implements the structural operations on the days of a
// trip: timeline events, transit links between them, meal shortlists and the
// per-event checklists.
package itinerary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ukydev/trip-planner/internal/ident"
	"github.com/ukydev/trip-planner/internal/models"
)

// EventInput carries the user-supplied fields of a new event.
type EventInput struct {
	Time  string
	Type  models.EventType
	Title string
	Loc   string
	Image string
	Tags  []string
	Desc  string
	Note  string
}

// EventPatch lists the fields to change on an existing event. Nil fields are
// left untouched.
type EventPatch struct {
	Time  *string
	Type  *models.EventType
	Title *string
	Loc   *string
	Image *string
	Tags  *[]string
	Desc  *string
	Note  *string
}

// ValidTime reports whether s is a 24h "HH:MM" clock time.
func ValidTime(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	return hour < 24 && minute < 60
}

func validateEvent(time string, typ models.EventType, title string) error {
	if !ValidTime(time) {
		return fmt.Errorf("%w: time %q is not HH:MM", models.ErrInvalidEvent, time)
	}
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", models.ErrInvalidEvent)
	}
	if !models.IsValidEventType(typ) {
		return fmt.Errorf("%w: unknown type %q", models.ErrInvalidEvent, typ)
	}
	return nil
}

// InsertEvent appends a new event to day and re-sorts the timeline by time.
// The sort is stable, so an event joins the end of any group sharing its time.
func InsertEvent(day *models.Day, in EventInput) (models.Event, error) {
	if err := validateEvent(in.Time, in.Type, in.Title); err != nil {
		return models.Event{}, err
	}
	ev := models.Event{
		ID:       ident.New(),
		Time:     in.Time,
		Type:     in.Type,
		Title:    strings.TrimSpace(in.Title),
		Loc:      in.Loc,
		Image:    in.Image,
		Tags:     in.Tags,
		Desc:     in.Desc,
		Note:     in.Note,
		SubItems: []models.SubItem{},
	}
	day.Events = append(day.Events, ev)
	sort.SliceStable(day.Events, func(i, j int) bool {
		return day.Events[i].Time < day.Events[j].Time
	})
	return ev, nil
}

// UpdateEvent merges patch onto the event with the given id. The event keeps
// its position even when its time changes. An unknown id is a no-op and
// reports false.
func UpdateEvent(day *models.Day, id string, patch EventPatch) (models.Event, bool, error) {
	idx := indexOf(day, id)
	if idx < 0 {
		return models.Event{}, false, nil
	}
	ev := day.Events[idx]
	if patch.Time != nil {
		ev.Time = *patch.Time
	}
	if patch.Type != nil {
		ev.Type = *patch.Type
	}
	if patch.Title != nil {
		ev.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Loc != nil {
		ev.Loc = *patch.Loc
	}
	if patch.Image != nil {
		ev.Image = *patch.Image
	}
	if patch.Tags != nil {
		ev.Tags = *patch.Tags
	}
	if patch.Desc != nil {
		ev.Desc = *patch.Desc
	}
	if patch.Note != nil {
		ev.Note = *patch.Note
	}
	if err := validateEvent(ev.Time, ev.Type, ev.Title); err != nil {
		return models.Event{}, true, err
	}
	day.Events[idx] = ev
	return ev, true, nil
}

// DeleteEvent removes the event with the given id. Transit links held by the
// other events are not touched.
func DeleteEvent(day *models.Day, id string) bool {
	idx := indexOf(day, id)
	if idx < 0 {
		return false
	}
	day.Events = append(day.Events[:idx], day.Events[idx+1:]...)
	return true
}

// SetTransitToNext sets the travel detail from the event to its successor, or
// clears it when detail is nil.
func SetTransitToNext(day *models.Day, id string, detail *models.TransportDetail) (bool, error) {
	if detail != nil && !models.IsValidTransportMode(detail.Mode) {
		return false, fmt.Errorf("%w: unknown mode %q", models.ErrInvalidTransport, detail.Mode)
	}
	ev := FindEvent(day, id)
	if ev == nil {
		return false, nil
	}
	if detail == nil {
		ev.TransitToNext = nil
		return true, nil
	}
	d := *detail
	ev.TransitToNext = &d
	return true, nil
}

// FindEvent returns a pointer into day.Events, or nil.
func FindEvent(day *models.Day, id string) *models.Event {
	idx := indexOf(day, id)
	if idx < 0 {
		return nil
	}
	return &day.Events[idx]
}

// IsSorted reports whether the events of day are in non-decreasing time order.
func IsSorted(day *models.Day) bool {
	return sort.SliceIsSorted(day.Events, func(i, j int) bool {
		return day.Events[i].Time < day.Events[j].Time
	})
}

func indexOf(day *models.Day, id string) int {
	for i := range day.Events {
		if day.Events[i].ID == id {
			return i
		}
	}
	return -1
}
