package itinerary

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/trip-planner/internal/models"
)

func titles(day *models.Day) []string {
	out := make([]string, 0, len(day.Events))
	for _, ev := range day.Events {
		out = append(out, ev.Title)
	}
	return out
}

func mustInsert(t *testing.T, day *models.Day, time, title string) models.Event {
	t.Helper()
	ev, err := InsertEvent(day, EventInput{Time: time, Type: models.EventSight, Title: title})
	require.NoError(t, err)
	return ev
}

func TestValidTime(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"00:00", true},
		{"09:30", true},
		{"23:59", true},
		{"24:00", false},
		{"12:60", false},
		{"9:30", false},
		{"09-30", false},
		{"ab:cd", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidTime(tt.in))
		})
	}
}

func TestInsertEvent_KeepsTimeOrder(t *testing.T) {
	day := &models.Day{}
	for _, tm := range []string{"14:00", "09:00", "18:30", "09:00", "00:15", "23:59", "12:00"} {
		mustInsert(t, day, tm, "at "+tm)
		assert.True(t, IsSorted(day), "events out of order after inserting %s", tm)
	}
	assert.Len(t, day.Events, 7)
}

func TestInsertEvent_StableTies(t *testing.T) {
	day := &models.Day{}
	mustInsert(t, day, "09:00", "X")
	mustInsert(t, day, "09:00", "Y")
	mustInsert(t, day, "08:00", "early")
	mustInsert(t, day, "09:00", "Z")

	assert.Equal(t, []string{"early", "X", "Y", "Z"}, titles(day))
}

func TestInsertEvent_AssignsFields(t *testing.T) {
	day := &models.Day{}
	ev, err := InsertEvent(day, EventInput{
		Time:  "10:00",
		Type:  models.EventFood,
		Title: "  Tsukiji  ",
		Loc:   "Chuo",
		Tags:  []string{"Market"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, "Tsukiji", ev.Title)
	assert.Equal(t, []models.SubItem{}, ev.SubItems)
	assert.Nil(t, ev.TransitToNext)
	assert.Equal(t, ev, day.Events[0])

	other := mustInsert(t, day, "11:00", "Ginza")
	assert.NotEqual(t, ev.ID, other.ID)
}

func TestInsertEvent_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   EventInput
	}{
		{"bad time", EventInput{Time: "25:00", Type: models.EventSight, Title: "T"}},
		{"empty title", EventInput{Time: "10:00", Type: models.EventSight, Title: "   "}},
		{"bad type", EventInput{Time: "10:00", Type: "party", Title: "T"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := &models.Day{}
			_, err := InsertEvent(day, tt.in)
			assert.True(t, errors.Is(err, models.ErrInvalidEvent))
			assert.Empty(t, day.Events)
		})
	}
}

func TestUpdateEvent_MergesWithoutResort(t *testing.T) {
	day := &models.Day{}
	a := mustInsert(t, day, "09:00", "A")
	mustInsert(t, day, "12:00", "B")

	late := "15:00"
	note := "bring umbrella"
	got, found, err := UpdateEvent(day, a.ID, EventPatch{Time: &late, Note: &note})
	require.NoError(t, err)
	assert.True(t, found)

	assert.Equal(t, "15:00", got.Time)
	assert.Equal(t, "bring umbrella", got.Note)
	assert.Equal(t, "A", got.Title)
	assert.Equal(t, a.ID, got.ID)
	// the edited event stays where it was
	assert.Equal(t, []string{"A", "B"}, titles(day))
	assert.False(t, IsSorted(day))
}

func TestUpdateEvent_InvalidPatchLeavesEvent(t *testing.T) {
	day := &models.Day{}
	a := mustInsert(t, day, "09:00", "A")

	bad := "9am"
	_, found, err := UpdateEvent(day, a.ID, EventPatch{Time: &bad})
	assert.True(t, found)
	assert.True(t, errors.Is(err, models.ErrInvalidEvent))
	assert.Equal(t, "09:00", day.Events[0].Time)
}

func TestDeleteThenLookupIsNoop(t *testing.T) {
	day := &models.Day{}
	a := mustInsert(t, day, "09:00", "A")
	mustInsert(t, day, "10:00", "B")

	assert.True(t, DeleteEvent(day, a.ID))
	assert.False(t, DeleteEvent(day, a.ID))

	title := "again"
	_, found, err := UpdateEvent(day, a.ID, EventPatch{Title: &title})
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, []string{"B"}, titles(day))
}

func TestDeleteEvent_LeavesNeighbourTransit(t *testing.T) {
	day := &models.Day{}
	a := mustInsert(t, day, "09:00", "A")
	b := mustInsert(t, day, "10:00", "B")
	mustInsert(t, day, "11:00", "C")

	ok, err := SetTransitToNext(day, a.ID, &models.TransportDetail{Mode: models.ModeWalk, Duration: "10m"})
	require.NoError(t, err)
	require.True(t, ok)

	require.True(t, DeleteEvent(day, b.ID))
	require.NotNil(t, day.Events[0].TransitToNext)
	assert.Equal(t, "10m", day.Events[0].TransitToNext.Duration)
}

func TestSetTransitToNext(t *testing.T) {
	day := &models.Day{}
	a := mustInsert(t, day, "09:00", "A")

	detail := &models.TransportDetail{Mode: models.ModeTrain, Duration: "25m"}
	ok, err := SetTransitToNext(day, a.ID, detail)
	require.NoError(t, err)
	assert.True(t, ok)

	// the stored detail is a copy
	detail.Duration = "changed"
	assert.Equal(t, "25m", day.Events[0].TransitToNext.Duration)

	ok, err = SetTransitToNext(day, a.ID, nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Nil(t, day.Events[0].TransitToNext)

	// clearing twice is harmless
	ok, err = SetTransitToNext(day, a.ID, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = SetTransitToNext(day, "missing", detail)
	assert.NoError(t, err)
	assert.False(t, ok)

	_, err = SetTransitToNext(day, a.ID, &models.TransportDetail{Mode: "rocket"})
	assert.True(t, errors.Is(err, models.ErrInvalidTransport))
}

func TestConnectors(t *testing.T) {
	day := &models.Day{}
	a := mustInsert(t, day, "09:00", "A")
	mustInsert(t, day, "10:00", "B")
	c := mustInsert(t, day, "11:00", "C")

	_, err := SetTransitToNext(day, a.ID, &models.TransportDetail{Mode: models.ModeBus, Duration: "5m"})
	require.NoError(t, err)
	_, err = SetTransitToNext(day, c.ID, &models.TransportDetail{Mode: models.ModeTaxi, Duration: "1h"})
	require.NoError(t, err)

	conns := Connectors(day)
	require.Len(t, conns, 2)
	assert.Equal(t, "A", conns[0].From.Title)
	assert.Equal(t, "B", conns[0].To.Title)
	require.NotNil(t, conns[0].Transit)
	assert.Equal(t, models.ModeBus, conns[0].Transit.Mode)
	assert.Nil(t, conns[1].Transit)

	assert.Nil(t, Connectors(&models.Day{Events: day.Events[:1]}))
}
