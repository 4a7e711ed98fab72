package store

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/trip-planner/internal/db"
	"github.com/ukydev/trip-planner/internal/models"
)

// MockSlot is a mock implementation of db.Slot
type MockSlot struct {
	mock.Mock
}

func (m *MockSlot) Read(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockSlot) Write(ctx context.Context, payload []byte) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func TestDefault(t *testing.T) {
	doc := Default()
	assert.Equal(t, 0.215, doc.CurrencyRate)
	assert.Len(t, doc.Members, 3)
	assert.Len(t, doc.Days, 7)
	assert.NotEmpty(t, doc.PackingList)
	assert.Len(t, doc.Reservations, 4)
	assert.Empty(t, doc.Expenses)

	for _, day := range doc.Days {
		require.NotNil(t, day.MealOptions, "day %s", day.Date)
		assert.True(t, sort.SliceIsSorted(day.Events, func(i, j int) bool {
			return day.Events[i].Time < day.Events[j].Time
		}), "events of %s are not in time order", day.Date)
		for _, ev := range day.Events {
			assert.NotNil(t, ev.SubItems, "event %s", ev.ID)
			assert.True(t, models.IsValidEventType(ev.Type), "event %s", ev.ID)
		}
	}

	// every call returns an independent copy
	other := Default()
	other.Members[0] = "changed"
	assert.NotEqual(t, "changed", doc.Members[0])
}

func TestDefault_MigrateIsNoop(t *testing.T) {
	doc := Default()
	before, err := json.Marshal(doc)
	require.NoError(t, err)
	Migrate(doc)
	after, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestLoad_EmptySlot(t *testing.T) {
	slot := new(MockSlot)
	slot.On("Read", mock.Anything).Return(nil, db.ErrSlotEmpty)

	doc := Load(context.Background(), slot)
	assert.Equal(t, Default(), doc)
	slot.AssertExpectations(t)
}

func TestLoad_ReadError(t *testing.T) {
	slot := new(MockSlot)
	slot.On("Read", mock.Anything).Return(nil, errors.New("disk on fire"))

	assert.Equal(t, Default(), Load(context.Background(), slot))
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"truncated", `{"members": ["A"`},
		{"not an object", `[1, 2, 3]`},
		{"wrong type", `{"currencyRate": "lots"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := new(MockSlot)
			slot.On("Read", mock.Anything).Return([]byte(tt.payload), nil)
			assert.Equal(t, Default(), Load(context.Background(), slot))
		})
	}
}

func TestLoad_MigratesOlderDocument(t *testing.T) {
	payload := `{
		"currencyRate": 0.2,
		"members": ["A", "B"],
		"days": [{
			"date": "3/1", "weekday": "Sat", "title": "T", "weather": "", "locationKey": "tokyo",
			"events": [{"id": "x1", "time": "09:00", "type": "sight", "title": "Old event", "loc": "L"}]
		}]
	}`
	slot := new(MockSlot)
	slot.On("Read", mock.Anything).Return([]byte(payload), nil)

	doc := Load(context.Background(), slot)

	assert.Equal(t, 0.2, doc.CurrencyRate)
	assert.Equal(t, []string{"A", "B"}, doc.Members)
	require.Len(t, doc.Days, 1)
	require.NotNil(t, doc.Days[0].MealOptions)
	assert.Equal(t, []models.RestaurantOption{}, doc.Days[0].MealOptions.Breakfast)
	assert.Equal(t, []models.RestaurantOption{}, doc.Days[0].MealOptions.Lunch)
	assert.Equal(t, []models.RestaurantOption{}, doc.Days[0].MealOptions.Dinner)
	assert.Equal(t, []models.SubItem{}, doc.Days[0].Events[0].SubItems)

	// keys missing from the payload keep their default values
	assert.Equal(t, Default().PackingList, doc.PackingList)
	assert.Equal(t, Default().Reservations, doc.Reservations)
}

func TestDecode_NullKeyOverridesDefault(t *testing.T) {
	doc, err := Decode([]byte(`{"expenses": null}`))
	require.NoError(t, err)

	assert.Nil(t, doc.Expenses)
	assert.Equal(t, Default().Members, doc.Members)
}

func TestLoad_KeepsExistingOptionalFields(t *testing.T) {
	payload := `{"days": [{
		"date": "3/1", "events": [{"id": "x1", "time": "09:00", "type": "food", "title": "E", "loc": "L",
			"subItems": [{"id": "s1", "type": "eat", "text": "Mochi", "checked": true}]}],
		"mealOptions": {"breakfast": [], "lunch": [{"id": "m1", "name": "N", "dish": "D", "priceLevel": "¥"}], "dinner": []}
	}]}`

	first, err := Decode([]byte(payload))
	require.NoError(t, err)
	Migrate(first)
	second, err := Decode([]byte(payload))
	require.NoError(t, err)

	assert.Equal(t, second, first)
	assert.Len(t, first.Days[0].MealOptions.Lunch, 1)
	assert.True(t, first.Days[0].Events[0].SubItems[0].Checked)
}

func TestSave_RoundTrip(t *testing.T) {
	slot := db.NewFileSlot(filepath.Join(t.TempDir(), "trip.json"))
	ctx := context.Background()

	doc := Default()
	doc.Members = append(doc.Members, "D")
	require.NoError(t, Save(ctx, slot, doc))

	loaded := Load(ctx, slot)
	assert.Equal(t, doc, loaded)
}

func TestStore_Update(t *testing.T) {
	slot := new(MockSlot)
	slot.On("Read", mock.Anything).Return(nil, db.ErrSlotEmpty)
	slot.On("Write", mock.Anything, mock.Anything).Return(nil).Once()

	s := Open(context.Background(), slot)
	var got []Change
	s.Subscribe(SubscriberFunc(func(_ context.Context, c Change) { got = append(got, c) }))

	err := s.Update(context.Background(), "add member", func(doc *models.TripDocument) error {
		doc.Members = append(doc.Members, "D")
		return nil
	})
	require.NoError(t, err)

	assert.Contains(t, s.Document().Members, "D")
	require.Len(t, got, 1)
	assert.Equal(t, "add member", got[0].Reason)
	assert.True(t, got[0].Saved)
	assert.Equal(t, 7, got[0].Days)
	slot.AssertExpectations(t)
}

func TestStore_Update_Rejected(t *testing.T) {
	slot := new(MockSlot)
	slot.On("Read", mock.Anything).Return(nil, db.ErrSlotEmpty)

	s := Open(context.Background(), slot)
	notified := false
	s.Subscribe(SubscriberFunc(func(context.Context, Change) { notified = true }))
	before := s.Document()

	err := s.Update(context.Background(), "bad", func(doc *models.TripDocument) error {
		doc.Members = nil
		doc.Days[0].Title = "half written"
		return models.ErrInvalidExpense
	})

	assert.True(t, errors.Is(err, models.ErrInvalidExpense))
	assert.Equal(t, before, s.Document())
	assert.False(t, notified)
	slot.AssertNotCalled(t, "Write", mock.Anything, mock.Anything)
}

func TestStore_Update_SaveFails(t *testing.T) {
	slot := new(MockSlot)
	slot.On("Read", mock.Anything).Return(nil, db.ErrSlotEmpty)
	slot.On("Write", mock.Anything, mock.Anything).Return(errors.New("read-only"))

	s := Open(context.Background(), slot)
	var change Change
	s.Subscribe(SubscriberFunc(func(_ context.Context, c Change) { change = c }))

	err := s.Update(context.Background(), "rate", func(doc *models.TripDocument) error {
		doc.CurrencyRate = 0.3
		return nil
	})

	assert.Error(t, err)
	assert.Equal(t, 0.3, s.Document().CurrencyRate)
	assert.False(t, change.Saved)
}

func TestStore_DocumentIsACopy(t *testing.T) {
	slot := new(MockSlot)
	slot.On("Read", mock.Anything).Return(nil, db.ErrSlotEmpty)
	s := Open(context.Background(), slot)

	doc := s.Document()
	doc.Days[0].Events = nil
	assert.NotEmpty(t, s.Document().Days[0].Events)
}
