package packing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/trip-planner/internal/models"
)

func sample() []models.PackingItem {
	return []models.PackingItem{
		{ID: "1", Category: "Documents", Text: "Passport"},
		{ID: "2", Category: "Electronics", Text: "Charger"},
		{ID: "3", Category: "Documents", Text: "Cash"},
		{ID: "4", Category: "Clothing", Text: "Jacket"},
		{ID: "5", Category: "Electronics", Text: "Adapter"},
	}
}

func TestGroupByCategory(t *testing.T) {
	groups := GroupByCategory(sample())

	require.Len(t, groups, 3)
	assert.Equal(t, "Documents", groups[0].Category)
	assert.Equal(t, "Electronics", groups[1].Category)
	assert.Equal(t, "Clothing", groups[2].Category)

	var texts []string
	for _, item := range groups[0].Items {
		texts = append(texts, item.Text)
	}
	assert.Equal(t, []string{"Passport", "Cash"}, texts)
	assert.Equal(t, "Adapter", groups[1].Items[1].Text)

	assert.Empty(t, GroupByCategory(nil))
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name    string
		checked []bool
		want    int
	}{
		{"empty", nil, 0},
		{"none", []bool{false, false}, 0},
		{"one of three", []bool{true, false, false}, 33},
		{"two of three", []bool{true, true, false}, 67},
		{"half", []bool{true, false}, 50},
		{"one of eight rounds up", []bool{true, false, false, false, false, false, false, false}, 13},
		{"all", []bool{true, true, true}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]models.PackingItem, len(tt.checked))
			for i, c := range tt.checked {
				items[i].Checked = c
			}
			assert.Equal(t, tt.want, Progress(items))
		})
	}
}

func TestToggle(t *testing.T) {
	items := sample()
	assert.True(t, Toggle(items, "3"))
	assert.True(t, items[2].Checked)
	assert.True(t, Toggle(items, "3"))
	assert.False(t, items[2].Checked)
	assert.False(t, Toggle(items, "nope"))
}

func TestAdd(t *testing.T) {
	items, item, err := Add(sample(), " Umbrella ", "")
	require.NoError(t, err)
	assert.Len(t, items, 6)
	assert.Equal(t, CustomCategory, item.Category)
	assert.Equal(t, "Umbrella", item.Text)
	assert.False(t, item.Checked)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, item, items[5])

	_, item, err = Add(nil, "Socks", "Clothing")
	require.NoError(t, err)
	assert.Equal(t, "Clothing", item.Category)

	items, _, err = Add(sample(), "  ", "Clothing")
	assert.True(t, errors.Is(err, models.ErrInvalidPackingItem))
	assert.Len(t, items, 5)
}

func TestDelete(t *testing.T) {
	items, ok := Delete(sample(), "1")
	assert.True(t, ok)
	assert.Len(t, items, 4)
	assert.Equal(t, "2", items[0].ID)

	items, ok = Delete(items, "1")
	assert.False(t, ok)
	assert.Len(t, items, 4)
}
