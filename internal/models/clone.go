package models

import (
	"encoding/json"
	"fmt"
)

// Clone returns a deep copy of the document. The copy goes through the same
// JSON encoding the document is persisted with, so nil/empty distinctions survive.
func (d *TripDocument) Clone() (*TripDocument, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("clone document: %w", err)
	}
	var out TripDocument
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("clone document: %w", err)
	}
	return &out, nil
}

// DayAt returns a pointer to the day with the given index.
func (d *TripDocument) DayAt(idx int) (*Day, error) {
	if idx < 0 || idx >= len(d.Days) {
		return nil, fmt.Errorf("%w: %d (trip has %d days)", ErrDayOutOfRange, idx, len(d.Days))
	}
	return &d.Days[idx], nil
}
