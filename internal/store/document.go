// Package store owns the trip document: it loads it from a durable slot,
// migrates older payloads, applies mutations and persists the whole document
// after each of them.
package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/trip-planner/internal/db"
	"github.com/ukydev/trip-planner/internal/models"
)

//go:embed default_trip.json
var defaultTrip []byte

// Default returns a fresh copy of the built-in document used on first run.
func Default() *models.TripDocument {
	var doc models.TripDocument
	if err := json.Unmarshal(defaultTrip, &doc); err != nil {
		panic(fmt.Sprintf("embedded default trip is invalid: %v", err))
	}
	return &doc
}

// Migrate backfills optional structures introduced after a document was first
// saved: every day gets a meal plan and every event a sub-item list.
// Applying it more than once has no further effect.
func Migrate(doc *models.TripDocument) {
	for i := range doc.Days {
		day := &doc.Days[i]
		if day.MealOptions == nil {
			day.MealOptions = models.NewMealPlan()
		}
		for j := range day.Events {
			if day.Events[j].SubItems == nil {
				day.Events[j].SubItems = []models.SubItem{}
			}
		}
	}
}

// Decode parses a persisted payload on top of the default document. Top-level
// keys present in the payload replace the defaults, absent ones keep them.
func Decode(data []byte) (*models.TripDocument, error) {
	var present map[string]json.RawMessage
	if err := json.Unmarshal(data, &present); err != nil {
		return nil, fmt.Errorf("parse trip document: %w", err)
	}
	var loaded models.TripDocument
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parse trip document: %w", err)
	}

	doc := Default()
	if _, ok := present["currencyRate"]; ok {
		doc.CurrencyRate = loaded.CurrencyRate
	}
	if _, ok := present["members"]; ok {
		doc.Members = loaded.Members
	}
	if _, ok := present["expenses"]; ok {
		doc.Expenses = loaded.Expenses
	}
	if _, ok := present["packingList"]; ok {
		doc.PackingList = loaded.PackingList
	}
	if _, ok := present["reservations"]; ok {
		doc.Reservations = loaded.Reservations
	}
	if _, ok := present["days"]; ok {
		doc.Days = loaded.Days
	}
	Migrate(doc)
	return doc, nil
}

// Load reads the document from slot. It never fails: a missing, unreadable or
// malformed payload yields the default document.
func Load(ctx context.Context, slot db.Slot) *models.TripDocument {
	data, err := slot.Read(ctx)
	if errors.Is(err, db.ErrSlotEmpty) {
		log.Info("No saved trip found, starting from the default document")
		return Default()
	}
	if err != nil {
		log.WithError(err).Warn("Failed to read saved trip, using the default document")
		return Default()
	}

	doc, err := Decode(data)
	if err != nil {
		log.WithError(err).WithField("bytes", len(data)).Warn("Saved trip is unreadable, using the default document")
		return Default()
	}
	return doc
}

// Save serializes the whole document and overwrites the slot.
func Save(ctx context.Context, slot db.Slot, doc *models.TripDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal trip document: %w", err)
	}
	if err := slot.Write(ctx, append(data, '\n')); err != nil {
		return fmt.Errorf("save trip document: %w", err)
	}
	return nil
}
