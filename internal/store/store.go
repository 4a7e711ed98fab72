package store

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/trip-planner/internal/db"
	"github.com/ukydev/trip-planner/internal/models"
)

// Change describes a mutation that was applied to the document.
type Change struct {
	Reason   string    `json:"reason"`
	At       time.Time `json:"at"`
	Days     int       `json:"days"`
	Expenses int       `json:"expenses"`
	Saved    bool      `json:"saved"`
}

// Subscriber is notified after every applied mutation.
type Subscriber interface {
	DocumentChanged(ctx context.Context, change Change)
}

// SubscriberFunc adapts a function to the Subscriber interface.
type SubscriberFunc func(ctx context.Context, change Change)

// DocumentChanged calls f.
func (f SubscriberFunc) DocumentChanged(ctx context.Context, change Change) { f(ctx, change) }

// Store is the single owner of the in-memory trip document.
type Store struct {
	mu          sync.Mutex
	slot        db.Slot
	doc         *models.TripDocument
	subscribers []Subscriber
	now         func() time.Time
}

// Open loads the document from slot and returns a store owning it.
func Open(ctx context.Context, slot db.Slot) *Store {
	return &Store{
		slot: slot,
		doc:  Load(ctx, slot),
		now:  time.Now,
	}
}

// Subscribe registers sub for change notifications.
func (s *Store) Subscribe(sub Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, sub)
}

// Document returns a deep copy of the current document.
func (s *Store) Document() *models.TripDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp, err := s.doc.Clone()
	if err != nil {
		// the live document was produced by the same encoder, this cannot fail
		panic(err)
	}
	return cp
}

// Update applies fn to a working copy of the document. When fn returns an
// error nothing is applied and nothing is saved. Otherwise the copy becomes
// the live document, is persisted, and subscribers are notified. A save
// failure is returned but the mutation stays applied in memory.
func (s *Store) Update(ctx context.Context, reason string, fn func(doc *models.TripDocument) error) error {
	s.mu.Lock()
	work, err := s.doc.Clone()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if err := fn(work); err != nil {
		s.mu.Unlock()
		log.WithError(err).WithField("reason", reason).Debug("Mutation rejected")
		return err
	}
	s.doc = work
	saveErr := Save(ctx, s.slot, work)
	change := Change{
		Reason:   reason,
		At:       s.now().UTC(),
		Days:     len(work.Days),
		Expenses: len(work.Expenses),
		Saved:    saveErr == nil,
	}
	subs := append([]Subscriber(nil), s.subscribers...)
	s.mu.Unlock()

	if saveErr != nil {
		log.WithError(saveErr).WithField("reason", reason).Error("Failed to persist trip document")
	} else {
		log.WithField("reason", reason).Debug("Trip document saved")
	}
	for _, sub := range subs {
		sub.DocumentChanged(ctx, change)
	}
	return saveErr
}
