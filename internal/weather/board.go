package weather

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Board holds the latest reading per location key. It is filled in the
// background and never touches the trip document.
type Board struct {
	fetcher Fetcher

	mu       sync.RWMutex
	readings map[string]Reading

	wg sync.WaitGroup
}

// NewBoard returns an empty board fed by f.
func NewBoard(f Fetcher) *Board {
	return &Board{fetcher: f, readings: make(map[string]Reading)}
}

// Refresh starts a lookup for the place registered under key and returns
// immediately. Failures are logged and keep whatever the board already shows.
func (b *Board) Refresh(ctx context.Context, key string) {
	place, ok := Lookup(key)
	if !ok {
		log.WithField("location", key).Debug("No coordinates for location, skipping weather")
		return
	}
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		r, err := b.fetcher.Current(ctx, place.Location)
		if err != nil {
			log.WithError(err).WithField("location", key).Warn("Weather lookup failed")
			return
		}
		b.mu.Lock()
		b.readings[key] = r
		b.mu.Unlock()
		log.WithFields(log.Fields{
			"location": key,
			"temp":     r.Temperature,
			"code":     r.Code,
		}).Debug("Weather updated")
	}()
}

// Get returns the latest reading for key.
func (b *Board) Get(key string) (Reading, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	r, ok := b.readings[key]
	return r, ok
}

// Wait blocks until every lookup started so far has finished.
func (b *Board) Wait() {
	b.wg.Wait()
}
