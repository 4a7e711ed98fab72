// Package daysync keeps track of the selected day of the trip. A day is
// selected either explicitly (a tab is picked) or inferred from which day
// section sits in the middle of the viewport while scrolling.
package daysync

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultCooldown is how long inferred selections are ignored after an
// explicit jump, roughly the length of the scroll animation.
const DefaultCooldown = 600 * time.Millisecond

// Selector holds the current day index. It is safe for concurrent use.
type Selector struct {
	mu       sync.Mutex
	days     int
	current  int
	cooldown time.Duration
	until    time.Time
	now      func() time.Time
	onChange []func(int)
}

// Option configures a Selector.
type Option func(*Selector)

// WithCooldown overrides DefaultCooldown.
func WithCooldown(d time.Duration) Option {
	return func(s *Selector) { s.cooldown = d }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Selector) { s.now = now }
}

// NewSelector returns a selector over days days, starting at day 0.
func NewSelector(days int, opts ...Option) *Selector {
	s := &Selector{
		days:     days,
		cooldown: DefaultCooldown,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnChange registers fn to be called with the new index whenever it changes.
func (s *Selector) OnChange(fn func(int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// Current returns the selected day index.
func (s *Selector) Current() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Suppressed reports whether inferred selections are currently ignored.
func (s *Selector) Suppressed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now().Before(s.until)
}

// Jump selects idx explicitly and opens the cooldown window. Out of range
// indexes are ignored.
func (s *Selector) Jump(idx int) bool {
	s.mu.Lock()
	if idx < 0 || idx >= s.days {
		s.mu.Unlock()
		return false
	}
	s.until = s.now().Add(s.cooldown)
	changed := idx != s.current
	s.current = idx
	fns := append([]func(int){}, s.onChange...)
	s.mu.Unlock()

	if changed {
		notify(fns, idx)
	}
	return true
}

// Observe reports an inferred selection. It is dropped while the cooldown of
// the last Jump is running, and when idx is out of range or already current.
func (s *Selector) Observe(idx int) bool {
	s.mu.Lock()
	if s.now().Before(s.until) {
		s.mu.Unlock()
		log.WithField("day", idx).Debug("Ignoring inferred day during cooldown")
		return false
	}
	if idx < 0 || idx >= s.days || idx == s.current {
		s.mu.Unlock()
		return false
	}
	s.current = idx
	fns := append([]func(int){}, s.onChange...)
	s.mu.Unlock()

	notify(fns, idx)
	return true
}

func notify(fns []func(int), idx int) {
	for _, fn := range fns {
		fn(idx)
	}
}
