package daysync

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestSelector(days int) (*Selector, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	return NewSelector(days, WithClock(clock.Now)), clock
}

func TestSelector_ObserveWithoutJump(t *testing.T) {
	s, _ := newTestSelector(7)
	assert.Equal(t, 0, s.Current())
	assert.False(t, s.Suppressed())

	assert.True(t, s.Observe(2))
	assert.Equal(t, 2, s.Current())
	assert.False(t, s.Observe(2), "unchanged index")
	assert.False(t, s.Observe(7), "out of range")
	assert.False(t, s.Observe(-1), "out of range")
	assert.Equal(t, 2, s.Current())
}

func TestSelector_CooldownAfterJump(t *testing.T) {
	s, clock := newTestSelector(7)

	assert.True(t, s.Jump(5))
	assert.Equal(t, 5, s.Current())
	assert.True(t, s.Suppressed())

	// the scroll animation passes over the days in between
	for _, idx := range []int{1, 2, 3, 4} {
		clock.Advance(100 * time.Millisecond)
		assert.False(t, s.Observe(idx))
	}
	assert.Equal(t, 5, s.Current())

	clock.Advance(200 * time.Millisecond)
	assert.False(t, s.Suppressed())
	assert.True(t, s.Observe(4))
	assert.Equal(t, 4, s.Current())
}

func TestSelector_JumpOutOfRange(t *testing.T) {
	s, _ := newTestSelector(3)
	assert.False(t, s.Jump(3))
	assert.False(t, s.Suppressed())
	assert.Equal(t, 0, s.Current())
}

func TestSelector_CustomCooldown(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := NewSelector(4, WithClock(clock.Now), WithCooldown(50*time.Millisecond))

	s.Jump(1)
	clock.Advance(49 * time.Millisecond)
	assert.False(t, s.Observe(2))
	clock.Advance(time.Millisecond)
	assert.True(t, s.Observe(2))
}

func TestSelector_OnChange(t *testing.T) {
	s, clock := newTestSelector(4)
	var seen []int
	s.OnChange(func(idx int) { seen = append(seen, idx) })

	s.Jump(0) // already current
	s.Jump(3)
	s.Observe(1) // suppressed
	clock.Advance(time.Second)
	s.Observe(1)

	assert.Equal(t, []int{3, 1}, seen)
}

func TestSelector_ConcurrentReports(t *testing.T) {
	s := NewSelector(7)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%10 == 0 {
				s.Jump(i % 7)
				return
			}
			s.Observe(i % 7)
		}(i)
	}
	wg.Wait()

	cur := s.Current()
	assert.True(t, cur >= 0 && cur < 7)
}

func TestVisibleIndex(t *testing.T) {
	// viewport of 1000: centre band is 400..500
	sections := []Section{
		{Top: -900, Bottom: 100},
		{Top: 100, Bottom: 450},
		{Top: 450, Bottom: 1200},
	}

	tests := []struct {
		name     string
		sections []Section
		height   float64
		want     int
		ok       bool
	}{
		{"first overlapping section wins", sections, 1000, 1, true},
		{"section fully covering band", []Section{{Top: -100, Bottom: 2000}}, 1000, 0, true},
		{"touching edges do not count", []Section{{Top: 0, Bottom: 400}, {Top: 500, Bottom: 900}}, 1000, 0, false},
		{"nothing", nil, 1000, 0, false},
		{"zero viewport", sections, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := VisibleIndex(tt.sections, tt.height)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
