// Package clock provides Clock implementations used to time exchanges.
package clock

import (
	"sync"
	"time"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/ports"
)

// System reads the wall clock.
type System struct{}

// Now returns time.Now().
func (System) Now() time.Time { return time.Now() }

var _ ports.Clock = System{}

// Stepping is a test clock that moves forward by a fixed step on every
// read, so an exchange timed as end-start always lasts exactly one step.
type Stepping struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewStepping starts at start and advances by step per Now call.
func NewStepping(start time.Time, step time.Duration) *Stepping {
	return &Stepping{now: start, step: step}
}

// Now returns the current reading and advances the clock.
func (s *Stepping) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.now
	s.now = s.now.Add(s.step)
	return t
}

var _ ports.Clock = (*Stepping)(nil)
