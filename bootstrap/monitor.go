package bootstrap

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const defaultMonitorInterval = 30 * time.Second

// ErrNotChecked is reported by Monitor.Check before the first check ran.
var ErrNotChecked = errors.New("monitor has not checked the API yet")

// Monitor periodically exercises the content API through the current
// client so its outcomes show up in metrics and readiness.
type Monitor struct {
	app    *App
	logger zerolog.Logger

	mu   sync.RWMutex
	last error
	ran  bool
}

// NewMonitor creates a monitor over a.
func NewMonitor(a *App) *Monitor {
	return &Monitor{app: a, logger: a.Logger.With().Str("component", "monitor").Logger()}
}

// Once runs one check: the category tree, which every page loads.
func (m *Monitor) Once(ctx context.Context) error {
	env := m.app.Client().ListCategories(m.app.Context(ctx))

	err := env.Check()
	if failure := env.Err(); failure != nil {
		err = failure
		m.logger.Warn().Str("code", string(failure.Code)).Int("status", failure.Status).Msg("api check failed")
	}

	m.mu.Lock()
	m.last, m.ran = err, true
	m.mu.Unlock()
	return err
}

// Run checks at the configured monitor interval until ctx is done. A reload
// that changes the interval takes effect after the next check.
func (m *Monitor) Run(ctx context.Context) {
	interval := m.interval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.Once(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Once(ctx)
			if next := m.interval(); next != interval {
				interval = next
				ticker.Reset(interval)
				m.logger.Info().Dur("interval", interval).Msg("monitor interval changed")
			}
		}
	}
}

func (m *Monitor) interval() time.Duration {
	if iv := m.app.Config().Monitor.Interval; iv > 0 {
		return iv
	}
	return defaultMonitorInterval
}

// Check reports the outcome of the latest check.
func (m *Monitor) Check(context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.ran {
		return ErrNotChecked
	}
	return m.last
}
