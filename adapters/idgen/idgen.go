// Package idgen provides request ID generators for the X-Request-ID header.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/ports"
)

// UUID issues random v4 request IDs.
type UUID struct{}

// New returns a fresh UUID v4 string.
func (UUID) New() string {
	return uuid.NewString()
}

var _ ports.IDGenerator = UUID{}

// Counter issues predictable IDs ("req-1", "req-2", ...) for tests and
// recorded fixtures.
type Counter struct {
	prefix string
	n      atomic.Uint64
}

// NewCounter returns a Counter whose IDs start with prefix.
func NewCounter(prefix string) *Counter {
	return &Counter{prefix: prefix}
}

// New returns the next ID. Safe for concurrent use.
func (c *Counter) New() string {
	return c.prefix + strconv.FormatUint(c.n.Add(1), 10)
}

var _ ports.IDGenerator = (*Counter)(nil)
