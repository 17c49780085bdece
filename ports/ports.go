// Package ports defines interfaces (contracts) between layers.
// These interfaces enable dependency injection and testability.
// Implementations live in adapters/.
package ports

import (
	"errors"
	"time"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
)

// -----------------------------------------------------------------------------
// Infrastructure Ports
// -----------------------------------------------------------------------------

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
}

// IDGenerator generates unique identifiers.
type IDGenerator interface {
	New() string
}

// -----------------------------------------------------------------------------
// UI Collaborator Ports
// -----------------------------------------------------------------------------

// ErrUnknownField is returned by a Form for a path it does not render.
var ErrUnknownField = errors.New("unknown form field")

// Form is the capability surface of a bound client-side form.
// The core never looks past these three methods.
type Form interface {
	// SetFieldError shows message inline at path.
	SetFieldError(path, message string) error

	// FocusField moves input focus to path.
	FocusField(path string) error

	// ClearErrors removes every field error.
	ClearErrors()
}

// Notifier surfaces failures that have no field to attach to (a toast).
type Notifier interface {
	Notify(err *result.Error)
}

// -----------------------------------------------------------------------------
// Observability Ports
// -----------------------------------------------------------------------------

// RequestOutcome summarizes one finished exchange.
type RequestOutcome struct {
	Name     string
	Method   string
	Status   int
	Code     result.Code // empty on success
	Duration time.Duration
}

// Observer receives request lifecycle events.
type Observer interface {
	RequestStarted(name string)
	RequestFinished(outcome RequestOutcome)
}

// NopObserver discards every event.
type NopObserver struct{}

func (NopObserver) RequestStarted(string)          {}
func (NopObserver) RequestFinished(RequestOutcome) {}

// -----------------------------------------------------------------------------
// Development API Ports
// -----------------------------------------------------------------------------

// Hasher hashes the passwords guests attach to comments and guestbook entries.
type Hasher interface {
	Hash(plaintext string) ([]byte, error)
	Compare(hash []byte, plaintext string) bool
}
