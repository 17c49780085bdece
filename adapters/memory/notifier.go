package memory

import (
	"sync"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/ports"
)

// Notifier records every toast it is asked to show.
type Notifier struct {
	mu     sync.Mutex
	toasts []*result.Error
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Notify records err.
func (n *Notifier) Notify(err *result.Error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, err)
}

// Toasts returns the recorded failures in order.
func (n *Notifier) Toasts() []*result.Error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]*result.Error(nil), n.toasts...)
}

var _ ports.Notifier = (*Notifier)(nil)
