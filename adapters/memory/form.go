// Package memory provides in-memory implementations of the UI collaborator
// ports and the content store behind the development API.
package memory

import (
	"sync"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/ports"
)

// Form is an in-memory ports.Form. It renders a fixed set of fields and
// rejects errors for any other path with ports.ErrUnknownField.
type Form struct {
	mu      sync.RWMutex
	fields  map[string]struct{}
	errors  map[string]string
	focused string
}

// NewForm creates a form that renders the given field paths.
func NewForm(fields ...string) *Form {
	f := &Form{
		fields: make(map[string]struct{}, len(fields)),
		errors: make(map[string]string),
	}
	for _, name := range fields {
		f.fields[name] = struct{}{}
	}
	return f
}

// SetFieldError shows message at path, replacing any earlier message.
func (f *Form) SetFieldError(path, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.fields[path]; !ok {
		return ports.ErrUnknownField
	}
	f.errors[path] = message
	return nil
}

// FocusField moves focus to path.
func (f *Form) FocusField(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.fields[path]; !ok {
		return ports.ErrUnknownField
	}
	f.focused = path
	return nil
}

// ClearErrors removes every field error. Focus is left alone.
func (f *Form) ClearErrors() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = make(map[string]string)
}

// Error returns the message shown at path.
func (f *Form) Error(path string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	msg, ok := f.errors[path]
	return msg, ok
}

// Errors returns a copy of every shown message keyed by path.
func (f *Form) Errors() map[string]string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Focused returns the focused path, or "" when nothing was focused.
func (f *Form) Focused() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.focused
}

var _ ports.Form = (*Form)(nil)
