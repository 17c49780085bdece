// Package formbridge projects server-reported field errors onto a bound form.
//
// The bridge only consumes field errors the server reported. It never
// invents client-side ones and never clears the form: a second Apply with
// the same failure leaves the same state.
package formbridge

import (
	"github.com/rs/zerolog"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/ports"
)

// Outcome reports what Apply did.
type Outcome struct {
	// Applied lists the paths the form accepted, in wire order.
	Applied []string
	// Skipped lists the paths the form rejected or that had no message.
	Skipped []string
	// Focused is the path that received focus, "" when none did.
	Focused string
}

// Projected reports whether at least one field error reached the form.
func (o Outcome) Projected() bool { return len(o.Applied) > 0 }

// Bridge maps failures onto forms.
type Bridge struct {
	logger zerolog.Logger
}

// New creates a bridge that logs skipped paths to logger.
func New(logger zerolog.Logger) *Bridge {
	return &Bridge{logger: logger.With().Str("component", "formbridge").Logger()}
}

// Apply sets the last message of every field error on form, then focuses
// the first path the form accepted. A path the form does not know is
// skipped without affecting the others. A failure without field errors
// leaves the form untouched.
func (b *Bridge) Apply(form ports.Form, failure *result.Error) Outcome {
	var out Outcome
	if form == nil || !failure.HasFieldErrors() {
		return out
	}

	for _, fe := range failure.FieldErrors {
		if len(fe.Messages) == 0 {
			out.Skipped = append(out.Skipped, fe.Path)
			continue
		}
		if err := form.SetFieldError(fe.Path, fe.Last()); err != nil {
			b.logger.Debug().Err(err).Str("path", fe.Path).Msg("form rejected field error")
			out.Skipped = append(out.Skipped, fe.Path)
			continue
		}
		out.Applied = append(out.Applied, fe.Path)
	}

	for _, path := range out.Applied {
		if err := form.FocusField(path); err != nil {
			b.logger.Debug().Err(err).Str("path", path).Msg("form refused focus")
			continue
		}
		out.Focused = path
		break
	}
	return out
}

// Handle applies failure to form and sends whatever the form could not
// absorb to notifier. It returns nil once any field error reached the form,
// and failure itself otherwise, so callers can keep branching on its code.
func (b *Bridge) Handle(form ports.Form, notifier ports.Notifier, failure *result.Error) *result.Error {
	if failure == nil {
		return nil
	}
	if b.Apply(form, failure).Projected() {
		return nil
	}
	if notifier != nil {
		notifier.Notify(failure)
	}
	return failure
}

// HandleEnvelope is Handle for the failure side of env. A Success or the
// zero envelope returns nil.
func HandleEnvelope[T any](b *Bridge, form ports.Form, notifier ports.Notifier, env result.Envelope[T]) *result.Error {
	return b.Handle(form, notifier, env.Err())
}
