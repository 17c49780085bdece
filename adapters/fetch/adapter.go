package fetch

import (
	"context"
	"errors"
	"fmt"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/core/schema"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/request"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
)

// RequestError is a failure envelope turned into a Go error by Fetch.
// Field errors are not carried; call sites that own a form use Execute.
type RequestError struct {
	Code    result.Code
	Message string
	Status  int
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (HTTP %d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Fetch performs desc and returns the data of a Success, or a
// *RequestError for a Failure. The data is nil for an empty body.
func Fetch[T any](ctx context.Context, ex *Executor, desc request.Description, shape schema.Shape[T]) (*T, error) {
	return Unwrap(Execute(ctx, ex, desc, shape))
}

// Unwrap converts an envelope to Go's (value, error) form.
func Unwrap[T any](env result.Envelope[T]) (*T, error) {
	if err := env.Check(); err != nil {
		return nil, err
	}
	data, failure := env.Unpack()
	if failure != nil {
		return nil, &RequestError{Code: failure.Code, Message: failure.Message, Status: failure.Status}
	}
	return data, nil
}

// CodeOf returns the code of a *RequestError in err's chain, or "".
func CodeOf(err error) result.Code {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Code
	}
	return ""
}

// IsCode reports whether err carries code.
func IsCode(err error, code result.Code) bool {
	return err != nil && CodeOf(err) == code
}
