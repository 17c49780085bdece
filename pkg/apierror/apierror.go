// Package apierror builds and writes the API's error body:
// {"code": ..., "message": ..., "fieldErrors": {path: [messages]}}.
package apierror

import (
	"fmt"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
)

// Body is the wire error body. Field errors keep insertion order.
type Body struct {
	Status      int                `json:"-"`
	Code        result.Code        `json:"code"`
	Message     string             `json:"message"`
	FieldErrors result.FieldErrors `json:"fieldErrors,omitempty"`
}

// Builder provides a fluent API for building error bodies.
type Builder struct {
	body Body
}

// New creates a Builder for status with the given code and message.
func New(status int, code result.Code, message string) *Builder {
	return &Builder{body: Body{Status: status, Code: code, Message: message}}
}

// Messagef sets the message with formatting.
func (b *Builder) Messagef(format string, args ...any) *Builder {
	b.body.Message = fmt.Sprintf(format, args...)
	return b
}

// Field adds messages for path. Repeated paths merge in order.
func (b *Builder) Field(path string, messages ...string) *Builder {
	b.body.FieldErrors = b.body.FieldErrors.Add(path, messages...)
	return b
}

// Build returns the body.
func (b *Builder) Build() Body {
	return b.body
}

// Write sends body with its status.
func Write(w http.ResponseWriter, body Body) {
	status := body.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	data, err := json.Marshal(body)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

// Common error bodies.

// BadRequest returns a 400 with error.validation and no fields.
func BadRequest(message string) Body {
	return New(http.StatusBadRequest, result.CodeValidation, message).Build()
}

// Unauthorized returns a 401.
func Unauthorized(message string) Body {
	return New(http.StatusUnauthorized, result.CodeUnauthorized, message).Build()
}

// Forbidden returns a 403.
func Forbidden(message string) Body {
	return New(http.StatusForbidden, result.CodeForbidden, message).Build()
}

// NotFound returns a 404 with a resource-specific code such as
// "error.post.not_found".
func NotFound(resource, message string) Body {
	return New(http.StatusNotFound, result.Code("error."+resource+".not_found"), message).Build()
}

// Conflict returns a 409 with a resource-specific code.
func Conflict(resource, message string) Body {
	return New(http.StatusConflict, result.Code("error."+resource+".conflict"), message).Build()
}

// Validation starts a 422 error.validation body; add fields with Field.
func Validation(message string) *Builder {
	return New(http.StatusUnprocessableEntity, result.CodeValidation, message)
}

// Internal returns a 500 with error.unknown.
func Internal(message string) Body {
	return New(http.StatusInternalServerError, result.CodeUnknown, message).Build()
}
