// Package result defines the success/failure envelope returned by every
// request-producing operation.
package result

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Code is a stable, dot-namespaced error identifier.
// Call sites branch on Code, never on Message.
type Code string

const (
	CodeUnauthorized Code = "error.unauthorized"
	CodeForbidden    Code = "error.forbidden"
	CodeValidation   Code = "error.validation"
	CodeNetwork      Code = "error.network"
	CodeTimeout      Code = "error.network.timeout"
	CodeCanceled     Code = "error.network.canceled"
	CodeUnknown      Code = "error.unknown"

	// Contract codes mark defects: client and server disagree on shape,
	// or the caller built a request that cannot be serialized.
	CodeShapeMismatch  Code = "error.contract.shape"
	CodeInvalidRequest Code = "error.contract.request"
)

// IsNetwork reports whether c belongs to the network family.
func (c Code) IsNetwork() bool {
	return c.in(CodeNetwork)
}

// IsContract reports whether c marks a client/server contract defect.
func (c Code) IsContract() bool {
	return c.in("error.contract")
}

func (c Code) in(ns Code) bool {
	return c == ns || strings.HasPrefix(string(c), string(ns)+".")
}

// ErrNoEnvelope is reported for the zero Envelope, which no operation may return.
var ErrNoEnvelope = errors.New("result: absent envelope")

// Violation describes one field that failed a response shape check.
type Violation struct {
	Path    string `json:"path"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// Error is the payload of a Failure envelope.
type Error struct {
	Code        Code        `json:"code"`
	Message     string      `json:"message"`
	FieldErrors FieldErrors `json:"fieldErrors,omitempty"`
	Violations  []Violation `json:"violations,omitempty"`

	// Status is the HTTP status that produced the failure, 0 when the
	// exchange never completed.
	Status int `json:"-"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// HasFieldErrors reports whether the failure carries projectable field errors.
func (e *Error) HasFieldErrors() bool {
	return e != nil && len(e.FieldErrors) > 0
}

// Kind tags which variant an Envelope holds.
type Kind uint8

const (
	KindNone Kind = iota
	KindSuccess
	KindFailure
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindFailure:
		return "failure"
	default:
		return "none"
	}
}

// Envelope is a tagged union of Success{data} and Failure{error}.
// The zero value is not a valid envelope.
type Envelope[T any] struct {
	kind Kind
	data *T
	err  *Error
}

// Success wraps data. A nil data pointer means the response had no body.
func Success[T any](data *T) Envelope[T] {
	return Envelope[T]{kind: KindSuccess, data: data}
}

// Fail wraps err. A nil err becomes an error.unknown failure so that a
// Failure never travels without an error.
func Fail[T any](err *Error) Envelope[T] {
	if err == nil {
		err = &Error{Code: CodeUnknown}
	}
	return Envelope[T]{kind: KindFailure, err: err}
}

// Kind returns the variant tag.
func (e Envelope[T]) Kind() Kind { return e.kind }

// Check returns ErrNoEnvelope for the zero value.
func (e Envelope[T]) Check() error {
	if e.kind == KindNone {
		return ErrNoEnvelope
	}
	return nil
}

// Data returns the success payload, nil on failure or empty body.
func (e Envelope[T]) Data() *T {
	if e.kind != KindSuccess {
		return nil
	}
	return e.data
}

// Err returns the failure payload, nil on success.
func (e Envelope[T]) Err() *Error {
	if e.kind != KindFailure {
		return nil
	}
	return e.err
}

// Unpack returns both sides; exactly one is meaningful.
func (e Envelope[T]) Unpack() (*T, *Error) {
	return e.Data(), e.Err()
}

// IsSuccess reports whether env holds a Success.
func IsSuccess[T any](env Envelope[T]) bool { return env.kind == KindSuccess }

// IsFailure reports whether env holds a Failure.
func IsFailure[T any](env Envelope[T]) bool { return env.kind == KindFailure }

type wireEnvelope[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Error   *Error `json:"error,omitempty"`
}

// MarshalJSON renders the envelope for logs and CLI output.
func (e Envelope[T]) MarshalJSON() ([]byte, error) {
	if e.kind == KindNone {
		return nil, ErrNoEnvelope
	}
	return json.Marshal(wireEnvelope[T]{
		Success: e.kind == KindSuccess,
		Data:    e.Data(),
		Error:   e.Err(),
	})
}
