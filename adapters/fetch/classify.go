package fetch

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/core/i18n"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/core/schema"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
)

// wireError is the error body the API sends with non-2xx responses.
type wireError struct {
	Code        result.Code     `json:"code"`
	Message     string          `json:"message"`
	FieldErrors json.RawMessage `json:"fieldErrors"`
}

// statusFailure classifies a non-2xx reply. 401 and 403 map to fixed codes
// whatever the body says; other statuses forward a machine-readable body
// and fall back to error.unknown.
func (ex *Executor) statusFailure(rp reply) *result.Error {
	var w wireError
	decoded := len(bytes.TrimSpace(rp.body)) > 0 && json.Unmarshal(rp.body, &w) == nil

	switch rp.status {
	case http.StatusUnauthorized:
		return ex.fixed(result.CodeUnauthorized, rp.status, w.Message)
	case http.StatusForbidden:
		return ex.fixed(result.CodeForbidden, rp.status, w.Message)
	}

	if decoded {
		var fields result.FieldErrors
		if len(w.FieldErrors) > 0 {
			// A malformed map is dropped; code and message still count.
			_ = json.Unmarshal(w.FieldErrors, &fields)
		}
		code := w.Code
		if code == "" && len(fields) > 0 {
			code = result.CodeValidation
		}
		if code != "" {
			msg := w.Message
			if msg == "" {
				msg = i18n.Message(ex.lang, code, 0)
			}
			return &result.Error{
				Code:        code,
				Message:     msg,
				FieldErrors: fields,
				Status:      rp.status,
			}
		}
	}

	return &result.Error{
		Code:    result.CodeUnknown,
		Message: i18n.Message(ex.lang, result.CodeUnknown, rp.status),
		Status:  rp.status,
	}
}

func (ex *Executor) fixed(code result.Code, status int, msg string) *result.Error {
	if msg == "" {
		msg = i18n.Message(ex.lang, code, 0)
	}
	return &result.Error{Code: code, Message: msg, Status: status}
}

// decodeBody turns a 2xx reply into T. An empty body is a Success without
// data. Bodies that are not JSON are error.unknown; JSON that disagrees
// with the shape is a contract violation.
func decodeBody[T any](ex *Executor, rp reply, shape schema.Shape[T]) (*T, *result.Error) {
	if len(bytes.TrimSpace(rp.body)) == 0 {
		return nil, nil
	}

	if shape == nil {
		out := new(T)
		if err := json.Unmarshal(rp.body, out); err != nil {
			return nil, ex.undecodable(rp)
		}
		return out, nil
	}

	v, err := shape.Parse(rp.body)
	if err == nil {
		return v, nil
	}
	if errors.Is(err, schema.ErrUndecodable) {
		return nil, ex.undecodable(rp)
	}

	var violations []result.Violation
	var mm *schema.MismatchError
	if errors.As(err, &mm) {
		violations = mm.Violations
	} else {
		violations = []result.Violation{{Rule: "shape", Message: err.Error()}}
	}
	return nil, &result.Error{
		Code:       result.CodeShapeMismatch,
		Message:    i18n.Message(ex.lang, result.CodeShapeMismatch, 0),
		Violations: violations,
		Status:     rp.status,
	}
}

func (ex *Executor) undecodable(rp reply) *result.Error {
	return &result.Error{
		Code:    result.CodeUnknown,
		Message: i18n.Message(ex.lang, result.CodeUnknown, rp.status),
		Status:  rp.status,
	}
}
