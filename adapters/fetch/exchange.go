package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/core/i18n"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/request"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/ports"
)

const (
	// maxResponseBody is the default cap on how much of a response is read.
	maxResponseBody = 16 << 20

	// Keepalive requests outlive their caller, so their body and lifetime
	// are bounded.
	keepaliveBodyLimit = 64 << 10
	keepaliveTimeout   = 10 * time.Second
)

// reply is a completed HTTP exchange.
type reply struct {
	status int
	header http.Header
	body   []byte
}

// run performs one exchange, hands 2xx replies to accept, and reports the
// outcome to the logger and observer. It returns nil on success.
func (ex *Executor) run(ctx context.Context, desc request.Description, accept func(reply) *result.Error) *result.Error {
	name := desc.Name()
	requestID := ex.ids.New()
	log := ex.logger.With().
		Str("request", name).
		Str("method", desc.Method()).
		Str("request_id", requestID).
		Logger()
	ctx = log.WithContext(ctx)

	ex.observer.RequestStarted(name)
	start := ex.clock.Now()

	status, failure := ex.exchange(ctx, desc, requestID, accept)

	elapsed := ex.clock.Now().Sub(start)
	outcome := ports.RequestOutcome{
		Name:     name,
		Method:   desc.Method(),
		Status:   status,
		Duration: elapsed,
	}
	if failure != nil {
		outcome.Code = failure.Code
	}
	ex.observer.RequestFinished(outcome)

	switch {
	case failure == nil:
		log.Debug().Int("status", status).Dur("duration", elapsed).Msg("request completed")
	case failure.Code.IsContract():
		log.Error().
			Str("code", string(failure.Code)).
			Int("status", status).
			Interface("violations", failure.Violations).
			Msg("api contract violated")
	case failure.Code.IsNetwork(), failure.Code == result.CodeUnknown:
		log.Warn().
			Str("code", string(failure.Code)).
			Int("status", status).
			Dur("duration", elapsed).
			Interface("violations", failure.Violations).
			Msg("request failed")
	default:
		log.Debug().
			Str("code", string(failure.Code)).
			Int("status", status).
			Msg("request rejected")
	}
	return failure
}

func (ex *Executor) exchange(ctx context.Context, desc request.Description, requestID string, accept func(reply) *result.Error) (int, *result.Error) {
	payload, contentType, err := encodeBody(desc.Body())
	if err != nil {
		return 0, ex.invalid(err)
	}
	if desc.Keepalive() && len(payload) > keepaliveBodyLimit {
		return 0, ex.invalid(errors.New("keepalive body exceeds 64 KiB"))
	}
	target, err := ex.resolve(desc)
	if err != nil {
		return 0, ex.invalid(err)
	}

	ctx, cancel := ex.scope(ctx, desc)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, desc.Method(), target.String(), body)
	if err != nil {
		return 0, ex.invalid(err)
	}
	ex.decorate(req, desc, contentType, requestID)
	ex.creds.attach(ctx, req, desc.Credentials(), sameOrigin(target, ex.base))

	resp, err := ex.client.Do(req)
	if err != nil {
		return 0, ex.transport(err, 0)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, ex.maxBody+1))
	if err != nil {
		return resp.StatusCode, ex.transport(err, resp.StatusCode)
	}
	if int64(len(data)) > ex.maxBody {
		return resp.StatusCode, ex.oversized(resp.StatusCode)
	}

	rp := reply{status: resp.StatusCode, header: resp.Header, body: data}
	if rp.status < 200 || rp.status > 299 {
		return rp.status, ex.statusFailure(rp)
	}
	return rp.status, accept(rp)
}

// scope applies the request timeout. Keepalive requests are detached from
// caller cancellation but never run unbounded.
func (ex *Executor) scope(ctx context.Context, desc request.Description) (context.Context, context.CancelFunc) {
	timeout := desc.Timeout()
	if timeout <= 0 {
		timeout = ex.timeout
	}
	if desc.Keepalive() {
		ctx = context.WithoutCancel(ctx)
		if timeout <= 0 || timeout > keepaliveTimeout {
			timeout = keepaliveTimeout
		}
	}
	if timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return context.WithCancel(ctx)
}

// transport classifies an exchange that produced no usable response.
func (ex *Executor) transport(err error, status int) *result.Error {
	code := result.CodeNetwork
	var nerr net.Error
	switch {
	case errors.Is(err, context.Canceled):
		code = result.CodeCanceled
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &nerr) && nerr.Timeout():
		code = result.CodeTimeout
	}
	return &result.Error{
		Code:    code,
		Message: i18n.Message(ex.lang, code, 0),
		Status:  status,
	}
}

// oversized fails a response whose body is larger than the executor reads.
// The truncated prefix is never classified or parsed.
func (ex *Executor) oversized(status int) *result.Error {
	return &result.Error{
		Code:       result.CodeUnknown,
		Message:    i18n.Message(ex.lang, result.CodeUnknown, status),
		Status:     status,
		Violations: []result.Violation{{
			Rule:    "size",
			Param:   strconv.FormatInt(ex.maxBody, 10),
			Message: fmt.Sprintf("response body exceeds %d bytes", ex.maxBody),
		}},
	}
}

func (ex *Executor) invalid(err error) *result.Error {
	return &result.Error{
		Code:       result.CodeInvalidRequest,
		Message:    i18n.Message(ex.lang, result.CodeInvalidRequest, 0),
		Violations: []result.Violation{{Rule: "encode", Message: err.Error()}},
	}
}
