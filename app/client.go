// Package app contains the feature call sites of the content site. Each
// operation builds one request description and runs it through the
// executor. Operations behind a form return the envelope so the caller can
// hand a failure to the form bridge; read-only page data returns (value,
// error).
package app

import (
	"net/url"

	"github.com/rs/zerolog"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/fetch"
)

// APIPrefix is the path prefix of every content API endpoint.
const APIPrefix = "/api/v1"

// Client is the content API as seen by the site.
type Client struct {
	ex     *fetch.Executor
	logger zerolog.Logger
}

// NewClient creates a client over ex.
func NewClient(ex *fetch.Executor, logger zerolog.Logger) *Client {
	return &Client{ex: ex, logger: logger.With().Str("component", "app").Logger()}
}

// Executor returns the executor the client runs on.
func (c *Client) Executor() *fetch.Executor { return c.ex }

func endpoint(segments ...string) string {
	p := APIPrefix
	for _, s := range segments {
		p += "/" + url.PathEscape(s)
	}
	return p
}
