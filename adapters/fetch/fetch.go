// Package fetch executes request descriptions against the content API and
// classifies every outcome into a result envelope.
//
// Two executor variants share one exchange pipeline. The browser variant
// reads ambient cookies from a jar it never writes to. The server variant
// has no ambient credentials: the identity of the upstream caller must be
// forwarded explicitly through the context, and a request whose identity
// was not forwarded goes out anonymous.
//
// Nothing is retried. A failed exchange is classified and returned.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/clock"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/idgen"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/core/i18n"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/core/schema"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/request"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/ports"
)

// HeaderRequestID carries the per-exchange ID.
const HeaderRequestID = "X-Request-ID"

// Config configures an Executor. Only BaseURL is required.
type Config struct {
	BaseURL string

	// Timeout applies to descriptions that set none. Zero means no limit.
	Timeout time.Duration

	Headers   map[string]string
	UserAgent string

	// Locale is an Accept-Language value selecting the language of
	// messages the executor writes itself.
	Locale string

	Logger    zerolog.Logger
	Observer  ports.Observer
	IDs       ports.IDGenerator
	Clock     ports.Clock
	Transport http.RoundTripper

	// MaxResponseBytes caps how much of a response body is read. Larger
	// bodies fail the request. Zero means 16 MiB.
	MaxResponseBytes int64
}

// Variant names the execution context of an Executor.
type Variant string

const (
	VariantBrowser Variant = "browser"
	VariantServer  Variant = "server"
)

// Executor performs exchanges. It is safe for concurrent use and holds no
// per-request state.
type Executor struct {
	variant   Variant
	base      *url.URL
	client    *http.Client
	timeout   time.Duration
	headers   http.Header
	userAgent string
	lang      language.Tag
	logger    zerolog.Logger
	observer  ports.Observer
	ids       ports.IDGenerator
	clock     ports.Clock
	creds     credentials
	maxBody   int64
}

// credentials attaches whatever identity a variant is allowed to send.
type credentials interface {
	attach(ctx context.Context, req *http.Request, mode request.Credentials, sameOrigin bool)
}

// NewBrowser returns an executor whose credentials are the cookies jar
// holds for each request URL. A nil jar sends no cookies.
func NewBrowser(cfg Config, jar http.CookieJar) (*Executor, error) {
	return newExecutor(VariantBrowser, cfg, &ambient{jar: jar})
}

// NewServer returns an executor that sends only identities forwarded with
// WithIdentity or ForwardIdentity.
func NewServer(cfg Config) (*Executor, error) {
	return newExecutor(VariantServer, cfg, forwarded{})
}

func newExecutor(v Variant, cfg Config, creds credentials) (*Executor, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("fetch: base URL is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("fetch: parse base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("fetch: base URL %q must be http or https", cfg.BaseURL)
	}

	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	headers := make(http.Header, len(cfg.Headers))
	for k, v := range cfg.Headers {
		headers.Set(k, v)
	}

	ex := &Executor{
		variant: v,
		base:    base,
		// Jar stays nil: the client must never store Set-Cookie responses.
		client:    &http.Client{Transport: transport},
		timeout:   cfg.Timeout,
		headers:   headers,
		userAgent: cfg.UserAgent,
		lang:      i18n.Parse(cfg.Locale),
		logger:    cfg.Logger.With().Str("component", "fetch").Str("variant", string(v)).Logger(),
		observer:  cfg.Observer,
		ids:       cfg.IDs,
		clock:     cfg.Clock,
		creds:     creds,
		maxBody:   cfg.MaxResponseBytes,
	}
	if ex.maxBody <= 0 {
		ex.maxBody = maxResponseBody
	}
	if ex.observer == nil {
		ex.observer = ports.NopObserver{}
	}
	if ex.ids == nil {
		ex.ids = idgen.UUID{}
	}
	if ex.clock == nil {
		ex.clock = clock.System{}
	}
	return ex, nil
}

// Variant reports which execution context ex was built for.
func (ex *Executor) Variant() Variant { return ex.variant }

// BaseURL returns the API origin requests are resolved against.
func (ex *Executor) BaseURL() string { return ex.base.String() }

// Execute performs desc and gates a 2xx body on shape. A nil shape decodes
// the body without rule checks.
func Execute[T any](ctx context.Context, ex *Executor, desc request.Description, shape schema.Shape[T]) result.Envelope[T] {
	var data *T
	failure := ex.run(ctx, desc, func(rp reply) *result.Error {
		v, err := decodeBody(ex, rp, shape)
		data = v
		return err
	})
	if failure != nil {
		return result.Fail[T](failure)
	}
	return result.Success(data)
}

// Send performs desc and ignores any 2xx body.
func Send(ctx context.Context, ex *Executor, desc request.Description) result.Envelope[struct{}] {
	failure := ex.run(ctx, desc, func(reply) *result.Error { return nil })
	if failure != nil {
		return result.Fail[struct{}](failure)
	}
	return result.Success[struct{}](nil)
}
