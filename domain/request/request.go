// Package request provides the immutable request description built by feature
// call sites and consumed by the executor.
package request

import (
	"net/http"
	"net/url"
	"time"
)

// Credentials selects whether ambient or forwarded credentials go out.
type Credentials uint8

const (
	// CredentialsSameOrigin attaches credentials only when the target shares
	// the executor's base origin.
	CredentialsSameOrigin Credentials = iota
	CredentialsInclude
	CredentialsOmit
)

func (c Credentials) String() string {
	switch c {
	case CredentialsInclude:
		return "include"
	case CredentialsOmit:
		return "omit"
	default:
		return "same-origin"
	}
}

// Cache is a caching hint forwarded as request directives.
type Cache uint8

const (
	CacheDefault Cache = iota
	CacheNoCache
	CacheNoStore
	CacheForceCache
)

func (c Cache) String() string {
	switch c {
	case CacheNoCache:
		return "no-cache"
	case CacheNoStore:
		return "no-store"
	case CacheForceCache:
		return "force-cache"
	default:
		return "default"
	}
}

// Description is one network exchange as the call site wants it.
// It is immutable once built; accessors hand out copies.
type Description struct {
	method      string
	path        string
	name        string
	query       url.Values
	headers     http.Header
	body        Body
	credentials Credentials
	cache       Cache
	keepalive   bool
	timeout     time.Duration
}

// Option configures a Description under construction.
type Option func(*Description)

// New builds a Description. Method defaults to GET.
func New(method, path string, opts ...Option) Description {
	if method == "" {
		method = http.MethodGet
	}
	d := Description{
		method:      method,
		path:        path,
		credentials: CredentialsInclude,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// Get is shorthand for New(http.MethodGet, ...).
func Get(path string, opts ...Option) Description {
	return New(http.MethodGet, path, opts...)
}

// Post is shorthand for New(http.MethodPost, ...).
func Post(path string, opts ...Option) Description {
	return New(http.MethodPost, path, opts...)
}

// Put is shorthand for New(http.MethodPut, ...).
func Put(path string, opts ...Option) Description {
	return New(http.MethodPut, path, opts...)
}

// Patch is shorthand for New(http.MethodPatch, ...).
func Patch(path string, opts ...Option) Description {
	return New(http.MethodPatch, path, opts...)
}

// Delete is shorthand for New(http.MethodDelete, ...).
func Delete(path string, opts ...Option) Description {
	return New(http.MethodDelete, path, opts...)
}

// WithJSON sets a JSON body, replacing any earlier body. Payloads, maps
// and slices are copied, so later changes to v do not reach the
// description.
func WithJSON(v any) Option {
	v = cloneValue(v)
	return func(d *Description) { d.body = JSONBody{Value: cloneValue(v)} }
}

// WithMultipart sets a multipart body, replacing any earlier body.
func WithMultipart(m Multipart) Option {
	return func(d *Description) { d.body = m.clone() }
}

// WithQuery merges query parameters.
func WithQuery(q url.Values) Option {
	return func(d *Description) {
		if d.query == nil {
			d.query = url.Values{}
		}
		for k, vs := range q {
			for _, v := range vs {
				d.query.Add(k, v)
			}
		}
	}
}

// WithHeader sets a request header.
func WithHeader(key, value string) Option {
	return func(d *Description) {
		if d.headers == nil {
			d.headers = http.Header{}
		}
		d.headers.Set(key, value)
	}
}

// WithCredentials selects the credential mode. The default is include.
func WithCredentials(c Credentials) Option {
	return func(d *Description) { d.credentials = c }
}

// WithCache sets the caching hint.
func WithCache(c Cache) Option {
	return func(d *Description) { d.cache = c }
}

// WithKeepalive lets the exchange outlive the caller's cancellation.
// The timeout still applies.
func WithKeepalive() Option {
	return func(d *Description) { d.keepalive = true }
}

// WithTimeout bounds the exchange. Zero falls back to the executor default.
func WithTimeout(t time.Duration) Option {
	return func(d *Description) { d.timeout = t }
}

// Named labels the exchange for logs and metrics, e.g. "comments.delete".
func Named(name string) Option {
	return func(d *Description) { d.name = name }
}

func (d Description) Method() string { return d.method }
func (d Description) Path() string   { return d.path }

// Name returns the label, falling back to "METHOD path".
func (d Description) Name() string {
	if d.name != "" {
		return d.name
	}
	return d.method + " " + d.path
}

func (d Description) Query() url.Values {
	if d.query == nil {
		return nil
	}
	q := make(url.Values, len(d.query))
	for k, vs := range d.query {
		q[k] = append([]string(nil), vs...)
	}
	return q
}

func (d Description) Header() http.Header {
	if d.headers == nil {
		return http.Header{}
	}
	return d.headers.Clone()
}

// Body returns nil when the request carries no body. The returned body is a
// copy.
func (d Description) Body() Body {
	switch b := d.body.(type) {
	case JSONBody:
		return JSONBody{Value: cloneValue(b.Value)}
	case Multipart:
		return b.clone()
	}
	return d.body
}

func (d Description) Credentials() Credentials { return d.credentials }
func (d Description) Cache() Cache             { return d.cache }
func (d Description) Keepalive() bool          { return d.keepalive }
func (d Description) Timeout() time.Duration   { return d.timeout }
