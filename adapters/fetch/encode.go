package fetch

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/request"
)

// encodeBody serializes a description body. A nil body yields nil data and
// no content type.
func encodeBody(b request.Body) ([]byte, string, error) {
	switch body := b.(type) {
	case nil:
		return nil, "", nil
	case request.JSONBody:
		data, err := json.Marshal(body.Value)
		if err != nil {
			return nil, "", fmt.Errorf("marshal request: %w", err)
		}
		return data, "application/json", nil
	case request.Multipart:
		return encodeMultipart(body)
	default:
		return nil, "", fmt.Errorf("unsupported body %T", b)
	}
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func encodeMultipart(m request.Multipart) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range m.Fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", f.Name, err)
		}
	}
	for _, f := range m.Files {
		if f.Field == "" {
			return nil, "", fmt.Errorf("file %q has no field name", f.Name)
		}
		contentType := f.ContentType
		if contentType == "" {
			contentType = http.DetectContentType(f.Content)
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(f.Field), quoteEscaper.Replace(f.Name)))
		h.Set("Content-Type", contentType)

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("create part %s: %w", f.Field, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, "", fmt.Errorf("write part %s: %w", f.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

// resolve builds the target URL. Absolute http(s) paths are used as given;
// anything else is appended to the base URL.
func (ex *Executor) resolve(desc request.Description) (*url.URL, error) {
	p := desc.Path()
	raw := p
	if !strings.HasPrefix(p, "http://") && !strings.HasPrefix(p, "https://") {
		if !strings.HasPrefix(p, "/") {
			p = "/" + p
		}
		raw = ex.base.String() + p
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse target %q: %w", desc.Path(), err)
	}

	if extra := desc.Query(); len(extra) > 0 {
		q := u.Query()
		for k, vs := range extra {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u, nil
}

// decorate sets protocol headers, then configured headers, then the
// description's own headers, each layer overriding the previous one.
func (ex *Executor) decorate(req *http.Request, desc request.Description, contentType, requestID string) {
	h := req.Header
	h.Set("Accept", "application/json")
	h.Set("Accept-Language", ex.lang.String())
	if ex.userAgent != "" {
		h.Set("User-Agent", ex.userAgent)
	}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}

	switch desc.Cache() {
	case request.CacheNoCache:
		h.Set("Cache-Control", "no-cache")
		h.Set("Pragma", "no-cache")
	case request.CacheNoStore:
		h.Set("Cache-Control", "no-store")
	case request.CacheForceCache:
		h.Set("Cache-Control", "max-stale")
	}

	for k, vs := range ex.headers {
		h[k] = append([]string(nil), vs...)
	}
	for k, vs := range desc.Header() {
		h.Del(k)
		for _, v := range vs {
			h.Add(k, v)
		}
	}
	h.Set(HeaderRequestID, requestID)
}

// sameOrigin compares scheme, host and effective port.
func sameOrigin(a, b *url.URL) bool {
	return strings.EqualFold(a.Scheme, b.Scheme) &&
		strings.EqualFold(a.Hostname(), b.Hostname()) &&
		effectivePort(a) == effectivePort(b)
}

func effectivePort(u *url.URL) string {
	if p := u.Port(); p != "" {
		return p
	}
	if strings.EqualFold(u.Scheme, "https") {
		return "443"
	}
	return "80"
}
