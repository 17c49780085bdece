package fetch

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/request"
)

// Identity is the upstream caller's credentials as received by a server
// rendering on their behalf. The zero Identity is an explicit anonymous
// caller.
type Identity struct {
	Cookie        string
	Authorization string
}

type identityKey struct{}

// WithIdentity returns a context that forwards id on server executors.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the forwarded identity, if any.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// IdentityFromRequest extracts the identity headers of an incoming request.
func IdentityFromRequest(r *http.Request) Identity {
	return Identity{
		Cookie:        r.Header.Get("Cookie"),
		Authorization: r.Header.Get("Authorization"),
	}
}

// ForwardIdentity is middleware that forwards each incoming request's
// identity to server executors used while handling it.
func ForwardIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithIdentity(r.Context(), IdentityFromRequest(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ambient reads cookies from a browser-like jar. It never calls SetCookies.
type ambient struct {
	jar http.CookieJar
}

func (a *ambient) attach(_ context.Context, req *http.Request, mode request.Credentials, same bool) {
	if a.jar == nil || !permits(mode, same) {
		return
	}
	for _, c := range a.jar.Cookies(req.URL) {
		req.AddCookie(c)
	}
}

// forwarded sends only an identity found in the context, and only to the
// API origin.
type forwarded struct{}

func (forwarded) attach(ctx context.Context, req *http.Request, mode request.Credentials, same bool) {
	if mode == request.CredentialsOmit {
		return
	}
	log := zerolog.Ctx(ctx)

	id, ok := IdentityFrom(ctx)
	if !ok {
		log.Warn().Msg("identity not forwarded, sending request anonymously")
		return
	}
	if !same {
		log.Debug().Str("host", req.URL.Host).Msg("identity withheld from foreign origin")
		return
	}
	if id.Cookie != "" {
		req.Header.Set("Cookie", id.Cookie)
	}
	if id.Authorization != "" {
		req.Header.Set("Authorization", id.Authorization)
	}
}

func permits(mode request.Credentials, same bool) bool {
	switch mode {
	case request.CredentialsInclude:
		return true
	case request.CredentialsSameOrigin:
		return same
	default:
		return false
	}
}
