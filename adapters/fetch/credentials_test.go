package fetch_test

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/fetch"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/request"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
)

// cookieEcho reports the Cookie and Authorization headers it received and
// tries to set a cookie of its own.
func cookieEcho(seen *http.Header) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen = r.Header.Clone()
		http.SetCookie(w, &http.Cookie{Name: "planted", Value: "1", Path: "/"})
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestBrowser_CredentialModes(t *testing.T) {
	var apiSeen, otherSeen http.Header
	f := newFixture(t, cookieEcho(&apiSeen))
	other := httptest.NewServer(cookieEcho(&otherSeen))
	defer other.Close()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	apiURL, _ := url.Parse(f.srv.URL)
	jar.SetCookies(apiURL, []*http.Cookie{{Name: "SESSION", Value: "abc", Path: "/"}})

	ex := f.browser(t, jar)

	tests := []struct {
		name       string
		target     string
		mode       request.Credentials
		seen       *http.Header
		wantCookie bool
	}{
		{"include same origin", "/api/v1/auth/me", request.CredentialsInclude, &apiSeen, true},
		{"same-origin same origin", "/api/v1/auth/me", request.CredentialsSameOrigin, &apiSeen, true},
		{"omit", "/api/v1/auth/me", request.CredentialsOmit, &apiSeen, false},
		// The jar scopes cookies by host only, so the other port still matches it.
		{"include foreign origin", other.URL + "/x", request.CredentialsInclude, &otherSeen, true},
		{"same-origin foreign origin", other.URL + "/x", request.CredentialsSameOrigin, &otherSeen, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			*tt.seen = nil
			env := fetch.Send(context.Background(), ex, request.Get(tt.target, request.WithCredentials(tt.mode)))
			if !result.IsSuccess(env) {
				t.Fatalf("err = %v", env.Err())
			}
			got := strings.Contains((*tt.seen).Get("Cookie"), "SESSION=abc")
			if got != tt.wantCookie {
				t.Errorf("cookie sent = %v, want %v (Cookie: %q)", got, tt.wantCookie, (*tt.seen).Get("Cookie"))
			}
		})
	}

	for _, c := range jar.Cookies(apiURL) {
		if c.Name == "planted" {
			t.Error("executor wrote a response cookie into the jar")
		}
	}
}

func TestServer_FailsClosedWithoutIdentity(t *testing.T) {
	var seen http.Header
	f := newFixture(t, cookieEcho(&seen))
	ex := f.server(t)

	env := fetch.Send(context.Background(), ex, request.Get("/api/v1/auth/me"))

	if !result.IsSuccess(env) {
		t.Fatalf("err = %v", env.Err())
	}
	if seen.Get("Cookie") != "" || seen.Get("Authorization") != "" {
		t.Errorf("anonymous request carried credentials: %v", seen)
	}
	if !strings.Contains(f.logs.String(), "identity not forwarded") {
		t.Errorf("missing warning, logs: %s", f.logs.String())
	}
}

func TestServer_ForwardsIdentity(t *testing.T) {
	var seen http.Header
	f := newFixture(t, cookieEcho(&seen))
	ex := f.server(t)

	ctx := fetch.WithIdentity(context.Background(), fetch.Identity{Cookie: "SESSION=xyz", Authorization: "Bearer t"})
	fetch.Send(ctx, ex, request.Get("/api/v1/auth/me"))

	if seen.Get("Cookie") != "SESSION=xyz" || seen.Get("Authorization") != "Bearer t" {
		t.Errorf("forwarded headers = %v", seen)
	}
	if strings.Contains(f.logs.String(), "identity not forwarded") {
		t.Error("forwarded identity must not warn")
	}

	seen = nil
	fetch.Send(ctx, ex, request.Get("/api/v1/auth/me", request.WithCredentials(request.CredentialsOmit)))
	if seen.Get("Cookie") != "" {
		t.Errorf("omit mode sent Cookie %q", seen.Get("Cookie"))
	}
}

func TestServer_WithholdsIdentityFromForeignOrigin(t *testing.T) {
	var apiSeen, otherSeen http.Header
	f := newFixture(t, cookieEcho(&apiSeen))
	other := httptest.NewServer(cookieEcho(&otherSeen))
	defer other.Close()

	ctx := fetch.WithIdentity(context.Background(), fetch.Identity{Cookie: "SESSION=xyz"})
	fetch.Send(ctx, f.server(t), request.Get(other.URL+"/x"))

	if otherSeen.Get("Cookie") != "" {
		t.Errorf("identity leaked to %s: %q", other.URL, otherSeen.Get("Cookie"))
	}
}

func TestForwardIdentity_Middleware(t *testing.T) {
	var seen http.Header
	f := newFixture(t, cookieEcho(&seen))
	ex := f.server(t)

	page := fetch.ForwardIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := fetch.IdentityFrom(r.Context())
		if !ok {
			t.Error("middleware did not forward an identity")
		}
		if id.Cookie != "SESSION=page" {
			t.Errorf("identity cookie = %q", id.Cookie)
		}
		fetch.Send(r.Context(), ex, request.Get("/api/v1/auth/me"))
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/posts/hello", nil)
	req.Header.Set("Cookie", "SESSION=page")
	page.ServeHTTP(httptest.NewRecorder(), req)

	if seen.Get("Cookie") != "SESSION=page" {
		t.Errorf("api saw Cookie %q, want SESSION=page", seen.Get("Cookie"))
	}
}

func TestVariant(t *testing.T) {
	f := newFixture(t, http.NotFoundHandler())
	if v := f.browser(t, nil).Variant(); v != fetch.VariantBrowser {
		t.Errorf("browser variant = %q", v)
	}
	if v := f.server(t).Variant(); v != fetch.VariantServer {
		t.Errorf("server variant = %q", v)
	}
}
