package e2e

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"testing"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/devapi"
)

// newJar returns a cookie jar holding session for baseURL, or an empty jar.
func newJar(t *testing.T, baseURL, session string) http.CookieJar {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	if session != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			t.Fatalf("parse %s: %v", baseURL, err)
		}
		jar.SetCookies(u, []*http.Cookie{{Name: devapi.SessionCookie, Value: session}})
	}
	return jar
}
