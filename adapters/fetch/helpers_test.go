package fetch_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/clock"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/fetch"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/idgen"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/ports"
)

type recorder struct {
	mu       sync.Mutex
	started  []string
	finished []ports.RequestOutcome
}

func (r *recorder) RequestStarted(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = append(r.started, name)
}

func (r *recorder) RequestFinished(o ports.RequestOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished = append(r.finished, o)
}

func (r *recorder) last(t *testing.T) ports.RequestOutcome {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.finished) == 0 {
		t.Fatal("no finished request recorded")
	}
	return r.finished[len(r.finished)-1]
}

type fixture struct {
	srv  *httptest.Server
	obs  *recorder
	logs *bytes.Buffer
}

func newFixture(t *testing.T, h http.Handler) *fixture {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return &fixture{srv: srv, obs: &recorder{}, logs: &bytes.Buffer{}}
}

func (f *fixture) config() fetch.Config {
	return fetch.Config{
		BaseURL:   f.srv.URL,
		UserAgent: "codemasterpiece-test",
		Locale:    "ko-KR",
		Logger:    zerolog.New(f.logs).Level(zerolog.DebugLevel),
		Observer:  f.obs,
		IDs:       idgen.NewCounter("req-"),
		Clock:     clock.NewStepping(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 10*time.Millisecond),
		Transport: f.srv.Client().Transport,
	}
}

func (f *fixture) browser(t *testing.T, jar http.CookieJar) *fetch.Executor {
	t.Helper()
	ex, err := fetch.NewBrowser(f.config(), jar)
	if err != nil {
		t.Fatalf("NewBrowser: %v", err)
	}
	return ex
}

func (f *fixture) server(t *testing.T) *fetch.Executor {
	t.Helper()
	ex, err := fetch.NewServer(f.config())
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return ex
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}
