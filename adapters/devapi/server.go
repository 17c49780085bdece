// Package devapi serves the content API from an in-memory store. It backs
// end-to-end tests and the local development server; its error bodies use
// the same wire format as the production API.
package devapi

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	apihttp "github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/http"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/memory"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/core/schema"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/user"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/pkg/apierror"
)

// SessionCookie carries the session token. A "Bearer <token>"
// Authorization header is accepted as well.
const SessionCookie = "SESSION"

// maxJSONBody bounds request bodies that are not uploads.
const maxJSONBody = 1 << 20

// Handler serves the content API.
type Handler struct {
	store     *memory.Content
	engine    *schema.Engine
	logger    zerolog.Logger
	publicURL string
	latency   time.Duration
}

// Deps contains dependencies for the handler.
type Deps struct {
	Store  *memory.Content
	Logger zerolog.Logger

	// PublicURL prefixes the URLs of uploaded files. When empty the
	// request's own scheme and host are used.
	PublicURL string

	// Latency delays every API response; useful for exercising timeouts.
	Latency time.Duration
}

// New creates a handler over deps.Store.
func New(deps Deps) *Handler {
	return &Handler{
		store:     deps.Store,
		engine:    schema.Default(),
		logger:    deps.Logger.With().Str("component", "devapi").Logger(),
		publicURL: strings.TrimRight(deps.PublicURL, "/"),
		latency:   deps.Latency,
	}
}

// Router returns the API router, mounted under /api/v1.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(apihttp.NewLoggingMiddleware(h.logger))
	r.Use(middleware.Recoverer)
	r.Use(h.SessionMiddleware)
	if h.latency > 0 {
		r.Use(h.delay)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/auth/me", h.Me)

		r.Get("/categories", h.ListCategories)
		r.Get("/posts", h.ListPosts)
		r.Get("/posts/{id}", h.GetPost)
		r.Post("/posts/{id}/like", h.ToggleLike)
		r.Get("/posts/{id}/comments", h.ListComments)
		r.Post("/posts/{id}/comments", h.CreateComment)
		r.Patch("/comments/{id}", h.UpdateComment)
		r.Post("/comments/{id}/delete", h.DeleteComment)
		r.Get("/guestbook", h.ListGuestbook)
		r.Post("/guestbook", h.CreateEntry)
		r.Post("/guestbook/{id}/delete", h.DeleteEntry)
		r.Post("/analytics/views", h.RecordView)
		r.Get("/files/{id}", h.File)

		r.Group(func(r chi.Router) {
			r.Use(h.RequireAdmin)

			r.Post("/categories", h.CreateCategory)
			r.Patch("/categories/move", h.MoveCategory)
			r.Patch("/categories/{id}", h.UpdateCategory)
			r.Delete("/categories/{id}", h.DeleteCategory)
			r.Post("/posts", h.CreatePost)
			r.Put("/posts/{id}", h.UpdatePost)
			r.Delete("/posts/{id}", h.DeletePost)
			r.Post("/images", h.UploadImage)
			r.Get("/analytics/summary", h.AnalyticsSummary)
		})
	})

	return r
}

// -----------------------------------------------------------------------------
// Sessions
// -----------------------------------------------------------------------------

type ctxKey string

const ctxUserKey ctxKey = "user"

// SessionMiddleware resolves the session cookie or bearer token. Unknown
// tokens are treated as no session.
func (h *Handler) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if c, err := r.Cookie(SessionCookie); err == nil {
			token = c.Value
		} else if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
		if token != "" {
			if u, ok := h.store.Session(token); ok {
				r = r.WithContext(context.WithValue(r.Context(), ctxUserKey, u))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects anonymous callers with 401 and members with 403.
func (h *Handler) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u := currentUser(r)
		switch {
		case u == nil:
			apierror.Write(w, apierror.Unauthorized("로그인이 필요합니다."))
		case !u.IsAdmin():
			apierror.Write(w, apierror.Forbidden("관리자만 사용할 수 있습니다."))
		default:
			next.ServeHTTP(w, r)
		}
	})
}

func (h *Handler) delay(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(h.latency):
			next.ServeHTTP(w, r)
		case <-r.Context().Done():
		}
	})
}

func currentUser(r *http.Request) *user.User {
	u, ok := r.Context().Value(ctxUserKey).(user.User)
	if !ok {
		return nil
	}
	return &u
}

// visitorID identifies the caller for likes: the session user, else the
// client address.
func visitorID(r *http.Request) string {
	if u := currentUser(r); u != nil {
		return "user:" + u.ID
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "addr:" + host
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

// decode reads a JSON body into v and runs its validate tags. An empty body
// decodes as {}. It writes the error response itself and reports false on
// failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxJSONBody))
	if err != nil {
		apierror.Write(w, apierror.BadRequest("요청 본문을 읽을 수 없습니다."))
		return false
	}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := json.Unmarshal(data, v); err != nil {
			h.logger.Debug().Err(err).Str("path", r.URL.Path).Msg("undecodable body")
			apierror.Write(w, apierror.BadRequest("요청 형식이 올바르지 않습니다."))
			return false
		}
	}
	return h.check(w, v)
}

// check runs the validate tags of v and writes a 422 listing every field
// that failed.
func (h *Handler) check(w http.ResponseWriter, v any) bool {
	vs := h.engine.Check(v)
	if len(vs) == 0 {
		return true
	}
	b := apierror.Validation("입력값을 확인해주세요.")
	for _, viol := range vs {
		b.Field(viol.Path, fieldMessage(viol))
	}
	apierror.Write(w, b.Build())
	return false
}

// fail maps a store error to its response.
func (h *Handler) fail(w http.ResponseWriter, resource string, err error) {
	switch {
	case errors.Is(err, memory.ErrNotFound):
		apierror.Write(w, apierror.NotFound(resource, notFoundMessage(resource)))
	case errors.Is(err, memory.ErrConflict):
		apierror.Write(w, apierror.Conflict(resource, "이미 존재합니다."))
	case errors.Is(err, memory.ErrWrongPassword):
		apierror.Write(w, apierror.Validation("비밀번호가 올바르지 않습니다.").
			Field("guestPassword", msgWrongPassword).Build())
	case errors.Is(err, memory.ErrNotAuthor):
		apierror.Write(w, apierror.Forbidden("작성자만 수정하거나 삭제할 수 있습니다."))
	default:
		h.logger.Error().Err(err).Str("resource", resource).Msg("store failure")
		apierror.Write(w, apierror.Internal("서버 오류가 발생했습니다."))
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		apierror.Write(w, apierror.Internal("서버 오류가 발생했습니다."))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

func parseIntQuery(r *http.Request, name string, defaultVal int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func (h *Handler) fileURL(r *http.Request, id string) string {
	base := h.publicURL
	if base == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + r.Host
	}
	return base + "/api/v1/files/" + id
}
