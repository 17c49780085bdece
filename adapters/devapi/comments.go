package devapi

import (
	"net/http"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/comment"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/guestbook"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/pkg/apierror"
)

type commentRequest struct {
	Content       string `json:"content" validate:"required,max=1000"`
	ParentID      string `json:"parentId"`
	Nickname      string `json:"nickname"`
	GuestPassword string `json:"guestPassword"`
}

type editRequest struct {
	Content       string `json:"content" validate:"required,max=1000"`
	GuestPassword string `json:"guestPassword"`
}

type deleteRequest struct {
	GuestPassword string `json:"guestPassword"`
}

type entryRequest struct {
	Content       string `json:"content" validate:"required,max=500"`
	Nickname      string `json:"nickname"`
	GuestPassword string `json:"guestPassword"`
}

// ListComments returns a post's thread.
func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	thread, err := h.store.Comments(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "post", err)
		return
	}
	writeJSON(w, http.StatusOK, thread)
}

// CreateComment adds a comment as the session user or as a guest.
func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if !h.decode(w, r, &req) {
		return
	}
	actor := currentUser(r)
	if actor == nil && !checkGuest(w, req.Nickname, req.GuestPassword) {
		return
	}
	c, err := h.store.CreateComment(comment.Draft{
		PostID:        chi.URLParam(r, "id"),
		ParentID:      req.ParentID,
		Content:       req.Content,
		Nickname:      req.Nickname,
		GuestPassword: req.GuestPassword,
	}, actor)
	if err != nil {
		h.fail(w, "comment", err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// UpdateComment edits a comment.
func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	var req editRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.store.UpdateComment(chi.URLParam(r, "id"),
		comment.Edit{Content: req.Content, GuestPassword: req.GuestPassword}, currentUser(r))
	if err != nil {
		h.fail(w, "comment", err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// DeleteComment deletes a comment. Guests must send their password.
func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if !h.decode(w, r, &req) {
		return
	}
	actor := currentUser(r)
	if actor == nil && req.GuestPassword == "" {
		writeFieldError(w, "guestPassword", msgRequired)
		return
	}
	if err := h.store.DeleteComment(chi.URLParam(r, "id"), req.GuestPassword, actor); err != nil {
		h.fail(w, "comment", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListGuestbook returns one page of entries.
func (h *Handler) ListGuestbook(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Guestbook(parseIntQuery(r, "page", 0), parseIntQuery(r, "size", 10)))
}

// CreateEntry signs the guestbook.
func (h *Handler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if !h.decode(w, r, &req) {
		return
	}
	actor := currentUser(r)
	if actor == nil && !checkGuest(w, req.Nickname, req.GuestPassword) {
		return
	}
	e, err := h.store.CreateEntry(guestbook.Draft{
		Content:       req.Content,
		Nickname:      req.Nickname,
		GuestPassword: req.GuestPassword,
	}, actor)
	if err != nil {
		h.fail(w, "entry", err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

// DeleteEntry removes an entry, authorized like DeleteComment.
func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if !h.decode(w, r, &req) {
		return
	}
	actor := currentUser(r)
	if actor == nil && req.GuestPassword == "" {
		writeFieldError(w, "guestPassword", msgRequired)
		return
	}
	if err := h.store.DeleteEntry(chi.URLParam(r, "id"), req.GuestPassword, actor); err != nil {
		h.fail(w, "entry", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// checkGuest validates the identity fields a guest must supply.
func checkGuest(w http.ResponseWriter, nickname, password string) bool {
	b := apierror.Validation("입력값을 확인해주세요.")
	failed := false
	if n := utf8.RuneCountInString(nickname); n < 2 || n > 20 {
		b.Field("nickname", msgNicknameLength)
		failed = true
	}
	if utf8.RuneCountInString(password) < 4 {
		b.Field("guestPassword", msgPasswordLength)
		failed = true
	}
	if failed {
		apierror.Write(w, b.Build())
	}
	return !failed
}
