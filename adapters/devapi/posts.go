package devapi

import (
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/memory"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/image"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/post"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/pkg/apierror"
)

type postRequest struct {
	Title      string   `json:"title" validate:"required,max=100"`
	Slug       string   `json:"slug" validate:"omitempty,max=100"`
	CategoryID string   `json:"categoryId"`
	Content    string   `json:"content" validate:"required"`
	Tags       []string `json:"tags" validate:"max=10,dive,required,max=30"`
	Published  bool     `json:"published"`
}

func (p postRequest) draft() post.Draft {
	return post.Draft{
		Title:      p.Title,
		Slug:       p.Slug,
		CategoryID: p.CategoryID,
		Content:    p.Content,
		Tags:       p.Tags,
		Published:  p.Published,
	}
}

// ListPosts returns one page of published posts.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, h.store.Posts(post.Query{
		Page:     parseIntQuery(r, "page", 0),
		Size:     parseIntQuery(r, "size", 10),
		Category: q.Get("categoryId"),
		Tag:      q.Get("tag"),
		Keyword:  q.Get("keyword"),
		Sort:     post.Sort(q.Get("sort")),
	}))
}

// GetPost returns a post by slug and counts the view.
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.Post(chi.URLParam(r, "id"), visitorID(r))
	if err != nil {
		h.fail(w, "post", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// CreatePost publishes a draft sent as JSON or, with a thumbnail, as
// multipart.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	req, thumb, ok := h.readPost(w, r)
	if !ok {
		return
	}
	p, err := h.store.CreatePost(req.draft(), thumb)
	if err != nil {
		h.fail(w, "post", err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// UpdatePost replaces a post.
func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	req, thumb, ok := h.readPost(w, r)
	if !ok {
		return
	}
	p, err := h.store.UpdatePost(chi.URLParam(r, "id"), req.draft(), thumb)
	if err != nil {
		h.fail(w, "post", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeletePost removes a post with its comments.
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeletePost(chi.URLParam(r, "id")); err != nil {
		h.fail(w, "post", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleLike flips the caller's like.
func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	state, err := h.store.ToggleLike(chi.URLParam(r, "id"), visitorID(r))
	if err != nil {
		h.fail(w, "post", err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// readPost decodes a post body. A multipart body may carry a thumbnail,
// which is stored and returned as a URL.
func (h *Handler) readPost(w http.ResponseWriter, r *http.Request) (postRequest, string, bool) {
	var req postRequest
	if !isMultipart(r) {
		return req, "", h.decode(w, r, &req)
	}

	r.Body = http.MaxBytesReader(w, r.Body, image.MaxSize+maxJSONBody)
	if err := r.ParseMultipartForm(image.MaxSize); err != nil {
		apierror.Write(w, apierror.BadRequest("요청 형식이 올바르지 않습니다."))
		return req, "", false
	}
	req = postRequest{
		Title:      r.FormValue("title"),
		Slug:       r.FormValue("slug"),
		CategoryID: r.FormValue("categoryId"),
		Content:    r.FormValue("content"),
		Tags:       r.MultipartForm.Value["tags"],
	}
	req.Published, _ = strconv.ParseBool(r.FormValue("published"))
	if !h.check(w, &req) {
		return req, "", false
	}

	id, ok := h.saveUpload(w, r, "thumbnail", false)
	if !ok {
		return req, "", false
	}
	if id == "" {
		return req, "", true
	}
	return req, h.fileURL(r, id), true
}

// UploadImage stores an image and returns its URL.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, image.MaxSize+maxJSONBody)
	if err := r.ParseMultipartForm(image.MaxSize); err != nil {
		apierror.Write(w, apierror.BadRequest("요청 형식이 올바르지 않습니다."))
		return
	}
	id, ok := h.saveUpload(w, r, "file", true)
	if !ok {
		return
	}
	writeJSON(w, http.StatusCreated, image.Upload{URL: h.fileURL(r, id)})
}

// File serves an uploaded image.
func (h *Handler) File(w http.ResponseWriter, r *http.Request) {
	img, ok := h.store.Image(chi.URLParam(r, "id"))
	if !ok {
		h.fail(w, "file", memory.ErrNotFound)
		return
	}
	w.Header().Set("Content-Type", img.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.Write(img.Content)
}

// saveUpload stores the image in field. A missing optional field yields "".
func (h *Handler) saveUpload(w http.ResponseWriter, r *http.Request, field string, required bool) (string, bool) {
	f, hdr, err := r.FormFile(field)
	if err == http.ErrMissingFile && !required {
		return "", true
	}
	if err != nil {
		writeFieldError(w, field, msgRequired)
		return "", false
	}
	defer f.Close()

	if hdr.Size > image.MaxSize {
		writeFieldError(w, field, "10MB 이하의 이미지만 업로드할 수 있습니다.")
		return "", false
	}
	content, err := io.ReadAll(f)
	if err != nil {
		apierror.Write(w, apierror.BadRequest("파일을 읽을 수 없습니다."))
		return "", false
	}
	ct := hdr.Header.Get("Content-Type")
	if ct == "" || ct == "application/octet-stream" {
		ct = http.DetectContentType(content)
	}
	if !strings.HasPrefix(ct, "image/") {
		writeFieldError(w, field, "이미지 파일만 업로드할 수 있습니다.")
		return "", false
	}
	return h.store.SaveImage(memory.Image{ContentType: ct, Content: content}), true
}

func writeFieldError(w http.ResponseWriter, field, message string) {
	apierror.Write(w, apierror.Validation("입력값을 확인해주세요.").Field(field, message).Build())
}

func isMultipart(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "multipart/form-data"
}
