package devapi

import (
	"net/http"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/analytics"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/pkg/apierror"
)

type viewRequest struct {
	Path     string `json:"path" validate:"required,max=2048"`
	Referrer string `json:"referrer" validate:"max=2048"`
}

// Me returns the session user.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	if u == nil {
		apierror.Write(w, apierror.Unauthorized("로그인이 필요합니다."))
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// RecordView stores a page view beacon.
func (h *Handler) RecordView(w http.ResponseWriter, r *http.Request) {
	var req viewRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.store.RecordView(analytics.View{Path: req.Path, Referrer: req.Referrer})
	w.WriteHeader(http.StatusNoContent)
}

// AnalyticsSummary aggregates page views over the requested range.
func (h *Handler) AnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	rng := analytics.Range(r.URL.Query().Get("range"))
	if rng == "" {
		rng = analytics.RangeWeek
	}
	if !rng.Valid() {
		writeFieldError(w, "range", "허용되지 않는 값입니다.")
		return
	}
	writeJSON(w, http.StatusOK, h.store.Summary(rng))
}
