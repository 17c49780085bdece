package devapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/category"
)

type createCategoryRequest struct {
	Name     string        `json:"name" validate:"required,max=50"`
	Type     category.Type `json:"type" validate:"oneof=FOLDER LINK"`
	ParentID string        `json:"parentId"`
	Link     string        `json:"link" validate:"omitempty,url"`
}

type updateCategoryRequest struct {
	Name string `json:"name" validate:"omitempty,max=50"`
	Link string `json:"link" validate:"omitempty,url"`
}

type moveCategoryRequest struct {
	ID       string `json:"categoryId" validate:"required"`
	ParentID string `json:"newParentId"`
	Index    int    `json:"newIndex" validate:"gte=0"`
}

// ListCategories returns the whole tree.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Categories())
}

// CreateCategory adds a category.
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.store.CreateCategory(category.Create{
		Name:     req.Name,
		Type:     req.Type,
		ParentID: req.ParentID,
		Link:     req.Link,
	})
	if err != nil {
		h.fail(w, "category", err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// UpdateCategory renames a category or changes its link.
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req updateCategoryRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.store.UpdateCategory(chi.URLParam(r, "id"), category.Update{Name: req.Name, Link: req.Link})
	if err != nil {
		h.fail(w, "category", err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// DeleteCategory removes a category and its subtree.
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteCategory(chi.URLParam(r, "id")); err != nil {
		h.fail(w, "category", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MoveCategory reparents or reorders a category and returns the new tree.
func (h *Handler) MoveCategory(w http.ResponseWriter, r *http.Request) {
	var req moveCategoryRequest
	if !h.decode(w, r, &req) {
		return
	}
	tree, err := h.store.MoveCategory(category.Move{ID: req.ID, ParentID: req.ParentID, Index: req.Index})
	if err != nil {
		h.fail(w, "category", err)
		return
	}
	writeJSON(w, http.StatusOK, tree)
}
