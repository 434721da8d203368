package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/pentrack/server/internal/store"
	"github.com/pentrack/server/internal/tags"
)

// TagsHandler handles pen tag management and the autocomplete list.
type TagsHandler struct {
	DB *sql.DB
}

type tagRequest struct {
	Tag string `json:"tag"`
}

type replaceTagsRequest struct {
	Tags []string `json:"tags"`
}

// ListForPen handles GET /api/pens/{id}/tags.
func (h *TagsHandler) ListForPen(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	penID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid pen id")
		return
	}

	list, err := store.ListPenTags(r.Context(), h.DB, claims.UserID, penID)
	if err != nil {
		storeError(w, err, "failed to list tags")
		return
	}
	if list == nil {
		list = []string{}
	}
	jsonResponse(w, http.StatusOK, list)
}

// Add handles POST /api/pens/{id}/tags. Adding an existing tag is a no-op.
func (h *TagsHandler) Add(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	penID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid pen id")
		return
	}

	var req tagRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tag := tags.Normalize(req.Tag)
	if tag == "" {
		jsonError(w, http.StatusBadRequest, "tag is required")
		return
	}

	if err := store.AddPenTag(r.Context(), h.DB, claims.UserID, penID, tag); err != nil {
		storeError(w, err, "failed to add tag")
		return
	}

	jsonResponse(w, http.StatusCreated, map[string]string{"tag": tag})
}

// Replace handles PUT /api/pens/{id}/tags, swapping the full tag set.
func (h *TagsHandler) Replace(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	penID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid pen id")
		return
	}

	var req replaceTagsRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	normalized := make([]string, 0, len(req.Tags))
	for _, t := range req.Tags {
		if nt := tags.Normalize(t); nt != "" {
			normalized = append(normalized, nt)
		}
	}

	if err := store.ReplacePenTags(r.Context(), h.DB, claims.UserID, penID, normalized); err != nil {
		storeError(w, err, "failed to replace tags")
		return
	}

	list, err := store.ListPenTags(r.Context(), h.DB, claims.UserID, penID)
	if err != nil {
		storeError(w, err, "failed to list tags")
		return
	}
	if list == nil {
		list = []string{}
	}
	jsonResponse(w, http.StatusOK, list)
}

// Remove handles DELETE /api/pens/{id}/tags/{tag}.
func (h *TagsHandler) Remove(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	penID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid pen id")
		return
	}

	tag := tags.Normalize(r.PathValue("tag"))
	if tag == "" {
		jsonError(w, http.StatusBadRequest, "tag is required")
		return
	}

	if err := store.RemovePenTag(r.Context(), h.DB, claims.UserID, penID, tag); err != nil {
		storeError(w, err, "failed to remove tag")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "tag removed"})
}

// ListAll handles GET /api/tags: the user's distinct tags, for autocomplete.
func (h *TagsHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	list, err := store.ListAllTags(r.Context(), h.DB, claims.UserID)
	if err != nil {
		storeError(w, err, "failed to list tags")
		return
	}
	if list == nil {
		list = []string{}
	}
	jsonResponse(w, http.StatusOK, list)
}
