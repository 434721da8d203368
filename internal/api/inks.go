package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/pentrack/server/internal/model"
	"github.com/pentrack/server/internal/store"
	"github.com/pentrack/server/internal/validation"
)

// InkHistoryHandler handles the per-pen ink log.
type InkHistoryHandler struct {
	DB *sql.DB
}

type inkEntryRequest struct {
	InkName   string `json:"ink_name" validate:"required,max=200"`
	InkedDate string `json:"inked_date" validate:"required"`
	Notes     string `json:"notes"`
}

// List handles GET /api/pens/{id}/inks.
func (h *InkHistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	penID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid pen id")
		return
	}

	entries, err := store.ListInkEntries(r.Context(), h.DB, claims.UserID, penID)
	if err != nil {
		storeError(w, err, "failed to list ink history")
		return
	}
	if entries == nil {
		entries = []model.InkEntry{}
	}
	jsonResponse(w, http.StatusOK, entries)
}

// Append handles POST /api/pens/{id}/inks. The pen's current_ink is
// recomputed in the same transaction, so a backdated entry leaves a newer
// ink in place.
func (h *InkHistoryHandler) Append(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	penID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid pen id")
		return
	}

	var req inkEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.Struct(&req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := store.AppendInkEntry(r.Context(), h.DB, claims.UserID, penID, req.InkName, req.InkedDate, req.Notes)
	if err != nil {
		storeError(w, err, "failed to add ink entry")
		return
	}

	jsonResponse(w, http.StatusCreated, entry)
}

// Delete handles DELETE /api/inks/{id}.
func (h *InkHistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	entryID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid ink entry id")
		return
	}

	if err := store.DeleteInkEntry(r.Context(), h.DB, claims.UserID, entryID); err != nil {
		storeError(w, err, "failed to delete ink entry")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "ink entry deleted"})
}
