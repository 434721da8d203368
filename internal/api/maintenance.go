package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/pentrack/server/internal/model"
	"github.com/pentrack/server/internal/store"
	"github.com/pentrack/server/internal/validation"
)

// MaintenanceHandler handles the per-pen service log.
type MaintenanceHandler struct {
	DB *sql.DB
}

type maintenanceRequest struct {
	Type  string `json:"type" validate:"required,max=100"`
	Notes string `json:"notes"`
	Date  string `json:"date"`
}

// List handles GET /api/pens/{id}/maintenance.
func (h *MaintenanceHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	penID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid pen id")
		return
	}

	entries, err := store.ListMaintenance(r.Context(), h.DB, claims.UserID, penID)
	if err != nil {
		storeError(w, err, "failed to list maintenance log")
		return
	}
	if entries == nil {
		entries = []model.MaintenanceEntry{}
	}
	jsonResponse(w, http.StatusOK, entries)
}

// Add handles POST /api/pens/{id}/maintenance.
func (h *MaintenanceHandler) Add(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	penID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid pen id")
		return
	}

	var req maintenanceRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.Struct(&req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := store.AddMaintenance(r.Context(), h.DB, claims.UserID, penID, req.Type, req.Notes, req.Date)
	if err != nil {
		storeError(w, err, "failed to add maintenance entry")
		return
	}

	jsonResponse(w, http.StatusCreated, entry)
}

// Delete handles DELETE /api/maintenance/{id}.
func (h *MaintenanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	entryID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid maintenance entry id")
		return
	}

	if err := store.DeleteMaintenance(r.Context(), h.DB, claims.UserID, entryID); err != nil {
		storeError(w, err, "failed to delete maintenance entry")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "maintenance entry deleted"})
}
