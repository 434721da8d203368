package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/pentrack/server/internal/model"
	"github.com/pentrack/server/internal/store"
	"github.com/pentrack/server/internal/validation"
)

// InkBottlesHandler handles the ink catalog.
type InkBottlesHandler struct {
	DB *sql.DB
}

type inkBottleRequest struct {
	Name             string   `json:"name" validate:"required,max=200"`
	Brand            string   `json:"brand" validate:"max=100"`
	ColorDescription string   `json:"color_description"`
	Type             string   `json:"type"`
	BottleSizeML     *float64 `json:"bottle_size_ml" validate:"omitempty,gte=0"`
	RemainingPct     *int     `json:"remaining_pct" validate:"omitempty,gte=0,lte=100"`
	Notes            string   `json:"notes"`
	SwatchURL        string   `json:"swatch_url"`
}

func (req *inkBottleRequest) toModel() *model.InkBottle {
	remaining := 100
	if req.RemainingPct != nil {
		remaining = *req.RemainingPct
	}
	return &model.InkBottle{
		Name:             req.Name,
		Brand:            req.Brand,
		ColorDescription: req.ColorDescription,
		Type:             req.Type,
		BottleSizeML:     req.BottleSizeML,
		RemainingPct:     remaining,
		Notes:            req.Notes,
		SwatchURL:        req.SwatchURL,
	}
}

// List handles GET /api/ink-catalog.
func (h *InkBottlesHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	bottles, err := store.ListInkBottles(r.Context(), h.DB, claims.UserID)
	if err != nil {
		storeError(w, err, "failed to list ink bottles")
		return
	}
	if bottles == nil {
		bottles = []model.InkBottle{}
	}
	jsonResponse(w, http.StatusOK, bottles)
}

// Create handles POST /api/ink-catalog.
func (h *InkBottlesHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req inkBottleRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.Struct(&req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	bottle, err := store.CreateInkBottle(r.Context(), h.DB, claims.UserID, req.toModel())
	if err != nil {
		storeError(w, err, "failed to create ink bottle")
		return
	}

	jsonResponse(w, http.StatusCreated, bottle)
}

// Get handles GET /api/ink-catalog/{id}.
func (h *InkBottlesHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid ink bottle id")
		return
	}

	bottle, err := store.GetInkBottle(r.Context(), h.DB, claims.UserID, id)
	if err != nil {
		storeError(w, err, "failed to get ink bottle")
		return
	}
	if bottle == nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	jsonResponse(w, http.StatusOK, bottle)
}

// Update handles PUT /api/ink-catalog/{id}: full-replace. A null
// bottle_size_ml clears the stored size.
func (h *InkBottlesHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid ink bottle id")
		return
	}

	var req inkBottleRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.Struct(&req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	bottle, err := store.UpdateInkBottle(r.Context(), h.DB, claims.UserID, id, req.toModel())
	if err != nil {
		storeError(w, err, "failed to update ink bottle")
		return
	}

	jsonResponse(w, http.StatusOK, bottle)
}

// Patch handles PATCH /api/ink-catalog/{id}: merge-on-undefined. Omitted
// fields keep their stored values; clearing bottle_size_ml requires PUT.
func (h *InkBottlesHandler) Patch(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid ink bottle id")
		return
	}

	var patch store.InkBottlePatch
	if err := decodeJSON(r, &patch); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if patch.RemainingPct != nil && (*patch.RemainingPct < 0 || *patch.RemainingPct > 100) {
		jsonError(w, http.StatusBadRequest, "remaining_pct must be between 0 and 100")
		return
	}
	if patch.Name != nil && *patch.Name == "" {
		jsonError(w, http.StatusBadRequest, "name is required")
		return
	}

	bottle, err := store.PatchInkBottle(r.Context(), h.DB, claims.UserID, id, &patch)
	if err != nil {
		storeError(w, err, "failed to update ink bottle")
		return
	}

	jsonResponse(w, http.StatusOK, bottle)
}

// Delete handles DELETE /api/ink-catalog/{id}.
func (h *InkBottlesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid ink bottle id")
		return
	}

	if err := store.DeleteInkBottle(r.Context(), h.DB, claims.UserID, id); err != nil {
		storeError(w, err, "failed to delete ink bottle")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "ink bottle deleted"})
}
