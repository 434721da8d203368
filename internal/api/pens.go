package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/pentrack/server/internal/imaging"
	"github.com/pentrack/server/internal/model"
	"github.com/pentrack/server/internal/store"
	"github.com/pentrack/server/internal/upload"
	"github.com/pentrack/server/internal/validation"
)

// PensHandler handles pen CRUD and pen photo uploads.
type PensHandler struct {
	DB      *sql.DB
	Uploads *upload.Store
}

// penRequest carries all editable pen fields. Create and full-update share
// it, so both fall back to the same defaults for omitted fields.
type penRequest struct {
	Brand            string   `json:"brand" validate:"required,max=100"`
	Model            string   `json:"model" validate:"max=100"`
	Color            string   `json:"color"`
	NibSize          string   `json:"nib_size"`
	NibMaterial      string   `json:"nib_material"`
	NibType          string   `json:"nib_type"`
	FillSystem       string   `json:"fill_system"`
	DatePurchased    string   `json:"date_purchased"`
	PurchasePrice    *float64 `json:"purchase_price" validate:"omitempty,gte=0"`
	PurchaseLocation string   `json:"purchase_location"`
	Condition        string   `json:"condition"`
	Notes            string   `json:"notes"`
	ImageURL         string   `json:"image_url"`
	Rating           int      `json:"rating"`
	IsDailyCarry     bool     `json:"is_daily_carry"`
	Provenance       string   `json:"provenance"`
	StorageLocation  string   `json:"storage_location"`
}

// normalize produces the fully-populated record that gets persisted.
// Omitted optional fields already hold their documented defaults (empty
// string, false, nil price); the rating is clamped to 0..5 where 0 means
// unrated. An unset purchase_price stays NULL, distinct from a free pen at 0.
func (req *penRequest) normalize() *model.Pen {
	rating := req.Rating
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}

	return &model.Pen{
		Brand:            req.Brand,
		Model:            req.Model,
		Color:            req.Color,
		NibSize:          req.NibSize,
		NibMaterial:      req.NibMaterial,
		NibType:          req.NibType,
		FillSystem:       req.FillSystem,
		DatePurchased:    req.DatePurchased,
		PurchasePrice:    req.PurchasePrice,
		PurchaseLocation: req.PurchaseLocation,
		Condition:        req.Condition,
		Notes:            req.Notes,
		ImageURL:         req.ImageURL,
		Rating:           rating,
		IsDailyCarry:     req.IsDailyCarry,
		Provenance:       req.Provenance,
		StorageLocation:  req.StorageLocation,
	}
}

// List handles GET /api/pens.
func (h *PensHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	pens, err := store.ListPens(r.Context(), h.DB, claims.UserID)
	if err != nil {
		storeError(w, err, "failed to list pens")
		return
	}
	if pens == nil {
		pens = []model.Pen{}
	}
	jsonResponse(w, http.StatusOK, pens)
}

// Create handles POST /api/pens.
func (h *PensHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req penRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.Struct(&req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	pen, err := store.CreatePen(r.Context(), h.DB, claims.UserID, req.normalize())
	if err != nil {
		storeError(w, err, "failed to create pen")
		return
	}

	jsonResponse(w, http.StatusCreated, pen)
}

// Get handles GET /api/pens/{id}.
func (h *PensHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid pen id")
		return
	}

	pen, err := store.GetPen(r.Context(), h.DB, claims.UserID, id)
	if err != nil {
		storeError(w, err, "failed to get pen")
		return
	}
	if pen == nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	jsonResponse(w, http.StatusOK, pen)
}

// Update handles PUT /api/pens/{id}. Full-replace semantics: every editable
// field is overwritten and updated_at refreshed. current_ink is untouched;
// it only changes through ink history.
func (h *PensHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid pen id")
		return
	}

	var req penRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.Struct(&req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	pen, err := store.UpdatePen(r.Context(), h.DB, claims.UserID, id, req.normalize())
	if err != nil {
		storeError(w, err, "failed to update pen")
		return
	}

	jsonResponse(w, http.StatusOK, pen)
}

// Delete handles DELETE /api/pens/{id}. Ink history, tags, maintenance
// entries and writing samples go with the pen.
func (h *PensHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid pen id")
		return
	}

	if err := store.DeletePen(r.Context(), h.DB, claims.UserID, id); err != nil {
		storeError(w, err, "failed to delete pen")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "pen deleted"})
}

// UploadImage handles PUT /api/pens/{id}/image.
func (h *PensHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid pen id")
		return
	}

	// Verify ownership before accepting the upload.
	pen, err := store.GetPen(r.Context(), h.DB, claims.UserID, id)
	if err != nil {
		storeError(w, err, "failed to get pen")
		return
	}
	if pen == nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	img, ok := readImageUpload(w, r)
	if !ok {
		return
	}

	url, err := h.Uploads.Save(img)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save image")
		return
	}

	if err := store.SetPenImageURL(r.Context(), h.DB, claims.UserID, id, url); err != nil {
		storeError(w, err, "failed to save image")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"image_url": url})
}

// maxUploadBytes caps multipart image uploads at 10 MB.
const maxUploadBytes = 10 << 20

// readImageUpload parses the multipart "image" field and runs it through the
// imaging pipeline. Writes the error response itself on failure.
func readImageUpload(w http.ResponseWriter, r *http.Request) (*imaging.Processed, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return nil, false
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return nil, false
	}
	defer file.Close()

	img, err := imaging.Process(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return img, true
}
