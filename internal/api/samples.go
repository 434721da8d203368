package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/pentrack/server/internal/imaging"
	"github.com/pentrack/server/internal/model"
	"github.com/pentrack/server/internal/store"
	"github.com/pentrack/server/internal/upload"
)

// SamplesHandler handles per-pen writing samples.
type SamplesHandler struct {
	DB      *sql.DB
	Uploads *upload.Store
}

// List handles GET /api/pens/{id}/writing-samples.
func (h *SamplesHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	penID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid pen id")
		return
	}

	samples, err := store.ListWritingSamples(r.Context(), h.DB, claims.UserID, penID)
	if err != nil {
		storeError(w, err, "failed to list writing samples")
		return
	}
	if samples == nil {
		samples = []model.WritingSample{}
	}
	jsonResponse(w, http.StatusOK, samples)
}

// Add handles POST /api/pens/{id}/writing-samples. Multipart form with
// text fields (ink_name, paper, notes) and an optional "image" file.
func (h *SamplesHandler) Add(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	penID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid pen id")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	imageURL := ""
	if file, _, err := r.FormFile("image"); err == nil {
		defer file.Close()
		img, perr := imaging.Process(file)
		if perr != nil {
			jsonError(w, http.StatusBadRequest, perr.Error())
			return
		}
		imageURL, err = h.Uploads.Save(img)
		if err != nil {
			jsonError(w, http.StatusInternalServerError, "failed to save image")
			return
		}
	}

	sample, err := store.AddWritingSample(r.Context(), h.DB, claims.UserID, penID,
		r.FormValue("ink_name"), r.FormValue("paper"), r.FormValue("notes"), imageURL)
	if err != nil {
		storeError(w, err, "failed to add writing sample")
		return
	}

	jsonResponse(w, http.StatusCreated, sample)
}

// Delete handles DELETE /api/writing-samples/{id}.
func (h *SamplesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	sampleID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid writing sample id")
		return
	}

	if err := store.DeleteWritingSample(r.Context(), h.DB, claims.UserID, sampleID); err != nil {
		storeError(w, err, "failed to delete writing sample")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "writing sample deleted"})
}
