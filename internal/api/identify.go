package api

import (
	"net/http"

	"github.com/pentrack/server/internal/identify"
	"github.com/pentrack/server/internal/upload"
)

// IdentifyHandler saves a pen photo and asks the vision collaborator for a
// best-effort identification.
type IdentifyHandler struct {
	Uploads    *upload.Store
	Identifier identify.Identifier // nil when no API key is configured
}

type identifyResponse struct {
	ImageURL   string `json:"image_url"`
	Identified bool   `json:"identified"`
	Message    string `json:"message,omitempty"`
	*identify.Guess
}

// Post handles POST /api/identify. Identification failure degrades to
// "image saved, no identification"; the upload itself never depends on the
// vision call succeeding.
func (h *IdentifyHandler) Post(w http.ResponseWriter, r *http.Request) {
	img, ok := readImageUpload(w, r)
	if !ok {
		return
	}

	url, err := h.Uploads.Save(img)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save image")
		return
	}

	if h.Identifier == nil {
		jsonResponse(w, http.StatusOK, identifyResponse{
			ImageURL: url,
			Message:  "image saved; identification is not configured",
		})
		return
	}

	guess, err := h.Identifier.Identify(r.Context(), img.Data, img.MIME)
	if err != nil {
		jsonResponse(w, http.StatusOK, identifyResponse{
			ImageURL: url,
			Message:  "image saved; identification failed",
		})
		return
	}

	jsonResponse(w, http.StatusOK, identifyResponse{
		ImageURL:   url,
		Identified: true,
		Guess:      guess,
	})
}
