package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/pentrack/server/internal/model"
	"github.com/pentrack/server/internal/store"
	"github.com/pentrack/server/internal/validation"
)

// WishlistHandler handles the user's wishlist.
type WishlistHandler struct {
	DB *sql.DB
}

type wishlistRequest struct {
	Brand          string   `json:"brand" validate:"required,max=100"`
	Model          string   `json:"model" validate:"max=100"`
	Notes          string   `json:"notes"`
	URL            string   `json:"url" validate:"omitempty,url"`
	EstimatedPrice *float64 `json:"estimated_price" validate:"omitempty,gte=0"`
	Priority       string   `json:"priority" validate:"omitempty,oneof=low medium high grail"`
	Acquired       bool     `json:"acquired"`
}

func (req *wishlistRequest) toModel() *model.WishlistItem {
	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	return &model.WishlistItem{
		Brand:          req.Brand,
		Model:          req.Model,
		Notes:          req.Notes,
		URL:            req.URL,
		EstimatedPrice: req.EstimatedPrice,
		Priority:       priority,
		Acquired:       req.Acquired,
	}
}

// List handles GET /api/wishlist.
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	items, err := store.ListWishlist(r.Context(), h.DB, claims.UserID)
	if err != nil {
		storeError(w, err, "failed to list wishlist")
		return
	}
	if items == nil {
		items = []model.WishlistItem{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/wishlist. New items default to not acquired and
// medium priority.
func (h *WishlistHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req wishlistRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.Struct(&req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := store.CreateWishlistItem(r.Context(), h.DB, claims.UserID, req.toModel())
	if err != nil {
		storeError(w, err, "failed to create wishlist item")
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// Get handles GET /api/wishlist/{id}.
func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid wishlist item id")
		return
	}

	item, err := store.GetWishlistItem(r.Context(), h.DB, claims.UserID, id)
	if err != nil {
		storeError(w, err, "failed to get wishlist item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	jsonResponse(w, http.StatusOK, item)
}

// Update handles PUT /api/wishlist/{id}: full-replace, including the
// acquired toggle.
func (h *WishlistHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid wishlist item id")
		return
	}

	var req wishlistRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.Struct(&req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := store.UpdateWishlistItem(r.Context(), h.DB, claims.UserID, id, req.toModel())
	if err != nil {
		storeError(w, err, "failed to update wishlist item")
		return
	}

	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/wishlist/{id}.
func (h *WishlistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid wishlist item id")
		return
	}

	if err := store.DeleteWishlistItem(r.Context(), h.DB, claims.UserID, id); err != nil {
		storeError(w, err, "failed to delete wishlist item")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "wishlist item deleted"})
}
