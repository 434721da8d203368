package api

import (
	"database/sql"
	"net/http"

	"github.com/pentrack/server/internal/model"
	"github.com/pentrack/server/internal/store"
)

// StatsHandler serves the aggregate collection view.
type StatsHandler struct {
	DB *sql.DB
}

// Get handles GET /api/stats. An empty collection yields zero counts and
// empty groupings, never an error.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	stats, err := store.GetStats(r.Context(), h.DB, claims.UserID)
	if err != nil {
		storeError(w, err, "failed to compute stats")
		return
	}

	if stats.ByBrand == nil {
		stats.ByBrand = []model.BrandCount{}
	}
	if stats.ByNibSize == nil {
		stats.ByNibSize = []model.NibSizeCount{}
	}
	if stats.MostUsedInks == nil {
		stats.MostUsedInks = []model.InkUsage{}
	}
	if stats.MostActivePens == nil {
		stats.MostActivePens = []model.PenInkChanges{}
	}
	if stats.LowStockInks == nil {
		stats.LowStockInks = []model.InkBottle{}
	}

	jsonResponse(w, http.StatusOK, stats)
}
