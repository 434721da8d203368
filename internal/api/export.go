package api

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/pentrack/server/internal/store"
)

// ExportHandler serves the owner's collection as CSV.
type ExportHandler struct {
	DB *sql.DB
}

// exportColumns is the fixed column order of the CSV export.
var exportColumns = []string{
	"id", "brand", "model", "color", "nib_size", "nib_material", "nib_type",
	"fill_system", "date_purchased", "purchase_price", "purchase_location",
	"current_ink", "condition", "rating", "is_daily_carry", "provenance",
	"storage_location", "notes", "created_at",
}

// Get handles GET /api/export. encoding/csv quotes fields containing
// commas, quotes or newlines and doubles embedded quotes, per RFC 4180.
func (h *ExportHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	pens, err := store.ListPens(r.Context(), h.DB, claims.UserID)
	if err != nil {
		storeError(w, err, "failed to export")
		return
	}

	filename := fmt.Sprintf("pentrack-export-%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	cw := csv.NewWriter(w)
	if err := cw.Write(exportColumns); err != nil {
		log.Printf("writing export header: %v", err)
		return
	}

	for _, p := range pens {
		price := ""
		if p.PurchasePrice != nil {
			price = strconv.FormatFloat(*p.PurchasePrice, 'f', -1, 64)
		}
		dailyCarry := "0"
		if p.IsDailyCarry {
			dailyCarry = "1"
		}

		record := []string{
			strconv.FormatInt(p.ID, 10), p.Brand, p.Model, p.Color, p.NibSize,
			p.NibMaterial, p.NibType, p.FillSystem, p.DatePurchased, price,
			p.PurchaseLocation, p.CurrentInk, p.Condition,
			strconv.Itoa(p.Rating), dailyCarry, p.Provenance,
			p.StorageLocation, p.Notes, p.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			log.Printf("writing export row: %v", err)
			return
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		log.Printf("flushing export: %v", err)
	}
}
