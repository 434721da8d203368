package api

import (
	"database/sql"
	"net/http"

	"github.com/pentrack/server/internal/identify"
	"github.com/pentrack/server/internal/ratelimit"
	"github.com/pentrack/server/internal/upload"
)

// Config carries the router's dependencies.
type Config struct {
	DB         *sql.DB
	JWTSecret  string
	Uploads    *upload.Store
	Identifier identify.Identifier // nil disables AI identification
}

// NewRouter creates the API router with all endpoints registered.
func NewRouter(cfg Config) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: cfg.DB, JWTSecret: cfg.JWTSecret}
	pensHandler := &PensHandler{DB: cfg.DB, Uploads: cfg.Uploads}
	inkHistoryHandler := &InkHistoryHandler{DB: cfg.DB}
	inkBottlesHandler := &InkBottlesHandler{DB: cfg.DB}
	tagsHandler := &TagsHandler{DB: cfg.DB}
	maintenanceHandler := &MaintenanceHandler{DB: cfg.DB}
	samplesHandler := &SamplesHandler{DB: cfg.DB, Uploads: cfg.Uploads}
	wishlistHandler := &WishlistHandler{DB: cfg.DB}
	statsHandler := &StatsHandler{DB: cfg.DB}
	exportHandler := &ExportHandler{DB: cfg.DB}
	identifyHandler := &IdentifyHandler{Uploads: cfg.Uploads, Identifier: cfg.Identifier}

	authMW := AuthMiddleware(cfg.JWTSecret, cfg.DB)
	// Credential endpoints get a tight per-IP budget.
	loginLimit := RateLimitMiddleware(ratelimit.New(1, 5))

	// Public: registration and login.
	mux.Handle("POST /api/auth/register", loginLimit(http.HandlerFunc(authHandler.Register)))
	mux.Handle("POST /api/auth/login", loginLimit(http.HandlerFunc(authHandler.Login)))

	// Session management.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))
	mux.Handle("GET /api/me", authMW(http.HandlerFunc(authHandler.Me)))

	// Pens.
	mux.Handle("GET /api/pens", authMW(http.HandlerFunc(pensHandler.List)))
	mux.Handle("POST /api/pens", authMW(http.HandlerFunc(pensHandler.Create)))
	mux.Handle("GET /api/pens/{id}", authMW(http.HandlerFunc(pensHandler.Get)))
	mux.Handle("PUT /api/pens/{id}", authMW(http.HandlerFunc(pensHandler.Update)))
	mux.Handle("DELETE /api/pens/{id}", authMW(http.HandlerFunc(pensHandler.Delete)))
	mux.Handle("PUT /api/pens/{id}/image", authMW(http.HandlerFunc(pensHandler.UploadImage)))

	// Ink history.
	mux.Handle("GET /api/pens/{id}/inks", authMW(http.HandlerFunc(inkHistoryHandler.List)))
	mux.Handle("POST /api/pens/{id}/inks", authMW(http.HandlerFunc(inkHistoryHandler.Append)))
	mux.Handle("DELETE /api/inks/{id}", authMW(http.HandlerFunc(inkHistoryHandler.Delete)))

	// Tags.
	mux.Handle("GET /api/pens/{id}/tags", authMW(http.HandlerFunc(tagsHandler.ListForPen)))
	mux.Handle("POST /api/pens/{id}/tags", authMW(http.HandlerFunc(tagsHandler.Add)))
	mux.Handle("PUT /api/pens/{id}/tags", authMW(http.HandlerFunc(tagsHandler.Replace)))
	mux.Handle("DELETE /api/pens/{id}/tags/{tag}", authMW(http.HandlerFunc(tagsHandler.Remove)))
	mux.Handle("GET /api/tags", authMW(http.HandlerFunc(tagsHandler.ListAll)))

	// Ink catalog.
	mux.Handle("GET /api/ink-catalog", authMW(http.HandlerFunc(inkBottlesHandler.List)))
	mux.Handle("POST /api/ink-catalog", authMW(http.HandlerFunc(inkBottlesHandler.Create)))
	mux.Handle("GET /api/ink-catalog/{id}", authMW(http.HandlerFunc(inkBottlesHandler.Get)))
	mux.Handle("PUT /api/ink-catalog/{id}", authMW(http.HandlerFunc(inkBottlesHandler.Update)))
	mux.Handle("PATCH /api/ink-catalog/{id}", authMW(http.HandlerFunc(inkBottlesHandler.Patch)))
	mux.Handle("DELETE /api/ink-catalog/{id}", authMW(http.HandlerFunc(inkBottlesHandler.Delete)))

	// Maintenance log.
	mux.Handle("GET /api/pens/{id}/maintenance", authMW(http.HandlerFunc(maintenanceHandler.List)))
	mux.Handle("POST /api/pens/{id}/maintenance", authMW(http.HandlerFunc(maintenanceHandler.Add)))
	mux.Handle("DELETE /api/maintenance/{id}", authMW(http.HandlerFunc(maintenanceHandler.Delete)))

	// Writing samples.
	mux.Handle("GET /api/pens/{id}/writing-samples", authMW(http.HandlerFunc(samplesHandler.List)))
	mux.Handle("POST /api/pens/{id}/writing-samples", authMW(http.HandlerFunc(samplesHandler.Add)))
	mux.Handle("DELETE /api/writing-samples/{id}", authMW(http.HandlerFunc(samplesHandler.Delete)))

	// Wishlist.
	mux.Handle("GET /api/wishlist", authMW(http.HandlerFunc(wishlistHandler.List)))
	mux.Handle("POST /api/wishlist", authMW(http.HandlerFunc(wishlistHandler.Create)))
	mux.Handle("GET /api/wishlist/{id}", authMW(http.HandlerFunc(wishlistHandler.Get)))
	mux.Handle("PUT /api/wishlist/{id}", authMW(http.HandlerFunc(wishlistHandler.Update)))
	mux.Handle("DELETE /api/wishlist/{id}", authMW(http.HandlerFunc(wishlistHandler.Delete)))

	// Stats, export, identification.
	mux.Handle("GET /api/stats", authMW(http.HandlerFunc(statsHandler.Get)))
	mux.Handle("GET /api/export", authMW(http.HandlerFunc(exportHandler.Get)))
	mux.Handle("POST /api/identify", authMW(http.HandlerFunc(identifyHandler.Post)))

	return mux
}
