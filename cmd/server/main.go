package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/cors"

	"github.com/pentrack/server/internal/api"
	"github.com/pentrack/server/internal/db"
	"github.com/pentrack/server/internal/identify"
	"github.com/pentrack/server/internal/upload"
)

func main() {
	dbPath := flag.String("db", "pentrack.sqlite3", "path to SQLite database file")
	addr := flag.String("addr", ":8080", "listen address")
	uploadsDir := flag.String("uploads", "uploads", "directory for uploaded images")
	jwtSecret := flag.String("jwt-secret", "", "JWT signing key (auto-generated if empty)")
	corsOrigin := flag.String("cors-origin", "*", "allowed CORS origin")
	flag.Parse()

	// Auto-generate JWT secret if not provided.
	if *jwtSecret == "" {
		secret, err := generateSecret(32)
		if err != nil {
			log.Fatalf("Failed to generate JWT secret: %v", err)
		}
		*jwtSecret = secret
		log.Println("JWT secret auto-generated (tokens will be invalidated on restart)")
	}

	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	// Run migrations (idempotent).
	if err := db.Migrate(database); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	uploads, err := upload.NewStore(*uploadsDir)
	if err != nil {
		log.Fatalf("Failed to set up uploads directory: %v", err)
	}

	// AI identification is optional; without a key the identify endpoint
	// still saves images and reports that identification is off.
	var identifier identify.Identifier
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		identifier = identify.NewAnthropicClient(key)
	} else {
		log.Println("ANTHROPIC_API_KEY not set; AI pen identification disabled")
	}

	apiRouter := api.NewRouter(api.Config{
		DB:         database,
		JWTSecret:  *jwtSecret,
		Uploads:    uploads,
		Identifier: identifier,
	})

	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploads.Dir()))))

	handler := cors.Handler(cors.Options{
		AllowedOrigins: []string{*corsOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	})(mux)
	handler = api.LoggingMiddleware(handler)

	fmt.Printf("Server listening on %s\n", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// generateSecret creates a random hex secret.
func generateSecret(bytes int) (string, error) {
	buf := make([]byte, bytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
