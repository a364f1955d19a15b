package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"hajjhub/internal/bookmarks"
	"hajjhub/internal/httpapi"
	"hajjhub/internal/live"
	"hajjhub/internal/store"
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	addr := envOr("HAJJHUB_ADDR", ":8080")
	jwtSecret := []byte(envOr("HAJJHUB_JWT_SECRET", "dev-secret-change-me"))
	dbPath := envOr("HAJJHUB_DB_PATH", "./data/hajjhub.db")

	adminEmails := map[string]bool{}
	for _, email := range strings.Split(os.Getenv("HAJJHUB_ADMIN_EMAILS"), ",") {
		if email = strings.TrimSpace(email); email != "" {
			adminEmails[email] = true
		}
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		slog.Error("create data dir", "error", err)
		os.Exit(1)
	}
	db, err := bookmarks.Open(dbPath)
	if err != nil {
		slog.Error("open bookmarks db", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := bookmarks.Migrate(db); err != nil {
		slog.Error("migrate bookmarks db", "error", err)
		os.Exit(1)
	}

	// all content state lives here for the process lifetime
	st := store.NewMemStorage()

	hub := live.NewHub()
	go hub.Run()

	r := gin.New()
	r.Use(gin.Recovery(), httpapi.RequestLogger())

	httpapi.SetupRoutes(r, httpapi.Deps{
		Store:       st,
		DB:          db,
		Hub:         hub,
		JWTSecret:   jwtSecret,
		AdminEmails: adminEmails,
	})

	slog.Info("HTTP API listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
