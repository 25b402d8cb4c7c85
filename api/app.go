// Package api exposes the audit reports over HTTP as JSON, plus the full
// dataset report rendered as HTML.
package api

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"goeda/app"
	"goeda/internal/config"
)

// App represents the reporting API application
type App struct {
	router  *chi.Mux
	auditor *app.Auditor
	cfg     *config.Config
}

// NewApp creates the reporting API over one auditor
func NewApp(auditor *app.Auditor, cfg *config.Config) *App {
	a := &App{
		router:  chi.NewRouter(),
		auditor: auditor,
		cfg:     cfg,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/api/columns", a.handleColumns)
	a.router.Get("/api/missing", a.handleMissing)
	a.router.Get("/api/outliers", a.handleOutlierScan)
	a.router.Get("/api/outliers/{column}", a.handleOutliers)
	a.router.Get("/api/frequency/{column}", a.handleFrequency)
	a.router.Get("/api/histogram/{column}", a.handleHistogram)
	a.router.Get("/api/profile", a.handleProfile)

	a.router.Post("/api/clean/missing/{column}", a.handleImputeMissing)
	a.router.Post("/api/clean/outliers/{column}", a.handleReplaceOutliers)

	a.router.Get("/report", a.handleReport)
}

// Router returns the HTTP handler
func (a *App) Router() http.Handler {
	return a.router
}

// Start runs the HTTP server on the configured port
func (a *App) Start() error {
	addr := ":" + a.cfg.Server.Port
	log.Printf("[API] listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}
