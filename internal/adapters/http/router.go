// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"github.com/MiguelCav2025/sitecav/internal/adapters/http/handlers"
	"github.com/MiguelCav2025/sitecav/internal/adapters/http/middleware"
)

// CatalogRoutes is the admin CRUD surface of one collection.
type CatalogRoutes interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// OrderedCatalogRoutes adds the bulk order endpoint.
type OrderedCatalogRoutes interface {
	CatalogRoutes
	Reorder(w http.ResponseWriter, r *http.Request)
}

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	Health  *handlers.HealthHandler
	Pages   *handlers.PageHandler
	Process *handlers.ProcessHandler

	Banners               CatalogRoutes
	StudentProjects       CatalogRoutes
	InstitutionalProjects OrderedCatalogRoutes
	Gallery               OrderedCatalogRoutes
	Downloads             CatalogRoutes
	Bibliographies        CatalogRoutes
	Videos                CatalogRoutes
}

// RouterOptions holds the cross-cutting route settings.
type RouterOptions struct {
	// AllowedOrigins are the CORS origins of the public site and admin panel.
	AllowedOrigins []string
	// AdminAuth guards /api/v1/admin. Nil leaves it open (local profile).
	AdminAuth func(http.Handler) http.Handler
	// RequestTimeout bounds /api/v1 handlers. Zero disables it.
	RequestTimeout time.Duration
	// Files serves uploaded objects under /files when the in-memory store
	// is used. Nil mounts nothing.
	Files http.Handler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given, after CORS.
func NewRouter(h Handlers, opts RouterOptions, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID", "X-Correlation-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-Correlation-ID"},
		MaxAge:         int((10 * time.Minute).Seconds()),
	}).Handler)
	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	if opts.Files != nil {
		r.Handle("/files/*", http.StripPrefix("/files", opts.Files))
	}

	r.Route("/api/v1", func(r chi.Router) {
		if opts.RequestTimeout > 0 {
			r.Use(middleware.Timeout(opts.RequestTimeout))
		}

		// Public site.
		r.Get("/home", h.Pages.Home)
		r.Get("/banners", h.Pages.Banners)
		r.Get("/projects", h.Pages.Projects)
		r.Get("/projects/{id}", h.Pages.Project)
		r.Get("/institutional-projects", h.Pages.InstitutionalProjects)
		r.Get("/gallery", h.Pages.Gallery)
		r.Get("/downloads", h.Pages.Downloads)
		r.Get("/candidate-area", h.Pages.CandidateArea)
		r.Get("/process", h.Pages.Process)
		r.Post("/contact", h.Pages.Contact)

		// Admin panel.
		r.Route("/admin", func(r chi.Router) {
			if opts.AdminAuth != nil {
				r.Use(opts.AdminAuth)
			}

			mountCatalog(r, "/banners", h.Banners)
			mountCatalog(r, "/projects", h.StudentProjects)
			mountOrderedCatalog(r, "/institutional-projects", h.InstitutionalProjects)
			mountOrderedCatalog(r, "/gallery", h.Gallery)
			mountCatalog(r, "/downloads", h.Downloads)
			mountCatalog(r, "/bibliographies", h.Bibliographies)
			mountCatalog(r, "/videos", h.Videos)

			r.Get("/process", h.Process.Get)
			r.Put("/process", h.Process.Publish)
		})
	})

	return r
}

func mountCatalog(r chi.Router, prefix string, c CatalogRoutes) {
	r.Route(prefix, func(r chi.Router) {
		catalogRoutes(r, c)
	})
}

func mountOrderedCatalog(r chi.Router, prefix string, c OrderedCatalogRoutes) {
	r.Route(prefix, func(r chi.Router) {
		// Registered before /{id} so "order" is never taken for an id.
		r.Put("/order", c.Reorder)
		catalogRoutes(r, c)
	})
}

func catalogRoutes(r chi.Router, c CatalogRoutes) {
	r.Get("/", c.List)
	r.Post("/", c.Create)
	r.Get("/{id}", c.Get)
	r.Put("/{id}", c.Update)
	r.Delete("/{id}", c.Delete)
}
