package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/hrcore/hr-management/internal"
	"github.com/hrcore/hr-management/internal/auth"
	"github.com/hrcore/hr-management/internal/department"
	"github.com/hrcore/hr-management/internal/designation"
	"github.com/hrcore/hr-management/internal/headofunit"
	"github.com/hrcore/hr-management/internal/location"
	"github.com/hrcore/hr-management/internal/transport/middleware"
	"github.com/hrcore/hr-management/internal/transport/swagger"
	"github.com/hrcore/hr-management/internal/unit"
	"github.com/hrcore/hr-management/internal/user"
)

type Handlers struct {
	Auth        *auth.Handler
	User        *user.Handler
	Department  *department.Handler
	Unit        *unit.Handler
	Designation *designation.Handler
	Location    *location.Handler
	HeadOfUnit  *headofunit.Handler
}

// RegisterAllRoutes mounts the full API under /api/v1. Registration and
// login are public; everything else sits behind the auth middleware,
// with writes additionally gated per resource scope.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, handlers Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/register", handlers.User.Register)
			sr.Post("/login", handlers.Auth.Login)
			sr.Post("/refresh", handlers.Auth.RefreshToken)
		})

		r.Group(func(pr chi.Router) {
			pr.Use(handlers.Auth.AuthMiddleware)

			pr.Get("/users/me", handlers.User.GetCurrentUser)
			pr.Get("/scope/{scope}", handlers.Auth.HasScope)

			pr.Route("/departments", func(dr chi.Router) {
				dr.Get("/", handlers.Department.List)
				dr.Get("/{id}", handlers.Department.Get)
				dr.Group(func(wr chi.Router) {
					wr.Use(middleware.RequireScope(logger, internal.ScopeManageDepartments))
					wr.Post("/", handlers.Department.Create)
					wr.Put("/{id}", handlers.Department.Update)
				})
			})

			pr.Route("/units", func(ur chi.Router) {
				ur.Get("/", handlers.Unit.List)
				ur.Get("/{id}", handlers.Unit.Get)
				ur.Group(func(wr chi.Router) {
					wr.Use(middleware.RequireScope(logger, internal.ScopeManageUnits))
					wr.Post("/", handlers.Unit.Create)
					wr.Put("/{id}", handlers.Unit.Update)
				})
			})

			pr.Route("/designations", func(gr chi.Router) {
				gr.Get("/", handlers.Designation.List)
				gr.Get("/{id}", handlers.Designation.Get)
				gr.Group(func(wr chi.Router) {
					wr.Use(middleware.RequireScope(logger, internal.ScopeManageDesignations))
					wr.Post("/", handlers.Designation.Create)
					wr.Patch("/{id}", handlers.Designation.Update)
				})
			})

			pr.Route("/locations", func(lr chi.Router) {
				lr.Get("/", handlers.Location.List)
				lr.Get("/{id}", handlers.Location.Get)
				lr.Group(func(wr chi.Router) {
					wr.Use(middleware.RequireScope(logger, internal.ScopeManageLocations))
					wr.Post("/", handlers.Location.Create)
					wr.Delete("/{id}", handlers.Location.Delete)
				})
			})

			pr.Route("/headofunits", func(hr chi.Router) {
				hr.Get("/", handlers.HeadOfUnit.List)
				hr.Get("/{id}", handlers.HeadOfUnit.Get)
				hr.Group(func(wr chi.Router) {
					wr.Use(middleware.RequireScope(logger, internal.ScopeManageHeadOfUnits))
					wr.Post("/", handlers.HeadOfUnit.Create)
				})
			})
		})
	})
}
