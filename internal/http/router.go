package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/redmonkez12/glp1-companion/internal/analytics"
	"github.com/redmonkez12/glp1-companion/internal/auth"
	"github.com/redmonkez12/glp1-companion/internal/config"
	"github.com/redmonkez12/glp1-companion/internal/content"
	"github.com/redmonkez12/glp1-companion/internal/httputil"
	"github.com/redmonkez12/glp1-companion/internal/logging"
	"github.com/redmonkez12/glp1-companion/internal/medication"
	"github.com/redmonkez12/glp1-companion/internal/metrics"
	"github.com/redmonkez12/glp1-companion/internal/symptom"
)

// Handlers groups the feature handlers mounted under /api
type Handlers struct {
	Auth       *auth.Handler
	Symptom    *symptom.Handler
	Medication *medication.Handler
	Content    *content.Handler
	Analytics  *analytics.Handler
}

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, h Handlers, authMiddleware *auth.Middleware, logger *logging.Logger) *chi.Mux {
	r := chi.NewRouter()

	// CORS - must be first
	if len(cfg.Server.TrustedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.Server.TrustedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Content-Length", "Retry-After"},
			AllowCredentials: true,
			MaxAge:           300, // 5 minutes
		}))
	}

	r.Use(SecurityHeaders(!cfg.Server.IsDevelopment()))
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	if cfg.Server.TrustedProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(logging.RequestLogger(logger))
	r.Use(metrics.InstrumentHandler)
	r.Use(middleware.Compress(5))

	r.Get("/health", handleHealth)
	r.Handle("/metrics", metrics.Handler())

	// Swagger UI - only in development
	if cfg.Server.IsDevelopment() {
		logger.Info("swagger UI enabled", "path", "/swagger/")
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.With(authMiddleware.RequireAuth).Get("/verify", h.Auth.Verify)
		})

		r.Get("/content", h.Content.List)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)

			r.Patch("/users/me/preferences", h.Auth.UpdatePreferences)

			r.Post("/side-effects", h.Symptom.Log)
			r.Get("/side-effects", h.Symptom.List)

			r.Post("/medications", h.Medication.Create)
			r.Get("/medications", h.Medication.List)
			r.Patch("/medications/{id}", h.Medication.Update)

			r.Get("/dashboard/stats", h.Analytics.Stats)
			r.Get("/progress", h.Analytics.Progress)
		})
	})

	return r
}

// handleHealth is a simple health check endpoint
// @Summary      Health check
// @Description  Check if the API is running
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, map[string]string{"status": "api is running"}, http.StatusOK)
}
