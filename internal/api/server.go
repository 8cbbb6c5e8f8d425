package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tesseralabs/tessera/internal/api/handler"
	"github.com/tesseralabs/tessera/internal/api/middleware"
	"github.com/tesseralabs/tessera/internal/config"
	"github.com/tesseralabs/tessera/internal/service"
)

// Services bundles all service dependencies for the router.
type Services struct {
	Admission *service.AdmissionService
	Jobs      *service.JobService
	Users     *service.UserService
	Registry  *service.Registry
	Catalog   *service.ModelCatalog
	Limiter   *service.UserLimiter
}

// NewRouter creates the Chi router with all routes and middleware.
func NewRouter(cfg *config.Config, svcs *Services, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(middleware.TraceLog(logger))
	r.Use(middleware.RateLimit(cfg.RateLimitIPRPS, cfg.RateLimitIPBurst))

	// Health and metrics (no auth)
	r.Get("/healthz", handler.Health())
	r.Handle("/metrics", promhttp.Handler())

	// Public API (frontends and direct API users)
	uh := handler.NewUserHandler(svcs.Users)
	jh := handler.NewJobsHandler(svcs.Admission, svcs.Jobs, svcs.Users, svcs.Limiter)
	mh := handler.NewModelsHandler(svcs.Catalog, svcs.Registry)
	r.Route("/api/v1", func(r chi.Router) {
		// Token exchange authenticates by API key itself.
		r.Post("/auth/token", uh.Token)

		r.Group(func(r chi.Router) {
			r.Use(middleware.UserAuth(cfg.JWTSecret, svcs.Users))

			r.Route("/jobs", func(r chi.Router) {
				r.Post("/", jh.Create)
				r.Get("/", jh.List)
				r.Get("/{id}", jh.Get)
				r.Delete("/{id}", jh.Cancel)
			})

			r.Get("/user/me", uh.Me)
			r.Get("/user/usage", uh.Usage)
			r.Get("/models", mh.List)
		})
	})

	// Internal API (worker fleet)
	ih := handler.NewInternalHandler(svcs.Registry)
	r.Route("/api/internal", func(r chi.Router) {
		r.Use(middleware.WorkerAuth(cfg.WorkerSecret))

		r.Post("/heartbeat", ih.Heartbeat)
		r.Get("/workers", ih.Workers)
		r.Post("/workers/{id}/probe", ih.Probe)
	})

	return r
}
