package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/nikhilbhutani/riskengine/internal/api/handlers"
	"github.com/nikhilbhutani/riskengine/internal/api/middleware"
	"github.com/nikhilbhutani/riskengine/internal/auth"
	"github.com/nikhilbhutani/riskengine/internal/cache"
	"github.com/nikhilbhutani/riskengine/internal/config"
	"github.com/nikhilbhutani/riskengine/internal/queue"
	"github.com/nikhilbhutani/riskengine/internal/risk"
)

type Router struct {
	mux    *chi.Mux
	cfg    *config.Config
	engine *risk.Engine
	store  *cache.Store
	queue  *queue.Client
	apikey *auth.APIKeyMiddleware
}

// NewRouter wires the API around an engine. store and queueClient may be nil
// when redis is unavailable; the analyze endpoint still works, batch returns
// 503.
func NewRouter(cfg *config.Config, engine *risk.Engine, store *cache.Store, queueClient *queue.Client) *Router {
	return &Router{
		mux:    chi.NewRouter(),
		cfg:    cfg,
		engine: engine,
		store:  store,
		queue:  queueClient,
		apikey: auth.NewAPIKeyMiddleware(cfg.Auth.APIKeys, cfg.Auth.APIKeyHeader, cfg.Auth.JWTSecret),
	}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(rt.cfg.CORS.AllowedOrigins))

	rl := middleware.NewRateLimiter(100, 200)
	r.Use(rl.Limit)

	// Health endpoints (no auth)
	health := handlers.NewHealthHandler(rt.engine, rt.store)
	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)

	analyzeH := handlers.NewAnalyzeHandler(rt.engine, rt.store)
	batchH := handlers.NewBatchHandler(rt.store, rt.queue)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rt.apikey.Authenticate)

		r.Post("/analyze", analyzeH.Analyze)
		r.Route("/analyze/batch", func(r chi.Router) {
			r.Post("/", batchH.Create)
			r.Get("/{id}", batchH.Get)
		})
	})

	return r
}
