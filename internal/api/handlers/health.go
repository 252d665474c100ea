package handlers

import (
	"net/http"

	"github.com/nikhilbhutani/riskengine/internal/cache"
	"github.com/nikhilbhutani/riskengine/internal/risk"
)

type HealthHandler struct {
	engine *risk.Engine
	store  *cache.Store
}

func NewHealthHandler(engine *risk.Engine, store *cache.Store) *HealthHandler {
	return &HealthHandler{engine: engine, store: store}
}

func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz reports the state of optional collaborators. The classifier is
// informational only: the engine serves heuristics-only analysis without it.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{}

	if h.engine.ClassifierAvailable() {
		checks["classifier"] = "loaded"
	} else {
		checks["classifier"] = "unavailable"
	}

	status := http.StatusOK
	if h.store != nil {
		if err := h.store.Ping(r.Context()); err != nil {
			checks["redis"] = "unhealthy: " + err.Error()
			status = http.StatusServiceUnavailable
		} else {
			checks["redis"] = "ok"
		}
	}

	writeJSON(w, status, map[string]interface{}{
		"status": statusStr(status),
		"engine": engineLabel(h.engine),
		"checks": checks,
	})
}

func engineLabel(e *risk.Engine) string {
	if e.ClassifierAvailable() {
		return risk.EngineClassifier
	}
	return risk.EngineHeuristics
}

func statusStr(code int) string {
	if code == http.StatusOK {
		return "ok"
	}
	return "unhealthy"
}
