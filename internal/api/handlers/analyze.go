package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/nikhilbhutani/riskengine/internal/cache"
	"github.com/nikhilbhutani/riskengine/internal/risk"
)

type AnalyzeHandler struct {
	engine *risk.Engine
	store  *cache.Store
}

// NewAnalyzeHandler builds the handler. store may be nil when redis is not
// available; analysis then runs uncached.
func NewAnalyzeHandler(engine *risk.Engine, store *cache.Store) *AnalyzeHandler {
	return &AnalyzeHandler{engine: engine, store: store}
}

// AnalyzeResponse is an assessment plus request timing.
type AnalyzeResponse struct {
	risk.Assessment
	ProcessingTimeMs float64 `json:"processing_time_ms"`
}

// Analyze runs the risk analysis over the request text.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if h.store != nil {
		if cached, err := h.store.GetAssessment(r.Context(), req.Text); err == nil && cached != nil {
			writeJSON(w, http.StatusOK, AnalyzeResponse{
				Assessment:       *cached,
				ProcessingTimeMs: elapsedMs(start),
			})
			return
		}
	}

	assessment, err := h.engine.Analyze(r.Context(), req.Text)
	if err != nil {
		if errors.Is(err, risk.ErrEmptyText) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "text cannot be empty"})
			return
		}
		slog.Error("analysis failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "analysis failed"})
		return
	}

	if h.store != nil {
		if err := h.store.PutAssessment(r.Context(), req.Text, assessment); err != nil {
			slog.Warn("failed to cache assessment", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, AnalyzeResponse{
		Assessment:       *assessment,
		ProcessingTimeMs: elapsedMs(start),
	})
}

func elapsedMs(start time.Time) float64 {
	return math.Round(float64(time.Since(start).Microseconds())/100) / 10
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
