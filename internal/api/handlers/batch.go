package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nikhilbhutani/riskengine/internal/cache"
	"github.com/nikhilbhutani/riskengine/internal/queue"
)

const maxBatchSize = 100

type BatchHandler struct {
	store  *cache.Store
	client *queue.Client
}

func NewBatchHandler(store *cache.Store, client *queue.Client) *BatchHandler {
	return &BatchHandler{store: store, client: client}
}

// Create enqueues a batch of texts for background analysis and returns the
// job id to poll.
func (h *BatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h.store == nil || h.client == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "batch analysis requires redis"})
		return
	}

	var req struct {
		Texts []string `json:"texts"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if len(req.Texts) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "texts required"})
		return
	}
	if len(req.Texts) > maxBatchSize {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "too many texts in one batch"})
		return
	}
	// Empty items are not rejected here; the worker records a per-item error
	// so one bad entry cannot sink the whole batch.

	job := &cache.BatchJob{
		ID:        uuid.NewString(),
		Status:    cache.BatchQueued,
		Total:     len(req.Texts),
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.PutBatch(r.Context(), job); err != nil {
		slog.Error("failed to create batch job", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create batch job"})
		return
	}

	if err := h.client.EnqueueAnalyzeBatch(queue.AnalyzeBatchPayload{
		JobID: job.ID,
		Texts: req.Texts,
	}); err != nil {
		slog.Error("failed to enqueue batch", "job_id", job.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to enqueue batch"})
		return
	}

	writeJSON(w, http.StatusAccepted, job)
}

// Get returns the current state of a batch job, including results once the
// worker has finished.
func (h *BatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "batch analysis requires redis"})
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid job id"})
		return
	}

	job, err := h.store.GetBatch(r.Context(), id)
	if err != nil {
		slog.Error("failed to load batch job", "job_id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load batch job"})
		return
	}
	if job == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "job not found"})
		return
	}

	writeJSON(w, http.StatusOK, job)
}
