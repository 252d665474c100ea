package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/nikhilbhutani/riskengine/internal/cache"
	"github.com/nikhilbhutani/riskengine/internal/queue"
	"github.com/nikhilbhutani/riskengine/internal/risk"
)

// AnalyzeWorker processes batch analysis tasks. Each text runs through the
// same engine the API uses; per-text validation failures are recorded in the
// batch result instead of failing the task.
type AnalyzeWorker struct {
	engine *risk.Engine
	store  *cache.Store
}

func NewAnalyzeWorker(engine *risk.Engine, store *cache.Store) *AnalyzeWorker {
	return &AnalyzeWorker{engine: engine, store: store}
}

func (w *AnalyzeWorker) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload queue.AnalyzeBatchPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal batch payload: %w", err)
	}

	job, err := w.store.GetBatch(ctx, payload.JobID)
	if err != nil {
		return fmt.Errorf("load batch job %s: %w", payload.JobID, err)
	}
	if job == nil {
		// Record expired before the worker got to it; nothing to report to.
		slog.Warn("batch job record missing, skipping", "job_id", payload.JobID)
		return nil
	}

	job.Status = cache.BatchRunning
	if err := w.store.PutBatch(ctx, job); err != nil {
		return fmt.Errorf("update batch job %s: %w", payload.JobID, err)
	}

	results := make([]cache.BatchResult, 0, len(payload.Texts))
	for i, text := range payload.Texts {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		a, err := w.engine.Analyze(ctx, text)
		if err != nil {
			if errors.Is(err, risk.ErrEmptyText) {
				results = append(results, cache.BatchResult{Index: i, Error: err.Error()})
				continue
			}
			return fmt.Errorf("analyze batch item %d: %w", i, err)
		}
		results = append(results, cache.BatchResult{Index: i, Assessment: a})
	}

	job.Status = cache.BatchCompleted
	job.Completed = len(results)
	job.Results = results
	if err := w.store.PutBatch(ctx, job); err != nil {
		return fmt.Errorf("store batch results %s: %w", payload.JobID, err)
	}

	slog.Info("batch analysis complete", "job_id", payload.JobID, "items", len(results))
	return nil
}
