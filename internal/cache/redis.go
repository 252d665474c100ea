package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nikhilbhutani/riskengine/internal/risk"
)

// Store memoizes assessments and holds batch job state in redis. Entries are
// short-lived: this is request coalescing, not an analysis history.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Ping reports whether redis is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func assessmentKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "assessment:" + hex.EncodeToString(sum[:])
}

// GetAssessment returns a cached assessment for the text, or nil on miss.
func (s *Store) GetAssessment(ctx context.Context, text string) (*risk.Assessment, error) {
	val, err := s.client.Get(ctx, assessmentKey(text)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var a risk.Assessment
	if err := json.Unmarshal([]byte(val), &a); err != nil {
		return nil, fmt.Errorf("unmarshal cached assessment: %w", err)
	}
	return &a, nil
}

// PutAssessment caches an assessment under the text's digest.
func (s *Store) PutAssessment(ctx context.Context, text string, a *risk.Assessment) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal assessment: %w", err)
	}
	return s.client.Set(ctx, assessmentKey(text), data, s.ttl).Err()
}

// Batch job states.
const (
	BatchQueued    = "queued"
	BatchRunning   = "running"
	BatchCompleted = "completed"
)

// BatchJob tracks an in-flight or finished batch analysis.
type BatchJob struct {
	ID        string        `json:"id"`
	Status    string        `json:"status"`
	Total     int           `json:"total"`
	Completed int           `json:"completed"`
	Results   []BatchResult `json:"results,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// BatchResult is the outcome for one text in a batch, by input position.
type BatchResult struct {
	Index      int              `json:"index"`
	Assessment *risk.Assessment `json:"assessment,omitempty"`
	Error      string           `json:"error,omitempty"`
}

func batchKey(id string) string { return "batch:" + id }

// GetBatch returns the batch job record, or nil if unknown or expired.
func (s *Store) GetBatch(ctx context.Context, id string) (*BatchJob, error) {
	val, err := s.client.Get(ctx, batchKey(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("batch get %s: %w", id, err)
	}

	var job BatchJob
	if err := json.Unmarshal([]byte(val), &job); err != nil {
		return nil, fmt.Errorf("unmarshal batch job: %w", err)
	}
	return &job, nil
}

// PutBatch writes the batch job record. Batch records live longer than the
// assessment cache so pollers can pick up finished work.
func (s *Store) PutBatch(ctx context.Context, job *BatchJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal batch job: %w", err)
	}
	ttl := s.ttl
	if ttl < time.Hour {
		ttl = time.Hour
	}
	return s.client.Set(ctx, batchKey(job.ID), data, ttl).Err()
}
