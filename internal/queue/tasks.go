package queue

const (
	TypeAnalyzeBatch = "analysis:batch"
)

// AnalyzeBatchPayload carries a batch of texts to analyze in the background.
// Results are written to the batch store under JobID.
type AnalyzeBatchPayload struct {
	JobID string   `json:"job_id"`
	Texts []string `json:"texts"`
}
