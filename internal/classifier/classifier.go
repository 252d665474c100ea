package classifier

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when no classifier backend can serve a verdict.
// The caller is expected to fall back to heuristics, never to fail the request.
var ErrUnavailable = errors.New("classifier unavailable")

// Labels emitted by the three-class risk classifier.
const (
	LabelLowRisk    = "Low Risk"
	LabelMediumRisk = "Medium Risk"
	LabelHighRisk   = "High Risk"
)

// Result is a single classification verdict.
type Result struct {
	// Label is one of LabelLowRisk, LabelMediumRisk, LabelHighRisk.
	Label string `json:"label"`
	// Confidence is the probability of the predicted class, in [0,1].
	Confidence float64 `json:"confidence"`
	// Probabilities holds the full class distribution, ordered low/medium/high.
	Probabilities []float64 `json:"probabilities"`
}

// Provider abstracts a risk classifier backend (remote BERT sidecar,
// LLM-as-judge, or none at all).
type Provider interface {
	Classify(ctx context.Context, text string) (*Result, error)
	Available() bool
	Name() string
}
