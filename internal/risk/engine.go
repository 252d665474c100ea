package risk

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/nikhilbhutani/riskengine/internal/classifier"
)

// ErrEmptyText is returned when the input is empty or whitespace-only.
// It is a validation failure, not an engine fault.
var ErrEmptyText = errors.New("text cannot be empty")

// Engine orchestrates the detectors and the optional classifier into a
// single assessment. It is stateless per call: each Analyze reads only the
// immutable lexicons and the supplied text, so one Engine is safe for
// concurrent use.
type Engine struct {
	clf classifier.Provider
}

// NewEngine builds an engine around the given classifier provider.
// Pass nil (or classifier.NewNoop()) for a heuristics-only engine.
func NewEngine(clf classifier.Provider) *Engine {
	if clf == nil {
		clf = classifier.NewNoop()
	}
	return &Engine{clf: clf}
}

// ClassifierAvailable reports whether the engine has a live classifier
// backend. Exposed for the readiness probe; the engine serves heuristics-only
// analysis regardless.
func (e *Engine) ClassifierAvailable() bool {
	return e.clf.Available()
}

// Analyze runs the full risk analysis over the text.
//
// When a classifier is available its label drives the hallucination risk and
// its class distribution derives the bias risk; otherwise the local
// hallucination and bias detectors run. Toxicity, PII, and fraud detectors
// always run. A classifier failure is recovered locally and only reflected
// in EngineUsed.
func (e *Engine) Analyze(ctx context.Context, text string) (*Assessment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	var verdict *classifier.Result
	if e.clf.Available() {
		v, err := e.clf.Classify(ctx, text)
		if err != nil {
			slog.Warn("classifier failed, falling back to heuristics",
				"classifier", e.clf.Name(),
				"error", err,
			)
		} else {
			verdict = v
		}
	}

	var hallucination, bias RiskLevel
	if verdict != nil {
		hallucination = levelFromLabel(verdict.Label)
		bias = biasFromProbabilities(verdict.Probabilities)
	} else {
		// The detector's own confidence number is internal; only the
		// aggregate confidence is exposed.
		hallucination, _ = DetectHallucination(text)
		bias = DetectBias(text)
	}

	toxicity := DetectToxicity(text)
	piiLeak := DetectPII(text)
	fraud := DetectFraud(text)

	signals := Signals{
		Hallucination: hallucination,
		Bias:          bias,
		Toxicity:      toxicity,
		Fraud:         fraud,
		PIILeak:       piiLeak,
	}

	var confidence float64
	engineUsed := EngineHeuristics
	if verdict != nil {
		engineUsed = EngineClassifier
		confidence = verdict.Confidence
		if piiLeak {
			confidence = math.Min(confidence+0.05, 0.99)
		}
		if toxicity == LevelHigh || fraud == LevelHigh {
			confidence = math.Min(confidence+0.03, 0.99)
		}
	} else {
		confidence = AggregateConfidence(text, signals)
	}

	a := &Assessment{
		HallucinationRisk: hallucination,
		BiasRisk:          bias,
		ToxicityRisk:      toxicity,
		PIILeak:           piiLeak,
		FraudRisk:         fraud,
		ConfidenceScore:   confidence,
		EngineUsed:        engineUsed,
	}
	a.Summary = Summarize(a)
	a.ConfidenceScore = math.Round(confidence*1000) / 1000

	return a, nil
}

func levelFromLabel(label string) RiskLevel {
	switch label {
	case classifier.LabelHighRisk:
		return LevelHigh
	case classifier.LabelLowRisk:
		return LevelLow
	default:
		return LevelMedium
	}
}

// biasFromProbabilities derives bias risk from the second-highest class
// probability: a close runner-up suggests the classifier is torn, which
// correlates with slanted text. Thresholds are a fixed contract (0.35, 0.45).
func biasFromProbabilities(probs []float64) RiskLevel {
	if len(probs) < 2 {
		return LevelLow
	}
	sorted := make([]float64, len(probs))
	copy(sorted, probs)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	switch {
	case sorted[1] > 0.45:
		return LevelHigh
	case sorted[1] > 0.35:
		return LevelMedium
	default:
		return LevelLow
	}
}
