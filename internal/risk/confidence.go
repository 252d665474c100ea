package risk

import (
	"hash/fnv"
	"math"
	"strings"
)

// AggregateConfidence combines the detector signals and text features into
// one overall confidence score in [0, 0.99].
//
// Base 0.75, plus a length bonus (longer text is easier to judge), plus a
// consistency bonus when the four level detectors agree, plus a PII bonus
// (regex PII detection is reliable), capped at 0.98. A deterministic jitter
// derived from the text bytes is added on top so assessments with identical
// categorical signals do not all render the same number; the final value is
// capped at 0.99.
func AggregateConfidence(text string, s Signals) float64 {
	confidence := 0.75

	words := len(strings.Fields(text))
	switch {
	case words > 100:
		confidence += 0.10
	case words > 50:
		confidence += 0.05
	}

	highCount, lowCount := 0, 0
	for _, l := range []RiskLevel{s.Hallucination, s.Bias, s.Toxicity, s.Fraud} {
		switch l {
		case LevelHigh:
			highCount++
		case LevelLow:
			lowCount++
		}
	}
	switch {
	case highCount >= 3 || lowCount >= 3:
		confidence += 0.10
	case highCount >= 2 || lowCount >= 2:
		confidence += 0.05
	}

	if s.PIILeak {
		confidence += 0.05
	}

	confidence = math.Min(confidence, 0.98)

	// Pure function of the text bytes, never a source of randomness, so the
	// whole engine stays reproducible.
	variation := float64(textJitter(text)) / 1000.0
	return math.Min(confidence+variation*0.5, 0.99)
}

// textJitter maps the text to a stable value in [0, 100).
func textJitter(text string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(text))
	return h.Sum64() % 100
}
