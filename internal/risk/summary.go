package risk

import (
	"fmt"
	"strings"
)

// Summarize renders an assessment into a natural-language explanation.
// It is a pure function of the assessment fields.
func Summarize(a *Assessment) string {
	var clauses []string

	switch a.HallucinationRisk {
	case LevelHigh:
		clauses = append(clauses, "high hallucination risk (unverified claims or excessive certainty)")
	case LevelMedium:
		clauses = append(clauses, "moderate hallucination risk (some unsupported statements)")
	}

	switch a.BiasRisk {
	case LevelHigh:
		clauses = append(clauses, "significant bias (absolute statements or loaded language)")
	case LevelMedium:
		clauses = append(clauses, "some bias detected")
	}

	switch a.ToxicityRisk {
	case LevelHigh:
		clauses = append(clauses, "toxic or offensive content")
	case LevelMedium:
		clauses = append(clauses, "potentially offensive language")
	}

	if a.PIILeak {
		clauses = append(clauses, "personally identifiable information detected (emails, phone numbers, or similar)")
	}

	switch a.FraudRisk {
	case LevelHigh:
		clauses = append(clauses, "multiple fraud indicators (urgent language, guarantees, or pressure tactics)")
	case LevelMedium:
		clauses = append(clauses, "some fraud-related patterns")
	}

	confidence := fmt.Sprintf("%.1f%%", a.ConfidenceScore*100)

	switch len(clauses) {
	case 0:
		return fmt.Sprintf("Analysis complete. Content appears safe and appropriate with no significant risks detected. Model confidence: %s.", confidence)
	case 1:
		return fmt.Sprintf("Analysis identified %s. Content review recommended. Model confidence: %s.", clauses[0], confidence)
	case 2:
		return fmt.Sprintf("Analysis identified %s and %s. Careful review recommended. Model confidence: %s.", clauses[0], clauses[1], confidence)
	default:
		list := strings.Join(clauses[:len(clauses)-1], ", ") + ", and " + clauses[len(clauses)-1]
		return fmt.Sprintf("Multiple concerns detected: %s. Thorough content review strongly recommended. Model confidence: %s.", list, confidence)
	}
}
