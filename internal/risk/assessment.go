package risk

// RiskLevel is an ordered risk category: LOW < MEDIUM < HIGH.
type RiskLevel string

const (
	LevelLow    RiskLevel = "LOW"
	LevelMedium RiskLevel = "MEDIUM"
	LevelHigh   RiskLevel = "HIGH"
)

// Rank returns the position of the level in the LOW < MEDIUM < HIGH order.
func (l RiskLevel) Rank() int {
	switch l {
	case LevelMedium:
		return 1
	case LevelHigh:
		return 2
	default:
		return 0
	}
}

// Engine tags recorded in Assessment.EngineUsed.
const (
	EngineHeuristics = "heuristics"
	EngineClassifier = "classifier+heuristics"
)

// Assessment is the unit of output of a single analysis. It is created fresh
// per request and never mutated after construction.
type Assessment struct {
	HallucinationRisk RiskLevel `json:"hallucination_risk"`
	BiasRisk          RiskLevel `json:"bias_risk"`
	ToxicityRisk      RiskLevel `json:"toxicity_risk"`
	PIILeak           bool      `json:"pii_leak"`
	FraudRisk         RiskLevel `json:"fraud_risk"`
	ConfidenceScore   float64   `json:"confidence_score"`
	Summary           string    `json:"summary"`
	EngineUsed        string    `json:"engine_used"`
}

// Signals carries the per-dimension detector outputs into the confidence
// aggregator.
type Signals struct {
	Hallucination RiskLevel
	Bias          RiskLevel
	Toxicity      RiskLevel
	Fraud         RiskLevel
	PIILeak       bool
}
