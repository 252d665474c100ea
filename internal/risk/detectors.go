package risk

import (
	"regexp"
	"strings"
)

// DetectPII reports whether the text contains an identifiable-information
// pattern. The pattern list is fixed; the first match short-circuits.
func DetectPII(text string) bool {
	for _, p := range piiPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// DetectFraud scores fraud risk from two disjoint keyword tiers.
// HIGH on two or more high-tier hits, MEDIUM on one high-tier hit or three
// medium-tier hits.
func DetectFraud(text string) RiskLevel {
	lower := strings.ToLower(text)

	highMatches := countKeywords(lower, fraudHighKeywords)
	mediumMatches := countKeywords(lower, fraudMediumKeywords)

	switch {
	case highMatches >= 2:
		return LevelHigh
	case highMatches >= 1 || mediumMatches >= 3:
		return LevelMedium
	default:
		return LevelLow
	}
}

// DetectToxicity scores toxic language from literal keywords plus offensive
// syntactic patterns.
func DetectToxicity(text string) RiskLevel {
	return scoreTiered(text, toxicKeywords, toxicPatterns)
}

// DetectBias scores loaded language and absolute statements.
func DetectBias(text string) RiskLevel {
	return scoreTiered(text, biasKeywords, biasPatterns)
}

// scoreTiered is the shared keyword+pattern scorer behind the toxicity and
// bias detectors: total hits >= 3 is HIGH, >= 1 is MEDIUM.
func scoreTiered(text string, keywords []string, patterns []*regexp.Regexp) RiskLevel {
	lower := strings.ToLower(text)

	total := countKeywords(lower, keywords) + countPatterns(lower, patterns)

	switch {
	case total >= 3:
		return LevelHigh
	case total >= 1:
		return LevelMedium
	default:
		return LevelLow
	}
}

// DetectHallucination weighs certainty against hedging and unattributed
// empirical claims. The returned confidence is the detector's own heuristic
// number; the aggregate confidence is computed separately.
func DetectHallucination(text string) (RiskLevel, float64) {
	lower := strings.ToLower(text)

	certaintyCount := countKeywords(lower, certaintyPhrases)
	hedgingCount := countKeywords(lower, hedgingPhrases)
	unsupportedCount := countPatterns(lower, unsupportedPatterns)

	riskScore := certaintyCount*2 + unsupportedCount - hedgingCount

	// Unhedged numeric claims push the score further up.
	numericClaims := len(numericClaimPattern.FindAllString(text, -1))
	if numericClaims > 2 && hedgingCount == 0 {
		riskScore += 2
	}

	capped := min(riskScore, 10)
	switch {
	case riskScore >= 4:
		return LevelHigh, 0.75 + float64(capped)*0.02
	case riskScore >= 2:
		return LevelMedium, 0.65 + float64(capped)*0.02
	default:
		return LevelLow, 0.80 + float64(hedgingCount)*0.02
	}
}

func countKeywords(lower string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			n++
		}
	}
	return n
}

func countPatterns(lower string, patterns []*regexp.Regexp) int {
	n := 0
	for _, p := range patterns {
		if p.MatchString(lower) {
			n++
		}
	}
	return n
}
