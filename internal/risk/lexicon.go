package risk

import "regexp"

// Lexicons are process-wide constants. Keywords are matched as
// case-insensitive substrings against lowercased input; each lexicon entry
// contributes at most one hit. Patterns are matched with regexp.

// PII patterns, checked in order with short-circuit on first match.
var piiPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),                              // SSN
	regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),                      // phone numbers
	regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), // email
	regexp.MustCompile(`\b\d{4}[- ]?\d{4}[- ]?\d{4}[- ]?\d{4}\b`),            // credit card
	regexp.MustCompile(`\b\d{5}(-\d{4})?\b`),                                 // ZIP codes
	regexp.MustCompile(`\b\d{9}\b`),                                          // SSN without dashes
}

// Fraud keyword tiers.
var (
	fraudHighKeywords = []string{
		"guaranteed", "act now", "limited time", "risk-free",
		"click here now", "urgent action", "winner", "claim your prize",
		"congratulations you won", "free money", "no risk", "double your",
		"best price guaranteed", "lowest price ever", "cheapest rate",
		"absolutely free", "definitely safe", "without any doubt",
		"everyone agrees", "100% proven", "zero risk", "instant approval",
	}

	fraudMediumKeywords = []string{
		"offer", "deal", "discount", "special", "promotion",
		"exclusive", "limited", "hurry", "bonus", "sale",
		"opportunity", "claim now", "expires soon",
	}
)

// Toxicity lexicon: literal keywords plus offensive syntactic patterns.
var (
	toxicKeywords = []string{
		"hate", "stupid", "idiot", "moron", "dumb",
		"pathetic", "worthless", "disgusting", "garbage",
		"trash", "awful", "horrible", "terrible", "worst",
	}

	toxicPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(hate|hating|hated)\s+\w+`),
		regexp.MustCompile(`\b(terrible|awful|horrible)\s+(and|or)\s+\w+`),
		regexp.MustCompile(`\b(stupid|dumb|idiotic)\s+\w+`),
	}
)

// Bias lexicon: loaded language plus absolute-statement patterns.
var (
	biasKeywords = []string{
		"obviously", "clearly", "it is clear that", "everyone knows",
		"no one would", "any reasonable person", "common sense",
		"just", "simply", "merely", "only", "always better",
		"never appropriate", "all experts", "every study",
	}

	biasPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(all|every|none|no)\s+\w+\s+(are|is|have|has)`),
		regexp.MustCompile(`\b(always|never)\s+\w+`),
		regexp.MustCompile(`\b(everyone|nobody)\s+(knows|believes|thinks)`),
	}
)

// Hallucination lexicons: excessive certainty raises risk, hedging lowers it,
// unattributed empirical claims raise it.
var (
	certaintyPhrases = []string{
		"definitely", "certainly", "absolutely", "without doubt",
		"for sure", "guaranteed", "proven fact", "scientific fact",
		"everyone knows", "it is known that", "studies show that",
		"experts agree", "always", "never", "100%", "all scientists",
	}

	hedgingPhrases = []string{
		"might", "could", "possibly", "perhaps", "may",
		"likely", "probably", "seems", "appears", "suggests",
		"according to", "some sources", "it is believed",
	}

	unsupportedPatterns = []*regexp.Regexp{
		regexp.MustCompile(`research shows that \w+`),
		regexp.MustCompile(`studies prove that \w+`),
		regexp.MustCompile(`scientists discovered that \w+`),
		regexp.MustCompile(`\d+% of (people|users|patients)`),
		regexp.MustCompile(`(always|never) (works|fails|happens)`),
	}

	numericClaimPattern = regexp.MustCompile(`\d+%|\d+\.\d+`)
)
