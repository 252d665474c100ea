package risk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPII(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"email", "Contact me at a@b.com", true},
		{"ssn with dashes", "SSN is 123-45-6789", true},
		{"phone number", "call 555-867-5309 today", true},
		{"credit card grouped", "card 4111 1111 1111 1111 on file", true},
		{"zip code", "ships to 90210", true},
		{"bare nine digits", "id 123456789 assigned", true},
		{"clean text", "The weather is nice today", false},
		{"no digits at all", "nothing identifiable here", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectPII(tc.text))
		})
	}
}

func TestDetectFraud(t *testing.T) {
	cases := []struct {
		name string
		text string
		want RiskLevel
	}{
		{"two high tier keywords", "Act now! This deal is guaranteed.", LevelHigh},
		{"one high tier keyword", "Results are guaranteed.", LevelMedium},
		{"three medium tier keywords", "A special discount offer for members.", LevelMedium},
		{"two medium tier keywords", "A discount offer for members.", LevelLow},
		{"neutral text", "The meeting is scheduled for Tuesday.", LevelLow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectFraud(tc.text))
		})
	}
}

func TestDetectToxicity(t *testing.T) {
	cases := []struct {
		name string
		text string
		want RiskLevel
	}{
		{"keywords plus patterns", "I hate this stupid thing", LevelHigh},
		{"single keyword", "this product is garbage", LevelMedium},
		{"clean text", "what a pleasant afternoon", LevelLow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectToxicity(tc.text))
		})
	}
}

func TestDetectBias(t *testing.T) {
	cases := []struct {
		name string
		text string
		want RiskLevel
	}{
		{"loaded language and pattern", "Obviously everyone knows this is right", LevelHigh},
		{"single loaded word", "that is common sense", LevelMedium},
		{"neutral text", "the cat sat on the mat", LevelLow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectBias(tc.text))
		})
	}
}

// Appending more lexicon matches to neutral text never lowers the level.
func TestDetectorMonotonicity(t *testing.T) {
	base := "the cat sat on the mat"

	t.Run("bias", func(t *testing.T) {
		text := base
		prev := DetectBias(text)
		for _, kw := range []string{"obviously", "common sense", "every study"} {
			text += " " + kw
			cur := DetectBias(text)
			assert.GreaterOrEqual(t, cur.Rank(), prev.Rank(), "after appending %q", kw)
			prev = cur
		}
	})

	t.Run("toxicity", func(t *testing.T) {
		text := base
		prev := DetectToxicity(text)
		for _, kw := range []string{"garbage", "pathetic", "worthless"} {
			text += " " + kw
			cur := DetectToxicity(text)
			assert.GreaterOrEqual(t, cur.Rank(), prev.Rank(), "after appending %q", kw)
			prev = cur
		}
	})

	t.Run("fraud", func(t *testing.T) {
		text := base
		prev := DetectFraud(text)
		for _, kw := range []string{"guaranteed", "act now", "risk-free"} {
			text += " " + kw
			cur := DetectFraud(text)
			assert.GreaterOrEqual(t, cur.Rank(), prev.Rank(), "after appending %q", kw)
			prev = cur
		}
	})
}

func TestDetectFraudCaseInsensitive(t *testing.T) {
	assert.Equal(t, DetectFraud("GUARANTEED, ACT NOW"), DetectFraud(strings.ToLower("GUARANTEED, ACT NOW")))
}

func TestRiskLevelRank(t *testing.T) {
	assert.Less(t, LevelLow.Rank(), LevelMedium.Rank())
	assert.Less(t, LevelMedium.Rank(), LevelHigh.Rank())
}
