package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectHallucination(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		want     RiskLevel
		wantConf float64
	}{
		{
			// certainty: "definitely", "proven fact", "always", "100%" (x2 weight)
			// unsupported: "100% of people", "always works"
			name:     "unhedged absolute claims",
			text:     "It is definitely a proven fact that this always works. 100% of people agree.",
			want:     LevelHigh,
			wantConf: 0.95,
		},
		{
			name:     "single certainty phrase",
			text:     "This is certainly true.",
			want:     LevelMedium,
			wantConf: 0.69,
		},
		{
			name:     "hedging dominates",
			text:     "This might possibly work, according to some sources.",
			want:     LevelLow,
			wantConf: 0.88,
		},
		{
			name:     "neutral text",
			text:     "The report covers last quarter.",
			want:     LevelLow,
			wantConf: 0.80,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			level, conf := DetectHallucination(tc.text)
			assert.Equal(t, tc.want, level)
			assert.InDelta(t, tc.wantConf, conf, 1e-9)
		})
	}
}

// More than two unhedged numeric tokens push the score up by two.
func TestDetectHallucinationNumericClaims(t *testing.T) {
	level, _ := DetectHallucination("Throughput went from 1.5 to 2.5, a gain in 80% of runs.")
	assert.Equal(t, LevelMedium, level)

	// Same shape with hedging present: no numeric bump.
	level, _ = DetectHallucination("Throughput possibly went from 1.5 to 2.5, a gain in 80% of runs.")
	assert.Equal(t, LevelLow, level)
}
