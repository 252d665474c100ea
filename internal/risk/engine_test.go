package risk

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhilbhutani/riskengine/internal/classifier"
)

const scamText = "Studies have definitively proven our AI is 100% accurate and guaranteed. Act now — limited time! Email offers@example.com or call 555-0123."

// fakeClassifier scripts the provider responses for engine tests.
type fakeClassifier struct {
	result    *classifier.Result
	err       error
	available bool
	calls     int
}

func (f *fakeClassifier) Classify(ctx context.Context, text string) (*classifier.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeClassifier) Available() bool { return f.available }
func (f *fakeClassifier) Name() string    { return "fake" }

func TestAnalyzeEmptyText(t *testing.T) {
	engine := NewEngine(nil)

	for _, text := range []string{"", "   ", "\n\t "} {
		a, err := engine.Analyze(context.Background(), text)
		assert.ErrorIs(t, err, ErrEmptyText)
		assert.Nil(t, a)
	}
}

func TestAnalyzeHeuristicsScamText(t *testing.T) {
	engine := NewEngine(nil)

	a, err := engine.Analyze(context.Background(), scamText)
	require.NoError(t, err)

	assert.Equal(t, LevelHigh, a.HallucinationRisk)
	assert.Equal(t, LevelHigh, a.FraudRisk)
	assert.True(t, a.PIILeak)
	assert.Equal(t, LevelLow, a.ToxicityRisk)
	assert.Equal(t, EngineHeuristics, a.EngineUsed)

	// Base 0.75 + 0.05 agreement tier + 0.05 PII, plus sub-0.05 jitter.
	assert.GreaterOrEqual(t, a.ConfidenceScore, 0.85)
	assert.Less(t, a.ConfidenceScore, 0.90)

	assert.Contains(t, a.Summary, "Multiple concerns detected")
	assert.Contains(t, a.Summary, "fraud indicators")
	assert.Contains(t, a.Summary, "personally identifiable information")
}

func TestAnalyzeHeuristicsHedgedText(t *testing.T) {
	engine := NewEngine(nil)

	a, err := engine.Analyze(context.Background(), "This might possibly be true, according to some sources.")
	require.NoError(t, err)

	assert.Equal(t, LevelLow, a.HallucinationRisk)
	assert.Equal(t, LevelLow, a.FraudRisk)
	assert.False(t, a.PIILeak)
	assert.Contains(t, a.Summary, "appears safe")
}

func TestAnalyzeDeterministic(t *testing.T) {
	engine := NewEngine(nil)

	first, err := engine.Analyze(context.Background(), scamText)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := engine.Analyze(context.Background(), scamText)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestAnalyzeClassifierVerdict(t *testing.T) {
	clf := &fakeClassifier{
		available: true,
		result: &classifier.Result{
			Label:         classifier.LabelHighRisk,
			Confidence:    0.9,
			Probabilities: []float64{0.05, 0.05, 0.9},
		},
	}
	engine := NewEngine(clf)

	a, err := engine.Analyze(context.Background(), scamText)
	require.NoError(t, err)

	assert.Equal(t, 1, clf.calls)
	assert.Equal(t, EngineClassifier, a.EngineUsed)
	assert.Equal(t, LevelHigh, a.HallucinationRisk)
	// A decisive class distribution keeps bias low.
	assert.Equal(t, LevelLow, a.BiasRisk)
	// Local detectors still run alongside the verdict.
	assert.Equal(t, LevelHigh, a.FraudRisk)
	assert.True(t, a.PIILeak)
	// 0.9 base + 0.05 PII + 0.03 high fraud.
	assert.InDelta(t, 0.98, a.ConfidenceScore, 1e-9)
}

func TestAnalyzeClassifierLabelMapping(t *testing.T) {
	tests := []struct {
		label string
		want  RiskLevel
	}{
		{classifier.LabelLowRisk, LevelLow},
		{classifier.LabelMediumRisk, LevelMedium},
		{classifier.LabelHighRisk, LevelHigh},
		{"Unrecognized", LevelMedium},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			engine := NewEngine(&fakeClassifier{
				available: true,
				result:    &classifier.Result{Label: tt.label, Confidence: 0.8},
			})

			a, err := engine.Analyze(context.Background(), "A plain sentence about nothing in particular.")
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.HallucinationRisk)
		})
	}
}

func TestBiasFromProbabilities(t *testing.T) {
	tests := []struct {
		name  string
		probs []float64
		want  RiskLevel
	}{
		{"decisive", []float64{0.05, 0.05, 0.9}, LevelLow},
		{"close runner-up", []float64{0.46, 0.46, 0.08}, LevelHigh},
		{"moderate runner-up", []float64{0.5, 0.4, 0.1}, LevelMedium},
		{"at medium threshold", []float64{0.6, 0.35, 0.05}, LevelLow},
		{"single class", []float64{1.0}, LevelLow},
		{"empty", nil, LevelLow},
		{"unordered input", []float64{0.1, 0.5, 0.4}, LevelMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, biasFromProbabilities(tt.probs))
		})
	}
}

func TestAnalyzeClassifierFailureFallsBack(t *testing.T) {
	broken := &fakeClassifier{available: true, err: errors.New("connection refused")}
	withBroken := NewEngine(broken)
	heuristicsOnly := NewEngine(nil)

	got, err := withBroken.Analyze(context.Background(), scamText)
	require.NoError(t, err)
	want, err := heuristicsOnly.Analyze(context.Background(), scamText)
	require.NoError(t, err)

	assert.Equal(t, 1, broken.calls)
	assert.Equal(t, EngineHeuristics, got.EngineUsed)
	assert.Equal(t, want, got)
}

func TestAnalyzeUnavailableClassifierNotCalled(t *testing.T) {
	clf := &fakeClassifier{available: false, result: &classifier.Result{Label: classifier.LabelHighRisk}}
	engine := NewEngine(clf)

	a, err := engine.Analyze(context.Background(), "A plain sentence about nothing in particular.")
	require.NoError(t, err)

	assert.Zero(t, clf.calls)
	assert.Equal(t, EngineHeuristics, a.EngineUsed)
}

func TestClassifierAvailable(t *testing.T) {
	assert.False(t, NewEngine(nil).ClassifierAvailable())
	assert.True(t, NewEngine(&fakeClassifier{available: true}).ClassifierAvailable())
}
