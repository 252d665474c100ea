package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhilbhutani/riskengine/internal/risk"
)

func postAnalyze(t *testing.T, h *AnalyzeHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Analyze(rec, req)
	return rec
}

func TestAnalyzeHandler(t *testing.T) {
	h := NewAnalyzeHandler(risk.NewEngine(nil), nil)

	rec := postAnalyze(t, h, `{"text": "Act now, guaranteed results! This offer is limited time only."}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, risk.LevelHigh, resp.FraudRisk)
	assert.Equal(t, risk.EngineHeuristics, resp.EngineUsed)
	assert.NotEmpty(t, resp.Summary)
	assert.GreaterOrEqual(t, resp.ProcessingTimeMs, 0.0)
}

func TestAnalyzeHandlerEmptyText(t *testing.T) {
	h := NewAnalyzeHandler(risk.NewEngine(nil), nil)

	for _, body := range []string{`{"text": ""}`, `{"text": "   "}`, `{}`} {
		rec := postAnalyze(t, h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "text cannot be empty", resp["error"])
	}
}

func TestAnalyzeHandlerInvalidBody(t *testing.T) {
	h := NewAnalyzeHandler(risk.NewEngine(nil), nil)

	rec := postAnalyze(t, h, `{"text": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid request body", resp["error"])
}

func TestAnalyzeHandlerResponseFields(t *testing.T) {
	h := NewAnalyzeHandler(risk.NewEngine(nil), nil)

	rec := postAnalyze(t, h, `{"text": "A perfectly ordinary sentence."}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	for _, key := range []string{
		"hallucination_risk", "bias_risk", "toxicity_risk", "pii_leak",
		"fraud_risk", "confidence_score", "summary", "engine_used",
		"processing_time_ms",
	} {
		assert.Contains(t, raw, key)
	}
}
