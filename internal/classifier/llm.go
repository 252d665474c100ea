package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nikhilbhutani/riskengine/internal/llm"
)

// LLMClassifier implements the three-class risk classifier with an LLM judge.
// It is the drop-in alternative to a locally hosted BERT sidecar for
// deployments that have an LLM provider key but no model server.
type LLMClassifier struct {
	gateway llm.Gateway
	model   string
}

func NewLLMClassifier(gw llm.Gateway, model string) *LLMClassifier {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &LLMClassifier{gateway: gw, model: model}
}

func (c *LLMClassifier) Name() string    { return "llm" }
func (c *LLMClassifier) Available() bool { return c.gateway != nil }

const classifySystemPrompt = `You are a risk classifier for AI-generated text. Classify the overall
risk that the text contains hallucinated, fabricated, or misleading claims.

Reply with ONLY a JSON object:
{"label": "Low Risk" or "Medium Risk" or "High Risk",
 "probabilities": {"low": 0.0, "medium": 0.0, "high": 0.0}}

The three probabilities must sum to 1.0.`

type llmVerdict struct {
	Label         string `json:"label"`
	Probabilities struct {
		Low    float64 `json:"low"`
		Medium float64 `json:"medium"`
		High   float64 `json:"high"`
	} `json:"probabilities"`
}

func (c *LLMClassifier) Classify(ctx context.Context, text string) (*Result, error) {
	if c.gateway == nil {
		return nil, ErrUnavailable
	}

	resp, err := c.gateway.Chat(ctx, llm.ChatRequest{
		Model: c.model,
		Messages: []llm.Message{
			{Role: "system", Content: classifySystemPrompt},
			{Role: "user", Content: text},
		},
		Temperature: 0,
		MaxTokens:   100,
	})
	if err != nil {
		return nil, fmt.Errorf("llm classify: %w", err)
	}

	content := strings.TrimSpace(resp.Content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var v llmVerdict
	if err := json.Unmarshal([]byte(content), &v); err != nil {
		return nil, fmt.Errorf("parse llm verdict: %w", err)
	}

	probs := []float64{v.Probabilities.Low, v.Probabilities.Medium, v.Probabilities.High}

	label := v.Label
	confidence := 0.0
	switch label {
	case LabelLowRisk:
		confidence = probs[0]
	case LabelMediumRisk:
		confidence = probs[1]
	case LabelHighRisk:
		confidence = probs[2]
	default:
		return nil, fmt.Errorf("llm returned unknown label %q", v.Label)
	}

	return &Result{
		Label:         label,
		Confidence:    confidence,
		Probabilities: probs,
	}, nil
}
