package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Remote talks to a local model-serving sidecar (e.g. a BERT classifier
// exposed over HTTP) using a small JSON protocol:
//
//	POST {base}/classify {"text": "..."}
//	  -> {"label": "High Risk", "confidence": 0.91, "probabilities": [0.02, 0.07, 0.91]}
type Remote struct {
	baseURL    string
	httpClient *http.Client
}

func NewRemote(baseURL string, timeout time.Duration) *Remote {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Remote{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (r *Remote) Name() string    { return "remote" }
func (r *Remote) Available() bool { return r.baseURL != "" }

type remoteClassifyReq struct {
	Text string `json:"text"`
}

type remoteClassifyResp struct {
	Label         string    `json:"label"`
	Confidence    float64   `json:"confidence"`
	Probabilities []float64 `json:"probabilities"`
}

func (r *Remote) Classify(ctx context.Context, text string) (*Result, error) {
	body, err := json.Marshal(remoteClassifyReq{Text: text})
	if err != nil {
		return nil, fmt.Errorf("marshal classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/classify", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classifier request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("classifier returned %d: %s", resp.StatusCode, string(b))
	}

	var out remoteClassifyResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode classify response: %w", err)
	}
	if out.Label == "" {
		return nil, fmt.Errorf("classifier returned empty label")
	}

	return &Result{
		Label:         out.Label,
		Confidence:    out.Confidence,
		Probabilities: out.Probabilities,
	}, nil
}

// Ping verifies the sidecar is reachable. Used once at construction time;
// a failed ping downgrades the deployment to heuristics-only.
func (r *Remote) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("classifier health check: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("classifier health check returned %d", resp.StatusCode)
	}
	return nil
}
