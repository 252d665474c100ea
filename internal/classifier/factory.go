package classifier

import (
	"context"
	"log/slog"

	"github.com/nikhilbhutani/riskengine/internal/config"
	"github.com/nikhilbhutani/riskengine/internal/llm"
)

// FromConfig builds the classifier provider in one step: it either comes up
// available or the deployment degrades to heuristics-only. Callers never
// learn why a backend was rejected beyond the log line.
func FromConfig(ctx context.Context, cfg config.ClassifierConfig, gw llm.Gateway) Provider {
	switch cfg.Mode {
	case "remote":
		r := NewRemote(cfg.URL, cfg.Timeout)
		pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
		if err := r.Ping(pingCtx); err != nil {
			slog.Warn("remote classifier unreachable, using heuristics only", "url", cfg.URL, "error", err)
			return NewNoop()
		}
		slog.Info("remote classifier loaded", "url", cfg.URL)
		return r
	case "llm":
		if gw == nil || !llm.HasProviders(gw) {
			slog.Warn("no LLM provider configured, using heuristics only")
			return NewNoop()
		}
		slog.Info("llm classifier loaded", "model", cfg.Model)
		return NewLLMClassifier(gw, cfg.Model)
	default:
		return NewNoop()
	}
}
