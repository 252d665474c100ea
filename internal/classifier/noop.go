package classifier

import "context"

// Noop is the heuristics-only deployment: never available, never consulted.
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (n *Noop) Name() string    { return "none" }
func (n *Noop) Available() bool { return false }

func (n *Noop) Classify(_ context.Context, _ string) (*Result, error) {
	return nil, ErrUnavailable
}
