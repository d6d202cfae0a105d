// Package llm provides the reasoning providers consumed by the diagnosis
// layer. The evidence engine takes zero dependency on this package:
// providers are constructed explicitly by the caller and injected where a
// diagnosis is wanted.
package llm

import (
	"context"
)

// Provider is the interface for all reasoning providers.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
}

// StaticProvider returns a fixed response. Used in tests and dry runs where
// no external reasoning service should be reached.
type StaticProvider struct {
	Response string
	Err      error
}

var _ Provider = (*StaticProvider)(nil)

func (p *StaticProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	if p.Err != nil {
		return "", p.Err
	}
	return p.Response, nil
}
