// Package diagnosis - Reasoning engine over extracted evidence
package diagnosis

import (
	"context"
	"fmt"
	"log"

	"vendor_recon/pkg/core/evidence"
	"vendor_recon/pkg/core/llm"
	"vendor_recon/pkg/core/utils"
	"vendor_recon/pkg/models"
)

// Engine produces a structured diagnosis from an IndicatorSet. It holds the
// injected provider only; no global client handle, so it can be constructed
// and tested with no process-wide state.
type Engine struct {
	provider llm.Provider
}

// NewEngine creates a diagnosis engine around an explicitly constructed
// provider.
func NewEngine(provider llm.Provider) *Engine {
	return &Engine{provider: provider}
}

// Diagnose asks the provider for a structured diagnosis of the evidence and
// enforces the verdict guardrails on the result.
func (e *Engine) Diagnose(ctx context.Context, set *evidence.IndicatorSet) (*models.Diagnosis, error) {
	if set == nil {
		return nil, fmt.Errorf("nil indicator set")
	}

	raw, err := e.provider.GenerateResponse(ctx, buildPrompt(set), systemPrompt, map[string]interface{}{
		"response_format": "json",
	})
	if err != nil {
		return nil, fmt.Errorf("diagnosis generation failed: %w", err)
	}

	// Strict schema decode first; fall back to the lenient strategies for
	// sloppy model output.
	var diag models.Diagnosis
	cleaned := utils.CleanMarkdown(raw)
	if err := utils.ValidateJSON(cleaned, &diag); err != nil {
		diag = models.Diagnosis{}
		if _, err := utils.SmartParse(cleaned, &diag); err != nil {
			return nil, fmt.Errorf("diagnosis output unusable: %w", err)
		}
	}

	if corrections := EnforceVerdict(&diag, set); len(corrections) > 0 {
		for _, c := range corrections {
			log.Printf("[Diagnosis] guardrail: %s", c)
		}
	}

	return &diag, nil
}
