// Package pipeline wires the reconciliation stages end to end:
// presence gate -> evidence extraction -> optional diagnosis -> storage.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"vendor_recon/pkg/core/evidence"
	"vendor_recon/pkg/core/store"
	"vendor_recon/pkg/models"
)

// Diagnoser produces a structured diagnosis from extracted evidence.
// Implementations talk to the external reasoning service; runs without one
// simply skip the diagnosis stage.
type Diagnoser interface {
	Diagnose(ctx context.Context, set *evidence.IndicatorSet) (*models.Diagnosis, error)
}

// Orchestrator manages the end-to-end flow for one vendor across the
// canonical report sources.
type Orchestrator struct {
	matcher    *evidence.VendorMatcher
	aggregator *evidence.IndicatorAggregator
	diagnoser  Diagnoser
	repo       store.ReconRepository
}

// NewOrchestrator creates an orchestrator with default thresholds, a
// Postgres repository and no diagnoser.
func NewOrchestrator() *Orchestrator {
	config := evidence.DefaultMatchConfig()
	return &Orchestrator{
		matcher:    evidence.NewVendorMatcherWithConfig(config),
		aggregator: evidence.NewIndicatorAggregatorWithConfig(config),
		repo:       store.NewReconRepo(),
	}
}

// SetRepository injects a custom repository (e.g. in-memory for tests),
// or nil to skip storage entirely.
func (p *Orchestrator) SetRepository(repo store.ReconRepository) {
	p.repo = repo
}

// SetDiagnoser enables the diagnosis stage.
func (p *Orchestrator) SetDiagnoser(d Diagnoser) {
	p.diagnoser = d
}

// SetMatchConfig replaces the thresholds for both the gate and extraction.
func (p *Orchestrator) SetMatchConfig(config evidence.MatchConfig) {
	p.matcher = evidence.NewVendorMatcherWithConfig(config)
	p.aggregator = evidence.NewIndicatorAggregatorWithConfig(config)
}

// Run reconciles one vendor against the supplied report texts and returns
// the full report. Extraction never fails; only the collaborators
// (diagnosis, storage) can produce errors, and a diagnosis failure degrades
// to a report without a diagnosis.
func (p *Orchestrator) Run(ctx context.Context, vendorName string, textsBySource map[string]string) (*models.ReconciliationReport, error) {
	start := time.Now()

	// Fast presence gate before the per-line work.
	present := false
	for _, key := range evidence.CanonicalSources() {
		if p.matcher.VendorPresent(vendorName, textsBySource[key]) {
			present = true
			break
		}
	}
	if !present {
		log.Printf("[Pipeline] vendor %q not found in any source", vendorName)
	}

	set := p.aggregator.BuildIndicators(vendorName, textsBySource)

	report := &models.ReconciliationReport{
		RunID:      uuid.New(),
		Vendor:     vendorName,
		Indicators: set,
		CreatedAt:  time.Now(),
	}

	// Diagnosis only makes sense when there is evidence to reason about.
	if present && p.diagnoser != nil {
		diag, err := p.diagnoser.Diagnose(ctx, set)
		if err != nil {
			log.Printf("[Pipeline] diagnosis failed for %q, continuing without: %v", vendorName, err)
		} else {
			report.Diagnosis = diag
		}
	}

	if p.repo != nil {
		if err := p.repo.Save(ctx, report); err != nil {
			return report, fmt.Errorf("storage failed: %w", err)
		}
	}

	log.Printf("[Pipeline] completed %q in %v (verdict=%s)", vendorName, time.Since(start), set.Verdict)
	return report, nil
}
