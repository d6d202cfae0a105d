// Package models holds the cross-package reconciliation records shared by
// the pipeline, the diagnosis layer and the store.
package models

import (
	"time"

	"github.com/google/uuid"

	"vendor_recon/pkg/core/evidence"
)

// FindingType classifies one diagnosis finding.
type FindingType string

const (
	FindingConsistent        FindingType = "consistent"
	FindingBalanceDivergence FindingType = "balance_divergence"
	FindingMissingEntry      FindingType = "missing_entry"
	FindingDataGap           FindingType = "data_gap"
)

// Finding is a single structured observation produced by the reasoning step.
type Finding struct {
	Type   FindingType `json:"type"`
	Source string      `json:"source,omitempty"` // Canonical source key, when source-specific
	Detail string      `json:"detail"`
}

// Diagnosis is the structured output of the reasoning collaborator. It is
// always subordinate to the deterministic verdict: findings that contradict
// the verdict are rewritten before the diagnosis leaves the engine.
type Diagnosis struct {
	Summary  string    `json:"summary"`
	Findings []Finding `json:"findings"`
}

// ReconciliationReport is the full result of one reconciliation run.
type ReconciliationReport struct {
	RunID      uuid.UUID              `json:"run_id"`
	Vendor     string                 `json:"vendor"`
	Indicators *evidence.IndicatorSet `json:"indicators"`
	Diagnosis  *Diagnosis             `json:"diagnosis,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}
