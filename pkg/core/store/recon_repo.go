package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"vendor_recon/pkg/models"
)

// ReconRepository stores and retrieves reconciliation reports.
type ReconRepository interface {
	Save(ctx context.Context, report *models.ReconciliationReport) error
	Load(ctx context.Context, vendor string) (*models.ReconciliationReport, error)
}

// PgReconRepo persists reports to Postgres, one row per vendor (latest run
// wins).
type PgReconRepo struct{}

var _ ReconRepository = (*PgReconRepo)(nil)

// NewReconRepo creates a Postgres-backed repository.
func NewReconRepo() *PgReconRepo {
	return &PgReconRepo{}
}

// Save upserts the report keyed by vendor name.
//
// Schema assumption (managed externally):
//
//	CREATE TABLE IF NOT EXISTS reconciliation_runs (
//	  vendor TEXT PRIMARY KEY,
//	  run_id UUID,
//	  verdict TEXT,
//	  report_json JSONB,
//	  updated_at TIMESTAMPTZ
//	);
func (r *PgReconRepo) Save(ctx context.Context, report *models.ReconciliationReport) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	query := `
		INSERT INTO reconciliation_runs (vendor, run_id, verdict, report_json, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (vendor)
		DO UPDATE SET
			run_id = EXCLUDED.run_id,
			verdict = EXCLUDED.verdict,
			report_json = EXCLUDED.report_json,
			updated_at = EXCLUDED.updated_at;
	`

	_, err = pool.Exec(ctx, query,
		report.Vendor, report.RunID, string(report.Indicators.Verdict), jsonData, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	return nil
}

// Load retrieves the latest report for a vendor.
func (r *PgReconRepo) Load(ctx context.Context, vendor string) (*models.ReconciliationReport, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT report_json FROM reconciliation_runs WHERE vendor = $1`

	var jsonData []byte
	err := pool.QueryRow(ctx, query, vendor).Scan(&jsonData)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no reconciliation found for vendor %s", vendor)
		}
		return nil, fmt.Errorf("failed to load report: %w", err)
	}

	var report models.ReconciliationReport
	if err := json.Unmarshal(jsonData, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}

	return &report, nil
}

// MemoryReconRepo is an in-memory ReconRepository for tests and dry runs.
type MemoryReconRepo struct {
	mu      sync.RWMutex
	reports map[string]*models.ReconciliationReport
}

var _ ReconRepository = (*MemoryReconRepo)(nil)

// NewMemoryReconRepo creates an empty in-memory repository.
func NewMemoryReconRepo() *MemoryReconRepo {
	return &MemoryReconRepo{reports: make(map[string]*models.ReconciliationReport)}
}

func (r *MemoryReconRepo) Save(ctx context.Context, report *models.ReconciliationReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports[report.Vendor] = report
	return nil
}

func (r *MemoryReconRepo) Load(ctx context.Context, vendor string) (*models.ReconciliationReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	report, ok := r.reports[vendor]
	if !ok {
		return nil, fmt.Errorf("no reconciliation found for vendor %s", vendor)
	}
	return report, nil
}
