// Package evidence implements the Vendor Evidence Engine (VEE).
// It provides deterministic vendor detection and balance extraction over
// plain-text financial reports (ledger, payables, balance summary).
package evidence

// =============================================================================
// SOURCE KEYS - Canonical report categories cross-checked per vendor
// =============================================================================

const (
	SourceBalanceSummary = "balance_summary"
	SourcePayables       = "payables"
	SourceLedger         = "ledger"
)

// CanonicalSources returns the fixed set of report categories the aggregator
// operates on. Input maps may omit keys (treated as empty text); keys outside
// this set are ignored.
func CanonicalSources() []string {
	return []string{SourceBalanceSummary, SourcePayables, SourceLedger}
}

// =============================================================================
// LINE MATCH - A single report line attributed to the vendor
// =============================================================================

// LineMatch represents one report line that scored at or above the
// extraction threshold for the vendor being reconciled.
type LineMatch struct {
	OriginalLine   string   `json:"original_line"`             // Raw line as it appeared in the report
	NormalizedLine string   `json:"normalized_line"`           // Comparison form, never for display
	Score          float64  `json:"score"`                     // Token-overlap score in [0,1]
	MonetaryValues []string `json:"monetary_values,omitempty"` // Raw currency tokens, left to right
	LastValue      string   `json:"last_value,omitempty"`      // Rightmost currency token ("" if none)
}

// ParsedBalance is a monetary value successfully converted to a number.
type ParsedBalance struct {
	Raw          string  `json:"raw"`
	Numeric      float64 `json:"numeric"`
	OriginalLine string  `json:"original_line"`
}

// SourceIndicator groups the evidence found for one report source.
type SourceIndicator struct {
	LineMatches    []LineMatch     `json:"line_matches"`
	ParsedBalances []ParsedBalance `json:"parsed_balances"`
}

// =============================================================================
// VERDICT - Deterministic cross-source comparison outcome
// =============================================================================

// Verdict is the enumerated outcome of pooling balances across sources.
// Downstream reasoning must obey it: balances_equal forbids any "balance
// differs" finding, insufficient_data forbids claiming a balance is zero.
type Verdict string

const (
	VerdictInsufficientData  Verdict = "insufficient_data"
	VerdictBalancesEqual     Verdict = "balances_equal"
	VerdictBalancesDifferent Verdict = "balances_different"
)

// IndicatorSet is the full output of one aggregation call: per-source
// evidence plus the cross-source verdict.
type IndicatorSet struct {
	Vendor    string                     `json:"vendor"`
	Sources   map[string]SourceIndicator `json:"indicators_by_source"`
	Verdict   Verdict                    `json:"verdict"`
	Reference *float64                   `json:"reference,omitempty"` // Midpoint when balances_equal
}

// BalancesBySource returns the sources that contributed at least one parsed
// balance, in canonical order.
func (s *IndicatorSet) BalancesBySource() map[string][]float64 {
	out := make(map[string][]float64)
	for _, key := range CanonicalSources() {
		ind, ok := s.Sources[key]
		if !ok || len(ind.ParsedBalances) == 0 {
			continue
		}
		vals := make([]float64, 0, len(ind.ParsedBalances))
		for _, b := range ind.ParsedBalances {
			vals = append(vals, b.Numeric)
		}
		out[key] = vals
	}
	return out
}
