package evidence

// MatchConfig carries the tunable matching parameters. The two thresholds
// are deliberately distinct: presence detection is a strict yes/no gate,
// extraction is permissive so it can absorb line-wrap artifacts introduced
// by upstream document-to-text conversion. They must not be unified.
type MatchConfig struct {
	// PresenceThreshold is the minimum per-line token-overlap score for
	// VendorPresent to report the vendor as found.
	PresenceThreshold float64 `yaml:"presence_threshold" json:"presence_threshold"`

	// ExtractionThreshold is the minimum per-line score for a line to be
	// kept as evidence by ExtractVendorLines.
	ExtractionThreshold float64 `yaml:"extraction_threshold" json:"extraction_threshold"`

	// MinTokenLength filters name tokens: only tokens strictly longer than
	// this count toward the overlap score (drops "de", "da", "e", ...).
	MinTokenLength int `yaml:"min_token_length" json:"min_token_length"`

	// BalanceTolerance is the maximum pooled max-min gap, in currency
	// units, still considered equal across sources.
	BalanceTolerance float64 `yaml:"balance_tolerance" json:"balance_tolerance"`
}

// DefaultMatchConfig returns the production parameter set.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		PresenceThreshold:   0.70,
		ExtractionThreshold: 0.60,
		MinTokenLength:      2,
		BalanceTolerance:    0.10,
	}
}
