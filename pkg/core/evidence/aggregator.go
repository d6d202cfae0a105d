// Package evidence - Cross-source indicator aggregation
package evidence

import (
	"log"
	"math"
)

// IndicatorAggregator orchestrates line extraction and monetary parsing
// across the canonical report sources and computes the deterministic
// cross-source verdict. The verdict is the guardrail the downstream
// reasoning step must obey; it is never overridden by generated prose.
type IndicatorAggregator struct {
	config    MatchConfig
	extractor *LineExtractor
}

// NewIndicatorAggregator creates an aggregator with the default thresholds.
func NewIndicatorAggregator() *IndicatorAggregator {
	return NewIndicatorAggregatorWithConfig(DefaultMatchConfig())
}

// NewIndicatorAggregatorWithConfig creates an aggregator with custom
// thresholds, shared with its internal extractor.
func NewIndicatorAggregatorWithConfig(config MatchConfig) *IndicatorAggregator {
	return &IndicatorAggregator{
		config:    config,
		extractor: NewLineExtractorWithConfig(config),
	}
}

// BuildIndicators runs extraction over every canonical source, parses each
// line's trailing balance and pools the results into a verdict.
//
// Missing source keys default to empty text; keys outside the canonical set
// are ignored. The call never fails: degenerate input produces an all-empty
// IndicatorSet with verdict insufficient_data.
func (a *IndicatorAggregator) BuildIndicators(vendorName string, textsBySource map[string]string) *IndicatorSet {
	set := &IndicatorSet{
		Vendor:  vendorName,
		Sources: make(map[string]SourceIndicator, len(CanonicalSources())),
		Verdict: VerdictInsufficientData,
	}

	var pooled []float64
	sourcesWithBalance := 0

	for _, key := range CanonicalSources() {
		text := textsBySource[key]
		lineMatches := a.extractor.ExtractVendorLines(text, vendorName)

		var balances []ParsedBalance
		for _, lm := range lineMatches {
			if lm.LastValue == "" {
				continue
			}
			numeric, ok := ParseAmount(lm.LastValue)
			if !ok {
				// Unparsable amounts are filtered silently; they must
				// never surface as placeholders.
				continue
			}
			balances = append(balances, ParsedBalance{
				Raw:          lm.LastValue,
				Numeric:      numeric,
				OriginalLine: lm.OriginalLine,
			})
			pooled = append(pooled, numeric)
		}

		if len(balances) > 0 {
			sourcesWithBalance++
		}

		set.Sources[key] = SourceIndicator{
			LineMatches:    lineMatches,
			ParsedBalances: balances,
		}
	}

	defer func() {
		log.Printf("[IndicatorAggregator] vendor=%q sources_with_balance=%d pooled=%d verdict=%s",
			vendorName, sourcesWithBalance, len(pooled), set.Verdict)
	}()

	// A verdict needs parsed balances from at least two distinct sources;
	// a single data point can never establish equality.
	if sourcesWithBalance < 2 {
		return set
	}

	minVal, maxVal := pooled[0], pooled[0]
	for _, v := range pooled[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	if maxVal-minVal <= a.config.BalanceTolerance {
		reference := round2((minVal + maxVal) / 2)
		set.Verdict = VerdictBalancesEqual
		set.Reference = &reference
	} else {
		set.Verdict = VerdictBalancesDifferent
	}

	return set
}

// round2 rounds to two decimal places, matching report display precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
