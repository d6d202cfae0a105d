// Package diagnosis turns an evidence IndicatorSet into a structured
// reconciliation diagnosis via an external reasoning provider. The
// deterministic verdict always wins: generated findings that contradict it
// are rewritten before the diagnosis leaves this package.
package diagnosis

import (
	"fmt"
	"strings"

	"vendor_recon/pkg/core/evidence"
)

const systemPrompt = `You are a financial reconciliation analyst. You receive
vendor evidence extracted deterministically from ledger, payables and balance
summary reports, together with a verdict computed from the numbers. You must
explain the vendor's standing across the reports.

Hard rules, in order of precedence over anything you infer yourself:
- If the verdict is balances_equal, the balances agree. You must NOT report a
  balance divergence.
- If the verdict is insufficient_data, you must NOT claim that any source's
  balance is zero; say the evidence is missing instead.
- Only reference lines that appear in the evidence below. Do not invent
  entries, dates or amounts.

Respond with JSON only, matching:
{
  "summary": "one paragraph",
  "findings": [
    {"type": "consistent|balance_divergence|missing_entry|data_gap",
     "source": "balance_summary|payables|ledger",
     "detail": "..."}
  ]
}`

// buildPrompt renders the per-source evidence and the verdict for the model.
func buildPrompt(set *evidence.IndicatorSet) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Vendor: %s\n", set.Vendor)
	fmt.Fprintf(&sb, "Verdict: %s\n", set.Verdict)
	if set.Reference != nil {
		fmt.Fprintf(&sb, "Reference balance: %.2f\n", *set.Reference)
	}
	sb.WriteString("\nEvidence by source:\n")

	balances := set.BalancesBySource()
	for _, key := range evidence.CanonicalSources() {
		ind, ok := set.Sources[key]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "\n[%s] %d matching line(s)\n", key, len(ind.LineMatches))
		for _, lm := range ind.LineMatches {
			fmt.Fprintf(&sb, "  line: %s (score %.2f)\n", lm.OriginalLine, lm.Score)
		}
		for _, v := range balances[key] {
			fmt.Fprintf(&sb, "  balance: %.2f\n", v)
		}
		if len(ind.LineMatches) == 0 {
			sb.WriteString("  (vendor not found in this source)\n")
		}
	}

	sb.WriteString("\nProduce the JSON diagnosis now.")
	return sb.String()
}
