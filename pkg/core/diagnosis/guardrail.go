// Package diagnosis - Verdict guardrails over generated findings
package diagnosis

import (
	"fmt"
	"regexp"

	"vendor_recon/pkg/core/evidence"
	"vendor_recon/pkg/models"
)

// zeroClaimPattern catches prose asserting a zero balance ("saldo zero",
// "balance is 0,00", "zero balance"). A balance word must sit near the zero
// claim so phrases like "zero missing entries" pass through untouched.
var zeroClaimPattern = regexp.MustCompile(
	`(?i)\b(?:saldo|balance)\b[^.;]{0,40}\b(?:zero|0[.,]00)\b|\b(?:zero|0[.,]00)\b[^.;]{0,15}\b(?:saldos?|balances?)\b`)

// EnforceVerdict rewrites findings that contradict the deterministic
// verdict and returns a description of every correction made. The model is
// advisory; the pooled numbers are authoritative.
func EnforceVerdict(d *models.Diagnosis, set *evidence.IndicatorSet) []string {
	if d == nil || set == nil {
		return nil
	}

	var corrections []string

	for i := range d.Findings {
		f := &d.Findings[i]

		switch set.Verdict {
		case evidence.VerdictBalancesEqual:
			if f.Type == models.FindingBalanceDivergence {
				corrections = append(corrections,
					fmt.Sprintf("rewrote balance_divergence finding: verdict is %s", set.Verdict))
				f.Type = models.FindingConsistent
				detail := "Balances agree across sources within tolerance."
				if set.Reference != nil {
					detail = fmt.Sprintf("Balances agree across sources within tolerance (reference %.2f).", *set.Reference)
				}
				f.Detail = detail
			}
		case evidence.VerdictInsufficientData:
			if zeroClaimPattern.MatchString(f.Detail) {
				corrections = append(corrections,
					"rewrote zero-balance claim: verdict is insufficient_data")
				f.Type = models.FindingDataGap
				f.Detail = "Not enough parsed balances to state this source's balance; evidence is missing, not zero."
			}
		}
	}

	return corrections
}
