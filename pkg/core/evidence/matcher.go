// Package evidence - Fuzzy vendor presence detection
package evidence

import "strings"

// VendorMatcher decides whether a vendor name appears in a document. It is
// the fast yes/no gate used before deeper extraction is attempted: a
// whole-text exact check first, then a per-line token-overlap fallback that
// tolerates partial OCR corruption.
type VendorMatcher struct {
	config MatchConfig
}

// NewVendorMatcher creates a matcher with the default thresholds.
func NewVendorMatcher() *VendorMatcher {
	return &VendorMatcher{config: DefaultMatchConfig()}
}

// NewVendorMatcherWithConfig creates a matcher with custom thresholds.
func NewVendorMatcherWithConfig(config MatchConfig) *VendorMatcher {
	return &VendorMatcher{config: config}
}

// VendorPresent reports whether vendorName occurs in documentText.
//
// Strategy:
//  1. Exact: normalized vendor is a substring of the normalized document.
//  2. Fuzzy: per line, the fraction of significant vendor tokens found in
//     the normalized line must reach PresenceThreshold.
//
// Empty vendor or document is simply "not present", never an error.
func (m *VendorMatcher) VendorPresent(vendorName string, documentText string) bool {
	if vendorName == "" || documentText == "" {
		return false
	}

	normalizedVendor := Normalize(vendorName)
	if normalizedVendor == "" {
		return false
	}

	// Fast path: exact substring over the whole document.
	if strings.Contains(Normalize(documentText), normalizedVendor) {
		return true
	}

	tokens := TokenizeName(vendorName, m.config.MinTokenLength)
	if len(tokens) == 0 {
		return false
	}

	for _, line := range splitLines(documentText) {
		if line == "" {
			continue
		}
		normalizedLine := Normalize(line)
		if normalizedLine == "" {
			continue
		}
		if scoreTokens(normalizedLine, tokens) >= m.config.PresenceThreshold {
			return true
		}
	}

	return false
}
