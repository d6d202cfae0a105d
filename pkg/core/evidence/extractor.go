// Package evidence - Per-line vendor match extraction
package evidence

// LineExtractor scans a document line by line and collects every line that
// plausibly belongs to the vendor, together with the monetary values found
// on it. It accepts at a lower threshold than presence detection: extraction
// has to absorb line-wrap artifacts from document-to-text conversion that
// the stricter whole-document gate never sees.
type LineExtractor struct {
	config MatchConfig
}

// NewLineExtractor creates an extractor with the default thresholds.
func NewLineExtractor() *LineExtractor {
	return &LineExtractor{config: DefaultMatchConfig()}
}

// NewLineExtractorWithConfig creates an extractor with custom thresholds.
func NewLineExtractorWithConfig(config MatchConfig) *LineExtractor {
	return &LineExtractor{config: config}
}

// ExtractVendorLines returns every line of documentText whose token-overlap
// score for vendorName reaches ExtractionThreshold, in original line order.
// Lines below the threshold are omitted entirely; no low-confidence entries
// leak through.
//
// Monetary values are captured from the ORIGINAL line (normalization strips
// the "." and "," the currency pattern depends on). LastValue holds the
// rightmost capture: in tabular report layouts the rightmost column is
// conventionally the running or ending balance.
func (e *LineExtractor) ExtractVendorLines(documentText string, vendorName string) []LineMatch {
	tokens := TokenizeName(vendorName, e.config.MinTokenLength)
	if len(tokens) == 0 || documentText == "" {
		return nil
	}

	var matches []LineMatch
	for _, line := range splitLines(documentText) {
		if line == "" {
			continue
		}

		normalizedLine := Normalize(line)
		score := scoreTokens(normalizedLine, tokens)
		if score < e.config.ExtractionThreshold {
			continue
		}

		values := FindAmounts(line)
		last := ""
		if len(values) > 0 {
			last = values[len(values)-1]
		}

		matches = append(matches, LineMatch{
			OriginalLine:   line,
			NormalizedLine: normalizedLine,
			Score:          score,
			MonetaryValues: values,
			LastValue:      last,
		})
	}

	return matches
}
