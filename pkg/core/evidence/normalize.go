// Package evidence - Text normalization for comparison
package evidence

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// stripMarks decomposes text (NFD) so diacritics become combining
	// marks, removes the marks, then recomposes.
	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	nonWordPattern    = regexp.MustCompile(`[^\w\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize converts text to its canonical comparison form: accents
// stripped, punctuation replaced by spaces, all whitespace (including line
// breaks) collapsed to single spaces, trimmed, lowercased.
//
// Normalize is total and idempotent; empty input yields an empty string.
// The result is only ever used for matching, never for display.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	stripped, _, err := transform.String(stripMarks, text)
	if err != nil {
		// Transform only fails on malformed UTF-8; fall back to the raw
		// bytes so matching still degrades gracefully.
		stripped = text
	}

	stripped = strings.ToLower(stripped)
	stripped = nonWordPattern.ReplaceAllString(stripped, " ")
	stripped = whitespacePattern.ReplaceAllString(stripped, " ")

	return strings.TrimSpace(stripped)
}

// TokenizeName normalizes a vendor name and splits it into its significant
// tokens: normalized words strictly longer than minLen. Short connector
// words ("de", "da", "e") never count toward overlap scores.
func TokenizeName(name string, minLen int) []string {
	normalized := Normalize(name)
	if normalized == "" {
		return nil
	}

	var tokens []string
	for _, tok := range strings.Split(normalized, " ") {
		if len(tok) > minLen {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// splitLines splits raw document text on any line-terminator convention
// (\n, \r\n, \r) while preserving line order.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	replaced := strings.ReplaceAll(text, "\r\n", "\n")
	replaced = strings.ReplaceAll(replaced, "\r", "\n")
	return strings.Split(replaced, "\n")
}

// scoreTokens computes the token-overlap score: the fraction of tokens that
// appear as substrings of the normalized line. Always in [0,1].
func scoreTokens(normalizedLine string, tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}

	found := 0
	for _, tok := range tokens {
		if strings.Contains(normalizedLine, tok) {
			found++
		}
	}
	return float64(found) / float64(len(tokens))
}
