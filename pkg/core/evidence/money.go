// Package evidence - Brazilian-locale monetary parsing
package evidence

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// currencyPattern matches Brazilian-formatted amounts as they appear in
// report text: 1-3 leading digits, optional ".ddd" thousands groups, then
// ",dd" decimals. Examples: "42.151,99", "1.234.567,00", "100,00".
//
// Other locale formats are a documented limitation, not supported input.
var currencyPattern = regexp.MustCompile(`\d{1,3}(?:\.\d{3})*,\d{2}`)

// amountCleanPattern keeps only the characters ParseAmount can use after
// thousands separators are gone.
var amountCleanPattern = regexp.MustCompile(`[^0-9,\-]`)

// ParseAmount converts a Brazilian-formatted currency string to a float64.
// It strips "." thousands separators, drops every character other than
// digits, comma and minus, swaps the comma for a decimal point and parses.
//
//	"42.151,99"    -> 42151.99
//	"1.234.567,00" -> 1234567.00
//	"abc", ""      -> ok=false
//
// This is the single point where malformed numeric text degrades to a
// non-result instead of an error.
func ParseAmount(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}

	cleaned := strings.ReplaceAll(raw, ".", "")
	cleaned = amountCleanPattern.ReplaceAllString(cleaned, "")
	cleaned = strings.Replace(cleaned, ",", ".", 1)

	if cleaned == "" || cleaned == "-" || cleaned == "." {
		return 0, false
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}

	return value, true
}

// FindAmounts scans a raw (non-normalized) line for every currency-formatted
// value, left to right, non-overlapping. Returns nil when none are found.
func FindAmounts(line string) []string {
	return currencyPattern.FindAllString(line, -1)
}
