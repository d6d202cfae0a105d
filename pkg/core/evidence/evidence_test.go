// Package evidence - Test Suite for the Vendor Evidence Engine
package evidence

import (
	"math"
	"strings"
	"testing"
)

// =============================================================================
// NORMALIZE.GO TESTS - Canonicalization, tokenization
// =============================================================================

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Lowercases", "FORNECEDOR ABC", "fornecedor abc"},
		{"Strips accents", "Açúcar União Ltda", "acucar uniao ltda"},
		{"Cedilla and tilde", "Irmãos Gonçalves", "irmaos goncalves"},
		{"Punctuation to space", "ACME - Distribuidora, Ltda.", "acme distribuidora ltda"},
		{"Line breaks collapse", "linha um\nlinha dois\r\nlinha tres", "linha um linha dois linha tres"},
		{"Repeated whitespace", "muito    espaco\t\taqui", "muito espaco aqui"},
		{"Trims", "  bordas  ", "bordas"},
		{"Empty", "", ""},
		{"Only punctuation", "***---///", ""},
		{"Digits survive", "NF 1234/2024", "nf 1234 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.input)
			if result != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Fornecedor ÁÇÚ",
		"ACME - Distribuidora, Ltda.",
		"linha um\nlinha dois",
		"",
		"já normalizado texto",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestNormalizeAccentCaseInsensitive(t *testing.T) {
	if Normalize("Fornecedor ÁÇÚ") != Normalize("fornecedor acu") {
		t.Errorf("accented and plain forms should normalize identically: %q vs %q",
			Normalize("Fornecedor ÁÇÚ"), Normalize("fornecedor acu"))
	}
}

func TestTokenizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Drops short connectors", "Comercial de Aço ABC Ltda", []string{"comercial", "aco", "abc", "ltda"}},
		{"All short tokens", "A B de e", nil},
		{"Empty", "", nil},
		{"Three significant tokens", "Comercial ABC Ltda", []string{"comercial", "abc", "ltda"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TokenizeName(tt.input, DefaultMatchConfig().MinTokenLength)
			if strings.Join(result, "|") != strings.Join(tt.expected, "|") {
				t.Errorf("TokenizeName(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

// =============================================================================
// MONEY.GO TESTS - Amount parsing and currency pattern scanning
// =============================================================================

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
		ok       bool
	}{
		{"Thousands and decimals", "42.151,99", 42151.99, true},
		{"Millions", "1.234.567,00", 1234567.00, true},
		{"No thousands group", "100,00", 100.00, true},
		{"Negative", "-1.500,25", -1500.25, true},
		{"Empty", "", 0, false},
		{"Letters", "abc", 0, false},
		{"Only separator", ",", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := ParseAmount(tt.raw)
			if ok != tt.ok {
				t.Fatalf("ParseAmount(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if tt.ok && math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("ParseAmount(%q) = %f, want %f", tt.raw, result, tt.expected)
			}
		})
	}
}

func TestFindAmounts(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{"Single value", "ACME DISTRIBUIDORA LTDA 10/2024 42.151,99", []string{"42.151,99"}},
		{"Multiple left to right", "deb 1.000,00 cred 500,50 saldo 42.151,99", []string{"1.000,00", "500,50", "42.151,99"}},
		{"No values", "ACME DISTRIBUIDORA LTDA", nil},
		{"Plain integer ignored", "pedido 12345", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindAmounts(tt.line)
			if strings.Join(result, "|") != strings.Join(tt.expected, "|") {
				t.Errorf("FindAmounts(%q) = %v, want %v", tt.line, result, tt.expected)
			}
		})
	}
}

// =============================================================================
// MATCHER.GO TESTS - Presence detection at the strict threshold
// =============================================================================

func TestVendorPresent(t *testing.T) {
	matcher := NewVendorMatcher()

	tests := []struct {
		name     string
		vendor   string
		document string
		expected bool
	}{
		{"Exact substring", "ACME Distribuidora", "relatorio\nACME DISTRIBUIDORA LTDA saldo", true},
		{"Accented exact match", "Açougue São João", "fornecedor: ACOUGUE SAO JOAO", true},
		{"All tokens on one line", "Comercial ABC Ltda", "comercial abc ltda 100,00", true},
		{"Two of three tokens below gate", "Comercial ABC Ltda", "comercial abc 100,00", false},
		{"Exact match across a line break", "Comercial ABC Ltda", "comercial\nabc ltda", true},
		{"Tokens scattered across lines", "Comercial ABC Ltda", "comercial xyz\nabc ltda", false},
		{"Empty vendor", "", "qualquer texto", false},
		{"Empty document", "ACME", "", false},
		{"Vendor absent", "ACME Distribuidora", "outro fornecedor qualquer", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := matcher.VendorPresent(tt.vendor, tt.document)
			if result != tt.expected {
				t.Errorf("VendorPresent(%q, %q) = %v, want %v", tt.vendor, tt.document, result, tt.expected)
			}
		})
	}
}

// A 2/3 score sits between the two thresholds: rejected by presence
// detection, accepted by extraction. The gap is intentional.
func TestThresholdAsymmetry(t *testing.T) {
	vendor := "Comercial ABC Ltda"
	line := "comercial abc 150,00"

	if NewVendorMatcher().VendorPresent(vendor, line) {
		t.Error("score 2/3 should be below the 0.70 presence gate")
	}

	matches := NewLineExtractor().ExtractVendorLines(line, vendor)
	if len(matches) != 1 {
		t.Fatalf("score 2/3 should pass the 0.60 extraction threshold, got %d matches", len(matches))
	}
	if matches[0].Score < 0.66 || matches[0].Score > 0.67 {
		t.Errorf("expected score ~0.667, got %f", matches[0].Score)
	}
}

// =============================================================================
// EXTRACTOR.GO TESTS - Line extraction and value capture
// =============================================================================

func TestExtractVendorLines(t *testing.T) {
	extractor := NewLineExtractor()
	vendor := "ACME Distribuidora"

	document := strings.Join([]string{
		"RELATORIO DE FORNECEDORES",
		"ACME DISTRIBUIDORA LTDA 10/2024 42.151,99",
		"OUTRA EMPRESA SA 99,00",
		"acme distribuidora - saldo 42.152,00",
		"",
	}, "\n")

	matches := extractor.ExtractVendorLines(document, vendor)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matching lines, got %d", len(matches))
	}

	// Original order preserved.
	if !strings.HasPrefix(matches[0].OriginalLine, "ACME DISTRIBUIDORA") {
		t.Errorf("first match out of order: %q", matches[0].OriginalLine)
	}
	if matches[0].LastValue != "42.151,99" {
		t.Errorf("LastValue = %q, want 42.151,99", matches[0].LastValue)
	}
	if matches[1].LastValue != "42.152,00" {
		t.Errorf("LastValue = %q, want 42.152,00", matches[1].LastValue)
	}

	for _, m := range matches {
		if m.Score < DefaultMatchConfig().ExtractionThreshold {
			t.Errorf("line below extraction threshold leaked through: %q score=%f", m.OriginalLine, m.Score)
		}
		if m.Score < 0 || m.Score > 1 {
			t.Errorf("score out of [0,1]: %f", m.Score)
		}
	}
}

func TestExtractVendorLinesLastValueIsRightmost(t *testing.T) {
	matches := NewLineExtractor().ExtractVendorLines(
		"ACME DISTRIBUIDORA 1.000,00 500,50 42.151,99", "ACME Distribuidora")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if len(matches[0].MonetaryValues) != 3 {
		t.Fatalf("expected 3 captured values, got %v", matches[0].MonetaryValues)
	}
	if matches[0].LastValue != "42.151,99" {
		t.Errorf("LastValue = %q, want rightmost capture 42.151,99", matches[0].LastValue)
	}
}

func TestExtractVendorLinesNoValues(t *testing.T) {
	matches := NewLineExtractor().ExtractVendorLines("ACME DISTRIBUIDORA LTDA", "ACME Distribuidora")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].LastValue != "" || len(matches[0].MonetaryValues) != 0 {
		t.Errorf("expected no monetary values, got %v / %q",
			matches[0].MonetaryValues, matches[0].LastValue)
	}
}

func TestExtractVendorLinesDegenerateInput(t *testing.T) {
	extractor := NewLineExtractor()

	if got := extractor.ExtractVendorLines("algum texto 100,00", ""); got != nil {
		t.Errorf("empty vendor should yield nil, got %v", got)
	}
	if got := extractor.ExtractVendorLines("", "ACME Distribuidora"); got != nil {
		t.Errorf("empty document should yield nil, got %v", got)
	}
	if got := extractor.ExtractVendorLines("texto", "de a e"); got != nil {
		t.Errorf("vendor with only short tokens should yield nil, got %v", got)
	}
}
