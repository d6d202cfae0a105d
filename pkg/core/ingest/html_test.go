// Package ingest - HTML conversion tests
package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vendor_recon/pkg/core/evidence"
)

func TestToTextTableRowsBecomeSingleLines(t *testing.T) {
	html := `
	<html><head><style>td { color: red; }</style></head><body>
	<h1>CONTAS A PAGAR</h1>
	<table>
	  <tr><th>Fornecedor</th><th>Competencia</th><th>Saldo</th></tr>
	  <tr><td>ACME DISTRIBUIDORA LTDA</td><td>10/2024</td><td>42.151,99</td></tr>
	  <tr><td>OUTRA EMPRESA SA</td><td>10/2024</td><td>99,00</td></tr>
	</table>
	</body></html>`

	text, err := NewHTMLConverter().ToText(html)
	if err != nil {
		t.Fatalf("ToText failed: %v", err)
	}

	lines := strings.Split(text, "\n")
	var acmeLine string
	for _, line := range lines {
		if strings.Contains(line, "ACME") {
			acmeLine = line
		}
	}

	if acmeLine == "" {
		t.Fatalf("vendor row missing from output:\n%s", text)
	}
	// Cells joined on one line: the balance must share the vendor's line.
	if !strings.Contains(acmeLine, "42.151,99") {
		t.Errorf("vendor row lost its balance column: %q", acmeLine)
	}
	if strings.Contains(acmeLine, "color") {
		t.Errorf("style leaked into text: %q", acmeLine)
	}
}

func TestToTextFeedsExtractor(t *testing.T) {
	html := `<table><tr><td>acme distribuidora</td><td>saldo</td><td>42.152,00</td></tr></table>`

	text, err := NewHTMLConverter().ToText(html)
	if err != nil {
		t.Fatalf("ToText failed: %v", err)
	}

	matches := evidence.NewLineExtractor().ExtractVendorLines(text, "ACME Distribuidora")
	if len(matches) != 1 {
		t.Fatalf("expected 1 extractable line, got %d from %q", len(matches), text)
	}
	if matches[0].LastValue != "42.152,00" {
		t.Errorf("LastValue = %q, want 42.152,00", matches[0].LastValue)
	}
}

func TestLoadSourcesMixedFormats(t *testing.T) {
	dir := t.TempDir()

	ledger := "ACME DISTRIBUIDORA LTDA 10/2024 42.151,99\n"
	if err := os.WriteFile(filepath.Join(dir, "ledger.txt"), []byte(ledger), 0o644); err != nil {
		t.Fatal(err)
	}
	payables := `<table><tr><td>acme distribuidora</td><td>42.152,00</td></tr></table>`
	if err := os.WriteFile(filepath.Join(dir, "payables.html"), []byte(payables), 0o644); err != nil {
		t.Fatal(err)
	}

	texts, err := LoadSources(dir)
	if err != nil {
		t.Fatalf("LoadSources failed: %v", err)
	}

	if texts[evidence.SourceLedger] != ledger {
		t.Errorf("txt source should pass through unchanged, got %q", texts[evidence.SourceLedger])
	}
	if !strings.Contains(texts[evidence.SourcePayables], "42.152,00") {
		t.Errorf("html source not converted, got %q", texts[evidence.SourcePayables])
	}
	if _, ok := texts[evidence.SourceBalanceSummary]; ok {
		t.Error("missing source should be absent from the map, not empty-present")
	}
}
