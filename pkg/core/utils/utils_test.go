package utils

import "testing"

func TestSmartParseStrategies(t *testing.T) {
	type payload struct {
		Summary string `json:"summary"`
	}

	tests := []struct {
		name    string
		input   string
		wantErr bool
		summary string
	}{
		{"Strict JSON", `{"summary": "ok"}`, false, "ok"},
		{"Trailing comma repaired", `{"summary": "ok",}`, false, "ok"},
		{"Hjson unquoted key", "{\n  summary: ok\n}", false, "ok"},
		{"Plain prose fails", "no structured output here", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			_, err := SmartParse(tt.input, &p)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SmartParse(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && p.Summary != tt.summary {
				t.Errorf("summary = %q, want %q", p.Summary, tt.summary)
			}
		})
	}
}

func TestValidateJSON(t *testing.T) {
	type payload struct {
		Summary string `json:"summary"`
	}

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Exact schema", `{"summary": "ok"}`, false},
		{"Unknown field rejected", `{"summary": "ok", "confidence": 0.9}`, true},
		{"Trailing comma rejected", `{"summary": "ok",}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			err := ValidateJSON(tt.input, &p)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateJSON(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestCleanMarkdown(t *testing.T) {
	in := "```markdown\n# Diagnóstico\nSaldo confere.\n```"
	out := CleanMarkdown(in)
	if out != "# Diagnóstico\nSaldo confere." {
		t.Errorf("CleanMarkdown = %q", out)
	}

	if !ValidateMarkdown(out) {
		t.Error("cleaned markdown should validate")
	}
}
