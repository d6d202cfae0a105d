// Package ingest - Source directory loading
package ingest

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"vendor_recon/pkg/core/evidence"
)

// LoadSources reads the report texts for every canonical source key from
// dir. For each key it tries "<key>.txt" (used as-is) then "<key>.html"
// (converted to text). Missing files are not an error: the aggregator
// treats absent sources as empty text.
func LoadSources(dir string) (map[string]string, error) {
	converter := NewHTMLConverter()
	texts := make(map[string]string)

	for _, key := range evidence.CanonicalSources() {
		if data, err := os.ReadFile(filepath.Join(dir, key+".txt")); err == nil {
			texts[key] = string(data)
			continue
		}

		htmlPath := filepath.Join(dir, key+".html")
		data, err := os.ReadFile(htmlPath)
		if err != nil {
			log.Printf("[Ingest] no report for source %s in %s", key, dir)
			continue
		}

		text, err := converter.ToText(string(data))
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s: %w", htmlPath, err)
		}
		texts[key] = text
	}

	return texts, nil
}
