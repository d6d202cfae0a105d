// Package ingest converts report exports into the plain-text form the
// evidence engine consumes: one report line per text line, line breaks
// preserved. ERP systems commonly export ledgers and payables as HTML.
package ingest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var spacePattern = regexp.MustCompile(`\s+`)

// HTMLConverter turns an HTML report export into plain text suitable for
// line-by-line scanning. Table rows become single lines with cell text
// joined by spaces, so a vendor row keeps its monetary columns on one line.
type HTMLConverter struct{}

// NewHTMLConverter creates a converter instance.
func NewHTMLConverter() *HTMLConverter {
	return &HTMLConverter{}
}

// ToText extracts the report text from htmlContent, one logical line per
// output line.
func (c *HTMLConverter) ToText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, head").Remove()

	var lines []string

	// Table rows first: the row is the unit the extractor scores, so its
	// cells must land on one line.
	doc.Find("tr").Each(func(i int, row *goquery.Selection) {
		var cells []string
		row.Find("td, th").Each(func(j int, cell *goquery.Selection) {
			if text := collapseSpace(cell.Text()); text != "" {
				cells = append(cells, text)
			}
		})
		if len(cells) > 0 {
			lines = append(lines, strings.Join(cells, " "))
		}
	})
	doc.Find("table").Remove()

	// Remaining block elements each contribute one line.
	doc.Find("h1, h2, h3, h4, h5, h6, p, li").Each(func(i int, sel *goquery.Selection) {
		if text := collapseSpace(sel.Text()); text != "" {
			lines = append(lines, text)
		}
	})
	doc.Find("h1, h2, h3, h4, h5, h6, p, li").Remove()

	// Leftover loose text (reports sometimes put totals in bare divs).
	if text := collapseSpace(doc.Find("body").Text()); text != "" {
		lines = append(lines, text)
	}

	return strings.Join(lines, "\n"), nil
}

func collapseSpace(s string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(s, " "))
}
