package rendering

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractText returns the readable text of a rendered résumé, one block per
// line, for plain-text copies submitted to applicant tracking systems.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav").Remove()

	body := doc.Find("body")
	body.Find("h1, h2, h3, li, dt, dd, p, div").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return cleanWhitespace(body.Text()), nil
}

// cleanWhitespace trims every line and drops empty ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
