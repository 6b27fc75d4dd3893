package crawler

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selector cascade for the main content area: semantic landmarks first,
// common class/id conventions second, generic sectioning elements last.
var contentSelectors = []string{
	"main",
	"article",
	"[role='main']",
	"#content",
	".content",
	"#main",
	".main-content",
	".page-content",
	"section",
}

// Elements shorter than this are treated as navigation/boilerplate noise.
const minElementTextLen = 100

var whitespaceRe = regexp.MustCompile(`\s+`)

// ExtractMainContent walks the selector cascade and returns the text of the
// first selector that yields content, falling back to the whole body.
// The result is whitespace-collapsed and hard-truncated to maxLen runes.
func ExtractMainContent(doc *goquery.Document, maxLen int) string {
	var content string

	for _, selector := range contentSelectors {
		selection := doc.Find(selector)
		if selection.Length() == 0 {
			continue
		}

		var parts []string
		selection.EachWithBreak(func(i int, sel *goquery.Selection) bool {
			if i >= 3 {
				return false
			}
			text := strings.TrimSpace(sel.Text())
			if len(text) > minElementTextLen {
				parts = append(parts, text)
			}
			return true
		})

		if len(parts) > 0 {
			content = strings.Join(parts, " ")
			break
		}
	}

	if content == "" {
		content = doc.Find("body").Text()
	}

	content = strings.TrimSpace(whitespaceRe.ReplaceAllString(content, " "))

	if runes := []rune(content); len(runes) > maxLen {
		content = string(runes[:maxLen]) + "..."
	}

	return content
}
