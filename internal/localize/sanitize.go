package localize

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	linkPattern          = regexp.MustCompile(`(https?:\/\/\w+.\w+(?:\/?\w+)?) \[([^\]]+)\]`)
	bracketedLinkPattern = regexp.MustCompile(`\[(https?:\/\/\w+.\w+(?:\/?\w+)?) ([^\]]+)\]`)

	// A '*' directly followed by another '*' is bold markup, not a marker.
	miscLinePattern = regexp.MustCompile(`(?m)^(?:\*|--|~)(?:\s+|$|([^*\s]))`)

	markupTagPattern = regexp.MustCompile(`</?[A-Za-z][^>]*>`)

	summaryPrefixPattern = regexp.MustCompile(`\b(Note|Summary):\s*`)
	summarySourcePattern = regexp.MustCompile(`\bSource: [^ ]+`)

	newLinePattern         = regexp.MustCompile(`\r\n|\r`)
	multiEmptyLinesPattern = regexp.MustCompile(`\n{2,}`)
)

// SanitizeDescription cleans up a raw provider description for display.
// Passes run in a fixed order; each can be disabled through opts. Blank
// input yields an empty string.
func SanitizeDescription(summary string, opts SanitizeOptions) string {
	if strings.TrimSpace(summary) == "" {
		return ""
	}

	if opts.StripMarkup {
		summary = stripMarkup(summary)
	}

	if opts.CleanLinks {
		summary = bracketedLinkPattern.ReplaceAllString(summary, "[$2]($1)")
		summary = linkPattern.ReplaceAllString(summary, "[$2]($1)")
	}

	if opts.CleanMiscLines {
		summary = stripMiscLines(summary)
	}

	if opts.RemoveSummary {
		summary = summaryPrefixPattern.ReplaceAllString(summary, "**$1**: ")
		summary = summarySourcePattern.ReplaceAllString(summary, "")
	}

	if opts.CleanMultiEmptyLines {
		summary = newLinePattern.ReplaceAllString(summary, "\n")
		summary = multiEmptyLinesPattern.ReplaceAllString(summary, "\n")
	}

	return strings.TrimSpace(summary)
}

// stripMiscLines removes stacked line markers such as "~~ A" or "* * item"
// in one call.
func stripMiscLines(summary string) string {
	for {
		next := miscLinePattern.ReplaceAllString(summary, "${1}")
		if next == summary {
			return summary
		}
		summary = next
	}
}

// stripMarkup reduces an HTML fragment to its text content. Line breaks
// become newlines so the later passes can still see line starts. Text
// without any tag is returned as is, entities included. Entities are only
// decoded alongside real tags, so a fragment whose decoded text spells out
// new tags is stripped again on the next run.
func stripMarkup(summary string) string {
	if !markupTagPattern.MatchString(summary) {
		return summary
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(summary))
	if err != nil {
		return summary
	}

	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		p.AppendHtml("\n")
	})
	return doc.Find("body").Text()
}
