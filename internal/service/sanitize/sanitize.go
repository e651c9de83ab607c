package sanitize

import (
	"regexp"
	"strings"
)

var (
	citationMarker    = regexp.MustCompile(`\[doc\d+\]`)
	spaceBeforePeriod = regexp.MustCompile(`\s+\.`)
	whitespaceRun     = regexp.MustCompile(`\s+`)
)

// Clean strips grounding citation markers like "[doc3]" from a model
// reply and tidies the whitespace left behind: runs of whitespace
// before a period collapse into the period, every other whitespace run
// collapses to a single space, and the result is trimmed.
func Clean(text string) string {
	text = citationMarker.ReplaceAllString(text, "")
	text = spaceBeforePeriod.ReplaceAllString(text, ".")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
