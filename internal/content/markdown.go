package content

import (
	"regexp"
	"strings"
)

var (
	inlineHeadingRe = regexp.MustCompile(`([^\n])(#{1,6} )`)
	blankRunRe      = regexp.MustCompile(`\n{2,}`)
)

// NormalizeMarkdown is a formatting safety net for AI-written text
// bodies, not a markdown processor. Heading markers jammed onto the end
// of a line get a newline inserted before them, and runs of consecutive
// newlines collapse to one.
func NormalizeMarkdown(s string) string {
	s = inlineHeadingRe.ReplaceAllString(s, "$1\n$2")
	s = blankRunRe.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
