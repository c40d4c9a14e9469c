package suggest

import (
	"regexp"
	"strings"
)

// Models sometimes number their answers despite the prompt.
var numberingPattern = regexp.MustCompile(`\d+\.\s*`)

// ParseTitles extracts movie titles from a model response: numbering is
// stripped, newlines count as separators, and the result is capped at
// MaxTitles.
func ParseTitles(raw string) []string {
	cleaned := numberingPattern.ReplaceAllString(strings.TrimSpace(raw), "")
	cleaned = strings.ReplaceAll(cleaned, "\n", ",")

	titles := make([]string, 0, MaxTitles)
	for _, part := range strings.Split(cleaned, ",") {
		title := strings.TrimSpace(part)
		if title == "" {
			continue
		}
		titles = append(titles, title)
		if len(titles) == MaxTitles {
			break
		}
	}
	return titles
}
