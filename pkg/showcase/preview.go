package showcase

import (
	"strings"

	"golang.org/x/net/html"
)

// PreviewLength is the maximum rune count of a list-view body preview, before
// the ellipsis marker.
const PreviewLength = 200

const previewEllipsis = "..."

// nonTextTags are elements whose text content is not user-visible prose and
// is dropped along with the markup.
var nonTextTags = map[string]struct{}{
	"script":   {},
	"style":    {},
	"textarea": {},
	"option":   {},
}

// Summarize derives the preview text shown in list views: all markup is
// stripped, then text shorter than PreviewLength is returned unchanged and
// longer text is cut at PreviewLength with an ellipsis marker appended.
func Summarize(body string) string {
	text := StripTags(body)
	runes := []rune(text)
	if len(runes) < PreviewLength {
		return text
	}
	return string(runes[:PreviewLength]) + previewEllipsis
}

// StripTags removes every markup tag from body and returns the concatenated
// text content. No tags are allow-listed.
func StripTags(body string) string {
	tz := html.NewTokenizer(strings.NewReader(body))
	var b strings.Builder
	depth := 0
	for {
		switch tz.Next() {
		case html.ErrorToken:
			return b.String()
		case html.StartTagToken:
			name, _ := tz.TagName()
			if _, skip := nonTextTags[string(name)]; skip {
				depth++
			}
		case html.EndTagToken:
			name, _ := tz.TagName()
			if _, skip := nonTextTags[string(name)]; skip && depth > 0 {
				depth--
			}
		case html.TextToken:
			if depth == 0 {
				b.Write(tz.Text())
			}
		}
	}
}
