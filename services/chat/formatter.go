package chat

import (
	"fmt"
	"html"
	"regexp"
)

var (
	boldRe   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRe = regexp.MustCompile(`\*([^*]+)\*`)
	linkRe   = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)

	// allowedURLRes is the scheme allowlist for anchor targets. Anything
	// outside it is rendered as plain text instead of a link.
	allowedURLRes = []*regexp.Regexp{
		regexp.MustCompile(`^https?://\S+$`),
		regexp.MustCompile(`^tel:[+\d()\- ]+$`),
		regexp.MustCompile(`^mailto:[^\s@]+@[^\s@?]+(\?\S*)?$`),
		regexp.MustCompile(`^[a-zA-Z0-9_-]+\.html(\?\S*)?$`),
	}
)

func allowedURL(url string) bool {
	for _, re := range allowedURLRes {
		if re.MatchString(url) {
			return true
		}
	}
	return false
}

// FormatResponse converts a bot-authored reply using the restricted markdown
// subset (**bold**, *italic*, [text](url)) into markup safe to inject into
// the widget. The whole string is escaped first, so a response accidentally
// built from tainted input still can't carry markup through. Visitor
// messages must never pass through here; they are rendered as escaped plain
// text only.
func FormatResponse(raw string) string {
	out := html.EscapeString(raw)
	out = boldRe.ReplaceAllString(out, "<strong>$1</strong>")
	out = italicRe.ReplaceAllString(out, "<em>$1</em>")
	out = linkRe.ReplaceAllStringFunc(out, func(m string) string {
		parts := linkRe.FindStringSubmatch(m)
		text, url := parts[1], parts[2]
		if !allowedURL(url) {
			return text
		}
		return fmt.Sprintf(`<a href="%s">%s</a>`, url, text)
	})
	return out
}
