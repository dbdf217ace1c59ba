package chat

import (
	"html"
	"regexp"
	"strings"

	"veritek/utils"

	"go.uber.org/zap"
)

// maxInputLength is the ceiling on a single visitor message.
const maxInputLength = 500

var (
	encodedTagRe   = regexp.MustCompile(`(?i)&lt;(script|iframe|object|embed)`)
	schemePrefixRe = regexp.MustCompile(`(?i)(javascript|data|vbscript):`)
	whitespaceRe   = regexp.MustCompile(`\s+`)

	// suspiciousRes is checked against the already-escaped string. The raw
	// angle-bracket alternatives can no longer appear after escaping; they
	// stay as a backstop in case a caller ever feeds this list unescaped
	// text. The entity forms are what actually fire on tag-shaped input.
	suspiciousRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<[a-z!/]`),
		regexp.MustCompile(`(?i)&lt;|&gt;`),
		regexp.MustCompile(`(?i)eval\s*\(`),
		regexp.MustCompile(`(?i)alert\s*\(`),
		regexp.MustCompile(`(?i)document\.`),
		regexp.MustCompile(`(?i)window\.`),
	}
)

// SanitizeInput cleans raw visitor text so it is safe to store, match and
// echo back. It never fails: it returns the cleaned string, or an empty
// string when the message should be rejected outright rather than partially
// cleaned.
func SanitizeInput(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	clean := html.EscapeString(raw)
	clean = encodedTagRe.ReplaceAllString(clean, "")
	clean = schemePrefixRe.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(whitespaceRe.ReplaceAllString(clean, " "))

	if runes := []rune(clean); len(runes) > maxInputLength {
		clean = string(runes[:maxInputLength])
	}

	for _, re := range suspiciousRes {
		if re.MatchString(clean) {
			utils.GetLogger().Warn("Rejected suspicious chat input",
				zap.String("pattern", re.String()))
			return ""
		}
	}
	return clean
}
