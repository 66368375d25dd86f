package extract

import "strings"

// quoteReplacer maps curly quotes to their straight equivalents.
var quoteReplacer = strings.NewReplacer(
	"“", `"`, // left double quotation mark
	"”", `"`, // right double quotation mark
	"‘", "'", // left single quotation mark
	"’", "'", // right single quotation mark
)

// Sanitize normalizes raw model text: invisible marks are removed, curly
// quotes become straight quotes, markdown code fences and stray backtick
// artifacts are stripped, and surrounding whitespace is trimmed.
//
// Sanitize is total and idempotent; it always returns a string, possibly
// unchanged.
func Sanitize(text string) string {
	s := strings.Map(dropInvisible, text)
	s = quoteReplacer.Replace(s)

	// Fences can nest when the model quotes its own output; strip until a
	// fixpoint so a second Sanitize is a no-op.
	for {
		stripped := stripWrapping(strings.TrimSpace(s))
		if stripped == s {
			return s
		}
		s = stripped
	}
}

// dropInvisible removes byte-order marks and zero-width characters.
func dropInvisible(r rune) rune {
	switch r {
	case '\ufeff', // byte-order mark
		'\u200b', // zero-width space
		'\u200c', // zero-width non-joiner
		'\u200d', // zero-width joiner
		'\u2060': // word joiner
		return -1
	default:
		return r
	}
}

// stripWrapping removes one layer of formatting artifacts: a leading code
// fence with an optional language tag, a trailing bare fence, a bare
// language-tag line left over from a broken fence, and stray backticks.
func stripWrapping(s string) string {
	if strings.HasPrefix(s, "```") {
		// Drop the fence marker and its language tag, i.e. the rest of
		// the line.
		if nl := strings.IndexByte(s, '\n'); nl >= 0 {
			s = s[nl+1:]
		} else {
			s = strings.TrimLeft(s[3:], "`")
		}
	}
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-3]
	}
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "`")

	// A bare language tag sometimes survives a half-emitted fence.
	for _, tag := range []string{"json", "javascript", "js"} {
		rest, ok := strings.CutPrefix(s, tag)
		if !ok {
			continue
		}
		trimmed := strings.TrimLeft(rest, " \t\r\n")
		if len(trimmed) < len(rest) && len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
			s = trimmed
			break
		}
	}

	return strings.TrimSpace(s)
}
