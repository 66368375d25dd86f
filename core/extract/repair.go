package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// bareKeyPattern matches an unquoted identifier at an object-key position.
var bareKeyPattern = regexp.MustCompile(`([{,]\s*)([A-Za-z_$][A-Za-z0-9_$]*)\s*:`)

// Repair attempts to turn text into a decoded JSON value, applying
// increasingly aggressive fixes between parse attempts:
//
//  1. direct strict parse
//  2. quoting of bare object keys
//  3. global bracket balancing — unmatched openers are counted over the
//     whole text (deliberately not string/comment aware; it is a cheap
//     heuristic, unlike the scanner in core/scan) and the missing closers
//     appended, braces before brackets
//  4. a final pass through the jsonrepair library, which covers the
//     long tail the cheap fixes miss (trailing commas, single-quoted and
//     truncated strings). This rung only accepts object or array results:
//     the library happily coerces plain prose into a quoted JSON string,
//     which is never a useful recovery.
//
// On success the decoded value is returned; valid input passes through rung
// 1 unchanged. When every rung fails, Repair returns [ErrStructuralParse]
// to signal the orchestrator to fall through to fuzzy extraction.
func Repair(text string) (any, error) {
	if v, ok := parseStrict(text); ok {
		return v, nil
	}

	quoted := quoteBareKeys(text)
	if v, ok := parseStrict(quoted); ok {
		return v, nil
	}

	if v, ok := parseStrict(balanceBrackets(quoted)); ok {
		return v, nil
	}

	if repaired, err := jsonrepair.JSONRepair(text); err == nil {
		if v, ok := parseStrict(repaired); ok && isStructured(v) {
			return v, nil
		}
	}

	return nil, ErrStructuralParse
}

// isStructured reports whether v is a decoded JSON object or array.
func isStructured(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}

func parseStrict(text string) (any, bool) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, false
	}
	return v, true
}

// quoteBareKeys wraps unquoted identifiers at object-key positions in
// double quotes. The pattern is not string aware: an identifier-colon pair
// inside a string value can be rewritten too. That risk is accepted for
// this rung; rung 4 handles the cases where it matters.
func quoteBareKeys(text string) string {
	return bareKeyPattern.ReplaceAllString(text, `$1"$2":`)
}

// balanceBrackets appends the closers missing from truncated output:
// one '}' per unmatched '{' followed by one ']' per unmatched '['.
func balanceBrackets(text string) string {
	braces := strings.Count(text, "{") - strings.Count(text, "}")
	brackets := strings.Count(text, "[") - strings.Count(text, "]")

	if braces <= 0 && brackets <= 0 {
		return text
	}

	var sb strings.Builder
	sb.WriteString(text)
	for i := 0; i < braces; i++ {
		sb.WriteByte('}')
	}
	for i := 0; i < brackets; i++ {
		sb.WriteByte(']')
	}
	return sb.String()
}
