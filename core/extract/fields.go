package extract

import (
	"regexp"
	"strings"
	"sync"

	"github.com/parm9695/DocuGenius/core/scan"
)

// Schema is the ordered list of top-level keys the model is expected to
// emit. Order matters: each key's successor bounds the fuzzy search for its
// value, so the pipeline can be pointed at schema variants without code
// changes.
type Schema []string

// DefaultSchema matches the analysis response contract.
var DefaultSchema = Schema{"summary", "pdfMakeCode", "excelJSCode", "extractedData"}

// Next returns the key that follows key in declaration order, or "" when
// key is last or not part of the schema.
func (s Schema) Next(key string) string {
	for i, k := range s {
		if k == key && i+1 < len(s) {
			return s[i+1]
		}
	}
	return ""
}

// ExtractField recovers the string value of key from malformed text by
// locating its "key": marker (quoted or bare) followed by an opening quote,
// and capturing everything up to the boundary of nextKey. When nextKey is
// empty, or its marker cannot be found, the capture falls back to the last
// quote character in the remaining text, and failing that to the rest of
// the text. The captured span is unescaped best-effort.
//
// ExtractField never fails hard: absence of the start marker yields
// ok == false, which callers treat as "field missing".
func ExtractField(text, key, nextKey string) (string, bool) {
	start := fieldValueStart(text, key)
	if start < 0 {
		return "", false
	}
	rest := text[start:]

	end := -1
	if nextKey != "" {
		if loc := nextKeyPattern(nextKey).FindStringIndex(rest); loc != nil {
			// loc[0] is the closing quote of this field's value.
			end = loc[0]
		}
	}
	if end < 0 {
		end = strings.LastIndexByte(rest, '"')
	}
	if end < 0 {
		end = len(rest)
	}

	return unescapeField(rest[:end]), true
}

// ExtractBlock recovers a nested object or array value by locating the key
// marker and scanning the shortest balanced block that follows, honoring
// string-literal and comment context.
func ExtractBlock(text, key string) (string, bool) {
	loc := keyMarkerPattern(key).FindStringIndex(text)
	if loc == nil {
		return "", false
	}

	i, ok := scan.NextStructural(text, loc[1], '{', '[')
	if !ok {
		return "", false
	}

	var blk scan.Block
	if text[i] == '{' {
		blk, ok = scan.Balanced(text, i)
	} else {
		blk, ok = scan.BalancedPair(text, i, '[', ']')
	}
	if !ok {
		return "", false
	}
	return blk.Text, true
}

// fieldValueStart returns the offset just past the opening quote of key's
// string value, or -1 when the marker is absent.
func fieldValueStart(text, key string) int {
	loc := valueStartPattern(key).FindStringIndex(text)
	if loc == nil {
		return -1
	}
	return loc[1]
}

// patternCache holds the compiled per-key patterns. Schemas are tiny and
// fixed per pipeline, so the cache stays a handful of entries; the pipeline
// is documented safe for concurrent use, hence sync.Map over a plain map.
var patternCache sync.Map // expression string -> *regexp.Regexp

func compileCached(expr string) *regexp.Regexp {
	if cached, ok := patternCache.Load(expr); ok {
		return cached.(*regexp.Regexp)
	}
	re := regexp.MustCompile(expr)
	patternCache.Store(expr, re)
	return re
}

// valueStartPattern matches `"key": "` with optional quoting of the key.
func valueStartPattern(key string) *regexp.Regexp {
	return compileCached(`"?` + regexp.QuoteMeta(key) + `"?\s*:\s*"`)
}

// keyMarkerPattern matches `"key":` with optional quoting of the key.
func keyMarkerPattern(key string) *regexp.Regexp {
	return compileCached(`"?` + regexp.QuoteMeta(key) + `"?\s*:`)
}

// nextKeyPattern matches the boundary between this field's value and the
// next field: a closing quote, a comma, optional whitespace, and the next
// key's marker.
func nextKeyPattern(nextKey string) *regexp.Regexp {
	return compileCached(`"\s*,\s*"?` + regexp.QuoteMeta(nextKey) + `"?\s*:`)
}

// unescapeField collapses doubled backslashes and turns escaped quote,
// newline, carriage-return and tab sequences into their literal characters.
// Unknown escapes are left untouched.
func unescapeField(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			sb.WriteByte(c)
			continue
		}
		switch s[i+1] {
		case '\\':
			sb.WriteByte('\\')
		case '"':
			sb.WriteByte('"')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		default:
			sb.WriteByte(c)
			continue
		}
		i++
	}
	return sb.String()
}
