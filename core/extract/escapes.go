package extract

import "regexp"

var (
	escapeAfterPunct  = regexp.MustCompile(`([;{}\[\],])\\n`)
	escapeBeforePunct = regexp.MustCompile(`\\n(\s*[;{}\[\],])`)
)

// NormalizeEscapes repairs code that the model double-escaped: a literal
// two-character \n sequence sitting immediately next to structural
// punctuation (statement terminator, brace, bracket, comma) is replaced
// with a real line break.
//
// The rule is purely lexical. A literal \n that legitimately belongs inside
// a string value and happens to touch such punctuation is rewritten too;
// callers feed whole extracted code blocks, not parsed source, so a
// string-aware pass is not possible here.
func NormalizeEscapes(code string) string {
	code = escapeAfterPunct.ReplaceAllString(code, "$1\n")
	code = escapeBeforePunct.ReplaceAllString(code, "\n$1")
	return code
}
