package scan

// Block is a substring of a scanned source together with its byte offsets.
// Text always equals the source sliced at [Start, End). A Block produced by
// [Balanced] starts at the requested offset and ends just past the closing
// brace that returned the nesting depth to zero, so it is guaranteed to be
// brace-balanced outside of string literals and comments.
type Block struct {
	Text  string
	Start int
	End   int
}

type commentMode int

const (
	commentNone commentMode = iota
	commentLine
	commentBlock
)

// walkState is the transient lexical state of a scan: current nesting depth,
// the active string delimiter (0 when outside any string literal), and the
// active comment mode. A string delimiter and a comment mode are never both
// active at once.
type walkState struct {
	depth       int
	stringDelim byte
	comment     commentMode
	seenOpen    bool
}

// Balanced returns the shortest well-nested {...} span of text beginning at
// start, skipping over string literals (double quote, single quote and
// backtick delimited), backslash escapes, and // and /* */ comments. The
// returned block includes both the opening and the closing brace.
//
// The scan succeeds the first time the nesting depth returns to zero after
// at least one opening brace has been seen. Closing braces encountered
// before the first opener are ignored, so the depth never goes negative.
// If text ends before the depth returns to zero, ok is false.
func Balanced(text string, start int) (Block, bool) {
	return BalancedPair(text, start, '{', '}')
}

// BalancedPair is [Balanced] generalized to an arbitrary open/close byte
// pair, e.g. '[' and ']' for array literals. The same string-literal and
// comment skipping rules apply.
func BalancedPair(text string, start int, open, close byte) (Block, bool) {
	if start < 0 || start >= len(text) {
		return Block{}, false
	}

	var st walkState
	i := start
	for i < len(text) {
		c := text[i]

		if st.stringDelim != 0 {
			switch c {
			case '\\':
				// Escape consumes the next character unconditionally.
				i += 2
				continue
			case st.stringDelim:
				st.stringDelim = 0
			}
			i++
			continue
		}

		switch st.comment {
		case commentLine:
			if c == '\n' {
				st.comment = commentNone
			}
			i++
			continue
		case commentBlock:
			if c == '*' && i+1 < len(text) && text[i+1] == '/' {
				st.comment = commentNone
				i += 2
				continue
			}
			i++
			continue
		}

		switch {
		case c == '"' || c == '\'' || c == '`':
			st.stringDelim = c
		case c == '/' && i+1 < len(text) && text[i+1] == '/':
			st.comment = commentLine
			i += 2
			continue
		case c == '/' && i+1 < len(text) && text[i+1] == '*':
			st.comment = commentBlock
			i += 2
			continue
		case c == open:
			st.depth++
			st.seenOpen = true
		case c == close:
			if st.seenOpen {
				st.depth--
				if st.depth == 0 {
					return Block{Text: text[start : i+1], Start: start, End: i + 1}, true
				}
			}
		}
		i++
	}

	return Block{}, false
}

// NextStructural returns the index of the first occurrence of any of the
// target bytes at or after start that is structural, i.e. not inside a
// string literal or comment. It uses the same lexical rules as [Balanced].
func NextStructural(text string, start int, targets ...byte) (int, bool) {
	if start < 0 {
		start = 0
	}

	var st walkState
	i := start
	for i < len(text) {
		c := text[i]

		if st.stringDelim != 0 {
			switch c {
			case '\\':
				i += 2
				continue
			case st.stringDelim:
				st.stringDelim = 0
			}
			i++
			continue
		}

		switch st.comment {
		case commentLine:
			if c == '\n' {
				st.comment = commentNone
			}
			i++
			continue
		case commentBlock:
			if c == '*' && i+1 < len(text) && text[i+1] == '/' {
				st.comment = commentNone
				i += 2
				continue
			}
			i++
			continue
		}

		for _, t := range targets {
			if c == t {
				return i, true
			}
		}

		switch {
		case c == '"' || c == '\'' || c == '`':
			st.stringDelim = c
		case c == '/' && i+1 < len(text) && text[i+1] == '/':
			st.comment = commentLine
			i += 2
			continue
		case c == '/' && i+1 < len(text) && text[i+1] == '*':
			st.comment = commentBlock
			i += 2
			continue
		}
		i++
	}

	return 0, false
}
