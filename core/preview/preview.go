package preview

import (
	"context"
	"strings"

	"github.com/parm9695/DocuGenius/core/scan"
)

// Runner executes a carved code snippet against a data value inside a
// capability-restricted sandbox and returns the resulting document
// definition. Implementations live outside this module; errors from Render
// are surfaced to the caller unchanged.
type Runner interface {
	Render(ctx context.Context, code string, data any) (any, error)
}

// RunnerFunc adapts a plain function to the [Runner] interface.
type RunnerFunc func(ctx context.Context, code string, data any) (any, error)

// Render calls f.
func (f RunnerFunc) Render(ctx context.Context, code string, data any) (any, error) {
	return f(ctx, code, data)
}

// FunctionBody locates the named function inside code and returns its
// balanced {...} body, braces included. It matches both declarations
// (function name(...)) and assigned arrow or function expressions
// (const name = async (...) => {...}): after the identifier it expects a
// parameter list and then the first structural opening brace.
func FunctionBody(code, name string) (scan.Block, bool) {
	if name == "" {
		return scan.Block{}, false
	}

	from := 0
	for {
		idx := indexOfIdent(code, name, from)
		if idx < 0 {
			return scan.Block{}, false
		}
		from = idx + len(name)

		parenIdx, ok := scan.NextStructural(code, idx+len(name), '(')
		if !ok {
			return scan.Block{}, false
		}
		params, ok := scan.BalancedPair(code, parenIdx, '(', ')')
		if !ok {
			continue
		}
		braceIdx, ok := scan.NextStructural(code, params.End, '{')
		if !ok {
			continue
		}
		if blk, ok := scan.Balanced(code, braceIdx); ok {
			return blk, true
		}
	}
}

// FirstObjectLiteral returns the first top-level {...} block in code that
// sits outside string literals and comments.
func FirstObjectLiteral(code string) (scan.Block, bool) {
	idx, ok := scan.NextStructural(code, 0, '{')
	if !ok {
		return scan.Block{}, false
	}
	return scan.Balanced(code, idx)
}

// indexOfIdent returns the first occurrence of name at or after from that
// is delimited by non-identifier characters on both sides.
func indexOfIdent(code, name string, from int) int {
	for from <= len(code)-len(name) {
		j := strings.Index(code[from:], name)
		if j < 0 {
			return -1
		}
		j += from
		if boundedIdent(code, j, len(name)) {
			return j
		}
		from = j + 1
	}
	return -1
}

func boundedIdent(code string, start, length int) bool {
	if start > 0 && isIdentByte(code[start-1]) {
		return false
	}
	end := start + length
	if end < len(code) && isIdentByte(code[end]) {
		return false
	}
	return true
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}
