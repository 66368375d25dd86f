package extract

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/parm9695/DocuGenius/core/analysis"
	"github.com/parm9695/DocuGenius/core/scan"
)

// hostLibraries names the global library each code field depends on. A
// fuzzily recovered snippet that never mentions its library gets a comment
// preamble naming it, so the snippet stays independently inspectable.
var hostLibraries = map[string]string{
	"pdfMakeCode": "pdfMake",
	"excelJSCode": "ExcelJS",
}

// Pipeline turns raw model text into a validated [analysis.Result] by
// cascading recovery strategies. A Pipeline is stateless between runs and
// safe for concurrent use; each Run is synchronous, performs no I/O, and
// completes in time proportional to the input length.
type Pipeline struct {
	schema Schema
	logger *slog.Logger
}

// Option configures a [Pipeline].
type Option func(*Pipeline)

// WithSchema overrides the expected top-level key order. Useful for testing
// against schema variants; production callers keep [DefaultSchema].
func WithSchema(schema Schema) Option {
	return func(p *Pipeline) {
		if len(schema) > 0 {
			p.schema = schema
		}
	}
}

// WithLogger sets the structured logger used for stage diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a Pipeline with [DefaultSchema] and slog.Default().
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		schema: DefaultSchema,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes the full recovery cascade on one raw model response.
//
// It returns [ErrEmptyResponse] when there is no text to parse, a fully
// normalized result when either the structural or the fuzzy path recovers
// anything usable, and [ErrUnrecoverable] (wrapped with a diagnostic) when
// neither a summary object nor a code field could be located.
func (p *Pipeline) Run(raw string) (*analysis.Result, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyResponse
	}

	text := Sanitize(raw)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	if v, err := Repair(text); err == nil {
		if obj, ok := v.(map[string]any); ok {
			p.logger.Debug("structural parse succeeded",
				slog.Int("response_bytes", len(text)))
			return analysis.Normalize(obj), nil
		}
		p.logger.Warn("structural parse yielded a non-object value, trying fuzzy extraction",
			slog.String("value_type", fmt.Sprintf("%T", v)))
	} else {
		p.logger.Warn("structural parse failed, trying fuzzy extraction",
			slog.Int("response_bytes", len(text)))
	}

	return p.fuzzy(text)
}

// fuzzy recovers fields one by one from text that resisted structural
// repair. Per-field misses substitute defaults; only a total miss is fatal.
func (p *Pipeline) fuzzy(text string) (*analysis.Result, error) {
	candidate := make(map[string]any)

	summaryOK := p.recoverNested(text, "summary", candidate)
	pdfOK := p.recoverCode(text, "pdfMakeCode", candidate)
	excelOK := p.recoverCode(text, "excelJSCode", candidate)
	p.recoverNested(text, "extractedData", candidate)

	if !summaryOK && !pdfOK && !excelOK {
		return nil, fmt.Errorf("%w: no summary or code field markers in %d bytes of text",
			ErrUnrecoverable, len(text))
	}

	return analysis.Normalize(candidate), nil
}

// recoverNested extracts and parses an object- or array-valued field.
func (p *Pipeline) recoverNested(text, key string, candidate map[string]any) bool {
	blk, ok := ExtractBlock(text, key)
	if !ok {
		// The block may be truncated mid-structure; capture up to the next
		// key marker (or the end) and let Repair balance it.
		blk, ok = extractOpenBlock(text, key, p.schema.Next(key))
	}
	if !ok {
		p.logger.Debug("field not found", slog.String("field", key))
		return false
	}

	v, err := Repair(blk)
	if err != nil {
		p.logger.Debug("field block unparseable", slog.String("field", key))
		return false
	}
	candidate[key] = v
	return true
}

// recoverCode extracts a code-string field, restores double-escaped line
// breaks, and prepends a synthetic preamble when the snippet lacks one.
func (p *Pipeline) recoverCode(text, key string, candidate map[string]any) bool {
	code, ok := ExtractField(text, key, p.schema.Next(key))
	if !ok {
		p.logger.Debug("field not found", slog.String("field", key))
		return false
	}

	code = NormalizeEscapes(code)
	if lib := hostLibraries[key]; lib != "" && code != "" && !strings.Contains(code, lib) {
		code = "// " + lib + " is provided as a global by the preview host\n" + code
	}
	candidate[key] = code
	return true
}

// extractOpenBlock captures an unterminated nested value: from the first
// structural opener after key's marker up to nextKey's marker, or to the
// end of the text when nextKey is empty or absent.
func extractOpenBlock(text, key, nextKey string) (string, bool) {
	loc := keyMarkerPattern(key).FindStringIndex(text)
	if loc == nil {
		return "", false
	}

	start, ok := scan.NextStructural(text, loc[1], '{', '[')
	if !ok {
		return "", false
	}

	end := len(text)
	if nextKey != "" {
		if next := keyMarkerPattern(nextKey).FindStringIndex(text[start:]); next != nil {
			end = start + next[0]
		}
	}
	return strings.TrimRight(strings.TrimSpace(text[start:end]), ","), true
}
