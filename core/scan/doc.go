// Package scan locates syntactically self-contained blocks inside larger,
// possibly malformed text. The scanner walks characters while tracking
// string-literal and comment context, so braces that appear inside string
// literals or comments are never mistaken for structural braces.
//
// The primitive is purely lexical: it attaches no meaning to the content it
// skips over, terminates in linear time, and never backtracks. It is shared
// by the response-repair pipeline in core/extract and by the preview code
// carver in core/preview.
package scan
