package utils

import (
	"encoding/json"
	"fmt"
)

// DefaultMaxStringLength is the default maximum length for truncated strings.
const DefaultMaxStringLength = 500

// JSONString serialises object to its compact JSON representation. On
// marshalling failure it returns a JSON-formatted error string rather than
// panicking, so the result is always safe to use in log output.
func JSONString(object any) string {
	encoded, err := json.Marshal(object)
	if err != nil {
		return "{\"error\": \"failed to marshal to JSON: " + err.Error() + "\"}"
	}
	return string(encoded)
}

// JSONStringIndent is like [JSONString] but pretty-prints the output with
// two-space indentation.
func JSONStringIndent(object any) string {
	encoded, err := json.MarshalIndent(object, "", "  ")
	if err != nil {
		return "{\"error\": \"failed to marshal to JSON: " + err.Error() + "\"}"
	}
	return string(encoded)
}

// Truncate shortens s to at most maxLen characters, appending a suffix that
// records the original total length so callers know data was omitted. If
// maxLen is zero or negative, [DefaultMaxStringLength] is used instead.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxStringLength
	}
	if len(s) <= maxLen {
		return s
	}
	return fmt.Sprintf("%s... (truncated, total: %d chars)", s[:maxLen], len(s))
}
