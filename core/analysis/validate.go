package analysis

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Normalize enforces the output contract on a recovered candidate document
// and returns the fully populated [Result].
//
// Coercions applied, in field order:
//   - summary: synthesized with FileTypeUnknown when absent or not an object
//   - detectedTables.count: numbers truncated to int, numeric strings
//     parsed, anything else (and negatives) defaulting to 0
//   - detectedTables.dimensions: scalars wrapped into a single-element
//     slice, non-sequences replaced with an empty slice
//   - pdfMakeCode / excelJSCode: sentinel comment substituted when absent
//   - extractedData: empty sequence substituted when absent
//
// Normalize never fails; it is the pipeline's terminal total function.
func Normalize(candidate map[string]any) *Result {
	result := &Result{
		Summary:       normalizeSummary(candidate["summary"]),
		PDFMakeCode:   codeOrSentinel(candidate["pdfMakeCode"], PDFCodeUnavailable),
		ExcelJSCode:   codeOrSentinel(candidate["excelJSCode"], ExcelCodeUnavailable),
		ExtractedData: candidate["extractedData"],
	}
	if result.ExtractedData == nil {
		result.ExtractedData = []any{}
	}
	return result
}

func normalizeSummary(v any) Summary {
	m, ok := v.(map[string]any)
	if !ok {
		return Summary{
			FileType:       FileTypeUnknown,
			DetectedTables: DetectedTables{Dimensions: []string{}},
		}
	}

	summary := Summary{
		FileType:       ParseFileType(stringValue(m["fileType"])),
		DetectedTables: normalizeTables(m["detectedTables"]),
		Headers:        normalizeHeaders(m["headers"]),
	}

	if tm, ok := m["matchedTemplate"].(map[string]any); ok {
		summary.MatchedTemplate = &MatchedTemplate{
			IsMatch:      boolValue(tm["isMatch"]),
			TemplateName: stringValue(tm["templateName"]),
			Reasoning:    stringValue(tm["reasoning"]),
		}
	}

	return summary
}

func normalizeTables(v any) DetectedTables {
	tables := DetectedTables{Dimensions: []string{}}
	m, ok := v.(map[string]any)
	if !ok {
		return tables
	}
	tables.Count = countValue(m["count"])
	tables.Dimensions = dimensionsValue(m["dimensions"])
	return tables
}

func normalizeHeaders(v any) Headers {
	m, ok := v.(map[string]any)
	if !ok {
		return Headers{}
	}
	return Headers{
		Title:    stringValue(m["title"]),
		Subtitle: stringValue(m["subtitle"]),
	}
}

// countValue coerces v to a non-negative integer, defaulting to 0. Values
// outside the int range (the conversion would wrap negative) count as not
// coercible.
func countValue(v any) int {
	switch n := v.(type) {
	case float64:
		if n < 0 || math.IsNaN(n) || n >= math.MaxInt64 {
			return 0
		}
		return int(n)
	case int:
		if n < 0 {
			return 0
		}
		return n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || parsed < 0 || parsed >= math.MaxInt64 {
			return 0
		}
		return int(parsed)
	default:
		return 0
	}
}

// dimensionsValue coerces v to a string slice: sequences are stringified
// element-wise, scalars become a single-element slice, everything else an
// empty one.
func dimensionsValue(v any) []string {
	switch d := v.(type) {
	case []any:
		out := make([]string, 0, len(d))
		for _, el := range d {
			out = append(out, scalarString(el))
		}
		return out
	case []string:
		return d
	case string, float64, bool:
		return []string{scalarString(d)}
	default:
		return []string{}
	}
}

func scalarString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func boolValue(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(strings.TrimSpace(b), "true")
	default:
		return false
	}
}

func codeOrSentinel(v any, sentinel string) string {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return sentinel
	}
	return s
}
