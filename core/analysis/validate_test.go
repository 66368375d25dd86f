package analysis

import (
	"math"
	"reflect"
	"testing"
)

func TestNormalize_TableCoercion(t *testing.T) {
	candidate := map[string]any{
		"summary": map[string]any{
			"fileType": "excel",
			"detectedTables": map[string]any{
				"count":      "3",
				"dimensions": "4x5",
			},
		},
	}

	result := Normalize(candidate)

	if result.Summary.FileType != FileTypeExcel {
		t.Errorf("FileType = %q, want %q", result.Summary.FileType, FileTypeExcel)
	}
	if result.Summary.DetectedTables.Count != 3 {
		t.Errorf("Count = %d, want 3", result.Summary.DetectedTables.Count)
	}
	if want := []string{"4x5"}; !reflect.DeepEqual(result.Summary.DetectedTables.Dimensions, want) {
		t.Errorf("Dimensions = %v, want %v", result.Summary.DetectedTables.Dimensions, want)
	}
}

func TestNormalize_Defaults(t *testing.T) {
	result := Normalize(nil)

	if result.Summary.FileType != FileTypeUnknown {
		t.Errorf("FileType = %q, want %q", result.Summary.FileType, FileTypeUnknown)
	}
	if result.Summary.DetectedTables.Dimensions == nil {
		t.Error("Dimensions is nil, want empty slice")
	}
	if result.PDFMakeCode != PDFCodeUnavailable {
		t.Errorf("PDFMakeCode = %q, want sentinel", result.PDFMakeCode)
	}
	if result.ExcelJSCode != ExcelCodeUnavailable {
		t.Errorf("ExcelJSCode = %q, want sentinel", result.ExcelJSCode)
	}
	data, ok := result.ExtractedData.([]any)
	if !ok || len(data) != 0 {
		t.Errorf("ExtractedData = %#v, want empty []any", result.ExtractedData)
	}
}

func TestNormalize_CountValues(t *testing.T) {
	tests := []struct {
		name  string
		count any
		want  int
	}{
		{name: "float", count: float64(2), want: 2},
		{name: "numeric string", count: "7", want: 7},
		{name: "float string", count: "2.9", want: 2},
		{name: "negative", count: float64(-1), want: 0},
		{name: "overflows int", count: float64(1e20), want: 0},
		{name: "overflowing string", count: "99999999999999999999", want: 0},
		{name: "positive infinity", count: math.Inf(1), want: 0},
		{name: "garbage string", count: "many", want: 0},
		{name: "absent", count: nil, want: 0},
		{name: "wrong type", count: []any{1}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := map[string]any{
				"summary": map[string]any{
					"detectedTables": map[string]any{"count": tt.count},
				},
			}
			got := Normalize(candidate).Summary.DetectedTables.Count
			if got != tt.want {
				t.Errorf("Count = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNormalize_Dimensions(t *testing.T) {
	tests := []struct {
		name string
		dims any
		want []string
	}{
		{name: "sequence of strings", dims: []any{"3x4", "2x2"}, want: []string{"3x4", "2x2"}},
		{name: "sequence with numbers", dims: []any{float64(3), "2x2"}, want: []string{"3", "2x2"}},
		{name: "scalar string", dims: "4x5", want: []string{"4x5"}},
		{name: "scalar number", dims: float64(6), want: []string{"6"}},
		{name: "absent", dims: nil, want: []string{}},
		{name: "object", dims: map[string]any{"rows": float64(2)}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := map[string]any{
				"summary": map[string]any{
					"detectedTables": map[string]any{"dimensions": tt.dims},
				},
			}
			got := Normalize(candidate).Summary.DetectedTables.Dimensions
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Dimensions = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalize_MatchedTemplate(t *testing.T) {
	candidate := map[string]any{
		"summary": map[string]any{
			"fileType": "pdf",
			"matchedTemplate": map[string]any{
				"isMatch":      "true",
				"templateName": "invoice",
				"reasoning":    "header layout matches",
			},
		},
	}

	tm := Normalize(candidate).Summary.MatchedTemplate
	if tm == nil {
		t.Fatal("MatchedTemplate is nil")
	}
	if !tm.IsMatch {
		t.Error("IsMatch = false, want true (coerced from string)")
	}
	if tm.TemplateName != "invoice" {
		t.Errorf("TemplateName = %q, want %q", tm.TemplateName, "invoice")
	}
}

func TestNormalize_KeepsRecoveredCode(t *testing.T) {
	candidate := map[string]any{
		"pdfMakeCode":   "async function exportPDF() {}",
		"excelJSCode":   "async function exportExcel() {}",
		"extractedData": []any{map[string]any{"a": float64(1)}},
	}

	result := Normalize(candidate)
	if result.PDFMakeCode != "async function exportPDF() {}" {
		t.Errorf("PDFMakeCode = %q", result.PDFMakeCode)
	}
	if result.ExcelJSCode != "async function exportExcel() {}" {
		t.Errorf("ExcelJSCode = %q", result.ExcelJSCode)
	}
	if _, ok := result.ExtractedData.([]any); !ok {
		t.Errorf("ExtractedData = %#v, want []any preserved", result.ExtractedData)
	}
}

func TestParseFileType(t *testing.T) {
	tests := []struct {
		in   string
		want FileType
	}{
		{in: "pdf", want: FileTypePDF},
		{in: "excel", want: FileTypeExcel},
		{in: "image", want: FileTypeImage},
		{in: "json", want: FileTypeJSON},
		{in: "spreadsheet", want: FileTypeUnknown},
		{in: "", want: FileTypeUnknown},
	}
	for _, tt := range tests {
		if got := ParseFileType(tt.in); got != tt.want {
			t.Errorf("ParseFileType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
