package analysis

// FileType classifies the document the model analyzed.
type FileType string

const (
	FileTypePDF     FileType = "pdf"
	FileTypeExcel   FileType = "excel"
	FileTypeImage   FileType = "image"
	FileTypeJSON    FileType = "json"
	FileTypeUnknown FileType = "unknown"
)

// ParseFileType maps a raw string onto a known [FileType], falling back to
// [FileTypeUnknown] for anything it does not recognize.
func ParseFileType(s string) FileType {
	switch FileType(s) {
	case FileTypePDF, FileTypeExcel, FileTypeImage, FileTypeJSON:
		return FileType(s)
	default:
		return FileTypeUnknown
	}
}

// DetectedTables describes the tabular content the model found. Count and
// Dimensions are independent: Dimensions is advisory and its length need
// not match Count.
type DetectedTables struct {
	Count      int      `json:"count"`
	Dimensions []string `json:"dimensions"`
}

// Headers carries the document title the model detected.
type Headers struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
}

// MatchedTemplate reports whether the document matched a stored layout
// template, and why.
type MatchedTemplate struct {
	IsMatch      bool   `json:"isMatch"`
	TemplateName string `json:"templateName,omitempty"`
	Reasoning    string `json:"reasoning,omitempty"`
}

// Summary is the structured overview of one analyzed document.
type Summary struct {
	FileType        FileType         `json:"fileType"`
	DetectedTables  DetectedTables   `json:"detectedTables"`
	Headers         Headers          `json:"headers"`
	MatchedTemplate *MatchedTemplate `json:"matchedTemplate,omitempty"`
}

// Result is the fully validated outcome of one analysis.
//
// The code fields are never empty: when extraction fails they carry the
// sentinel comments below, so callers can still render something and point
// the user at the inspectable snippet instead of crashing.
type Result struct {
	Summary       Summary `json:"summary"`
	PDFMakeCode   string  `json:"pdfMakeCode"`
	ExcelJSCode   string  `json:"excelJSCode"`
	ExtractedData any     `json:"extractedData"`
}

// Sentinel code values substituted when a code field could not be recovered.
// They are shaped as comments so a preview host that executes them renders a
// detectable failure rather than throwing.
const (
	PDFCodeUnavailable   = "// pdfMake export code could not be recovered from the model response"
	ExcelCodeUnavailable = "// ExcelJS export code could not be recovered from the model response"
)
