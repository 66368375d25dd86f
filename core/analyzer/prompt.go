package analyzer

import (
	"fmt"
	"strings"

	"github.com/parm9695/DocuGenius/providers/source"
)

// systemPrompt instructs the model to answer with the single JSON object the
// recovery pipeline expects. The four top-level keys are named explicitly so
// that even a drifting model tends to anchor its output on them, which is
// what the fuzzy extractor keys on when the structure breaks.
const systemPrompt = `You are a document analysis assistant. Analyze the document the user provides and respond with exactly one JSON object and nothing else. The object must have these top-level keys, in this order:

"summary": an object with "fileType" (one of "pdf", "excel", "image", "json", "unknown"), "detectedTables" (object with "count" and "dimensions", e.g. ["3x4"]), "headers" (object with "title" and "subtitle"), and "matchedTemplate" (object with "isMatch", "templateName", "reasoning").

"pdfMakeCode": a string containing a complete JavaScript function that builds a pdfMake document definition for this document. Assume pdfMake is provided as a global.

"excelJSCode": a string containing a complete JavaScript function that builds an ExcelJS workbook for this document. Assume ExcelJS is provided as a global.

"extractedData": the document's tabular content as JSON.

Do not wrap the object in markdown code fences. Do not add commentary before or after it.`

// buildPrompt renders the user-facing message describing the document.
func buildPrompt(doc *source.Document) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Document name: %s\n", doc.Name)
	fmt.Fprintf(&sb, "Detected type: %s\n", doc.Type)
	fmt.Fprintf(&sb, "Size: %d bytes\n", doc.Size)

	if doc.Text != "" {
		sb.WriteString("\nDocument content:\n")
		sb.WriteString(doc.Text)
	} else {
		sb.WriteString("\nThe document is binary; no text layer is available. Base your analysis on the name, type, and size.")
	}

	return sb.String()
}
