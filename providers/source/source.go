package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/ledongthuc/pdf"

	"github.com/parm9695/DocuGenius/core/analysis"
)

// MaxDocumentSize caps how many bytes a single document may contribute to a
// prompt. Larger inputs are rejected up front rather than truncated silently.
const MaxDocumentSize = 20 << 20 // 20 MiB

// ErrDocumentTooLarge is returned when an input exceeds [MaxDocumentSize].
var ErrDocumentTooLarge = errors.New("docugenius: document exceeds size limit")

// Document is a loaded input ready to be described to the model. Text holds
// the extracted textual content; for binary formats without a text layer
// (images, spreadsheets) it stays empty and only the detected type and size
// are sent.
type Document struct {
	Name string
	Type analysis.FileType
	Text string
	Size int64
}

// Load reads the file at path and prepares it for analysis.
func Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat document: %w", err)
	}
	if info.Size() > MaxDocumentSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrDocumentTooLarge, path, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	return FromBytes(filepath.Base(path), data)
}

// FromBytes prepares an in-memory payload for analysis. The name is used for
// extension hints when magic bytes are ambiguous and is echoed back on the
// returned Document.
func FromBytes(name string, data []byte) (*Document, error) {
	if int64(len(data)) > MaxDocumentSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrDocumentTooLarge, name, len(data))
	}

	doc := &Document{
		Name: name,
		Type: Sniff(name, data),
		Size: int64(len(data)),
	}

	switch doc.Type {
	case analysis.FileTypePDF:
		text, err := pdfText(data)
		if err != nil {
			return nil, fmt.Errorf("extract pdf text from %s: %w", name, err)
		}
		doc.Text = text

	case analysis.FileTypeJSON:
		doc.Text = string(data)

	case analysis.FileTypeExcel, analysis.FileTypeImage:
		// Binary formats without a text layer; the model sees type and size only.

	default:
		if isHTML(data) {
			markdown, err := htmltomarkdown.ConvertString(string(data))
			if err != nil {
				return nil, fmt.Errorf("convert html from %s: %w", name, err)
			}
			doc.Text = markdown
		} else {
			doc.Text = string(data)
		}
	}

	return doc, nil
}

// Sniff detects the document type from magic bytes, falling back to the file
// extension and content shape when the header is ambiguous.
func Sniff(name string, data []byte) analysis.FileType {
	switch {
	case bytes.HasPrefix(data, []byte("%PDF")):
		return analysis.FileTypePDF

	case bytes.HasPrefix(data, []byte("PK\x03\x04")):
		// ZIP container: xlsx is the only zip-based format we care about.
		if ext := strings.ToLower(filepath.Ext(name)); ext == ".xlsx" || ext == ".xlsm" {
			return analysis.FileTypeExcel
		}
		return analysis.FileTypeUnknown

	case bytes.HasPrefix(data, []byte{0xD0, 0xCF, 0x11, 0xE0}):
		// OLE compound document, legacy .xls.
		return analysis.FileTypeExcel

	case bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}),
		bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}),
		bytes.HasPrefix(data, []byte("GIF8")):
		return analysis.FileTypeImage

	case json.Valid(bytes.TrimSpace(data)) && len(bytes.TrimSpace(data)) > 0:
		return analysis.FileTypeJSON

	default:
		return analysis.FileTypeUnknown
	}
}

// pdfText extracts the plain-text layer of a PDF.
func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, plain); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func isHTML(data []byte) bool {
	head := strings.ToLower(string(bytes.TrimSpace(data)))
	if len(head) > 256 {
		head = head[:256]
	}
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html") ||
		strings.Contains(head, "<body")
}
