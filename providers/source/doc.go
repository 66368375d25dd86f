// Package source loads the documents whose contents are sent to the model
// for analysis. It sniffs the file type from magic bytes, extracts plain text
// from PDFs, converts HTML pages to markdown, and caps document size so a
// single oversized upload cannot blow up a prompt.
//
// The primary entry points are [Load] for filesystem paths and [FromBytes]
// for in-memory payloads.
package source
