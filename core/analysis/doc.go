// Package analysis defines the typed result of a document analysis and the
// terminal validation/coercion stage of the recovery pipeline.
//
// The model upstream emits a loosely shaped JSON document; [Normalize] turns
// whatever could be recovered from it into a fully populated [Result],
// substituting typed defaults for absent fields and sentinel comment strings
// for code that could not be extracted. Normalize is total: it never fails,
// so downstream consumers never dereference a missing field.
package analysis
