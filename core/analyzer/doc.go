// Package analyzer orchestrates document analysis end to end: it renders the
// prompt for a loaded document, calls the model provider with retry on
// transient failures, and feeds the raw response through the recovery
// pipeline to obtain a typed result.
package analyzer
