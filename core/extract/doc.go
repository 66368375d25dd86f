// Package extract recovers a strongly-typed analysis result from the
// free-form text a generative model produces, even when that text is
// syntactically invalid, truncated mid-structure, or interleaved with
// explanatory prose.
//
// Recovery is a cascade of increasingly permissive strategies, each a pure
// function over the previous stage's output:
//
//	Sanitize -> Repair (structural) -> fuzzy key-bounded extraction
//	         -> escape normalization (code fields) -> analysis.Normalize
//
// Failures within a single field never abort the whole run; only total
// extraction failure (no structured summary and no recoverable code field)
// surfaces as [ErrUnrecoverable]. The pipeline performs no I/O and no
// retries: transient upstream failures belong to the network caller.
package extract
