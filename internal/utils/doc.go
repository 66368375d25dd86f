// Package utils provides shared low-level helpers used throughout the
// DocuGenius internals: a generic JSON-over-HTTP POST helper for talking to
// model provider APIs, and small string utilities for logging.
//
// Key entry points: [DoPostSync] for synchronous JSON round-trips and
// [Truncate] for bounding strings destined for log output.
package utils
