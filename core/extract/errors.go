package extract

import "errors"

// ErrEmptyResponse is returned when the model produced no text at all.
// Callers should advise the user to retry, as opposed to
// [ErrUnrecoverable] which indicates malformed or truncated output.
var ErrEmptyResponse = errors.New("docugenius: model response is empty")

// ErrStructuralParse signals that every structural repair rung failed and
// the orchestrator fell through to fuzzy extraction. It is a control
// signal, not a hard failure, and never escapes [Pipeline.Run].
var ErrStructuralParse = errors.New("docugenius: structural parse failed")

// ErrUnrecoverable is returned when every recovery strategy failed: the
// response had no parseable structure, no summary object, and no
// recognizable code field marker.
var ErrUnrecoverable = errors.New("docugenius: model response is malformed beyond recovery")
