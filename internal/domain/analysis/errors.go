package analysis

import "errors"

// ErrCredentialMissing indicates the AI service credential is unset or empty.
// Raised on first client use and identically on every call after that.
var ErrCredentialMissing = errors.New("ai credential missing")

// ErrInvalidFrame indicates the frame payload is missing, a degenerate
// placeholder, or too short to hold an encoded image. This is the only
// error AnalyzeFrame returns to its caller; treat it as "frame not
// ready yet", not as a service failure.
var ErrInvalidFrame = errors.New("invalid frame payload")

// ErrEmptyResponse indicates the model returned no text payload.
var ErrEmptyResponse = errors.New("empty model response")

// ErrSessionNotFound indicates an unknown monitoring session ID.
var ErrSessionNotFound = errors.New("session not found")
