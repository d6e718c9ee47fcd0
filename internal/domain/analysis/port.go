package analysis

import "context"

// Classifier port: one vision-model round trip per call. The payload
// is a raw base64 JPEG with any data-URI prefix already stripped.
type Classifier interface {
	Classify(ctx context.Context, jpegBase64 string) (Result, error)
}
