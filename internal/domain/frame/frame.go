package frame

import (
	"fmt"
	"regexp"

	"github.com/lumelab/focuswatch/internal/domain/analysis"
)

// MinEncodedLength is the floor below which a payload cannot plausibly
// hold an encoded image. Cheap sanity filter, not a decode check.
const MinEncodedLength = 100

// emptyDataURI is what canvas captures emit before the camera is ready.
const emptyDataURI = "data:,"

var dataURIPrefix = regexp.MustCompile(`^data:image/(png|jpeg|jpg);base64,`)

// Normalize validates a base64 frame payload and strips an optional
// data-URI prefix. The returned payload is sent to the model exactly
// as-is, so an unprefixed input passes through byte-identical.
func Normalize(image string) (string, error) {
	if image == "" {
		return "", fmt.Errorf("%w: empty payload", analysis.ErrInvalidFrame)
	}
	if image == emptyDataURI {
		return "", fmt.Errorf("%w: placeholder data URI", analysis.ErrInvalidFrame)
	}
	if len(image) < MinEncodedLength {
		return "", fmt.Errorf("%w: payload shorter than %d characters", analysis.ErrInvalidFrame, MinEncodedLength)
	}
	return dataURIPrefix.ReplaceAllString(image, ""), nil
}
