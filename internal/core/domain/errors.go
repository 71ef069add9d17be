package domain

import "errors"

// Validation errors surfaced to the client with a 400. Anything else coming
// out of the core is a resolver or stream failure and maps to a 500.
var (
	ErrURLRequired       = errors.New("URL is required")
	ErrUnsupportedURL    = errors.New("unsupported video URL")
	ErrInvalidBitrate    = errors.New("bitrate must be 128 or 192")
	ErrInvalidSampleRate = errors.New("sample rate must be 16000, 22050 or 44100")
)

// IsValidationError reports whether err is one of the client-input errors.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrURLRequired) ||
		errors.Is(err, ErrUnsupportedURL) ||
		errors.Is(err, ErrInvalidBitrate) ||
		errors.Is(err, ErrInvalidSampleRate)
}
