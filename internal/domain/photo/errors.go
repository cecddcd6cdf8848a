package photo

import "errors"

var (
	// ErrMissingFields is returned when filename or content type is empty.
	ErrMissingFields = errors.New("missing filename or contentType")

	// ErrIssueFailed is returned when the storage signer fails.
	ErrIssueFailed = errors.New("failed to generate upload URL")
)
