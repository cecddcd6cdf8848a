package outbound

import (
	"context"
	"time"
)

// UploadGrantIssuerPort signs direct uploads against object storage.
type UploadGrantIssuerPort interface {
	// IssueUploadGrant returns a URL that accepts a single PUT of key with
	// the given content type until expiry elapses. It does not write storage.
	IssueUploadGrant(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)
}
