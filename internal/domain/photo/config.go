package photo

import (
	"time"

	"github.com/darkroom/server/internal/model"
)

// Config holds photo domain configuration.
type Config struct {
	// KeyPrefix namespaces every uploaded object.
	KeyPrefix string

	// URLExpiry is how long an issued upload URL stays valid.
	URLExpiry time.Duration

	// Bucket and Region locate the public object URL.
	Bucket string
	Region string

	// PublicBaseURL overrides the AWS virtual-hosted URL, for R2/MinIO.
	PublicBaseURL string
}

// DefaultConfig returns default photo configuration.
func DefaultConfig() *Config {
	return &Config{
		KeyPrefix: "uploads/",
		URLExpiry: model.UploadURLExpiry,
	}
}
