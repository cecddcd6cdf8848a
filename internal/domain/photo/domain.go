package photo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/darkroom/server/internal/model"
	"github.com/darkroom/server/internal/port/inbound"
	"github.com/darkroom/server/internal/port/outbound"
	"github.com/darkroom/server/internal/utils/requestctx"
)

// Domain implements upload grant issuance.
type Domain struct {
	issuer outbound.UploadGrantIssuerPort
	config *Config
	now    func() time.Time
	logger *zap.Logger
}

// NewDomain creates a new photo domain.
func NewDomain(issuer outbound.UploadGrantIssuerPort, config *Config, logger *zap.Logger) *Domain {
	if config == nil {
		config = DefaultConfig()
	}
	if config.URLExpiry <= 0 {
		config.URLExpiry = model.UploadURLExpiry
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Domain{
		issuer: issuer,
		config: config,
		now:    time.Now,
		logger: logger,
	}
}

// WithClock replaces the clock used to build object keys.
func (d *Domain) WithClock(now func() time.Time) *Domain {
	d.now = now
	return d
}

// IssueUploadGrant returns a signed PUT URL and the object key it writes.
func (d *Domain) IssueUploadGrant(ctx context.Context, filename, contentType string) (*model.UploadGrant, error) {
	if filename == "" || contentType == "" {
		return nil, ErrMissingFields
	}

	issuedAt := d.now()
	key := d.ObjectKey(filename, issuedAt)

	url, err := d.issuer.IssueUploadGrant(ctx, key, contentType, d.config.URLExpiry)
	if err != nil {
		d.logger.Error("Failed to sign upload URL",
			zap.String("key", key),
			zap.String("content_type", contentType),
			zap.String("request_id", requestctx.RequestID(ctx)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrIssueFailed, err)
	}

	d.logger.Info("Upload grant issued",
		zap.String("key", key),
		zap.String("public_url", d.PublicURL(key)),
		zap.String("content_type", contentType),
		zap.Duration("expiry", d.config.URLExpiry),
		zap.String("request_id", requestctx.RequestID(ctx)),
	)

	return &model.UploadGrant{
		UploadURL: url,
		Key:       key,
		ExpiresAt: issuedAt.Add(d.config.URLExpiry),
	}, nil
}

// ObjectKey namespaces filename with the configured prefix and the issue
// time in milliseconds. The filename is always the key suffix.
func (d *Domain) ObjectKey(filename string, at time.Time) string {
	return d.config.KeyPrefix + strconv.FormatInt(at.UnixMilli(), 10) + "-" + filename
}

// PublicURL returns the public address of an uploaded object.
func (d *Domain) PublicURL(key string) string {
	return model.PublicObjectURL(d.config.PublicBaseURL, d.config.Bucket, d.config.Region, key)
}

// Compile-time check
var _ inbound.PhotoDomain = (*Domain)(nil)
