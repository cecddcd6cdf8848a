package s3

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/darkroom/server/internal/port/outbound"
	"github.com/darkroom/server/internal/shared/cloud"
)

// Config holds object storage configuration.
type Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	UsePathStyle    bool
}

// NewClient creates an S3 client for the configured bucket.
func NewClient(ctx context.Context, cfg *Config) (*s3.Client, error) {
	if cfg == nil || cfg.Bucket == "" {
		return nil, errors.New("incomplete storage configuration")
	}

	awsCfg, err := cloud.LoadAWSConfig(ctx, cloud.AWSConfig{
		Region:          cfg.Region,
		AccessKeyID:     cfg.AccessKeyID,
		SecretAccessKey: cfg.SecretAccessKey,
	})
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}), nil
}

// UploadSigner implements outbound.UploadGrantIssuerPort with S3 presigned PUTs.
type UploadSigner struct {
	presigner *s3.PresignClient
	bucket    string
}

// NewUploadSigner creates a new upload signer.
func NewUploadSigner(client *s3.Client, bucket string) *UploadSigner {
	return &UploadSigner{
		presigner: s3.NewPresignClient(client),
		bucket:    bucket,
	}
}

// IssueUploadGrant presigns a PUT of key with the given content type.
// Nothing is written to the bucket.
func (s *UploadSigner) IssueUploadGrant(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	req, err := s.presigner.PresignPutObject(ctx, input, func(opts *s3.PresignOptions) {
		opts.Expires = expiry
	})
	if err != nil {
		return "", fmt.Errorf("presign put object: %w", err)
	}

	return req.URL, nil
}

// Compile-time check
var _ outbound.UploadGrantIssuerPort = (*UploadSigner)(nil)
