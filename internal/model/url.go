package model

import (
	"fmt"
	"strings"
)

// PublicObjectURL returns the public address of an uploaded object. A
// non-empty baseURL replaces the virtual-hosted S3 address.
func PublicObjectURL(baseURL, bucket, region, key string) string {
	if base := strings.TrimRight(baseURL, "/"); base != "" {
		return base + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key)
}
