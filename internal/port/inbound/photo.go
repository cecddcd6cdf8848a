package inbound

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/darkroom/server/internal/model"
)

// PhotoDomain issues signed upload grants.
type PhotoDomain interface {
	IssueUploadGrant(ctx context.Context, filename, contentType string) (*model.UploadGrant, error)
}

// PhotoHttpPort defines the photo upload HTTP handlers.
type PhotoHttpPort interface {
	UploadImage(c *gin.Context)
}
