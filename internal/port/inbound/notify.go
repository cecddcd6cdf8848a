package inbound

import (
	"context"

	"github.com/gin-gonic/gin"
)

// NotifyDomain records notification sign-ups.
type NotifyDomain interface {
	StorePhoneNumber(ctx context.Context, phoneNumber string) (string, error)
}

// NotifyHttpPort defines the notification HTTP handlers.
type NotifyHttpPort interface {
	StorePhoneNumber(c *gin.Context)
}
