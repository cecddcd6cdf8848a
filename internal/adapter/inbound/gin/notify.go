package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darkroom/server/internal/model"
	"github.com/darkroom/server/internal/port/inbound"
	"github.com/darkroom/server/internal/shared/response"
	"github.com/darkroom/server/internal/utils/metrics"
)

const msgStoreFailed = "Failed to store phone number"

// notifyHandler implements inbound.NotifyHttpPort.
type notifyHandler struct {
	notifyDomain inbound.NotifyDomain
	metrics      *metrics.Metrics
}

// NewNotifyHandler creates a new notify HTTP handler. m may be nil.
func NewNotifyHandler(notifyDomain inbound.NotifyDomain, m *metrics.Metrics) inbound.NotifyHttpPort {
	return &notifyHandler{notifyDomain: notifyDomain, metrics: m}
}

// StorePhoneNumber records a phone number for SMS notification.
//
//	@Summary		Store phone number
//	@Description	Appends the phone number to the notification list. No validation or deduplication is applied.
//	@Tags			Notify
//	@Accept			json
//	@Produce		json
//	@Param			request	body		model.StorePhoneRequest	true	"Phone number"
//	@Success		200		{object}	model.MessageResponse
//	@Failure		500		{object}	model.ErrorResponse	"Unreadable body or store error"
//	@Router			/api/storePhoneNumber [post]
func (h *notifyHandler) StorePhoneNumber(c *gin.Context) {
	var req model.StorePhoneRequest
	// An empty or unreadable body is a server-side failure on this route.
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.RecordPhoneRecord("failed")
		response.InternalError(c, msgStoreFailed)
		return
	}

	msg, err := h.notifyDomain.StorePhoneNumber(c.Request.Context(), req.PhoneNumber)
	if err != nil {
		h.metrics.RecordPhoneRecord("failed")
		// The store's own message is surfaced to the caller.
		response.InternalError(c, err.Error())
		return
	}

	h.metrics.RecordPhoneRecord("stored")
	c.JSON(http.StatusOK, model.MessageResponse{Message: msg})
}

// Compile-time check
var _ inbound.NotifyHttpPort = (*notifyHandler)(nil)
