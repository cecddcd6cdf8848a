package gin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darkroom/server/internal/domain/photo"
	"github.com/darkroom/server/internal/model"
	"github.com/darkroom/server/internal/port/inbound"
	"github.com/darkroom/server/internal/shared/response"
	"github.com/darkroom/server/internal/utils/metrics"
)

const msgIssueFailed = "Failed to generate upload URL"

var photoErrors = []response.ErrorMapping{
	{Err: photo.ErrMissingFields, Status: http.StatusBadRequest, Message: "Missing filename or contentType"},
	{Err: photo.ErrIssueFailed, Status: http.StatusInternalServerError, Message: msgIssueFailed},
}

// photoHandler implements inbound.PhotoHttpPort.
type photoHandler struct {
	photoDomain inbound.PhotoDomain
	metrics     *metrics.Metrics
}

// NewPhotoHandler creates a new photo HTTP handler. m may be nil.
func NewPhotoHandler(photoDomain inbound.PhotoDomain, m *metrics.Metrics) inbound.PhotoHttpPort {
	return &photoHandler{photoDomain: photoDomain, metrics: m}
}

// UploadImage issues a signed upload URL.
//
//	@Summary		Issue upload URL
//	@Description	Returns a presigned PUT URL valid for 10 minutes and the object key it writes
//	@Tags			Photos
//	@Accept			json
//	@Produce		json
//	@Param			request	body		model.IssueUploadRequest	true	"File to upload"
//	@Success		200		{object}	model.IssueUploadResponse
//	@Failure		400		{object}	model.ErrorResponse	"Missing filename or contentType"
//	@Failure		429		{object}	model.ErrorResponse	"Rate limit exceeded"
//	@Failure		500		{object}	model.ErrorResponse	"Failed to generate upload URL"
//	@Router			/api/uploadImage [post]
func (h *photoHandler) UploadImage(c *gin.Context) {
	var req model.IssueUploadRequest
	if err := bindJSON(c, &req); err != nil {
		h.metrics.RecordUploadGrant("invalid")
		response.BadRequest(c, msgInvalidBody)
		return
	}

	grant, err := h.photoDomain.IssueUploadGrant(c.Request.Context(), req.Filename, req.ContentType)
	if err != nil {
		if errors.Is(err, photo.ErrMissingFields) {
			h.metrics.RecordUploadGrant("invalid")
		} else {
			h.metrics.RecordUploadGrant("failed")
		}
		response.HandleErrorWithDefault(c, err, photoErrors, msgIssueFailed)
		return
	}

	h.metrics.RecordUploadGrant("issued")
	c.JSON(http.StatusOK, model.IssueUploadResponse{
		UploadURL: grant.UploadURL,
		Key:       grant.Key,
	})
}

// Compile-time check
var _ inbound.PhotoHttpPort = (*photoHandler)(nil)
