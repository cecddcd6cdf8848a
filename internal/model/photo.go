package model

import "time"

// UploadURLExpiry is the default lifetime of an issued upload URL.
const UploadURLExpiry = 600 * time.Second

// UploadGrant is a time-limited URL authorizing a single direct write of
// one object to storage.
type UploadGrant struct {
	UploadURL string    `json:"uploadUrl"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"-"`
}

// IssueUploadRequest is the body of POST /api/uploadImage.
type IssueUploadRequest struct {
	Filename    string `json:"filename" example:"party.jpg"`
	ContentType string `json:"contentType" example:"image/jpeg"`
}

// IssueUploadResponse is returned on a successful POST /api/uploadImage.
type IssueUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	Key       string `json:"key" example:"uploads/1740927600000-party.jpg"`
}
