package workflow

import "errors"

var (
	// ErrNothingSelected is returned by Access when no task is pending.
	ErrNothingSelected = errors.New("no files selected")
	// ErrUploadInProgress is returned by Access while another run is active.
	ErrUploadInProgress = errors.New("upload already in progress")
	// ErrIndexOutOfRange is returned by Remove for an unknown index.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrPhoneNotSaved is returned by SubmitPhone when the server rejects
	// or fails the submission.
	ErrPhoneNotSaved = errors.New("phone number not saved")
)

// User-facing messages.
const (
	PhoneSavedMessage     = "You'll be notified when your photos are ready!"
	PhoneNotSavedMessage  = "Failed to save your phone number. Please try again."
	UploadFailedMessage   = "Failed to upload file"
	UnknownFailureMessage = "Upload failed"
)
