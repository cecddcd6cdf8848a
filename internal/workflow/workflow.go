// Package workflow drives the guest side of an upload: selection, sequential
// transfer through signed URLs, and the switch to the countdown stage.
package workflow

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/darkroom/server/internal/model"
	"github.com/darkroom/server/internal/phone"
)

// Stage is the page the guest is on.
type Stage int

const (
	StageUpload Stage = iota
	StageCountdown
)

func (s Stage) String() string {
	switch s {
	case StageUpload:
		return "upload"
	case StageCountdown:
		return "countdown"
	default:
		return "unknown"
	}
}

// Step names where a task stopped.
type Step string

const (
	StepIssue    Step = "issue"
	StepTransfer Step = "transfer"
	StepDone     Step = "done"
)

// SessionState reads and writes the persistent completion marker.
type SessionState interface {
	HasUploaded() bool
	SetUploaded(done bool) error
}

// Grant is a signed upload URL and the object key it writes.
type Grant struct {
	UploadURL string
	Key       string
}

// GrantIssuer requests signed upload URLs.
type GrantIssuer interface {
	IssueUploadGrant(ctx context.Context, filename, contentType string) (*Grant, error)
}

// Transferer writes bytes to a signed upload URL.
type Transferer interface {
	Transfer(ctx context.Context, uploadURL, contentType string, data []byte) error
}

// PhoneSubmitter stores a notification phone number.
type PhoneSubmitter interface {
	SubmitPhoneNumber(ctx context.Context, phoneNumber string) (string, error)
}

// Task is one selected file.
type Task struct {
	Filename    string
	ContentType string
	// LocalRef identifies the file locally and doubles as its preview
	// until the upload resolves.
	LocalRef string
	Data     []byte
}

// Preview is one thumbnail reference. Local previews point at the selected
// file; resolved previews point at the uploaded object.
type Preview struct {
	Ref      string
	Resolved bool
}

// TaskResult is the outcome of one task in an Access run.
type TaskResult struct {
	Filename string
	Key      string
	URL      string
	Step     Step
	Err      error
}

// OK reports whether the task uploaded.
func (r TaskResult) OK() bool {
	return r.Err == nil
}

// Config holds the storage coordinates used to build public URLs.
type Config struct {
	Bucket string
	Region string
	// PublicBaseURL replaces the S3 virtual-hosted URL when set.
	PublicBaseURL string
}

// Orchestrator owns the upload stage machine.
type Orchestrator struct {
	mu sync.Mutex

	issuer   GrantIssuer
	transfer Transferer
	state    SessionState
	config   Config
	logger   *log.Logger

	stage     Stage
	pending   []Task
	previews  []Preview
	lastError string
	uploading bool
}

// New creates an Orchestrator. The initial stage is read from state once.
func New(issuer GrantIssuer, transfer Transferer, state SessionState, cfg Config, logger *log.Logger) *Orchestrator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	stage := StageUpload
	if state.HasUploaded() {
		stage = StageCountdown
	}
	return &Orchestrator{
		issuer:   issuer,
		transfer: transfer,
		state:    state,
		config:   cfg,
		logger:   logger,
		stage:    stage,
	}
}

// Stage returns the current stage.
func (o *Orchestrator) Stage() Stage {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.stage
}

// Error returns the latest user-visible failure message, or "".
func (o *Orchestrator) Error() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastError
}

// Pending returns a copy of the queued tasks.
func (o *Orchestrator) Pending() []Task {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]Task(nil), o.pending...)
}

// Previews returns a copy of the preview sequence.
func (o *Orchestrator) Previews() []Preview {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]Preview(nil), o.previews...)
}

// CanAccess reports whether the access action is enabled.
func (o *Orchestrator) CanAccess() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.pending) > 0 && !o.uploading
}

// Select replaces the pending queue and previews with tasks.
func (o *Orchestrator) Select(tasks []Task) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.pending = append([]Task(nil), tasks...)
	o.previews = make([]Preview, 0, len(tasks))
	for _, t := range tasks {
		o.previews = append(o.previews, Preview{Ref: t.LocalRef})
	}
}

// Remove drops the pending task at index and its preview.
func (o *Orchestrator) Remove(index int) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if index < 0 || index >= len(o.pending) {
		return ErrIndexOutOfRange
	}
	ref := o.pending[index].LocalRef
	o.pending = append(o.pending[:index:index], o.pending[index+1:]...)

	for i, p := range o.previews {
		if !p.Resolved && p.Ref == ref {
			o.previews = append(o.previews[:i:i], o.previews[i+1:]...)
			break
		}
	}
	return nil
}

// AppendPreview adds a resolved preview unless url is already present.
func (o *Orchestrator) AppendPreview(url string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.appendPreviewLocked(url)
}

func (o *Orchestrator) appendPreviewLocked(url string) {
	for _, p := range o.previews {
		if p.Ref == url {
			return
		}
	}
	o.previews = append(o.previews, Preview{Ref: url, Resolved: true})
}

// Access uploads every pending task in order. Failures are recorded per task
// and never abort the batch. When at least one task succeeds the queue is
// cleared, the marker is set and the stage moves to Countdown.
func (o *Orchestrator) Access(ctx context.Context) ([]TaskResult, error) {
	o.mu.Lock()
	if o.uploading {
		o.mu.Unlock()
		return nil, ErrUploadInProgress
	}
	if len(o.pending) == 0 {
		o.mu.Unlock()
		return nil, ErrNothingSelected
	}
	tasks := append([]Task(nil), o.pending...)
	o.lastError = ""
	o.uploading = true
	o.mu.Unlock()

	results := make([]TaskResult, 0, len(tasks))
	succeeded := 0
	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			o.fail(err)
			results = append(results, TaskResult{Filename: task.Filename, Step: StepIssue, Err: err})
			continue
		}

		res := o.run(ctx, task)
		results = append(results, res)
		if res.OK() {
			succeeded++
		}
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.uploading = false

	if succeeded == 0 {
		o.logger.Warn("no file uploaded", "files", len(tasks))
		return results, nil
	}

	o.pending = nil
	resolved := o.previews[:0]
	for _, p := range o.previews {
		if p.Resolved {
			resolved = append(resolved, p)
		}
	}
	o.previews = resolved

	if err := o.state.SetUploaded(true); err != nil {
		o.logger.Warn("failed to persist completion marker", "err", err)
	}
	o.stage = StageCountdown
	o.logger.Info("upload finished", "uploaded", succeeded, "failed", len(tasks)-succeeded)
	return results, nil
}

func (o *Orchestrator) run(ctx context.Context, task Task) TaskResult {
	res := TaskResult{Filename: task.Filename, Step: StepIssue}

	grant, err := o.issuer.IssueUploadGrant(ctx, task.Filename, task.ContentType)
	if err != nil {
		o.logger.Error("upload url request failed", "file", task.Filename, "err", err)
		res.Err = err
		o.fail(err)
		return res
	}
	res.Key = grant.Key
	res.Step = StepTransfer

	if err := o.transfer.Transfer(ctx, grant.UploadURL, task.ContentType, task.Data); err != nil {
		o.logger.Error("transfer failed", "file", task.Filename, "key", grant.Key, "err", err)
		res.Err = err
		o.fail(err)
		return res
	}

	res.Step = StepDone
	res.URL = model.PublicObjectURL(o.config.PublicBaseURL, o.config.Bucket, o.config.Region, grant.Key)
	o.AppendPreview(res.URL)
	o.logger.Debug("uploaded", "file", task.Filename, "key", grant.Key)
	return res
}

func (o *Orchestrator) fail(err error) {
	msg := err.Error()
	if msg == "" {
		msg = UnknownFailureMessage
	}
	o.mu.Lock()
	o.lastError = msg
	o.mu.Unlock()
}

// UploadMore clears the selection and previews and returns to Upload.
// The completion marker is kept.
func (o *Orchestrator) UploadMore() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pending = nil
	o.previews = nil
	o.lastError = ""
	o.stage = StageUpload
}

// Forget clears the completion marker. The current stage is unchanged.
func (o *Orchestrator) Forget() error {
	return o.state.SetUploaded(false)
}

// SubmitPhone validates raw locally and submits the normalized digits.
// Invalid input returns phone.ErrInvalidPhoneNumber without a network call.
func SubmitPhone(ctx context.Context, submitter PhoneSubmitter, raw string) (string, error) {
	digits, err := phone.Normalize(raw)
	if err != nil {
		return "", err
	}
	if _, err := submitter.SubmitPhoneNumber(ctx, digits); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPhoneNotSaved, err)
	}
	return PhoneSavedMessage, nil
}
