// Package client talks to the Darkroom API and to signed upload URLs.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/darkroom/server/internal/infra/httpclient"
	"github.com/darkroom/server/internal/model"
	"github.com/darkroom/server/internal/workflow"
)

// Fallback messages when the server does not provide one.
const (
	MsgSignedURLFailed   = "Failed to get signed URL"
	MsgUploadFailed      = workflow.UploadFailedMessage
	MsgStorePhoneFailed  = "Failed to store phone number"
	MsgInvalidResponse   = "Received invalid response from server"
	maxErrorBodyReadSize = 64 << 10
)

// ErrInvalidResponse is returned when the server answers with something
// that is not JSON.
var ErrInvalidResponse = errors.New(MsgInvalidResponse)

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// TransferError is a failed PUT to a signed URL.
type TransferError struct {
	StatusCode int
	Err        error
}

func (e *TransferError) Error() string {
	return MsgUploadFailed
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// Config configures the API client.
type Config struct {
	BaseURL   string
	Transport httpclient.Config
}

// DefaultConfig returns client defaults for baseURL.
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:   baseURL,
		Transport: httpclient.DefaultConfig(),
	}
}

// Client implements the workflow ports over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

var (
	_ workflow.GrantIssuer    = (*Client)(nil)
	_ workflow.Transferer     = (*Client)(nil)
	_ workflow.PhoneSubmitter = (*Client)(nil)
)

// New creates a Client. A nil httpClient gets a pooled default.
func New(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = httpclient.New(cfg.Transport)
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
	}
}

// IssueUploadGrant calls POST /api/uploadImage.
func (c *Client) IssueUploadGrant(ctx context.Context, filename, contentType string) (*workflow.Grant, error) {
	req := model.IssueUploadRequest{Filename: filename, ContentType: contentType}

	var out model.IssueUploadResponse
	status, err := c.postJSON(ctx, "/api/uploadImage", req, &out)
	if err != nil {
		if errors.Is(err, ErrInvalidResponse) && status >= 200 && status < 300 {
			return nil, err
		}
		return nil, apiError(status, err, MsgSignedURLFailed)
	}
	return &workflow.Grant{UploadURL: out.UploadURL, Key: out.Key}, nil
}

// Transfer PUTs data to uploadURL. Any 2xx status is success.
func (c *Client) Transfer(ctx context.Context, uploadURL, contentType string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(data))
	if err != nil {
		return &TransferError{Err: err}
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = int64(len(data))

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransferError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodyReadSize))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &TransferError{StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}
	return nil
}

// SubmitPhoneNumber calls POST /api/storePhoneNumber and returns the
// server's confirmation message.
func (c *Client) SubmitPhoneNumber(ctx context.Context, phoneNumber string) (string, error) {
	req := model.StorePhoneRequest{PhoneNumber: phoneNumber}

	var out model.MessageResponse
	status, err := c.postJSON(ctx, "/api/storePhoneNumber", req, &out)
	if err != nil {
		if errors.Is(err, ErrInvalidResponse) {
			return "", err
		}
		return "", apiError(status, err, MsgStorePhoneFailed)
	}
	return out.Message, nil
}

// errorBody carries a decoded {error} body of a non-2xx response.
type errorBody struct {
	message string
}

func (e *errorBody) Error() string {
	return e.message
}

// postJSON sends body and decodes a 2xx answer into out. Non-2xx answers
// return *errorBody with the server message when one could be decoded.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) (int, error) {
	payload, err := sonic.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e model.ErrorResponse
		if sonic.Unmarshal(data, &e) != nil {
			return resp.StatusCode, ErrInvalidResponse
		}
		return resp.StatusCode, &errorBody{message: e.Error}
	}

	if err := sonic.Unmarshal(data, out); err != nil {
		return resp.StatusCode, ErrInvalidResponse
	}
	return resp.StatusCode, nil
}

func apiError(status int, err error, fallback string) *APIError {
	msg := fallback
	var body *errorBody
	if errors.As(err, &body) && body.message != "" {
		msg = body.message
	}
	return &APIError{StatusCode: status, Message: msg, Err: err}
}
