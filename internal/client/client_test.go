package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkroom/server/internal/model"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(DefaultConfig(srv.URL+"/"), srv.Client())
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	data, err := sonic.Marshal(v)
	require.NoError(t, err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func TestIssueUploadGrant(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/uploadImage", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req model.IssueUploadRequest
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, sonic.Unmarshal(body, &req))
			assert.Equal(t, "cat.jpg", req.Filename)
			assert.Equal(t, "image/jpeg", req.ContentType)

			writeJSON(t, w, http.StatusOK, model.IssueUploadResponse{
				UploadURL: "https://signed.example/put",
				Key:       "uploads/1-cat.jpg",
			})
		})

		grant, err := c.IssueUploadGrant(context.Background(), "cat.jpg", "image/jpeg")
		require.NoError(t, err)
		assert.Equal(t, "https://signed.example/put", grant.UploadURL)
		assert.Equal(t, "uploads/1-cat.jpg", grant.Key)
	})

	t.Run("server error message is surfaced", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusBadRequest, model.ErrorResponse{Error: "Missing filename or contentType"})
		})

		_, err := c.IssueUploadGrant(context.Background(), "", "")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "Missing filename or contentType", err.Error())
	})

	t.Run("fallback message", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusInternalServerError, map[string]string{})
		})

		_, err := c.IssueUploadGrant(context.Background(), "a.jpg", "image/jpeg")
		require.Error(t, err)
		assert.Equal(t, MsgSignedURLFailed, err.Error())
	})

	t.Run("non-json error body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad gateway", http.StatusBadGateway)
		})

		_, err := c.IssueUploadGrant(context.Background(), "a.jpg", "image/jpeg")
		require.Error(t, err)
		assert.Equal(t, MsgSignedURLFailed, err.Error())
	})
}

func TestTransfer(t *testing.T) {
	t.Run("puts bytes with content type", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "image/png", r.Header.Get("Content-Type"))
			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, []byte("pixels"), body)
			w.WriteHeader(http.StatusNoContent)
		})

		err := c.Transfer(context.Background(), c.baseURL+"/bucket/uploads/1-a.png?X-Amz-Signature=x", "image/png", []byte("pixels"))
		require.NoError(t, err)
	})

	t.Run("non-2xx is a transfer error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		err := c.Transfer(context.Background(), c.baseURL+"/put", "image/png", []byte("x"))
		var te *TransferError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, http.StatusForbidden, te.StatusCode)
		assert.Equal(t, MsgUploadFailed, err.Error())
	})

	t.Run("bad url", func(t *testing.T) {
		c := New(DefaultConfig("http://unused"), nil)
		err := c.Transfer(context.Background(), "://nope", "image/png", nil)
		var te *TransferError
		assert.ErrorAs(t, err, &te)
	})
}

func TestSubmitPhoneNumber(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/storePhoneNumber", r.URL.Path)
			var req model.StorePhoneRequest
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, sonic.Unmarshal(body, &req))
			assert.Equal(t, "5551234567", req.PhoneNumber)

			writeJSON(t, w, http.StatusOK, model.MessageResponse{Message: "Phone number stored successfully"})
		})

		msg, err := c.SubmitPhoneNumber(context.Background(), "5551234567")
		require.NoError(t, err)
		assert.Equal(t, "Phone number stored successfully", msg)
	})

	t.Run("store error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusInternalServerError, model.ErrorResponse{Error: "connection refused"})
		})

		_, err := c.SubmitPhoneNumber(context.Background(), "5551234567")
		require.Error(t, err)
		assert.Equal(t, "connection refused", err.Error())
	})

	t.Run("fallback message", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusInternalServerError, map[string]int{"code": 1})
		})

		_, err := c.SubmitPhoneNumber(context.Background(), "5551234567")
		require.Error(t, err)
		assert.Equal(t, MsgStorePhoneFailed, err.Error())
	})

	t.Run("non-json response", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html>oops</html>"))
		})

		_, err := c.SubmitPhoneNumber(context.Background(), "5551234567")
		assert.True(t, errors.Is(err, ErrInvalidResponse))
		assert.Equal(t, MsgInvalidResponse, err.Error())
	})
}
