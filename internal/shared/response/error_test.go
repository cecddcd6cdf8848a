package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkroom/server/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var (
	errMissing = errors.New("missing")
	errBroken  = errors.New("broken")
)

var testMappings = []ErrorMapping{
	{Err: errMissing, Status: http.StatusBadRequest, Message: "Missing filename or contentType"},
	{Err: errBroken, Status: http.StatusInternalServerError},
}

func serve(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(c)
	return w
}

func TestHandleError(t *testing.T) {
	t.Run("mapped with message", func(t *testing.T) {
		w := serve(func(c *gin.Context) {
			assert.True(t, HandleError(c, fmt.Errorf("wrap: %w", errMissing), testMappings))
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Missing filename or contentType"}`, w.Body.String())
	})

	t.Run("mapped without message uses error text", func(t *testing.T) {
		w := serve(func(c *gin.Context) {
			HandleError(c, errBroken, testMappings)
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"broken"}`, w.Body.String())
	})

	t.Run("unmapped", func(t *testing.T) {
		serve(func(c *gin.Context) {
			assert.False(t, HandleError(c, errors.New("other"), testMappings))
		})
	})
}

func TestHandleErrorWithDefault(t *testing.T) {
	t.Run("unmapped uses fallback", func(t *testing.T) {
		w := serve(func(c *gin.Context) {
			HandleErrorWithDefault(c, errors.New("other"), testMappings, "Failed to generate upload URL")
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Failed to generate upload URL"}`, w.Body.String())
	})

	t.Run("empty fallback", func(t *testing.T) {
		w := serve(func(c *gin.Context) {
			HandleErrorWithDefault(c, errors.New("other"), testMappings, "")
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
	})

	t.Run("mapped wins", func(t *testing.T) {
		w := serve(func(c *gin.Context) {
			HandleErrorWithDefault(c, errMissing, testMappings, "unused")
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBadRequest(t *testing.T) {
	w := serve(func(c *gin.Context) { BadRequest(c, "Invalid request body") })
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
}

func TestError_BodyMatchesAPIModel(t *testing.T) {
	w := serve(func(c *gin.Context) { Error(c, http.StatusTooManyRequests, "Rate limit exceeded") })

	var body model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Rate limit exceeded", body.Error)
}
