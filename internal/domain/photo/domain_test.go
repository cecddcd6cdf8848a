package photo

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/darkroom/server/internal/port/outbound"
)

// --- Mock implementations ---

type MockUploadGrantIssuer struct {
	mock.Mock
}

func (m *MockUploadGrantIssuer) IssueUploadGrant(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, contentType, expiry)
	return args.String(0), args.Error(1)
}

var _ outbound.UploadGrantIssuerPort = (*MockUploadGrantIssuer)(nil)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestDomain_IssueUploadGrant(t *testing.T) {
	logger := zap.NewNop()
	issuedAt := time.UnixMilli(1740900000123)

	t.Run("success", func(t *testing.T) {
		issuer := new(MockUploadGrantIssuer)
		domain := NewDomain(issuer, nil, logger).WithClock(fixedClock(issuedAt))

		issuer.On("IssueUploadGrant", mock.Anything, "uploads/1740900000123-cat.jpg", "image/jpeg", 600*time.Second).
			Return("https://bucket.s3.amazonaws.com/uploads/1740900000123-cat.jpg?X-Amz-Signature=abc", nil)

		grant, err := domain.IssueUploadGrant(context.Background(), "cat.jpg", "image/jpeg")

		require.NoError(t, err)
		assert.Equal(t, "uploads/1740900000123-cat.jpg", grant.Key)
		assert.Contains(t, grant.UploadURL, "X-Amz-Signature")
		assert.Equal(t, issuedAt.Add(600*time.Second), grant.ExpiresAt)
		issuer.AssertExpectations(t)
	})

	t.Run("missing filename", func(t *testing.T) {
		issuer := new(MockUploadGrantIssuer)
		domain := NewDomain(issuer, nil, logger)

		grant, err := domain.IssueUploadGrant(context.Background(), "", "image/jpeg")

		assert.ErrorIs(t, err, ErrMissingFields)
		assert.Nil(t, grant)
		issuer.AssertNotCalled(t, "IssueUploadGrant")
	})

	t.Run("missing content type", func(t *testing.T) {
		issuer := new(MockUploadGrantIssuer)
		domain := NewDomain(issuer, nil, logger)

		_, err := domain.IssueUploadGrant(context.Background(), "cat.jpg", "")

		assert.ErrorIs(t, err, ErrMissingFields)
		issuer.AssertNotCalled(t, "IssueUploadGrant")
	})

	t.Run("signer failure", func(t *testing.T) {
		issuer := new(MockUploadGrantIssuer)
		domain := NewDomain(issuer, nil, logger)

		issuer.On("IssueUploadGrant", mock.Anything, mock.Anything, "image/png", mock.Anything).
			Return("", errors.New("no credentials"))

		grant, err := domain.IssueUploadGrant(context.Background(), "a.png", "image/png")

		assert.ErrorIs(t, err, ErrIssueFailed)
		assert.Nil(t, grant)
	})

	t.Run("same filename twice yields distinct keys", func(t *testing.T) {
		issuer := new(MockUploadGrantIssuer)
		ticks := []time.Time{issuedAt, issuedAt.Add(time.Millisecond)}
		domain := NewDomain(issuer, nil, logger).WithClock(func() time.Time {
			next := ticks[0]
			ticks = ticks[1:]
			return next
		})

		issuer.On("IssueUploadGrant", mock.Anything, mock.Anything, "image/jpeg", mock.Anything).Return("https://signed", nil)

		first, err := domain.IssueUploadGrant(context.Background(), "dup.jpg", "image/jpeg")
		require.NoError(t, err)
		second, err := domain.IssueUploadGrant(context.Background(), "dup.jpg", "image/jpeg")
		require.NoError(t, err)

		assert.NotEqual(t, first.Key, second.Key)
		assert.True(t, strings.HasSuffix(first.Key, "-dup.jpg"))
		assert.True(t, strings.HasSuffix(second.Key, "-dup.jpg"))
	})

	t.Run("custom prefix and expiry", func(t *testing.T) {
		issuer := new(MockUploadGrantIssuer)
		domain := NewDomain(issuer, &Config{KeyPrefix: "wedding/", URLExpiry: time.Minute}, logger).
			WithClock(fixedClock(issuedAt))

		issuer.On("IssueUploadGrant", mock.Anything, "wedding/1740900000123-x.heic", "image/heic", time.Minute).
			Return("https://signed", nil)

		grant, err := domain.IssueUploadGrant(context.Background(), "x.heic", "image/heic")

		require.NoError(t, err)
		assert.Equal(t, "wedding/1740900000123-x.heic", grant.Key)
		issuer.AssertExpectations(t)
	})
}

func TestDomain_ObjectKey(t *testing.T) {
	domain := NewDomain(nil, nil, nil)
	at := time.UnixMilli(42)

	assert.Equal(t, "uploads/42-photo.jpg", domain.ObjectKey("photo.jpg", at))
	assert.Equal(t, "uploads/42-my photo (1).jpg", domain.ObjectKey("my photo (1).jpg", at))
}

func TestDomain_PublicURL(t *testing.T) {
	t.Run("aws virtual-hosted", func(t *testing.T) {
		domain := NewDomain(nil, &Config{Bucket: "party-pics", Region: "us-east-1"}, nil)
		assert.Equal(t,
			"https://party-pics.s3.us-east-1.amazonaws.com/uploads/1-a.jpg",
			domain.PublicURL("uploads/1-a.jpg"))
	})

	t.Run("base url override", func(t *testing.T) {
		domain := NewDomain(nil, &Config{PublicBaseURL: "https://cdn.example.com/"}, nil)
		assert.Equal(t, "https://cdn.example.com/uploads/1-a.jpg", domain.PublicURL("uploads/1-a.jpg"))
	})
}

func TestDomain_IssueUploadGrant_LogsPublicURL(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	issuer := new(MockUploadGrantIssuer)
	cfg := &Config{KeyPrefix: "uploads/", Bucket: "party-pics", Region: "us-east-1", URLExpiry: time.Minute}
	domain := NewDomain(issuer, cfg, zap.New(core)).WithClock(fixedClock(time.UnixMilli(7)))

	issuer.On("IssueUploadGrant", mock.Anything, "uploads/7-a.jpg", "image/jpeg", time.Minute).
		Return("https://signed.example/uploads/7-a.jpg", nil)

	_, err := domain.IssueUploadGrant(context.Background(), "a.jpg", "image/jpeg")
	require.NoError(t, err)

	entries := logs.FilterMessage("Upload grant issued").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "https://party-pics.s3.us-east-1.amazonaws.com/uploads/7-a.jpg", entries[0].ContextMap()["public_url"])
}
