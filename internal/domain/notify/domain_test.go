package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/darkroom/server/internal/model"
	"github.com/darkroom/server/internal/port/outbound"
)

// --- Mock implementations ---

type MockPhoneRecordStore struct {
	mock.Mock
}

func (m *MockPhoneRecordStore) AppendPhoneRecord(ctx context.Context, record *model.PhoneRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

var _ outbound.PhoneRecordStorePort = (*MockPhoneRecordStore)(nil)

func TestDomain_StorePhoneNumber(t *testing.T) {
	logger := zap.NewNop()

	t.Run("success", func(t *testing.T) {
		store := new(MockPhoneRecordStore)
		domain := NewDomain(store, nil, logger)

		store.On("AppendPhoneRecord", mock.Anything, mock.MatchedBy(func(r *model.PhoneRecord) bool {
			return r.PhoneNumber == "5551234567" && r.ID.String() != "" && !r.CreatedAt.IsZero()
		})).Return(nil)

		msg, err := domain.StorePhoneNumber(context.Background(), "5551234567")

		require.NoError(t, err)
		assert.Equal(t, "Phone number stored successfully", msg)
		store.AssertExpectations(t)
	})

	t.Run("identical submissions produce two records", func(t *testing.T) {
		store := new(MockPhoneRecordStore)
		domain := NewDomain(store, nil, logger)

		var records []*model.PhoneRecord
		store.On("AppendPhoneRecord", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				records = append(records, args.Get(1).(*model.PhoneRecord))
			}).
			Return(nil)

		_, err := domain.StorePhoneNumber(context.Background(), "5551234567")
		require.NoError(t, err)
		_, err = domain.StorePhoneNumber(context.Background(), "5551234567")
		require.NoError(t, err)

		require.Len(t, records, 2)
		assert.Equal(t, records[0].PhoneNumber, records[1].PhoneNumber)
		assert.NotEqual(t, records[0].ID, records[1].ID)
		store.AssertNumberOfCalls(t, "AppendPhoneRecord", 2)
	})

	t.Run("raw value is stored unvalidated", func(t *testing.T) {
		store := new(MockPhoneRecordStore)
		domain := NewDomain(store, nil, logger)

		store.On("AppendPhoneRecord", mock.Anything, mock.MatchedBy(func(r *model.PhoneRecord) bool {
			return r.PhoneNumber == ""
		})).Return(nil)

		_, err := domain.StorePhoneNumber(context.Background(), "")

		assert.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("store failure carries the store message", func(t *testing.T) {
		store := new(MockPhoneRecordStore)
		domain := NewDomain(store, nil, logger)

		store.On("AppendPhoneRecord", mock.Anything, mock.Anything).
			Return(errors.New(`relation "phone_numbers" does not exist`))

		msg, err := domain.StorePhoneNumber(context.Background(), "5551234567")

		assert.Empty(t, msg)
		var storeErr *StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, `relation "phone_numbers" does not exist`, err.Error())
	})
}

func TestDomain_CircuitBreaker(t *testing.T) {
	store := new(MockPhoneRecordStore)
	domain := NewDomain(store, &Config{BreakerFailures: 2}, zap.NewNop())

	store.On("AppendPhoneRecord", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	for i := 0; i < 2; i++ {
		_, err := domain.StorePhoneNumber(context.Background(), "5551234567")
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, domain.BreakerState())

	_, err := domain.StorePhoneNumber(context.Background(), "5551234567")

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	store.AssertNumberOfCalls(t, "AppendPhoneRecord", 2)
}
