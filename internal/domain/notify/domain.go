package notify

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/darkroom/server/internal/model"
	"github.com/darkroom/server/internal/port/inbound"
	"github.com/darkroom/server/internal/port/outbound"
	"github.com/darkroom/server/internal/utils/requestctx"
)

// SuccessMessage is returned after a phone number has been recorded.
const SuccessMessage = "Phone number stored successfully"

// Domain records phone numbers for SMS notification.
type Domain struct {
	store   outbound.PhoneRecordStorePort
	breaker *gobreaker.CircuitBreaker[any]
	config  *Config
	now     func() time.Time
	logger  *zap.Logger
}

// NewDomain creates a new notify domain.
func NewDomain(store outbound.PhoneRecordStorePort, config *Config, logger *zap.Logger) *Domain {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	failures := config.BreakerFailures
	if failures == 0 {
		failures = DefaultConfig().BreakerFailures
	}

	settings := gobreaker.Settings{
		Name:        "phone-record-store",
		MaxRequests: 1,
		Interval:    config.BreakerInterval,
		Timeout:     config.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}

	return &Domain{
		store:   store,
		breaker: gobreaker.NewCircuitBreaker[any](settings),
		config:  config,
		now:     time.Now,
		logger:  logger,
	}
}

// StorePhoneNumber appends the raw phone number as a new record.
// Numbers are neither validated nor deduplicated here.
func (d *Domain) StorePhoneNumber(ctx context.Context, phoneNumber string) (string, error) {
	record := &model.PhoneRecord{
		ID:          uuid.New(),
		PhoneNumber: phoneNumber,
		CreatedAt:   d.now(),
	}

	_, err := d.breaker.Execute(func() (any, error) {
		return nil, d.store.AppendPhoneRecord(ctx, record)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			d.logger.Warn("Phone record store short-circuited", zap.Error(err))
			return "", storeError("%w: %v", ErrStoreUnavailable, err)
		}
		d.logger.Error("Failed to store phone number",
			zap.String("record_id", record.ID.String()),
			zap.String("request_id", requestctx.RequestID(ctx)),
			zap.Error(err),
		)
		return "", &StoreError{Err: err}
	}

	d.logger.Info("Phone number stored",
		zap.String("record_id", record.ID.String()),
		zap.String("request_id", requestctx.RequestID(ctx)),
	)
	return SuccessMessage, nil
}

// BreakerState reports the store circuit breaker state.
func (d *Domain) BreakerState() gobreaker.State {
	return d.breaker.State()
}

// Compile-time check
var _ inbound.NotifyDomain = (*Domain)(nil)
