package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/darkroom/server/internal/model"
	"github.com/darkroom/server/internal/port/outbound"
)

// phoneRecordAdapter implements outbound.PhoneRecordStorePort.
type phoneRecordAdapter struct {
	db *gorm.DB
}

// NewPhoneRecordAdapter creates a new phone record database adapter.
func NewPhoneRecordAdapter(db *gorm.DB) outbound.PhoneRecordStorePort {
	return &phoneRecordAdapter{db: db}
}

// AppendPhoneRecord inserts a new row. Duplicates are allowed.
func (a *phoneRecordAdapter) AppendPhoneRecord(ctx context.Context, record *model.PhoneRecord) error {
	if err := a.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert phone number: %w", err)
	}
	return nil
}

// Compile-time check
var _ outbound.PhoneRecordStorePort = (*phoneRecordAdapter)(nil)
