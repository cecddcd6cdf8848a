package outbound

import (
	"context"

	"github.com/darkroom/server/internal/model"
)

// PhoneRecordStorePort persists notification sign-ups.
type PhoneRecordStorePort interface {
	// AppendPhoneRecord appends a record. No uniqueness is enforced.
	AppendPhoneRecord(ctx context.Context, record *model.PhoneRecord) error
}
