package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/darkroom/server/internal/model"
	"github.com/darkroom/server/internal/port/outbound"
)

// PutItemAPI is the subset of the DynamoDB client used by the adapter.
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// phoneRecordAdapter implements outbound.PhoneRecordStorePort on a DynamoDB table
// keyed by id.
type phoneRecordAdapter struct {
	client PutItemAPI
	table  string
}

// NewPhoneRecordAdapter creates a new DynamoDB phone record adapter.
func NewPhoneRecordAdapter(client PutItemAPI, table string) outbound.PhoneRecordStorePort {
	return &phoneRecordAdapter{client: client, table: table}
}

// phoneRecordItem is the table item layout.
type phoneRecordItem struct {
	ID          string `dynamodbav:"id"`
	PhoneNumber string `dynamodbav:"phone_number"`
	CreatedAt   string `dynamodbav:"created_at"`
}

func (a *phoneRecordAdapter) AppendPhoneRecord(ctx context.Context, record *model.PhoneRecord) error {
	item, err := attributevalue.MarshalMap(phoneRecordItem{
		ID:          record.ID.String(),
		PhoneNumber: record.PhoneNumber,
		CreatedAt:   record.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("marshal phone record: %w", err)
	}

	_, err = a.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(a.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put phone record: %w", err)
	}
	return nil
}

// Compile-time check
var _ outbound.PhoneRecordStorePort = (*phoneRecordAdapter)(nil)
