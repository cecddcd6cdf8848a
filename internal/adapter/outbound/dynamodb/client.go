package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/darkroom/server/internal/shared/cloud"
)

// NewClient creates a DynamoDB client. endpoint overrides the service URL,
// e.g. for DynamoDB Local.
func NewClient(ctx context.Context, creds cloud.AWSConfig, endpoint string) (*dynamodb.Client, error) {
	awsCfg, err := cloud.LoadAWSConfig(ctx, creds)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}
