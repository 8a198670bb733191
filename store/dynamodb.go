package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sicko7947/statusreset"
)

// DynamoDBService implements statusreset.TableService using AWS DynamoDB
type DynamoDBService struct {
	client DynamoDBClient
}

// NewDynamoDBService creates a table service backed by the given client.
// The client is owned by the caller and shared by every handle.
func NewDynamoDBService(client DynamoDBClient) *DynamoDBService {
	return &DynamoDBService{client: client}
}

// Table describes the named table and returns a handle to it. Missing
// tables, rejected credentials and network failures surface here.
func (s *DynamoDBService) Table(ctx context.Context, name string) (statusreset.TableHandle, error) {
	out, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe table %s: %w", name, err)
	}

	if out.Table == nil {
		return nil, statusreset.NewResetError(statusreset.ErrCodeNotFound, fmt.Sprintf("table %s not found", name))
	}

	return &DynamoDBTable{
		client:    s.client,
		tableName: name,
	}, nil
}

// DynamoDBTable implements statusreset.TableHandle for one DynamoDB table
type DynamoDBTable struct {
	client    DynamoDBClient
	tableName string
}

func (t *DynamoDBTable) Name() string {
	return t.tableName
}

// Scan issues a single Scan request. LastEvaluatedKey is returned to the
// caller but never followed.
func (t *DynamoDBTable) Scan(ctx context.Context) (*statusreset.ScanPage, error) {
	out, err := t.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(t.tableName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan table %s: %w", t.tableName, err)
	}

	return &statusreset.ScanPage{
		Items:            out.Items,
		Count:            out.Count,
		LastEvaluatedKey: out.LastEvaluatedKey,
	}, nil
}

// UpdateItem sets one attribute on the item identified by req.Key
func (t *DynamoDBTable) UpdateItem(ctx context.Context, req statusreset.UpdateRequest) error {
	input, err := t.updateInput(req)
	if err != nil {
		return err
	}

	if _, err := t.client.UpdateItem(ctx, input); err != nil {
		return fmt.Errorf("failed to update item in %s: %w", t.tableName, err)
	}

	return nil
}

func (t *DynamoDBTable) updateInput(req statusreset.UpdateRequest) (*dynamodb.UpdateItemInput, error) {
	if len(req.Key) == 0 {
		return nil, fmt.Errorf("update on %s has no key", t.tableName)
	}

	update := expression.Set(expression.Name(req.Attribute), expression.Value(req.Value))
	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build update expression: %w", err)
	}

	return &dynamodb.UpdateItemInput{
		TableName:                 aws.String(t.tableName),
		Key:                       req.Key,
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}, nil
}
