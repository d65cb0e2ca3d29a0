// Package dynamostore implements docstore.Store on DynamoDB. Every logical
// table maps to a DynamoDB table with a string partition key "id".
package dynamostore

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/dmitrijs2005/keyescrow/internal/common"
)

const keyAttr = "id"

// API is the subset of the DynamoDB client used by the store.
type API interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type Store struct {
	client API
	tables map[string]string
}

// New returns a store that resolves logical table names through tables.
// Names missing from the map are used as is.
func New(client API, tables map[string]string) *Store {
	return &Store{client: client, tables: tables}
}

// NewFromConfig builds the DynamoDB client from an AWS config. endpoint
// overrides the service endpoint (DynamoDB Local) when set.
func NewFromConfig(cfg aws.Config, endpoint string, tables map[string]string) *Store {
	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	return New(client, tables)
}

func (s *Store) table(name string) *string {
	if t, ok := s.tables[name]; ok && t != "" {
		return aws.String(t)
	}
	return aws.String(name)
}

func itemKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		keyAttr: &types.AttributeValueMemberS{Value: id},
	}
}

func (s *Store) Get(ctx context.Context, table, id string, out any) error {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      s.table(table),
		Key:            itemKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("dynamodb error: %w", err)
	}

	if result.Item == nil {
		return common.ErrorNotFound
	}

	if err := attributevalue.UnmarshalMap(result.Item, out); err != nil {
		return fmt.Errorf("decode error: %w", err)
	}
	return nil
}

func (s *Store) Put(ctx context.Context, table, id string, doc any) error {
	item, err := attributevalue.MarshalMap(doc)
	if err != nil {
		return fmt.Errorf("encode error: %w", err)
	}
	item[keyAttr] = &types.AttributeValueMemberS{Value: id}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: s.table(table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("dynamodb error: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, table, id string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: s.table(table),
		Key:       itemKey(id),
	})
	if err != nil {
		return fmt.Errorf("dynamodb error: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return nil }
