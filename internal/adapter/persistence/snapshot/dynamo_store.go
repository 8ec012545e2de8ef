package snapshot

import (
	"context"
	"fmt"

	"acm_e_letras/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSnapshotTableName = "app_data"
	snapshotKey              = "app-data"
)

// snapshotItem is the single DynamoDB record holding the serialized
// aggregate.
//
// Table requirements:
//   - PK: key (string)
type snapshotItem struct {
	Key     string `dynamodbav:"key"`
	Payload string `dynamodbav:"payload"`
}

// DynamoStore persists the snapshot as one DynamoDB item. It has no change
// notification; cross-instance consistency degrades to load-time reads.
type DynamoStore struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISnapshotStore = (*DynamoStore)(nil)

func NewDynamoStore(ddb *dynamodb.Client) *DynamoStore {
	return &DynamoStore{
		ddb:       ddb,
		tableName: getenvDefault("SNAPSHOT_TABLE", defaultSnapshotTableName),
	}
}

func (s *DynamoStore) Load(ctx context.Context) ([]byte, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: snapshotKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot from dynamodb: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it snapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return []byte(it.Payload), nil
}

func (s *DynamoStore) Save(ctx context.Context, raw []byte) error {
	av, err := attributevalue.MarshalMap(snapshotItem{Key: snapshotKey, Payload: string(raw)})
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to write snapshot to dynamodb: %w", err)
	}
	return nil
}

func (s *DynamoStore) Watch(_ context.Context) (<-chan []byte, error) {
	return nil, nil
}
