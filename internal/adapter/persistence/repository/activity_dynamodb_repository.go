package repository

import (
	"context"
	"sort"
	"time"

	"stripe_testbed/internal/domain/entities"
	"stripe_testbed/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultActivityTableName = "activity"

type activityItem struct {
	ID         string   `dynamodbav:"id"`
	Operation  string   `dynamodbav:"operation"`
	Label      string   `dynamodbav:"label"`
	Outcome    string   `dynamodbav:"outcome"`
	ResourceID string   `dynamodbav:"resource_id,omitempty"`
	Error      string   `dynamodbav:"error,omitempty"`
	Lines      []string `dynamodbav:"lines,omitempty"`
	At         string   `dynamodbav:"at"`
}

// DynamoAPI is the subset of the DynamoDB client the activity log needs.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// ActivityDynamoRepository persists the operation log in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The log is small and only read by the dashboard, so ListRecent scans and
// sorts in memory.

type ActivityDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IActivityRepository = (*ActivityDynamoRepository)(nil)

func NewActivityDynamoRepository(ddb DynamoAPI) *ActivityDynamoRepository {
	return &ActivityDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACTIVITY_TABLE", defaultActivityTableName),
	}
}

func (r *ActivityDynamoRepository) Record(ctx context.Context, a entities.Activity) error {
	av, err := attributevalue.MarshalMap(toActivityItem(a))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *ActivityDynamoRepository) ListRecent(ctx context.Context, limit int) ([]entities.Activity, error) {
	items := make([]entities.Activity, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it activityItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromActivityItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].At.After(items[j].At) })
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func toActivityItem(a entities.Activity) activityItem {
	return activityItem{
		ID:         a.ID,
		Operation:  a.Operation,
		Label:      a.Label,
		Outcome:    string(a.Outcome),
		ResourceID: a.ResourceID,
		Error:      a.Error,
		Lines:      a.Lines,
		At:         a.At.UTC().Format(time.RFC3339Nano),
	}
}

func fromActivityItem(it activityItem) entities.Activity {
	at, _ := time.Parse(time.RFC3339Nano, it.At)
	return entities.Activity{
		ID:         it.ID,
		Operation:  it.Operation,
		Label:      it.Label,
		Outcome:    entities.ActivityOutcome(it.Outcome),
		ResourceID: it.ResourceID,
		Error:      it.Error,
		Lines:      it.Lines,
		At:         at,
	}
}
