package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"stripe_testbed/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeDynamo struct {
	puts  []*dynamodb.PutItemInput
	pages [][]map[string]types.AttributeValue
	scans int
	err   error
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.puts = append(f.puts, in)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	page := f.pages[f.scans]
	f.scans++
	out := &dynamodb.ScanOutput{Items: page}
	if f.scans < len(f.pages) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "cursor"}}
	}
	return out, nil
}

func mustItem(t *testing.T, a entities.Activity) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toActivityItem(a))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestActivityDynamoRepository_Record(t *testing.T) {
	t.Setenv("ACTIVITY_TABLE", "activity-test")
	fake := &fakeDynamo{}
	repo := NewActivityDynamoRepository(fake)

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	err := repo.Record(context.Background(), entities.Activity{ID: "a1", Operation: "get", Outcome: entities.ActivityOutcomeSuccess, At: at})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fake.puts) != 1 || aws.ToString(fake.puts[0].TableName) != "activity-test" {
		t.Fatalf("unexpected put %+v", fake.puts)
	}
	var it activityItem
	if err := attributevalue.UnmarshalMap(fake.puts[0].Item, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if it.ID != "a1" || it.At != "2024-05-01T12:00:00Z" {
		t.Fatalf("unexpected item %+v", it)
	}
}

func TestActivityDynamoRepository_ListRecent(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	fake := &fakeDynamo{pages: [][]map[string]types.AttributeValue{
		{mustItem(t, entities.Activity{ID: "old", At: base})},
		{
			mustItem(t, entities.Activity{ID: "newest", At: base.Add(2 * time.Minute)}),
			mustItem(t, entities.Activity{ID: "middle", At: base.Add(time.Minute)}),
		},
	}}
	repo := NewActivityDynamoRepository(fake)

	got, err := repo.ListRecent(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.scans != 2 {
		t.Fatalf("expected both pages scanned, got %d", fake.scans)
	}
	if len(got) != 2 || got[0].ID != "newest" || got[1].ID != "middle" {
		t.Fatalf("unexpected order %+v", got)
	}
}

func TestActivityDynamoRepository_Errors(t *testing.T) {
	fake := &fakeDynamo{err: errors.New("ResourceNotFoundException")}
	repo := NewActivityDynamoRepository(fake)

	if err := repo.Record(context.Background(), entities.Activity{ID: "a1"}); err == nil {
		t.Fatalf("expected put error")
	}
	if _, err := repo.ListRecent(context.Background(), 5); err == nil {
		t.Fatalf("expected scan error")
	}
}

func TestNewActivityRepositoryFromEnv(t *testing.T) {
	t.Setenv("ACTIVITY_STORE", "memory")
	repo, err := NewActivityRepositoryFromEnv(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.(*ActivityMemoryRepository); !ok {
		t.Fatalf("expected memory repository, got %T", repo)
	}

	t.Setenv("ACTIVITY_STORE", "redis")
	if _, err := NewActivityRepositoryFromEnv(context.Background()); err == nil {
		t.Fatalf("expected unknown store error")
	}
}
