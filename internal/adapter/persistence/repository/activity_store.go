package repository

import (
	"context"
	"fmt"
	"strings"

	"stripe_testbed/internal/infrastructure/database"
	"stripe_testbed/internal/infrastructure/telemetry"
	"stripe_testbed/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	ActivityStoreMemory   = "memory"
	ActivityStoreDynamoDB = "dynamodb"
)

// NewActivityRepositoryFromEnv picks the activity store from ACTIVITY_STORE
// (memory by default).
func NewActivityRepositoryFromEnv(ctx context.Context) (interfaces.IActivityRepository, error) {
	store := strings.ToLower(strings.TrimSpace(getenvDefault("ACTIVITY_STORE", ActivityStoreMemory)))
	switch store {
	case ActivityStoreMemory:
		telemetry.Info("[activity][store] using in-memory activity log")
		return NewActivityMemoryRepository(DefaultActivityCapacity), nil
	case ActivityStoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, err
		}
		repo := NewActivityDynamoRepository(ddb)
		telemetry.Info("[activity][store] using dynamodb activity log", zap.String("table", repo.tableName))
		return repo, nil
	}
	return nil, fmt.Errorf("unknown ACTIVITY_STORE %q (want %s or %s)", store, ActivityStoreMemory, ActivityStoreDynamoDB)
}
