package interfaces

import (
	"context"

	"stripe_testbed/internal/domain/entities"
)

//go:generate mockgen -source=activity_repository_interface.go -destination=mocks/activity_repository_interface_mock.go -package=mock_interfaces

// IActivityRepository persists the local operation log.
type IActivityRepository interface {
	Record(ctx context.Context, a entities.Activity) error
	// ListRecent returns at most limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]entities.Activity, error)
}
